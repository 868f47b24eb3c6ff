// Package anthropic implements the structured-extraction service against the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/wouterdom/kookboek/internal/extract"
)

// pdfBeta enables PDF document blocks on the Messages API.
const pdfBeta = "pdfs-2024-09-25"

// Token budgets. A cookbook PDF can yield dozens of recipes; single-recipe
// and grocery extractions are small.
const (
	pdfMaxTokens    = 8192
	singleMaxTokens = 2048
)

type Client struct {
	client *anthropic.Client
	model  string
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		client: anthropic.NewClient(apiKey, anthropic.WithBetaVersion(pdfBeta)),
		model:  model,
	}
}

func (c *Client) ExtractRecipesFromPDF(ctx context.Context, pdf []byte) ([]extract.Recipe, error) {
	content := []anthropic.MessageContent{
		anthropic.NewDocumentMessageContent(anthropic.NewMessageContentSource(
			anthropic.MessagesContentSourceTypeBase64,
			"application/pdf",
			base64.StdEncoding.EncodeToString(pdf),
		)),
		anthropic.NewTextMessageContent(extract.PDFPrompt),
	}

	raw, err := c.complete(ctx, content, pdfMaxTokens)
	if err != nil {
		return nil, err
	}

	var recipes []extract.Recipe
	if err := decodeResponse(raw, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) ExtractRecipeFromText(ctx context.Context, text string) (*extract.Recipe, error) {
	content := []anthropic.MessageContent{
		anthropic.NewTextMessageContent(extract.TextPrompt + "\n\n" + text),
	}

	raw, err := c.complete(ctx, content, singleMaxTokens)
	if err != nil {
		return nil, err
	}

	var recipe extract.Recipe
	if err := decodeResponse(raw, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *Client) ExtractRecipeFromImages(ctx context.Context, images [][]byte, mimeTypes []string) (*extract.Recipe, error) {
	content := make([]anthropic.MessageContent, 0, len(images)+1)
	for i, img := range images {
		content = append(content, anthropic.NewImageMessageContent(anthropic.NewMessageContentSource(
			anthropic.MessagesContentSourceTypeBase64,
			mimeTypes[i],
			base64.StdEncoding.EncodeToString(img),
		)))
	}
	content = append(content, anthropic.NewTextMessageContent(extract.ImagePrompt))

	raw, err := c.complete(ctx, content, singleMaxTokens)
	if err != nil {
		return nil, err
	}

	var recipe extract.Recipe
	if err := decodeResponse(raw, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *Client) ExtractGroceryItems(ctx context.Context, transcript string) ([]extract.GroceryLine, error) {
	content := []anthropic.MessageContent{
		anthropic.NewTextMessageContent(extract.GroceryPrompt + "\n\n" + transcript),
	}

	raw, err := c.complete(ctx, content, singleMaxTokens)
	if err != nil {
		return nil, err
	}

	var lines []extract.GroceryLine
	if err := decodeResponse(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *Client) complete(ctx context.Context, content []anthropic.MessageContent, maxTokens int) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			{Role: anthropic.RoleUser, Content: content},
		},
	})
	if err != nil {
		return "", fmt.Errorf("extraction call failed: %w", err)
	}
	return resp.GetFirstContentText(), nil
}

// decodeResponse locates the JSON payload in a model response and unmarshals
// it into v.
func decodeResponse(raw string, v any) error {
	payload, err := extract.ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("failed to decode extraction response: %w", err)
	}
	return nil
}
