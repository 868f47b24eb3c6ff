package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/wouterdom/kookboek/internal/extract"
	"github.com/wouterdom/kookboek/internal/fetch"
	"github.com/wouterdom/kookboek/internal/importer"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	var b errorBody
	b.Error.Code = code
	b.Error.Message = msg
	writeJSON(w, status, b)
}

func writeInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "internal_error", "Er ging iets mis. Probeer het later opnieuw.")
}

// decodeBody parses a JSON request body, capped at 1 MB.
func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v)
}

// writeImportError maps pipeline failures onto localized API errors. Anything
// unrecognized is an internal error; the details stay in the logs.
func writeImportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fetch.ErrLoginRequired):
		writeError(w, http.StatusUnprocessableEntity, "login_required",
			"Deze website vereist een account. Kopieer het recept en plak het als tekst.")
	case errors.Is(err, fetch.ErrContentTooShort):
		writeError(w, http.StatusUnprocessableEntity, "content_too_short",
			"Kon geen recepttekst op deze pagina vinden.")
	case errors.Is(err, extract.ErrNoJSON):
		writeError(w, http.StatusBadGateway, "extraction_failed",
			"Er kon geen recept worden herkend. Probeer een andere bron.")
	case errors.Is(err, importer.ErrMissingTitle),
		errors.Is(err, importer.ErrTooFewIngredients),
		errors.Is(err, importer.ErrTooFewSteps):
		writeError(w, http.StatusUnprocessableEntity, "invalid_recipe",
			"Het gevonden recept is onvolledig (titel, ingrediënten of stappen ontbreken).")
	case errors.Is(err, importer.ErrQueueFull):
		writeError(w, http.StatusServiceUnavailable, "queue_full",
			"Er worden al te veel kookboeken verwerkt. Probeer het straks opnieuw.")
	default:
		writeInternalError(w)
	}
}
