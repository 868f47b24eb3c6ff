package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchTextStripsMarkup(t *testing.T) {
	page := `<html><head><style>body{color:red}</style>
<script>console.log("x")</script></head>
<body><h1>Appeltaart</h1>
<p>Een klassieke appeltaart voor het hele gezin, met kaneel en rozijnen.</p>
<ul><li>250 g bloem</li><li>3 appels</li></ul>
<p>1. Meng de bloem met de boter. 2. Vul met appel en bak 60 minuten.</p>
</body></html>`
	srv := testServer(t, http.StatusOK, page)

	f := NewPageFetcher(5 * time.Second)
	text, err := f.FetchText(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Appeltaart")
	assert.Contains(t, text, "250 g bloem")
	assert.NotContains(t, text, "<p>")
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "color:red")
}

func TestFetchTextLoginWallByStatus(t *testing.T) {
	srv := testServer(t, http.StatusForbidden, "verboden")

	f := NewPageFetcher(5 * time.Second)
	_, err := f.FetchText(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestFetchTextLoginWallByMarker(t *testing.T) {
	body := "<p>Log in om verder te lezen.</p>" + strings.Repeat("<p>tekst</p>", 50)
	srv := testServer(t, http.StatusOK, body)

	f := NewPageFetcher(5 * time.Second)
	_, err := f.FetchText(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestFetchTextTooShort(t *testing.T) {
	srv := testServer(t, http.StatusOK, "<p>bijna leeg</p>")

	f := NewPageFetcher(5 * time.Second)
	_, err := f.FetchText(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrContentTooShort)
}

func TestFetchTextServerError(t *testing.T) {
	srv := testServer(t, http.StatusInternalServerError, "oeps")

	f := NewPageFetcher(5 * time.Second)
	_, err := f.FetchText(context.Background(), srv.URL)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLoginRequired)
	assert.NotErrorIs(t, err, ErrContentTooShort)
}
