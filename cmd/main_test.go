package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/siahsang/blogfront/internal/auth"
	"github.com/siahsang/blogfront/internal/carousel"
	"github.com/siahsang/blogfront/internal/config"
	"github.com/siahsang/blogfront/internal/fetch"
	"github.com/siahsang/blogfront/internal/prefs"
	"github.com/siahsang/blogfront/internal/store"
	"github.com/siahsang/blogfront/internal/toast"
	"github.com/siahsang/blogfront/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApplication(t *testing.T) *application {
	t.Helper()
	logger := testLogger()

	darkMode, err := prefs.NewDarkMode(context.Background(), prefs.NewMemoryKV(), false, logger)
	require.NoError(t, err)

	return &application{
		config: config.Config{
			Source:  "store",
			BaseURL: "http://localhost:4000",
		},
		logger:   logger,
		source:   fetch.NewStoreSource(store.NewMemory(logger), "", logger),
		articles: store.NewArticleStore(logger),
		carousel: carousel.New[models.Article](nil, time.Hour),
		toasts:   toast.NewCenter(time.Minute, logger),
		darkMode: darkMode,
		auth:     auth.New(auth.Config{}),
	}
}

func withEditor(t *testing.T, app *application) {
	t.Helper()
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	app.auth = auth.New(auth.Config{
		Username:     "editor",
		PasswordHash: hash,
		Secret:       "test-secret",
		TokenTTL:     time.Hour,
	})
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		js, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(js)
	}

	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
