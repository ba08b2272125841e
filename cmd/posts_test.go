package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siahsang/blogfront/internal/fetch"
	"github.com/siahsang/blogfront/internal/filter"
	"github.com/siahsang/blogfront/models"
)

type postsResponse struct {
	Posts    []postCard      `json:"posts"`
	Metadata filter.Metadata `json:"metadata"`
}

type postResponse struct {
	Post models.Post `json:"post"`
}

type errorBody struct {
	ErrorMessage string            `json:"errorMessage"`
	ErrorDetails map[string]string `json:"errorDetails"`
}

func TestHealthcheck(t *testing.T) {
	app := newTestApplication(t)

	rr := doRequest(t, app.routes(), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "available")
}

func TestListPosts(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	rr := doRequest(t, h, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[postsResponse](t, rr)
	require.Len(t, resp.Posts, 3)
	assert.Equal(t, int64(3), resp.Metadata.Total)
	assert.Equal(t, "Automatizar el pipeline de CI/CD reduce errores humanos.", resp.Posts[1].Excerpt)

	rr = doRequest(t, h, http.MethodGet, "/api/posts?category=DevOps", nil)
	resp = decode[postsResponse](t, rr)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, int64(2), resp.Posts[0].ID)

	rr = doRequest(t, h, http.MethodGet, "/api/posts?limit=2&offset=2", nil)
	resp = decode[postsResponse](t, rr)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, int64(3), resp.Posts[0].ID)
}

func TestListPostsRejectsBadQuery(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	for _, target := range []string{"/api/posts?limit=0", "/api/posts?limit=abc", "/api/posts?category=Cocina"} {
		rr := doRequest(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestShowPost(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	rr := doRequest(t, h, http.MethodGet, "/api/posts/2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(2), decode[postResponse](t, rr).Post.ID)

	for _, target := range []string{"/api/posts/99", "/api/posts/abc", "/api/posts/0"} {
		rr = doRequest(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, target)
	}
}

func TestCreatePost(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	rr := doRequest(t, h, http.MethodPost, "/api/posts", models.PostInput{
		Title:    "Nuevo",
		Content:  "Contenido",
		Author:   "Ana",
		Category: "Otros",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	post := decode[postResponse](t, rr).Post
	assert.Equal(t, int64(4), post.ID)
	assert.Equal(t, time.Now().UTC().Format(models.DateLayout), post.Date)
	assert.Equal(t, "/api/posts/4", rr.Header().Get("Location"))

	toasts := app.toasts.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, models.ToastSuccess, toasts[0].Type)
}

func TestCreatePostValidation(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	rr := doRequest(t, h, http.MethodPost, "/api/posts", models.PostInput{Title: " ", Content: "c", Author: "a", Category: "Cocina"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode[errorBody](t, rr)
	assert.Contains(t, body.ErrorDetails, "title")
	assert.Contains(t, body.ErrorDetails, "category")

	rr = doRequest(t, h, http.MethodPost, "/api/posts", `{"title": "x", "unknown": true}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, h, http.MethodPost, "/api/posts", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, app.toasts.Active())
}

func TestUpdatePost(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	rr := doRequest(t, h, http.MethodPut, "/api/posts/1", map[string]string{"title": "Editado"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	post := decode[postResponse](t, rr).Post
	assert.Equal(t, "Editado", post.Title)
	assert.Equal(t, "2024-01-15", post.Date)

	rr = doRequest(t, h, http.MethodPut, "/api/posts/99", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, h, http.MethodPut, "/api/posts/1", map[string]string{"author": ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	toasts := app.toasts.Active()
	require.Len(t, toasts, 2)
	assert.Equal(t, models.ToastSuccess, toasts[0].Type)
	assert.Equal(t, models.ToastError, toasts[1].Type)
}

func TestDeletePost(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	rr := doRequest(t, h, http.MethodDelete, "/api/posts/3", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = doRequest(t, h, http.MethodDelete, "/api/posts/3", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, h, http.MethodGet, "/api/posts/3", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, h, http.MethodGet, "/api/posts", nil)
	assert.Len(t, decode[postsResponse](t, rr).Posts, 2)
}

func TestUpstreamFailureIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"mantenimiento"}`))
	}))
	t.Cleanup(upstream.Close)

	app := newTestApplication(t)
	app.source = fetch.NewHTTPSource(upstream.URL, time.Second, app.logger)
	h := app.routes()

	rr := doRequest(t, h, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, "mantenimiento", decode[errorBody](t, rr).ErrorMessage)

	rr = doRequest(t, h, http.MethodPost, "/api/posts", models.PostInput{Title: "t", Content: "c", Author: "a"})
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	toasts := app.toasts.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, models.ToastError, toasts[0].Type)
}

func TestListCategories(t *testing.T) {
	app := newTestApplication(t)

	rr := doRequest(t, app.routes(), http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[struct {
		Categories []struct {
			Name  string `json:"name"`
			Posts int    `json:"posts"`
		} `json:"categories"`
	}](t, rr)
	require.Len(t, resp.Categories, len(models.Categories))

	counts := map[string]int{}
	for _, c := range resp.Categories {
		counts[c.Name] = c.Posts
	}
	assert.Equal(t, 1, counts["DevOps"])
	assert.Equal(t, 1, counts["Programación"])
	assert.Equal(t, 0, counts["Otros"])
}

func TestFeed(t *testing.T) {
	app := newTestApplication(t)

	rr := doRequest(t, app.routes(), http.MethodGet, "/api/feed", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/rss+xml")
	assert.Contains(t, rr.Body.String(), "Despliegues sin dolor")
}

func TestUnknownRouteAndMethod(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodGet, "/api/nothing", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, doRequest(t, h, http.MethodPatch, "/api/posts/1", nil).Code)
}
