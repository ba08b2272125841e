package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mdobak/go-xerrors"

	"github.com/siahsang/blogfront/internal/utils/stringutils"
	"github.com/siahsang/blogfront/models"
)

// HTTPSource talks to a json-server style upstream exposing /posts.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
	now     func() time.Time
}

func NewHTTPSource(baseURL string, timeout time.Duration, log *slog.Logger) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
		now:     time.Now,
	}
}

// postBody is the payload of POST and PUT requests to the upstream.
type postBody struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (s *HTTPSource) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	if err := s.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *HTTPSource) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post
	if err := s.do(ctx, http.MethodGet, postPath(id), nil, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (s *HTTPSource) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	body := postBody{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Author:   input.Author,
		Date:     s.now().UTC().Format(models.DateLayout),
		ImageURL: input.ImageURL,
	}

	var post models.Post
	if err := s.do(ctx, http.MethodPost, "/posts", body, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// UpdatePost reads the current post, merges patch into it and PUTs the whole
// post back so the upstream keeps its original date.
func (s *HTTPSource) UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	current, err := s.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	merged := current.Apply(patch)

	body := postBody{
		Title:    merged.Title,
		Content:  merged.Content,
		Category: merged.Category,
		Author:   merged.Author,
		Date:     current.Date,
		ImageURL: merged.ImageURL,
	}
	if body.Date == "" {
		body.Date = s.now().UTC().Format(models.DateLayout)
	}

	var post models.Post
	if err := s.do(ctx, http.MethodPut, postPath(id), body, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (s *HTTPSource) DeletePost(ctx context.Context, id int64) error {
	err := s.do(ctx, http.MethodDelete, postPath(id), nil, nil)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func postPath(id int64) string {
	return "/posts/" + stringutils.ToString(id)
}

func (s *HTTPSource) do(ctx context.Context, method, path string, body, dst any) error {
	var reader io.Reader
	if body != nil {
		js, err := json.Marshal(body)
		if err != nil {
			return xerrors.New(err)
		}
		reader = bytes.NewReader(js)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return xerrors.New(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return xerrors.New(&RequestError{Message: err.Error()})
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return xerrors.New(ErrNotFound)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		message := upstreamMessage(resp)
		s.log.Warn("Upstream request failed",
			"method", method, "path", path, "status", resp.StatusCode, "message", message)
		return xerrors.New(&RequestError{StatusCode: resp.StatusCode, Message: message})
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return xerrors.New(&RequestError{StatusCode: resp.StatusCode, Message: "invalid response from upstream: " + err.Error()})
	}
	return nil
}

// upstreamMessage prefers the "message" field of a JSON error body and falls
// back to the status line.
func upstreamMessage(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "Request failed with status code " + stringutils.ToString(resp.StatusCode)
}
