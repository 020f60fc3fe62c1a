package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/domain/repository"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

// max bytes read from an error body when looking for a detail field
const maxErrorBody = 64 << 10

// Client talks JSON to one backend base URL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

// Request describes one backend call.
type Request struct {
	Method        string
	Path          string
	Query         url.Values
	Token         string
	Body          io.Reader
	ContentType   string
	ContentLength int64
}

// Do sends req and returns the body of a 2xx answer. Transport failures wrap
// repository.ErrUnavailable; non-2xx answers are *repository.StatusError.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	u := c.BaseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, req.Body)
	if err != nil {
		return nil, err
	}
	if req.ContentLength > 0 {
		httpReq.ContentLength = req.ContentLength
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Cache-Control", "no-cache")

	helpers.BackendCalls.Add(1)
	res, err := c.HTTP.Do(httpReq)
	if err != nil {
		c.fail(req, 0, err)
		return nil, fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		se := &repository.StatusError{Status: res.StatusCode, Detail: parseDetail(b)}
		c.fail(req, res.StatusCode, se)
		return nil, se
	}
	b, err := io.ReadAll(res.Body)
	if err != nil {
		c.fail(req, res.StatusCode, err)
		return nil, fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	return b, nil
}

// GetJSON fetches path and decodes the answer into out.
func (c *Client) GetJSON(ctx context.Context, path, token string, query url.Values, out any) error {
	b, err := c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Token: token})
	if err != nil {
		return err
	}
	return decode(b, out)
}

// SendJSON encodes in as the request body and decodes the answer into out
// when out is non-nil and the answer has a body.
func (c *Client) SendJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	ct := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
		ct = "application/json"
	}
	b, err := c.Do(ctx, Request{Method: method, Path: path, Token: token, Body: body, ContentType: ct})
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	return decode(b, out)
}

// PostForm sends an urlencoded form and decodes the answer into out.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	b, err := c.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        strings.NewReader(form.Encode()),
		ContentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return err
	}
	return decode(b, out)
}

func (c *Client) fail(req Request, status int, err error) {
	helpers.BackendFailures.Add(1)
	helpers.LogWarn(c.Logger, "backend request failed", err, logrus.Fields{
		"method": req.Method,
		"path":   req.Path,
		"status": status,
	})
}

func decode(b []byte, out any) error {
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: decode: %w", repository.ErrUnavailable, err)
	}
	return nil
}

// parseDetail extracts a string "detail" field from an error body.
func parseDetail(b []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(b, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(body.Detail, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
