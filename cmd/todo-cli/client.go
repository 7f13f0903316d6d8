package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// client talks to the todo API and unwraps its response envelopes.
type client struct {
	baseURL string
	http    *http.Client
}

type authResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type todoItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// apiError is a non-2xx answer from the server.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Status)
	}

	return e.Message + " (" + e.Code + ")"
}

func newClient(baseURL string, httpClient *http.Client) *client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *client) Signup(ctx context.Context, email, password, name string) (*authResult, error) {
	var out authResult
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	}, &out)

	return &out, err
}

func (c *client) Login(ctx context.Context, email, password string) (*authResult, error) {
	var out authResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)

	return &out, err
}

func (c *client) ListTodos(ctx context.Context, token string) ([]todoItem, error) {
	var out []todoItem
	err := c.do(ctx, http.MethodGet, "/api/todo", token, nil, &out)

	return out, err
}

func (c *client) CreateTodo(ctx context.Context, token, title string) (*todoItem, error) {
	var out todoItem
	err := c.do(ctx, http.MethodPost, "/api/todo", token, map[string]string{"title": title}, &out)

	return &out, err
}

func (c *client) SetCompleted(ctx context.Context, token, id string, completed bool) (*todoItem, error) {
	action := "/incomplete"
	if completed {
		action = "/complete"
	}

	var out todoItem
	err := c.do(ctx, http.MethodPut, "/api/todo/"+url.PathEscape(id)+action, token, nil, &out)

	return &out, err
}

func (c *client) DeleteTodo(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/todo/"+url.PathEscape(id), token, nil, nil)
}

func (c *client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return errors.Wrapf(err, "unexpected response (status %d)", resp.StatusCode)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &apiError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}

		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(env.Data, out), "failed to decode response data")
}
