package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/aitbekovm/grind/internal/models"
)

// Client talks to the study-dashboard backend. The session token rides
// on every request as a cookie; there is exactly one Client per process,
// built from config at startup.
type Client struct {
	BaseURL    string
	Session    string
	CookieName string
	Client     *http.Client
}

// NewClient constructs a client with a sane default timeout.
func NewClient(baseURL, session string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Session:    session,
		CookieName: "grind_session",
		Client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// ListTasks calls GET /tasks and returns the full collection for the
// authenticated user.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask calls POST /tasks and returns the canonical record with its
// backend-assigned id.
func (c *Client) CreateTask(ctx context.Context, draft models.Draft) (models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", draft, &task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask calls PUT /tasks/{id} with a full replacement. The draft's
// Version must match the server's or the call fails with ConflictError.
func (c *Client) UpdateTask(ctx context.Context, id int64, draft models.Draft) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), draft, &task)
	if err != nil {
		return models.Task{}, withTaskID(err, id)
	}
	return task, nil
}

// PatchTaskStatus calls PATCH /tasks/{id} with only the status field.
func (c *Client) PatchTaskStatus(ctx context.Context, id int64, status models.Status) (models.Task, error) {
	body := struct {
		Status models.Status `json:"status"`
	}{Status: status}

	var task models.Task
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d", id), body, &task)
	if err != nil {
		return models.Task{}, withTaskID(err, id)
	}
	return task, nil
}

// DeleteTask calls DELETE /tasks/{id}.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// do issues one request and maps the response onto the error taxonomy.
// out may be nil for calls that only need an ack.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	endpoint, err := c.resolve(path)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	c.applyHeaders(req)

	resp, err := c.Client.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return c.statusError(path, resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding %s response: %w", path, err)
		}
	}
	return nil
}

// statusError converts a non-2xx response into a typed error.
func (c *Client) statusError(path string, status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized:
		return &AuthRequiredError{Endpoint: path}
	case status == http.StatusConflict:
		return &ConflictError{}
	case status == http.StatusBadRequest, status == http.StatusNotFound:
		if isCalendarPath(path) {
			return &CalendarUnavailableError{Endpoint: path}
		}
		return &BadRequestError{Message: serverMessage(body)}
	case status >= 500:
		return &ServerError{StatusCode: status, Message: serverMessage(body)}
	default:
		return fmt.Errorf("http %d from %s: %s", status, path, string(body))
	}
}

// serverMessage extracts a human-readable message from an error body,
// tolerating both {"message": ...} and {"error": ...} shapes.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

func withTaskID(err error, id int64) error {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		conflict.TaskID = id
	}
	return err
}

// resolve joins the endpoint path onto the configured base URL, keeping
// any base path prefix (e.g. "https://host/api" + "/tasks").
func (c *Client) resolve(endpoint string) (string, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", err
	}
	base.Path = path.Join(base.Path, endpoint)
	return base.String(), nil
}

func (c *Client) applyHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.Session != "" {
		req.AddCookie(&http.Cookie{Name: c.CookieName, Value: c.Session})
	}
}
