package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

// HTTPClient implements GanttClient using the ganttview HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Views ---

func (c *HTTPClient) SaveView(ctx context.Context, name string, req *SaveViewRequest) (*model.View, error) {
	var view model.View
	if err := c.doJSON(ctx, http.MethodPut, "/v1/views/"+url.PathEscape(name), req, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *HTTPClient) GetView(ctx context.Context, name string) (*model.View, error) {
	var view model.View
	if err := c.doJSON(ctx, http.MethodGet, "/v1/views/"+url.PathEscape(name), nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *HTTPClient) ListViews(ctx context.Context) (*ListViewsResponse, error) {
	var resp ListViewsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/views", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteView(ctx context.Context, name string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/views/"+url.PathEscape(name), nil, nil)
}

// --- Records ---

func (c *HTTPClient) ReplaceRecords(ctx context.Context, viewName string, req *ReplaceRecordsRequest) (*ReplaceRecordsResponse, error) {
	var resp ReplaceRecordsResponse
	path := "/v1/views/" + url.PathEscape(viewName) + "/records"
	if err := c.doJSON(ctx, http.MethodPut, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetRecords(ctx context.Context, viewName string) (*model.RecordBatch, error) {
	var batch model.RecordBatch
	path := "/v1/views/" + url.PathEscape(viewName) + "/records"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// --- Transformation ---

func (c *HTTPClient) Transform(ctx context.Context, req *TransformRequest) (*TransformResponse, error) {
	var resp TransformResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/transform", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetGantt(ctx context.Context, viewName string, opts *GanttOptions) (*GanttResponse, error) {
	path := "/v1/views/" + url.PathEscape(viewName) + "/gantt"
	if opts != nil {
		q := url.Values{}
		if opts.Snapshot {
			q.Set("snapshot", "true")
		}
		if opts.Actor != "" {
			q.Set("actor", opts.Actor)
		}
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	var resp GanttResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- Snapshots ---

func (c *HTTPClient) GetSnapshot(ctx context.Context, id string) (*model.Snapshot, error) {
	var snap model.Snapshot
	if err := c.doJSON(ctx, http.MethodGet, "/v1/snapshots/"+url.PathEscape(id), nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *HTTPClient) ListSnapshots(ctx context.Context, viewName string, limit int) (*ListSnapshotsResponse, error) {
	path := "/v1/views/" + url.PathEscape(viewName) + "/snapshots"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var resp ListSnapshotsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteSnapshot(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/snapshots/"+url.PathEscape(id), nil, nil)
}

// --- Health ---

func (c *HTTPClient) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// doJSON performs an HTTP request with an optional JSON body and decodes the
// JSON response into result (when non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	// 204 No Content — success with no body.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// APIError is an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}
