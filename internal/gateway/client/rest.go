package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/RockerInt/Properties/internal/models"
	"github.com/RockerInt/Properties/internal/params"
)

// restClient is the shared HTTP plumbing of the REST-backed clients.
type restClient struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func newRESTClient(baseURL string, logger *slog.Logger) restClient {
	return restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// do performs one request against the property service. Statuses listed
// in ok are success outcomes; anything else becomes a StatusError built
// from the response body.
func (c restClient) do(ctx context.Context, method, path string, in, out any, ok ...int) (int, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call property service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	for _, code := range ok {
		if resp.StatusCode != code {
			continue
		}
		if out != nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, out); err != nil {
				return 0, fmt.Errorf("decode response: %w", err)
			}
		}
		return resp.StatusCode, nil
	}
	message := errorMessage(raw, resp.StatusCode)
	c.logger.Warn("upstream rejected request",
		"method", method, "path", path, "status", resp.StatusCode, "message", message)
	return 0, &StatusError{Code: resp.StatusCode, Message: message}
}

// errorMessage extracts the message field the services put in failure
// bodies, falling back to the raw body or the status text.
func errorMessage(raw []byte, statusCode int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return msg
	}
	return http.StatusText(statusCode)
}

// restPropertyClient reaches the property service over its REST surface.
type restPropertyClient struct {
	restClient
}

func NewRESTPropertyClient(baseURL string, logger *slog.Logger) PropertyClient {
	return &restPropertyClient{restClient: newRESTClient(baseURL, logger)}
}

func (c *restPropertyClient) List(ctx context.Context, p *params.PropertyParams) ([]models.PropertyComplete, error) {
	path := "/api/v1/Properties/Get"
	if p != nil {
		path += "?" + p.QueryString()
	}
	var properties []models.Property
	if _, err := c.do(ctx, http.MethodGet, path, nil, &properties, http.StatusOK); err != nil {
		return nil, err
	}
	complete := make([]models.PropertyComplete, 0, len(properties))
	for i := range properties {
		complete = append(complete, completeFromModel(&properties[i]))
	}
	return complete, nil
}

func (c *restPropertyClient) Get(ctx context.Context, id string) (*models.PropertyComplete, error) {
	var property models.Property
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/Properties/Get/"+id, nil, &property, http.StatusOK); err != nil {
		return nil, err
	}
	complete := completeFromModel(&property)
	return &complete, nil
}

func (c *restPropertyClient) Create(ctx context.Context, property *models.PropertyLite) (*models.PropertyLite, error) {
	var created models.Property
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/Properties/Create", property, &created, http.StatusCreated); err != nil {
		return nil, err
	}
	lite := liteFromModel(&created)
	return &lite, nil
}

func (c *restPropertyClient) Update(ctx context.Context, property *models.PropertyLite) (*models.PropertyLite, error) {
	var updated models.Property
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/Properties/Update", property, &updated, http.StatusOK); err != nil {
		return nil, err
	}
	lite := liteFromModel(&updated)
	return &lite, nil
}

func (c *restPropertyClient) Delete(ctx context.Context, id string) (bool, error) {
	status, err := c.do(ctx, http.MethodPost, "/api/v1/Properties/Delete/"+id, nil, nil,
		http.StatusNoContent, http.StatusNotModified)
	if err != nil {
		return false, err
	}
	return status == http.StatusNoContent, nil
}
