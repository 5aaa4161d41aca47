// Package client is a Go client for the dreamhouse HTTP API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dreamhouse/internal/domain"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// apiError 非 ok 响应
type apiError struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type generateResponse struct {
	OK     bool              `json:"ok"`
	Layout domain.Layout     `json:"layout"`
	Parsed domain.Attributes `json:"parsed"`
}

type listResponse struct {
	OK      bool                 `json:"ok"`
	Designs []domain.SavedDesign `json:"designs"`
}

type getResponse struct {
	OK     bool                 `json:"ok"`
	Design *domain.DesignDetail `json:"design"`
}

// GenerateResult mirrors the /api/generate payload.
type GenerateResult struct {
	Layout domain.Layout     `json:"layout" yaml:"layout"`
	Parsed domain.Attributes `json:"parsed" yaml:"parsed"`
}

// Client dreamhouse API 客户端
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// New 创建客户端
func New(baseURL string, logger *zap.Logger) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{httpClient: c, logger: logger}
}

func (c *Client) Generate(ctx context.Context, prompt, name string) (*GenerateResult, error) {
	var out generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]string{"prompt": prompt, "name": name}).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/api/generate")
	if err := c.check(resp, err, "generate", out.OK); err != nil {
		return nil, err
	}
	return &GenerateResult{Layout: out.Layout, Parsed: out.Parsed}, nil
}

// Save stores layout as given; a nil layout is saved as {}.
func (c *Client) Save(ctx context.Context, name, prompt string, layout json.RawMessage) error {
	body := map[string]any{"name": name, "prompt": prompt}
	if layout != nil {
		body["layout"] = layout
	}

	var out apiError
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/api/save")
	return c.check(resp, err, "save", out.OK)
}

func (c *Client) List(ctx context.Context) ([]domain.SavedDesign, error) {
	var out listResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/api/list")
	if err := c.check(resp, err, "list", out.OK); err != nil {
		return nil, err
	}
	return out.Designs, nil
}

// Get returns domain.ErrNotFound when the server answers 404.
func (c *Client) Get(ctx context.Context, id int64) (*domain.DesignDetail, error) {
	var out getResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/api/get/" + strconv.FormatInt(id, 10))
	if err := c.check(resp, err, "get", out.OK); err != nil {
		return nil, err
	}
	return out.Design, nil
}

func (c *Client) check(resp *resty.Response, err error, op string, ok bool) error {
	if err != nil {
		c.logger.Error("dreamhouse API call failed", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	if resp.IsError() {
		msg := resp.Status()
		if e, _ := resp.Error().(*apiError); e != nil && e.Error != "" {
			msg = e.Error
		}
		c.logger.Warn("dreamhouse API returned error",
			zap.String("op", op),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("msg", msg),
		)
		return fmt.Errorf("%s: %s (status: %d)", op, msg, resp.StatusCode())
	}
	if !ok {
		return fmt.Errorf("%s: server replied ok=false", op)
	}
	return nil
}
