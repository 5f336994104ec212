package upstream

import (
	"Socialboard/internal/api/config"
	"Socialboard/internal/pkg/logger"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ErrNotConfigured 上游地址未配置，不发起任何网络请求
var ErrNotConfigured = errors.New("upstream base url not configured")

// StatusError 上游返回非 2xx
type StatusError struct {
	Code int
	Text string
}

func (e *StatusError) Error() string {
	return e.Text
}

// Client 上游 mock API 的 REST 客户端，按集合名转发 CRUD
type Client struct {
	baseURL string
	http    *resty.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	logger.SetupResty(httpClient)

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
	}
}

// Configured 是否已配置上游地址
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// List GET /{collection}
func (c *Client) List(ctx context.Context, collection string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, collection, "", nil)
}

// Create POST /{collection}
func (c *Client) Create(ctx context.Context, collection string, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, collection, "", body)
}

// Update PUT /{collection}/{id}
func (c *Client) Update(ctx context.Context, collection, id string, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, collection, id, body)
}

// Delete DELETE /{collection}/{id}，忽略响应体
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	_, err := c.do(ctx, http.MethodDelete, collection, id, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, collection, id string, body []byte) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	url := c.baseURL + "/" + collection
	if id != "" {
		req.SetPathParam("id", id)
		url += "/{id}"
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, collection)
	}
	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode(), Text: http.StatusText(resp.StatusCode())}
	}

	if method == http.MethodDelete {
		return nil, nil
	}

	raw := resp.Body()
	if !json.Valid(raw) {
		return nil, errors.Errorf("%s %s: invalid json response", method, collection)
	}
	return raw, nil
}

// Reason 提取上游失败原因：状态码文本或底层错误信息
func Reason(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Text
	}
	return errors.Cause(err).Error()
}
