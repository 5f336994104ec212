package client

import (
	"Socialboard/internal/api/config"
	"Socialboard/internal/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	PostsPath     = "/api/social-media/posts"
	FollowersPath = "/api/social-media/followers"
	StatsPath     = "/api/social-media/stats"
)

// envelope 代理层统一返回体
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// Fetcher 访问代理接口，读请求经过 Cache
type Fetcher struct {
	baseURL string
	http    *resty.Client
	cache   *Cache
}

func NewFetcher(cfg config.ClientConfig, cache *Cache) *Fetcher {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	if cfg.Token != "" {
		httpClient.SetAuthToken(cfg.Token)
	}
	logger.SetupResty(httpClient)

	return &Fetcher{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		cache:   cache,
	}
}

// Cache 当前使用的缓存
func (f *Fetcher) Cache() *Cache {
	return f.cache
}

// Get 读取并解出 data，新鲜期内命中缓存不发请求
func (f *Fetcher) Get(ctx context.Context, path string, out any) error {
	url := f.baseURL + path

	payload, ok := f.cache.Get(url)
	if !ok {
		resp, err := f.http.R().SetContext(ctx).Get(url)
		if err != nil {
			return err
		}
		if !isSuccess(resp.StatusCode()) {
			return fmt.Errorf("Failed to fetch %s", url)
		}
		payload = resp.Body()
		f.cache.Set(url, payload)
	}

	return decodeEnvelope(payload, out)
}

// Send 发起写请求，不经过缓存
func (f *Fetcher) Send(ctx context.Context, method, path, id string, body any, out any) error {
	req := f.http.R().SetContext(ctx)
	if id != "" {
		req.SetQueryParam("id", id)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, f.baseURL+path)
	if err != nil {
		return err
	}

	var env envelope
	decodeErr := json.Unmarshal(resp.Body(), &env)
	if !isSuccess(resp.StatusCode()) {
		if decodeErr == nil && env.Error != "" {
			return errors.New(env.Error)
		}
		return fmt.Errorf("%s %s: %s", method, path, http.StatusText(resp.StatusCode()))
	}
	if decodeErr != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, decodeErr)
	}
	if !env.Success {
		if env.Error != "" {
			return errors.New(env.Error)
		}
		return fmt.Errorf("%s %s: request failed", method, path)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func decodeEnvelope(payload []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return err
	}
	if !env.Success {
		if env.Error != "" {
			return errors.New(env.Error)
		}
		return errors.New("request failed")
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
