package service

import (
	"Socialboard/internal/pkg/upstream"
	"Socialboard/internal/pkg/util"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Upstream 上游 REST 集合的最小接口
type Upstream interface {
	Configured() bool
	List(ctx context.Context, collection string) (json.RawMessage, error)
	Create(ctx context.Context, collection string, body []byte) (json.RawMessage, error)
	Update(ctx context.Context, collection, id string, body []byte) (json.RawMessage, error)
	Delete(ctx context.Context, collection, id string) error
}

// recordProxy 将单一集合的 CRUD 原样转发到上游
type recordProxy struct {
	up            Upstream
	collection    string
	singular      string
	plural        string
	errIDRequired error
	newCreateDTO  func() any
	newUpdateDTO  func() any
}

func (p *recordProxy) list(ctx context.Context) (json.RawMessage, error) {
	if !p.up.Configured() {
		return nil, ErrUpstreamNotConfigured
	}
	data, err := p.up.List(ctx, p.collection)
	if err != nil {
		return nil, p.upstreamErr(err, "fetch "+p.plural)
	}
	return data, nil
}

func (p *recordProxy) create(ctx context.Context, body []byte) (json.RawMessage, error) {
	if !p.up.Configured() {
		return nil, ErrUpstreamNotConfigured
	}
	if err := checkBody(body, p.newCreateDTO()); err != nil {
		return nil, err
	}
	data, err := p.up.Create(ctx, p.collection, body)
	if err != nil {
		return nil, p.upstreamErr(err, "create "+p.singular)
	}
	return data, nil
}

func (p *recordProxy) update(ctx context.Context, id string, body []byte) (json.RawMessage, error) {
	if !p.up.Configured() {
		return nil, ErrUpstreamNotConfigured
	}
	if id == "" {
		return nil, p.errIDRequired
	}
	if err := checkBody(body, p.newUpdateDTO()); err != nil {
		return nil, err
	}
	data, err := p.up.Update(ctx, p.collection, id, body)
	if err != nil {
		return nil, p.upstreamErr(err, "update "+p.singular)
	}
	return data, nil
}

func (p *recordProxy) delete(ctx context.Context, id string) error {
	if !p.up.Configured() {
		return ErrUpstreamNotConfigured
	}
	if id == "" {
		return p.errIDRequired
	}
	if err := p.up.Delete(ctx, p.collection, id); err != nil {
		return p.upstreamErr(err, "delete "+p.singular)
	}
	return nil
}

func (p *recordProxy) upstreamErr(err error, op string) error {
	if errors.Is(err, upstream.ErrNotConfigured) {
		return ErrUpstreamNotConfigured
	}
	return newOpError(ErrUpstream, fmt.Sprintf("Failed to %s: %s", op, upstream.Reason(err)))
}

// checkBody 校验请求体结构，校验通过后仍转发原始字节
func checkBody(body []byte, target any) error {
	if len(body) == 0 {
		return newOpError(ErrParamInvalid, "Request body is required")
	}
	if err := json.Unmarshal(body, target); err != nil {
		return newOpError(ErrParamInvalid, "Invalid request body: "+err.Error())
	}
	if err := util.ValidateDTO(target); err != nil {
		return newOpError(ErrParamInvalid, err.Error())
	}
	return nil
}
