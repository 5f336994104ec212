package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("Invalid request body")
	ErrPostIDRequired        = errors.New("Post ID is required")
	ErrFollowerIDRequired    = errors.New("Follower record ID is required")
	ErrUpstreamNotConfigured = errors.New("Mock API URL not configured")
	ErrUpstream              = errors.New("Upstream request failed")
	ErrStatsUnavailable      = errors.New("Failed to fetch data for stats calculation")
	UnauthorizedError        = errors.New("Unauthorized")
	UnExpectedError          = errors.New("Unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrPostIDRequired:        BadRequest,
	ErrFollowerIDRequired:    BadRequest,
	ErrUpstreamNotConfigured: InternalServerError,
	ErrUpstream:              InternalServerError,
	ErrStatsUnavailable:      InternalServerError,
	UnauthorizedError:        Unauthorized,
	UnExpectedError:          InternalServerError,
}

// StatusOf 沿错误链查找对应的 HTTP 状态码
func StatusOf(err error) (int, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if code, ok := ErrorMap[e]; ok {
			return code, true
		}
	}
	return InternalServerError, false
}

// opError 携带对外展示的信息，同时可被 errors.Is 识别为某类错误
type opError struct {
	msg  string
	kind error
}

func (e *opError) Error() string {
	return e.msg
}

func (e *opError) Unwrap() error {
	return e.kind
}

func newOpError(kind error, msg string) error {
	return &opError{msg: msg, kind: kind}
}
