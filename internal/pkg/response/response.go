package response

import (
	"Socialboard/internal/api/dto"
	"Socialboard/internal/pkg/util"
	"Socialboard/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = http.StatusOK
	Created             = http.StatusCreated
	BadRequest          = http.StatusBadRequest
	Unauthorized        = http.StatusUnauthorized
	Forbidden           = http.StatusForbidden
	NotFound            = http.StatusNotFound
	InternalServerError = http.StatusInternalServerError
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(Ok, dto.Response{
		Success: true,
		Data:    data,
	})
}

// SuccessCreated 新建成功返回 201
func SuccessCreated(c *gin.Context, data interface{}) {
	c.JSON(Created, dto.Response{
		Success: true,
		Data:    data,
	})
}

// SuccessMessage 无数据的成功返回
func SuccessMessage(c *gin.Context, message string) {
	c.JSON(Ok, dto.Response{
		Success: true,
		Message: message,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{
		Success: false,
		Error:   message,
	})
}

// FailWithMessage 失败返回并附带说明
func FailWithMessage(c *gin.Context, status int, err string, message string) {
	c.JSON(status, dto.Response{
		Success: false,
		Error:   err,
		Message: message,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, util.DescribeValidation(ve).Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Invalid JSON field: "+unmarshalTypeError.Field)
		return
	}

	code, ok := service.StatusOf(err)
	if !ok || code >= InternalServerError {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
	}
	Fail(c, code, err.Error())
}
