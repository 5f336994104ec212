package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 校验结构体，返回第一条可读的错误
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return DescribeValidation(vErrs)
		}
		return err
	}
	return nil
}

// DescribeValidation 将 validator 错误转为单条提示
func DescribeValidation(vErrs validator.ValidationErrors) error {
	if len(vErrs) == 0 {
		return errors.New("validation failed")
	}
	first := vErrs[0]
	return fmt.Errorf("field [%s] failed on rule [%s]", first.Field(), first.Tag())
}
