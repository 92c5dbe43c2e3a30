package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct checks s against its `validate` tags. Field errors are
// reported together and wrap ErrValidation.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var errMsgs []string
	for _, fe := range fieldErrs {
		msg := fmt.Sprintf("Field: %s, Tag: %s", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += ", Param: " + fe.Param()
		}
		errMsgs = append(errMsgs, msg)
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errMsgs, "; "))
}
