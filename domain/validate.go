package domain

import (
	"chat-relay/errors"
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Validate checks the struct tags of an inbound payload and reports every
// failing field in one ErrValidation.
func Validate(cmd any) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !goerrors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", errors.ErrMalformedPayload, err)
	}
	details := lo.Map(fieldErrors, func(fe validator.FieldError, _ int) string {
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	})
	return errors.Validation("%s", strings.Join(details, ", "))
}
