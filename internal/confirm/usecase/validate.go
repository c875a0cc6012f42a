package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgerror"
)

//nolint:gochecknoglobals // validator caches struct metadata, share one instance
var validate = newValidator()

// newValidator reports fields by their `name` tag so messages match the API.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("name"); name != "" {
			return name
		}
		return strings.ToLower(field.Name)
	})
	return v
}

func validateInput(ctx context.Context, in any) error {
	err := validate.StructCtx(ctx, in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return pkgerror.NewServer(err)
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "max":
		return pkgerror.NewInvalidInput(fmt.Errorf("%s must be at most %s", field, fe.Param()))
	case "min":
		return pkgerror.NewInvalidInput(fmt.Errorf("%s must be at least %s", field, fe.Param()))
	case "required":
		return pkgerror.NewInvalidInput(fmt.Errorf("%s is required", field))
	default:
		return pkgerror.NewInvalidInput(fmt.Errorf("%s is invalid", field))
	}
}
