package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"wallet-service/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := registerValidators(v); err != nil {
		panic(err)
	}
}

// registerValidators adds decimal tags and reports fields by their JSON names.
//
//	dmin=0.01  value >= 0.01
//	dscale=2   at most two fractional digits
func registerValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("dmin", validateDecimalMin); err != nil {
		return fmt.Errorf("register dmin: %w", err)
	}
	if err := v.RegisterValidation("dscale", validateDecimalScale); err != nil {
		return fmt.Errorf("register dscale: %w", err)
	}
	return nil
}

func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch d := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return d, true
	case *decimal.Decimal:
		if d != nil {
			return *d, true
		}
	}
	return decimal.Decimal{}, false
}

func validateDecimalMin(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	min, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(min)
}

func validateDecimalScale(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	scale, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	return d.Equal(d.Truncate(int32(scale)))
}

// bindingError converts a ShouldBindJSON failure into a domain error: field
// rule violations become a validation failure, anything else a bad payload.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return model.NewInvalidPayloadError(err)
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return model.NewValidationError(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return model.MsgRequired
	case "dmin":
		return "must be at least " + fe.Param()
	case "dscale":
		return "must have at most " + fe.Param() + " decimal places"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
