// Package validation configures go-playground/validator with the rules used by
// request DTOs. Tags are read from the `binding` struct tag so the same
// declarations are enforced by gin during binding and by services directly.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// TagCalendarDate accepts a YYYY-MM-DD string naming a real calendar day.
	TagCalendarDate = "calendardate"
	// TagPositiveDecimal accepts a decimal amount strictly greater than zero.
	TagPositiveDecimal = "positivedecimal"
	// TagNonNegativeDecimal accepts a decimal amount of zero or more.
	TagNonNegativeDecimal = "nonnegativedecimal"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Default returns the shared, fully registered validator.
func Default() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.SetTagName("binding")
		if err := Register(instance); err != nil {
			panic(fmt.Sprintf("registering validation rules: %v", err))
		}
	})
	return instance
}

// Register adds the custom rules to v. It is used both for Default and for the
// validator engine gin binds requests with.
func Register(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		TagCalendarDate:       isCalendarDate,
		TagPositiveDecimal:    isPositiveDecimal,
		TagNonNegativeDecimal: isNonNegativeDecimal,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// Struct validates s and reports failures as apperrors.ErrValidation.
func Struct(s any) error {
	err := Default().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, Describe(verrs))
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

// Describe renders validation failures as "field: rule" pairs.
func Describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

func isCalendarDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	t, err := time.Parse(domain.DateLayout, s)
	return err == nil && t.Format(domain.DateLayout) == s
}

func parseDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	return d, err == nil
}

func isPositiveDecimal(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	return ok && d.IsPositive()
}

func isNonNegativeDecimal(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	return ok && !d.IsNegative()
}
