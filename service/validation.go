package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"mortgage-registry/domain"
)

var validate = validator.New()

// ValidateInput rejects NaN, infinite, negative and out-of-range values
// before anything is computed or stored.
func ValidateInput(input domain.MortgageInput) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"DownPayment", input.DownPayment},
		{"TotalCost", input.TotalCost},
		{"AnnualRatePercent", input.AnnualRatePercent},
		{"TermYears", input.TermYears},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &domain.ValidationError{Field: f.name, Value: f.value, Reason: "no es un número válido"}
		}
	}

	if err := validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
			return fmt.Errorf("validar entrada: %w", err)
		}
		e := validationErrors[0]
		value, _ := e.Value().(float64)
		return &domain.ValidationError{Field: e.Field(), Value: value, Reason: reasonFor(e)}
	}

	if input.TermYears*MonthsInYear < 1 {
		return &domain.ValidationError{Field: "TermYears", Value: input.TermYears, Reason: "debe cubrir al menos un mes"}
	}
	return nil
}

func reasonFor(e validator.FieldError) string {
	switch e.Tag() {
	case "gte":
		return "no puede ser negativo"
	case "gt":
		return "debe ser mayor que " + e.Param()
	case "lte":
		return "excede el máximo permitido de " + e.Param()
	default:
		return "valor inválido"
	}
}
