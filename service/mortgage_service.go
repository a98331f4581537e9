package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"mortgage-registry/domain"
	"mortgage-registry/repository"
)

// Compute validates the input and returns the amortized mortgage.
// It has no side effects.
func Compute(input domain.MortgageInput) (domain.Mortgage, error) {
	if err := ValidateInput(input); err != nil {
		return domain.Mortgage{}, err
	}
	return amortizeChecked(input)
}

// amortize assumes a validated input: at least one month of term.
func amortize(input domain.MortgageInput) domain.Mortgage {
	principal := input.TotalCost - input.DownPayment
	n := input.TermYears * MonthsInYear
	tasaMensual := input.AnnualRatePercent / 100 / MonthsInYear

	// 1 - (1+r)^-n sin perder precisión cuando r es muy pequeña
	denominador := -math.Expm1(-n * math.Log1p(tasaMensual))

	var cuota float64
	if tasaMensual == 0 || denominador == 0 {
		cuota = principal / n
	} else {
		cuota = principal * tasaMensual / denominador
	}

	return domain.Mortgage{
		Principal:      principal,
		TotalInterest:  cuota*n - principal,
		MonthlyPayment: cuota,
	}
}

// amortizeChecked rejects results that overflow float64, so nothing
// non-finite is ever stored or formatted.
func amortizeChecked(input domain.MortgageInput) (domain.Mortgage, error) {
	m := amortize(input)
	for _, v := range []float64{m.Principal, m.TotalInterest, m.MonthlyPayment} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.Mortgage{}, &domain.ValidationError{
				Field:  "TotalCost",
				Value:  input.TotalCost,
				Reason: "el préstamo resultante excede el rango calculable",
			}
		}
	}
	return m, nil
}

// AmortizationSchedule lists every monthly installment of the mortgage. The
// last installment settles whatever balance remains.
func AmortizationSchedule(input domain.MortgageInput) ([]domain.Installment, error) {
	mortgage, err := Compute(input)
	if err != nil {
		return nil, err
	}

	months := max(1, int(math.Ceil(input.TermYears*MonthsInYear-1e-9)))
	tasaMensual := input.AnnualRatePercent / 100 / MonthsInYear
	balance := mortgage.Principal

	schedule := make([]domain.Installment, 0, months)
	for month := 1; month <= months; month++ {
		interest := balance * tasaMensual
		payment := mortgage.MonthlyPayment
		amortization := payment - interest

		if month == months {
			amortization = balance
			payment = amortization + interest
		}

		balance -= amortization
		if math.Abs(balance) < BalanceTolerance {
			balance = 0
		}

		schedule = append(schedule, domain.Installment{
			Month:     month,
			Payment:   payment,
			Interest:  interest,
			Principal: amortization,
			Balance:   balance,
		})
	}
	return schedule, nil
}

type MortgageService struct {
	cache repository.CacheRepository
	log   *logrus.Logger
}

// NewMortgageService creates a MortgageService backed by the given cache.
func NewMortgageService(cache repository.CacheRepository, log *logrus.Logger) *MortgageService {
	return &MortgageService{cache: cache, log: log}
}

// Calculate returns the mortgage for input, reusing a cached result when one
// exists. Cache failures are logged and never fail the calculation.
func (s *MortgageService) Calculate(input domain.MortgageInput) (domain.Mortgage, error) {
	if err := ValidateInput(input); err != nil {
		return domain.Mortgage{}, err
	}

	key := cacheKey(input)
	if raw, ok := s.cache.Get(key); ok {
		var cached domain.Mortgage
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			s.log.WithField("key", key).Debug("mortgage cache hit")
			return cached, nil
		}
		s.log.WithField("key", key).Warn("discarding unreadable cached mortgage")
	}

	mortgage, err := amortizeChecked(input)
	if err != nil {
		return domain.Mortgage{}, err
	}

	// Guardar en caché (no crítico si falla)
	payload, err := json.Marshal(mortgage)
	if err == nil {
		err = s.cache.Set(key, string(payload))
	}
	if err != nil {
		s.log.WithError(err).Warn("failed to cache mortgage calculation")
	}

	return mortgage, nil
}

func cacheKey(input domain.MortgageInput) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s",
		cacheKeyPrefix,
		strconv.FormatFloat(input.DownPayment, 'g', -1, 64),
		strconv.FormatFloat(input.TotalCost, 'g', -1, 64),
		strconv.FormatFloat(input.AnnualRatePercent, 'g', -1, 64),
		strconv.FormatFloat(input.TermYears, 'g', -1, 64),
	)
}
