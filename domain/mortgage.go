package domain

// MortgageInput holds the four loan inputs captured for a client.
type MortgageInput struct {
	DownPayment       float64 `json:"down_payment" validate:"gte=0"`
	TotalCost         float64 `json:"total_cost" validate:"gte=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" validate:"gte=0,lte=1000"`
	TermYears         float64 `json:"term_years" validate:"gt=0,lte=50"`
}

// Mortgage is computed from a MortgageInput and never mutated afterwards.
type Mortgage struct {
	Principal      float64 `json:"principal"`
	TotalInterest  float64 `json:"total_interest"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

// Installment is one month of an amortization schedule.
type Installment struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}
