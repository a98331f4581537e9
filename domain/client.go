package domain

import "github.com/shopspring/decimal"

// Client owns exactly one Mortgage, replaced as a whole on every edit.
type Client struct {
	ID int `json:"id"`
	MortgageInput
	Mortgage Mortgage `json:"mortgage"`
}

// SnapshotRow is the display projection used for listing and sorting.
type SnapshotRow struct {
	ID            int    `json:"id"`
	TotalInterest string `json:"total_interest"`
	Principal     string `json:"principal"`
}

// MortgageView is the two decimal rendering of one client's mortgage.
type MortgageView struct {
	ClientID       int    `json:"client_id"`
	Principal      string `json:"principal"`
	TotalInterest  string `json:"total_interest"`
	MonthlyPayment string `json:"monthly_payment"`
}

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

// NewSnapshotRow projects c into a listing row.
func NewSnapshotRow(c Client) SnapshotRow {
	return SnapshotRow{
		ID:            c.ID,
		TotalInterest: FormatAmount(c.Mortgage.TotalInterest),
		Principal:     FormatAmount(c.Mortgage.Principal),
	}
}

// NewMortgageView projects an already fetched client for display.
func NewMortgageView(c Client) MortgageView {
	return MortgageView{
		ClientID:       c.ID,
		Principal:      FormatAmount(c.Mortgage.Principal),
		TotalInterest:  FormatAmount(c.Mortgage.TotalInterest),
		MonthlyPayment: FormatAmount(c.Mortgage.MonthlyPayment),
	}
}
