package simulation

import (
	"errors"

	"github.com/go-playground/validator/v10"

	appvalidator "rentorbuy/internal/validator"
)

// Limits and defaults applied to simulation inputs.
const (
	MaxYearsToSimulate   = 50
	// MaxScheduleTermYears bounds the loans BuildSchedule lists month by month.
	MaxScheduleTermYears = 100

	DefaultLoanTermYears              = 30
	DefaultBuyingClosingCostsPercent  = 2.0
	DefaultSellingClosingCostsPercent = 6.0
)

// Input is the full parameter set of one simulation run.
// Percentages are whole-number percents (6.5 means 6.5%).
type Input struct {
	YearsToSimulate int `json:"years_to_simulate" mapstructure:"years_to_simulate" validate:"min=1,max=50"`

	// Renting
	MonthlyRent               float64 `json:"monthly_rent" mapstructure:"monthly_rent" validate:"finite,gt=0"`
	AnnualRentIncreasePercent float64 `json:"annual_rent_increase_percent" mapstructure:"annual_rent_increase_percent" validate:"finite,gte=0"`
	RentInsuranceMonthly      float64 `json:"rent_insurance_monthly" mapstructure:"rent_insurance_monthly" validate:"finite,gte=0"`

	// Buying
	HomePrice                   float64 `json:"home_price" mapstructure:"home_price" validate:"finite,gt=0"`
	DownPaymentPercent          float64 `json:"down_payment_percent" mapstructure:"down_payment_percent" validate:"finite,percent"`
	MortgageInterestRatePercent float64 `json:"mortgage_interest_rate_percent" mapstructure:"mortgage_interest_rate_percent" validate:"finite,gte=0"`
	LoanTermYears               int     `json:"loan_term_years" mapstructure:"loan_term_years" validate:"min=1"`
	PropertyTaxRatePercent      float64 `json:"property_tax_rate_percent" mapstructure:"property_tax_rate_percent" validate:"finite,gte=0"`
	MaintenanceCostPercent      float64 `json:"maintenance_cost_percent" mapstructure:"maintenance_cost_percent" validate:"finite,gte=0"`
	HomeAppreciationRatePercent float64 `json:"home_appreciation_rate_percent" mapstructure:"home_appreciation_rate_percent" validate:"finite,gte=-100"`
	BuyingClosingCostsPercent   float64 `json:"buying_closing_costs_percent" mapstructure:"buying_closing_costs_percent" validate:"finite,gte=0"`
	SellingClosingCostsPercent  float64 `json:"selling_closing_costs_percent" mapstructure:"selling_closing_costs_percent" validate:"finite,gte=0"`
}

// LoanInput holds the subset of Input that determines the mortgage.
type LoanInput struct {
	HomePrice                   float64 `json:"home_price" mapstructure:"home_price" validate:"finite,gt=0"`
	DownPaymentPercent          float64 `json:"down_payment_percent" mapstructure:"down_payment_percent" validate:"finite,percent"`
	MortgageInterestRatePercent float64 `json:"mortgage_interest_rate_percent" mapstructure:"mortgage_interest_rate_percent" validate:"finite,gte=0"`
	LoanTermYears               int     `json:"loan_term_years" mapstructure:"loan_term_years" validate:"min=1"`
}

// DefaultInput returns a typical scenario: a $500k home against $2,000/month rent over 30 years.
func DefaultInput() Input {
	return Input{
		YearsToSimulate:             30,
		MonthlyRent:                 2000,
		AnnualRentIncreasePercent:   3.0,
		RentInsuranceMonthly:        20,
		HomePrice:                   500000,
		DownPaymentPercent:          20.0,
		MortgageInterestRatePercent: 6.5,
		LoanTermYears:               DefaultLoanTermYears,
		PropertyTaxRatePercent:      1.2,
		MaintenanceCostPercent:      1.0,
		HomeAppreciationRatePercent: 3.5,
		BuyingClosingCostsPercent:   DefaultBuyingClosingCostsPercent,
		SellingClosingCostsPercent:  DefaultSellingClosingCostsPercent,
	}
}

// Loan returns the mortgage parameters of the input.
func (in Input) Loan() LoanInput {
	return LoanInput{
		HomePrice:                   in.HomePrice,
		DownPaymentPercent:          in.DownPaymentPercent,
		MortgageInterestRatePercent: in.MortgageInterestRatePercent,
		LoanTermYears:               in.LoanTermYears,
	}
}

var validate = appvalidator.New()

// Validate range-checks every field and returns the normalized input.
// On failure the error is an *InvalidInputError naming each offending field.
func Validate(in Input) (Input, error) {
	if err := check(in); err != nil {
		return Input{}, err
	}
	return in.normalized(), nil
}

// ValidateLoan range-checks the mortgage parameters.
func ValidateLoan(loan LoanInput) (LoanInput, error) {
	if err := check(loan); err != nil {
		return LoanInput{}, err
	}
	return loan, nil
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return invalidInputFrom(verrs)
	}
	return err
}

// normalized folds negative zero into zero so that equal scenarios serialize identically.
func (in Input) normalized() Input {
	for _, f := range []*float64{
		&in.MonthlyRent, &in.AnnualRentIncreasePercent, &in.RentInsuranceMonthly,
		&in.HomePrice, &in.DownPaymentPercent, &in.MortgageInterestRatePercent,
		&in.PropertyTaxRatePercent, &in.MaintenanceCostPercent, &in.HomeAppreciationRatePercent,
		&in.BuyingClosingCostsPercent, &in.SellingClosingCostsPercent,
	} {
		if *f == 0 {
			*f = 0
		}
	}
	return in
}

func pct(v float64) float64 {
	return v / 100
}
