// Package simulation compares the cost of renting against buying a home over
// a multi-year horizon. Every run is a pure function of its Input: the
// mortgage is amortized month by month, both paths are projected year by
// year, and the series is reduced to totals, a break-even year and a
// recommendation. Simulate is safe for concurrent use.
package simulation

import "math"

// Simulate validates the input and runs the full projection.
// Validation failures are reported as *InvalidInputError before any computation.
// Inputs that pass validation but drive an amount past the float64 range are
// rejected with the same error type; no partial result is returned.
func Simulate(in Input) (*Output, error) {
	in, err := Validate(in)
	if err != nil {
		return nil, err
	}

	schedule := amortize(in.HomePrice, in.DownPaymentPercent, in.MortgageInterestRatePercent, in.LoanTermYears, in.YearsToSimulate)
	results := project(in, schedule)
	if fields := overflowed(schedule, results); len(fields) > 0 {
		return nil, NewInvalidInputError(fields...)
	}
	return aggregate(in, schedule, results), nil
}

const tooLarge = "is too large: the projection exceeds the representable range"

var (
	loanOverflow = []FieldError{
		{Field: "home_price", Reason: tooLarge},
		{Field: "mortgage_interest_rate_percent", Reason: tooLarge},
	}
	rentOverflow = []FieldError{
		{Field: "monthly_rent", Reason: tooLarge},
		{Field: "annual_rent_increase_percent", Reason: tooLarge},
	}
	homeOverflow = []FieldError{
		{Field: "home_price", Reason: tooLarge},
		{Field: "home_appreciation_rate_percent", Reason: tooLarge},
	}
)

// overflowed names the inputs responsible for any non-finite amount in the
// projection, or returns nil when every amount is finite.
func overflowed(schedule Schedule, results []YearlyResult) []FieldError {
	var fields []FieldError
	seen := make(map[string]bool)
	add := func(fes ...FieldError) {
		for _, fe := range fes {
			if !seen[fe.Field] {
				seen[fe.Field] = true
				fields = append(fields, fe)
			}
		}
	}

	if !schedule.finite() {
		add(loanOverflow...)
	}
	for _, r := range results {
		if !isFinite(r.RentAnnualCost) || !isFinite(r.RentCumulativeCost) {
			add(rentOverflow...)
		}
		if !isFinite(r.BuyHomeValue) || !isFinite(r.BuyEquity) {
			add(homeOverflow...)
		}
		if !isFinite(r.BuyPropertyTax) {
			add(FieldError{Field: "property_tax_rate_percent", Reason: tooLarge})
		}
		if !isFinite(r.BuyMaintenance) {
			add(FieldError{Field: "maintenance_cost_percent", Reason: tooLarge})
		}
		if !isFinite(r.BuyAnnualOutOfPocket) || !isFinite(r.BuyCumulativeOutOfPocket) || !isFinite(r.BuyNetCost) {
			add(FieldError{Field: "home_price", Reason: tooLarge})
		}
	}

	if len(fields) == 0 && len(results) > 0 {
		last := results[len(results)-1]
		if !isFinite(last.RentCumulativeCost - last.BuyNetCost) {
			add(FieldError{Field: "monthly_rent", Reason: tooLarge}, FieldError{Field: "home_price", Reason: tooLarge})
		}
	}
	return fields
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
