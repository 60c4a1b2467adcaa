package simulation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Output is the complete result of one simulation run.
type Output struct {
	Results         []YearlyResult `json:"results"`
	TotalRentCost   float64        `json:"total_rent_cost"`
	TotalBuyCostNet float64        `json:"total_buy_cost_net"`
	// BreakEvenYear is nil when buying never catches up with renting.
	BreakEvenYear  *int   `json:"break_even_year"`
	Recommendation string `json:"recommendation"`

	LoanAmount             float64 `json:"loan_amount"`
	MonthlyMortgagePayment float64 `json:"monthly_mortgage_payment"`
	// InterestPaidInHorizon counts only the interest paid within the simulated
	// years; Schedule.TotalInterest covers the whole loan.
	InterestPaidInHorizon float64 `json:"interest_paid_in_horizon"`
}

func aggregate(in Input, schedule Schedule, results []YearlyResult) *Output {
	last := results[len(results)-1]
	breakEven := BreakEvenYear(results)

	var interest float64
	for _, r := range results {
		interest += r.BuyInterestPaid
	}

	return &Output{
		Results:                results,
		TotalRentCost:          last.RentCumulativeCost,
		TotalBuyCostNet:        last.BuyNetCost,
		BreakEvenYear:          breakEven,
		Recommendation:         Recommend(last.RentCumulativeCost, last.BuyNetCost, in.YearsToSimulate, breakEven),
		LoanAmount:             schedule.LoanPrincipal,
		MonthlyMortgagePayment: schedule.MonthlyPayment,
		InterestPaidInHorizon:  interest,
	}
}

// BreakEvenYear returns the first year in which the buy path's net cost is at
// or below the rent path's cumulative cost. Later divergence does not move it.
func BreakEvenYear(results []YearlyResult) *int {
	for _, r := range results {
		if r.BuyNetCost <= r.RentCumulativeCost {
			year := r.Year
			return &year
		}
	}
	return nil
}

// Recommend renders the verdict for the totals at the end of the horizon.
func Recommend(totalRent, totalBuyNet float64, years int, breakEven *int) string {
	p := message.NewPrinter(language.AmericanEnglish)
	horizon := p.Sprintf("%d years", years)
	if years == 1 {
		horizon = "1 year"
	}

	diff := totalRent - totalBuyNet
	var verdict string
	switch {
	case diff > 0:
		verdict = p.Sprintf("Buying is financially better by $%.2f over %s.", diff, horizon)
	case diff < 0:
		verdict = p.Sprintf("Renting is financially better by $%.2f over %s.", -diff, horizon)
	default:
		verdict = p.Sprintf("Renting and buying cost the same over %s.", horizon)
	}

	if breakEven != nil {
		return verdict + p.Sprintf(" Buying breaks even with renting in year %d.", *breakEven)
	}
	return verdict + " Renting stays cheaper in every year of the horizon."
}
