package simulation

import "math"

// YearlyResult holds the rent-path and buy-path accounting at the end of one year.
type YearlyResult struct {
	Year int `json:"year"`

	RentAnnualCost     float64 `json:"rent_annual_cost"`
	RentCumulativeCost float64 `json:"rent_cumulative_cost"`

	BuyAnnualOutOfPocket     float64 `json:"buy_annual_out_of_pocket"`
	BuyCumulativeOutOfPocket float64 `json:"buy_cumulative_out_of_pocket"`
	BuyEquity                float64 `json:"buy_equity"`
	BuyHomeValue             float64 `json:"buy_home_value"`
	BuyRemainingMortgage     float64 `json:"buy_remaining_mortgage"`
	// BuyNetCost is what the owner is out if the home were sold at year end.
	BuyNetCost float64 `json:"buy_net_cost"`

	BuyMortgagePaid  float64 `json:"buy_mortgage_paid"`
	BuyInterestPaid  float64 `json:"buy_interest_paid"`
	BuyPrincipalPaid float64 `json:"buy_principal_paid"`
	BuyPropertyTax   float64 `json:"buy_property_tax"`
	BuyMaintenance   float64 `json:"buy_maintenance"`
}

// project walks years 1..YearsToSimulate. Property tax and maintenance are
// charged on the home value at the start of each year; the up-front down
// payment and buying closing costs are folded into year 1.
func project(in Input, schedule Schedule) []YearlyResult {
	results := make([]YearlyResult, 0, in.YearsToSimulate)

	rentGrowth := 1 + pct(in.AnnualRentIncreasePercent)
	appreciation := 1 + pct(in.HomeAppreciationRatePercent)
	upFront := in.HomePrice*pct(in.DownPaymentPercent) + in.HomePrice*pct(in.BuyingClosingCostsPercent)

	var rentCumulative, buyCumulative float64
	for year := 1; year <= in.YearsToSimulate; year++ {
		monthlyRent := in.MonthlyRent * math.Pow(rentGrowth, float64(year-1))
		rentAnnual := monthsPerYear * (monthlyRent + in.RentInsuranceMonthly)
		rentCumulative += rentAnnual

		var mortgagePaid, interestPaid, principalPaid float64
		for _, e := range schedule.Year(year) {
			mortgagePaid += e.Payment
			interestPaid += e.Interest
			principalPaid += e.Principal
		}

		startValue := in.HomePrice * math.Pow(appreciation, float64(year-1))
		propertyTax := startValue * pct(in.PropertyTaxRatePercent)
		maintenance := startValue * pct(in.MaintenanceCostPercent)

		buyAnnual := mortgagePaid + propertyTax + maintenance
		if year == 1 {
			buyAnnual += upFront
		}
		buyCumulative += buyAnnual

		homeValue := in.HomePrice * math.Pow(appreciation, float64(year))
		remaining := schedule.BalanceAfterYear(year)
		equity := homeValue - remaining
		sellingCosts := homeValue * pct(in.SellingClosingCostsPercent)

		results = append(results, YearlyResult{
			Year:                     year,
			RentAnnualCost:           rentAnnual,
			RentCumulativeCost:       rentCumulative,
			BuyAnnualOutOfPocket:     buyAnnual,
			BuyCumulativeOutOfPocket: buyCumulative,
			BuyEquity:                equity,
			BuyHomeValue:             homeValue,
			BuyRemainingMortgage:     remaining,
			BuyNetCost:               buyCumulative - (equity - sellingCosts),
			BuyMortgagePaid:          mortgagePaid,
			BuyInterestPaid:          interestPaid,
			BuyPrincipalPaid:         principalPaid,
			BuyPropertyTax:           propertyTax,
			BuyMaintenance:           maintenance,
		})
	}

	return results
}
