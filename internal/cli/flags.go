package cli

import (
	"github.com/spf13/pflag"

	"rentorbuy/internal/simulation"
)

// scenarioFlag maps a command-line flag to its scenario key.
type scenarioFlag struct {
	name  string
	key   string
	usage string
	isInt bool
	def   func(simulation.Input) float64
}

var scenarioFlags = []scenarioFlag{
	{name: "years", key: "years_to_simulate", usage: "years to simulate (1-50)", isInt: true,
		def: func(in simulation.Input) float64 { return float64(in.YearsToSimulate) }},
	{name: "monthly-rent", key: "monthly_rent", usage: "monthly rent in year 1",
		def: func(in simulation.Input) float64 { return in.MonthlyRent }},
	{name: "rent-increase", key: "annual_rent_increase_percent", usage: "annual rent increase, percent",
		def: func(in simulation.Input) float64 { return in.AnnualRentIncreasePercent }},
	{name: "rent-insurance", key: "rent_insurance_monthly", usage: "renter's insurance per month",
		def: func(in simulation.Input) float64 { return in.RentInsuranceMonthly }},
	{name: "home-price", key: "home_price", usage: "purchase price of the home",
		def: func(in simulation.Input) float64 { return in.HomePrice }},
	{name: "down-payment", key: "down_payment_percent", usage: "down payment, percent of price",
		def: func(in simulation.Input) float64 { return in.DownPaymentPercent }},
	{name: "interest-rate", key: "mortgage_interest_rate_percent", usage: "annual mortgage rate, percent",
		def: func(in simulation.Input) float64 { return in.MortgageInterestRatePercent }},
	{name: "loan-term", key: "loan_term_years", usage: "mortgage term in years", isInt: true,
		def: func(in simulation.Input) float64 { return float64(in.LoanTermYears) }},
	{name: "property-tax", key: "property_tax_rate_percent", usage: "annual property tax, percent of value",
		def: func(in simulation.Input) float64 { return in.PropertyTaxRatePercent }},
	{name: "maintenance", key: "maintenance_cost_percent", usage: "annual maintenance, percent of value",
		def: func(in simulation.Input) float64 { return in.MaintenanceCostPercent }},
	{name: "appreciation", key: "home_appreciation_rate_percent", usage: "annual home appreciation, percent",
		def: func(in simulation.Input) float64 { return in.HomeAppreciationRatePercent }},
	{name: "buying-closing", key: "buying_closing_costs_percent", usage: "closing costs when buying, percent of price",
		def: func(in simulation.Input) float64 { return in.BuyingClosingCostsPercent }},
	{name: "selling-closing", key: "selling_closing_costs_percent", usage: "closing costs when selling, percent of value",
		def: func(in simulation.Input) float64 { return in.SellingClosingCostsPercent }},
}

// loanKeys are the scenario keys the schedule command accepts.
var loanKeys = map[string]bool{
	"home_price":                     true,
	"down_payment_percent":           true,
	"mortgage_interest_rate_percent": true,
	"loan_term_years":                true,
}

// addScenarioFlags registers scenario flags on fs, defaulting to the
// default scenario. A nil filter registers every flag.
func addScenarioFlags(fs *pflag.FlagSet, filter map[string]bool) {
	defaults := simulation.DefaultInput()
	for _, f := range scenarioFlags {
		if filter != nil && !filter[f.key] {
			continue
		}
		if f.isInt {
			fs.Int(f.name, int(f.def(defaults)), f.usage)
		} else {
			fs.Float64(f.name, f.def(defaults), f.usage)
		}
	}
}
