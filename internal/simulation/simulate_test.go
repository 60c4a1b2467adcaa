package simulation

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cashPurchase is a one-year scenario with the home bought outright and no running costs.
func cashPurchase() Input {
	return Input{
		YearsToSimulate:             1,
		MonthlyRent:                 1000,
		AnnualRentIncreasePercent:   0,
		RentInsuranceMonthly:        0,
		HomePrice:                   100000,
		DownPaymentPercent:          100,
		MortgageInterestRatePercent: 0,
		LoanTermYears:               1,
		PropertyTaxRatePercent:      0,
		MaintenanceCostPercent:      0,
		HomeAppreciationRatePercent: 0,
		BuyingClosingCostsPercent:   0,
		SellingClosingCostsPercent:  0,
	}
}

func TestSimulate_CashPurchase(t *testing.T) {
	out, err := Simulate(cashPurchase())
	require.NoError(t, err)
	require.Len(t, out.Results, 1)

	want := YearlyResult{
		Year:                     1,
		RentAnnualCost:           12000,
		RentCumulativeCost:       12000,
		BuyAnnualOutOfPocket:     100000,
		BuyCumulativeOutOfPocket: 100000,
		BuyEquity:                100000,
		BuyHomeValue:             100000,
		BuyRemainingMortgage:     0,
		BuyNetCost:               0,
	}
	if diff := cmp.Diff(want, out.Results[0]); diff != "" {
		t.Errorf("year 1 mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 12000.0, out.TotalRentCost)
	assert.Equal(t, 0.0, out.TotalBuyCostNet)
	require.NotNil(t, out.BreakEvenYear)
	assert.Equal(t, 1, *out.BreakEvenYear)
	assert.Equal(t,
		"Buying is financially better by $12,000.00 over 1 year. Buying breaks even with renting in year 1.",
		out.Recommendation)
	assert.Zero(t, out.LoanAmount)
	assert.Zero(t, out.MonthlyMortgagePayment)
}

func TestSimulate_ResultShape(t *testing.T) {
	in := DefaultInput()
	out, err := Simulate(in)
	require.NoError(t, err)

	require.Len(t, out.Results, in.YearsToSimulate)
	for i, r := range out.Results {
		assert.Equal(t, i+1, r.Year)
		assert.Equal(t, r.BuyHomeValue-r.BuyRemainingMortgage, r.BuyEquity, "year %d", r.Year)
	}

	last := out.Results[len(out.Results)-1]
	assert.Equal(t, last.RentCumulativeCost, out.TotalRentCost)
	assert.Equal(t, last.BuyNetCost, out.TotalBuyCostNet)
	assert.InDelta(t, 400000, out.LoanAmount, 1e-6)
}

func TestSimulate_RentPath(t *testing.T) {
	t.Run("cumulative rent never decreases", func(t *testing.T) {
		in := DefaultInput()
		out, err := Simulate(in)
		require.NoError(t, err)

		for i := 1; i < len(out.Results); i++ {
			assert.GreaterOrEqual(t, out.Results[i].RentCumulativeCost, out.Results[i-1].RentCumulativeCost)
		}
	})

	t.Run("flat rent without increases", func(t *testing.T) {
		in := DefaultInput()
		in.AnnualRentIncreasePercent = 0
		out, err := Simulate(in)
		require.NoError(t, err)

		for _, r := range out.Results {
			assert.Equal(t, out.Results[0].RentAnnualCost, r.RentAnnualCost, "year %d", r.Year)
		}
		assert.Equal(t, 12*(in.MonthlyRent+in.RentInsuranceMonthly), out.Results[0].RentAnnualCost)
	})

	t.Run("rent compounds once per year from the base", func(t *testing.T) {
		in := cashPurchase()
		in.YearsToSimulate = 3
		in.AnnualRentIncreasePercent = 10
		in.RentInsuranceMonthly = 10
		out, err := Simulate(in)
		require.NoError(t, err)

		assert.InDelta(t, 12*(1000+10), out.Results[0].RentAnnualCost, 1e-9)
		assert.InDelta(t, 12*(1100+10), out.Results[1].RentAnnualCost, 1e-9)
		assert.InDelta(t, 12*(1210+10), out.Results[2].RentAnnualCost, 1e-9)
	})
}

func TestSimulate_BuyPath(t *testing.T) {
	t.Run("taxes and maintenance use start of year value", func(t *testing.T) {
		in := cashPurchase()
		in.YearsToSimulate = 2
		in.HomeAppreciationRatePercent = 10
		in.PropertyTaxRatePercent = 1
		in.MaintenanceCostPercent = 2
		out, err := Simulate(in)
		require.NoError(t, err)

		y1, y2 := out.Results[0], out.Results[1]
		assert.InDelta(t, 1000, y1.BuyPropertyTax, 1e-9)
		assert.InDelta(t, 2000, y1.BuyMaintenance, 1e-9)
		assert.InDelta(t, 110000, y1.BuyHomeValue, 1e-9)
		assert.InDelta(t, 1100, y2.BuyPropertyTax, 1e-9)
		assert.InDelta(t, 2200, y2.BuyMaintenance, 1e-9)
		assert.InDelta(t, 121000, y2.BuyHomeValue, 1e-9)
		assert.InDelta(t, 3300, y2.BuyAnnualOutOfPocket, 1e-9)
	})

	t.Run("up front costs land in year one only", func(t *testing.T) {
		in := cashPurchase()
		in.YearsToSimulate = 2
		in.DownPaymentPercent = 20
		in.BuyingClosingCostsPercent = 3
		in.LoanTermYears = 10
		out, err := Simulate(in)
		require.NoError(t, err)

		mortgageYear := 12 * out.MonthlyMortgagePayment
		assert.InDelta(t, 20000+3000+mortgageYear, out.Results[0].BuyAnnualOutOfPocket, 1e-6)
		assert.InDelta(t, mortgageYear, out.Results[1].BuyAnnualOutOfPocket, 1e-6)
		assert.InDelta(t,
			out.Results[0].BuyAnnualOutOfPocket+out.Results[1].BuyAnnualOutOfPocket,
			out.Results[1].BuyCumulativeOutOfPocket, 1e-6)
	})

	t.Run("net cost subtracts equity less selling costs", func(t *testing.T) {
		in := DefaultInput()
		out, err := Simulate(in)
		require.NoError(t, err)

		for _, r := range out.Results {
			selling := r.BuyHomeValue * in.SellingClosingCostsPercent / 100
			assert.InDelta(t, r.BuyCumulativeOutOfPocket-(r.BuyEquity-selling), r.BuyNetCost, 1e-6, "year %d", r.Year)
		}
	})

	t.Run("horizon past the loan term", func(t *testing.T) {
		in := DefaultInput()
		in.LoanTermYears = 10
		in.YearsToSimulate = 15
		out, err := Simulate(in)
		require.NoError(t, err)

		assert.Greater(t, out.Results[9].BuyMortgagePaid, 0.0)
		assert.LessOrEqual(t, out.Results[9].BuyRemainingMortgage, balanceTolerance)
		for _, r := range out.Results[10:] {
			assert.Zero(t, r.BuyMortgagePaid, "year %d", r.Year)
			assert.Zero(t, r.BuyInterestPaid, "year %d", r.Year)
			assert.Zero(t, r.BuyRemainingMortgage, "year %d", r.Year)
			assert.Equal(t, r.BuyHomeValue, r.BuyEquity, "year %d", r.Year)
		}
	})

	t.Run("interest and principal split the mortgage payments", func(t *testing.T) {
		out, err := Simulate(DefaultInput())
		require.NoError(t, err)

		var principal, interest float64
		for _, r := range out.Results {
			assert.InDelta(t, r.BuyMortgagePaid, r.BuyInterestPaid+r.BuyPrincipalPaid, 1e-6)
			principal += r.BuyPrincipalPaid
			interest += r.BuyInterestPaid
		}
		assert.InDelta(t, out.LoanAmount, principal, balanceTolerance)
		assert.InDelta(t, interest, out.InterestPaidInHorizon, 1e-6)
	})
}

func TestSimulate_NegativeAppreciation(t *testing.T) {
	base := DefaultInput()
	base.HomeAppreciationRatePercent = 0
	flat, err := Simulate(base)
	require.NoError(t, err)

	falling := base
	falling.HomeAppreciationRatePercent = -4
	down, err := Simulate(falling)
	require.NoError(t, err)

	for i := range flat.Results {
		assert.Less(t, down.Results[i].BuyEquity, flat.Results[i].BuyEquity, "year %d", i+1)
	}

	// A steep decline pushes the owner under water; equity is not clamped.
	falling.HomeAppreciationRatePercent = -15
	falling.YearsToSimulate = 5
	steep, err := Simulate(falling)
	require.NoError(t, err)
	assert.Less(t, steep.Results[4].BuyEquity, 0.0)
}

func TestSimulate_TotalLoss(t *testing.T) {
	in := DefaultInput()
	in.YearsToSimulate = 3
	in.HomeAppreciationRatePercent = -100

	out, err := Simulate(in)
	require.NoError(t, err)

	y1, y2 := out.Results[0], out.Results[1]
	assert.Zero(t, y1.BuyHomeValue)
	assert.InDelta(t, -y1.BuyRemainingMortgage, y1.BuyEquity, 1e-9)
	assert.InDelta(t, in.HomePrice*in.PropertyTaxRatePercent/100, y1.BuyPropertyTax, 1e-9)
	assert.Zero(t, y2.BuyPropertyTax)
	assert.Zero(t, y2.BuyMaintenance)
}

func TestSimulate_LongLoanTerm(t *testing.T) {
	in := DefaultInput()
	in.LoanTermYears = 60

	out, err := Simulate(in)
	require.NoError(t, err)
	require.Len(t, out.Results, in.YearsToSimulate)

	assert.InDelta(t, MonthlyPayment(out.LoanAmount, in.MortgageInterestRatePercent/12/100, 720), out.MonthlyMortgagePayment, 1e-9)
	for _, r := range out.Results {
		assert.Greater(t, r.BuyRemainingMortgage, 0.0, "year %d", r.Year)
	}
}

func TestSimulate_Overflow(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{name: "rent", mutate: func(in *Input) { in.MonthlyRent = 1e307 }, field: "monthly_rent"},
		{
			name: "home value",
			mutate: func(in *Input) {
				in.HomePrice = 1e307
				in.HomeAppreciationRatePercent = 1000
			},
			field: "home_appreciation_rate_percent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInput()
			tt.mutate(&in)

			out, err := Simulate(in)
			assert.Nil(t, out)

			var inv *InvalidInputError
			require.ErrorAs(t, err, &inv)
			assert.True(t, inv.Has(tt.field), inv.Error())
		})
	}
}

func TestBreakEvenYear(t *testing.T) {
	row := func(year int, rent, buy float64) YearlyResult {
		return YearlyResult{Year: year, RentCumulativeCost: rent, BuyNetCost: buy}
	}

	tests := []struct {
		name    string
		results []YearlyResult
		want    *int
	}{
		{
			name:    "immediate crossover",
			results: []YearlyResult{row(1, 100, 90), row(2, 200, 150)},
			want:    intPtr(1),
		},
		{
			name:    "equal counts as crossed",
			results: []YearlyResult{row(1, 100, 150), row(2, 200, 200)},
			want:    intPtr(2),
		},
		{
			name:    "first crossing wins after divergence",
			results: []YearlyResult{row(1, 100, 150), row(2, 200, 190), row(3, 300, 350), row(4, 400, 390)},
			want:    intPtr(2),
		},
		{
			name:    "never crosses",
			results: []YearlyResult{row(1, 100, 150), row(2, 200, 250)},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BreakEvenYear(tt.results)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("break-even mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSimulate_BreakEvenIsMinimal(t *testing.T) {
	out, err := Simulate(DefaultInput())
	require.NoError(t, err)

	if out.BreakEvenYear == nil {
		for _, r := range out.Results {
			assert.Greater(t, r.BuyNetCost, r.RentCumulativeCost)
		}
		return
	}

	y := *out.BreakEvenYear
	require.GreaterOrEqual(t, y, 1)
	require.LessOrEqual(t, y, len(out.Results))
	assert.LessOrEqual(t, out.Results[y-1].BuyNetCost, out.Results[y-1].RentCumulativeCost)
	for _, r := range out.Results[:y-1] {
		assert.Greater(t, r.BuyNetCost, r.RentCumulativeCost, "year %d", r.Year)
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name      string
		rent, buy float64
		years     int
		breakEven *int
		want      string
	}{
		{
			name: "buying wins",
			rent: 500000, buy: 250000.5, years: 30, breakEven: intPtr(8),
			want: "Buying is financially better by $249,999.50 over 30 years. Buying breaks even with renting in year 8.",
		},
		{
			name: "renting wins throughout",
			rent: 100000, buy: 175000, years: 5,
			want: "Renting is financially better by $75,000.00 over 5 years. Renting stays cheaper in every year of the horizon.",
		},
		{
			name: "tie",
			rent: 1000, buy: 1000, years: 2, breakEven: intPtr(2),
			want: "Renting and buying cost the same over 2 years. Buying breaks even with renting in year 2.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.rent, tt.buy, tt.years, tt.breakEven))
		})
	}
}

func TestSimulate_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		fields []string
	}{
		{name: "zero years", mutate: func(in *Input) { in.YearsToSimulate = 0 }, fields: []string{"years_to_simulate"}},
		{name: "horizon too long", mutate: func(in *Input) { in.YearsToSimulate = MaxYearsToSimulate + 1 }, fields: []string{"years_to_simulate"}},
		{name: "negative rent", mutate: func(in *Input) { in.MonthlyRent = -5 }, fields: []string{"monthly_rent"}},
		{name: "zero rent", mutate: func(in *Input) { in.MonthlyRent = 0 }, fields: []string{"monthly_rent"}},
		{name: "down payment above 100", mutate: func(in *Input) { in.DownPaymentPercent = 101 }, fields: []string{"down_payment_percent"}},
		{name: "negative down payment", mutate: func(in *Input) { in.DownPaymentPercent = -1 }, fields: []string{"down_payment_percent"}},
		{name: "zero loan term", mutate: func(in *Input) { in.LoanTermYears = 0 }, fields: []string{"loan_term_years"}},
		{name: "nan home price", mutate: func(in *Input) { in.HomePrice = math.NaN() }, fields: []string{"home_price"}},
		{name: "infinite rate", mutate: func(in *Input) { in.MortgageInterestRatePercent = math.Inf(1) }, fields: []string{"mortgage_interest_rate_percent"}},
		{name: "appreciation below total loss", mutate: func(in *Input) { in.HomeAppreciationRatePercent = -100.5 }, fields: []string{"home_appreciation_rate_percent"}},
		{
			name: "several fields at once",
			mutate: func(in *Input) {
				in.YearsToSimulate = 0
				in.MonthlyRent = -5
				in.SellingClosingCostsPercent = -1
			},
			fields: []string{"years_to_simulate", "monthly_rent", "selling_closing_costs_percent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInput()
			tt.mutate(&in)

			out, err := Simulate(in)
			assert.Nil(t, out)

			var inv *InvalidInputError
			require.ErrorAs(t, err, &inv)
			got := make([]string, 0, len(inv.Fields))
			for _, f := range inv.Fields {
				got = append(got, f.Field)
				assert.NotEmpty(t, f.Reason)
			}
			if diff := cmp.Diff(tt.fields, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
				t.Errorf("rejected fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_Normalizes(t *testing.T) {
	in := DefaultInput()
	in.HomeAppreciationRatePercent = math.Copysign(0, -1)

	got, err := Validate(in)
	require.NoError(t, err)
	assert.False(t, math.Signbit(got.HomeAppreciationRatePercent))
}

func TestInvalidInputError(t *testing.T) {
	err := NewInvalidInputError(
		FieldError{Field: "years_to_simulate", Reason: "must be at least 1"},
		FieldError{Field: "monthly_rent", Reason: "must be greater than 0"},
	)

	assert.Equal(t, "invalid simulation input: years_to_simulate must be at least 1; monthly_rent must be greater than 0", err.Error())
	assert.True(t, err.Has("monthly_rent"))
	assert.False(t, err.Has("home_price"))
}

func TestSimulate_Concurrent(t *testing.T) {
	want, err := Simulate(DefaultInput())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Simulate(DefaultInput())
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("concurrent run differs (-want +got):\n%s", diff)
			}
		}()
	}
	wg.Wait()
}

func intPtr(v int) *int {
	return &v
}
