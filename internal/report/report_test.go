package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentorbuy/internal/simulation"
	"rentorbuy/internal/testutil"
)

func simulate(t *testing.T, in simulation.Input) *simulation.Output {
	t.Helper()
	out, err := simulation.Simulate(in)
	require.NoError(t, err)
	return out
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "table", want: FormatTable},
		{in: " CSV ", want: FormatCSV},
		{in: "Json", want: FormatJSON},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "1055.67", NewMoney(1055.6654).String())
	assert.Equal(t, "0.01", NewMoney(0.005).String())
	assert.Equal(t, "12000.00", NewMoney(12000).String())

	assert.Equal(t, "$12,000.00", Dollars(12000))
	assert.Equal(t, "-$1,234.57", Dollars(-1234.567))
	assert.Equal(t, "$0.00", Dollars(-0.001))

	t.Run("non-finite amounts", func(t *testing.T) {
		assert.Equal(t, "+Inf", NewMoney(math.Inf(1)).String())
		assert.Equal(t, "-Inf", Dollars(math.Inf(-1)))
		assert.Equal(t, "NaN", Dollars(math.NaN()))
		assert.False(t, NewMoney(math.NaN()).IsFinite())
		assert.True(t, NewMoney(1).IsFinite())

		csv, err := NewMoney(math.Inf(1)).MarshalCSV()
		require.NoError(t, err)
		assert.Equal(t, "+Inf", csv)
	})
}

func TestWriteSimulation_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSimulation(&buf, FormatCSV, simulate(t, testutil.CashPurchaseInput())))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "year,rent_annual_cost,rent_cumulative_cost,"))
	assert.True(t, strings.HasPrefix(lines[1], "1,12000.00,12000.00,100000.00,100000.00,"))

	var rows []struct {
		Year       int    `csv:"year"`
		BuyNetCost string `csv:"buy_net_cost"`
	}
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "0.00", rows[0].BuyNetCost)
}

func TestWriteSimulation_JSON(t *testing.T) {
	out := simulate(t, testutil.TypicalInput(5))

	var buf bytes.Buffer
	require.NoError(t, WriteSimulation(&buf, FormatJSON, out))

	var decoded simulation.Output
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Results, 5)
	assert.Equal(t, out.Recommendation, decoded.Recommendation)
}

func TestWriteSimulation_Table(t *testing.T) {
	out := simulate(t, testutil.CashPurchaseInput())

	var buf bytes.Buffer
	require.NoError(t, WriteSimulation(&buf, FormatTable, out))

	text := buf.String()
	assert.Contains(t, text, "Year")
	assert.Contains(t, text, "$12,000.00")
	assert.Contains(t, text, "Break-even year:           1")
	assert.Contains(t, text, "Peak rent per year:        $12,000.00")
	assert.Contains(t, text, "Average buy cost per year: $100,000.00")
	assert.True(t, strings.HasSuffix(text, out.Recommendation+"\n"))
}

func TestWriteSimulation_NonFiniteAmounts(t *testing.T) {
	out := simulate(t, testutil.CashPurchaseInput())
	out.Results[0].RentCumulativeCost = math.Inf(1)
	out.TotalRentCost = math.Inf(1)

	for _, format := range []Format{FormatTable, FormatCSV} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NotPanics(t, func() {
				require.NoError(t, WriteSimulation(&buf, format, out))
			})
			assert.Contains(t, buf.String(), "+Inf")
		})
	}
}

func TestWriteSchedule(t *testing.T) {
	s := simulation.Amortize(120000, 0, 0, 1)

	t.Run("monthly csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSchedule(&buf, FormatCSV, s, false))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 13)
		assert.Equal(t, "period,payment,interest,principal,remaining_balance", lines[0])
		assert.Equal(t, "12,10000.00,0.00,10000.00,0.00", lines[12])
	})

	t.Run("yearly table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSchedule(&buf, FormatTable, s, true))
		assert.Contains(t, buf.String(), "$120,000.00")
		assert.Contains(t, buf.String(), "total interest $0.00")
	})

	t.Run("yearly json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSchedule(&buf, FormatJSON, s, true))
		var years []simulation.AmortizationYear
		require.NoError(t, json.Unmarshal(buf.Bytes(), &years))
		require.Len(t, years, 1)
		assert.InDelta(t, 120000, years[0].Principal, 1e-6)
	})
}

func TestSummarize(t *testing.T) {
	in := testutil.CashPurchaseInput()
	in.YearsToSimulate = 3
	in.AnnualRentIncreasePercent = 10
	out := simulate(t, in)

	s, err := Summarize(out)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Years)
	assert.InDelta(t, (12000+13200+14520)/3.0, s.AverageRentAnnual, 1e-6)
	assert.InDelta(t, 14520, s.PeakRentAnnual, 1e-6)
	assert.InDelta(t, 0, s.MedianBuyAnnual, 1e-9)
	assert.InDelta(t, out.TotalRentCost-out.TotalBuyCostNet, s.FinalAdvantage, 1e-9)

	_, err = Summarize(&simulation.Output{})
	assert.Error(t, err)
}
