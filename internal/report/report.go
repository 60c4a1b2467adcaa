// Package report renders simulation results as tables, CSV, or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gocarina/gocsv"

	"rentorbuy/internal/simulation"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat accepts table, csv, or json in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (use table, csv, or json)", s)
}

// YearRow is one CSV line of a simulation.
type YearRow struct {
	Year                     int   `csv:"year"`
	RentAnnualCost           Money `csv:"rent_annual_cost"`
	RentCumulativeCost       Money `csv:"rent_cumulative_cost"`
	BuyAnnualOutOfPocket     Money `csv:"buy_annual_out_of_pocket"`
	BuyCumulativeOutOfPocket Money `csv:"buy_cumulative_out_of_pocket"`
	BuyMortgagePaid          Money `csv:"buy_mortgage_paid"`
	BuyInterestPaid          Money `csv:"buy_interest_paid"`
	BuyPrincipalPaid         Money `csv:"buy_principal_paid"`
	BuyPropertyTax           Money `csv:"buy_property_tax"`
	BuyMaintenance           Money `csv:"buy_maintenance"`
	BuyHomeValue             Money `csv:"buy_home_value"`
	BuyRemainingMortgage     Money `csv:"buy_remaining_mortgage"`
	BuyEquity                Money `csv:"buy_equity"`
	BuyNetCost               Money `csv:"buy_net_cost"`
}

// YearRows converts simulation results to CSV rows.
func YearRows(results []simulation.YearlyResult) []YearRow {
	rows := make([]YearRow, len(results))
	for i, r := range results {
		rows[i] = YearRow{
			Year:                     r.Year,
			RentAnnualCost:           NewMoney(r.RentAnnualCost),
			RentCumulativeCost:       NewMoney(r.RentCumulativeCost),
			BuyAnnualOutOfPocket:     NewMoney(r.BuyAnnualOutOfPocket),
			BuyCumulativeOutOfPocket: NewMoney(r.BuyCumulativeOutOfPocket),
			BuyMortgagePaid:          NewMoney(r.BuyMortgagePaid),
			BuyInterestPaid:          NewMoney(r.BuyInterestPaid),
			BuyPrincipalPaid:         NewMoney(r.BuyPrincipalPaid),
			BuyPropertyTax:           NewMoney(r.BuyPropertyTax),
			BuyMaintenance:           NewMoney(r.BuyMaintenance),
			BuyHomeValue:             NewMoney(r.BuyHomeValue),
			BuyRemainingMortgage:     NewMoney(r.BuyRemainingMortgage),
			BuyEquity:                NewMoney(r.BuyEquity),
			BuyNetCost:               NewMoney(r.BuyNetCost),
		}
	}
	return rows
}

// WriteSimulation renders out in the given format.
func WriteSimulation(w io.Writer, format Format, out *simulation.Output) error {
	switch format {
	case FormatCSV:
		return gocsv.Marshal(YearRows(out.Results), w)
	case FormatJSON:
		return writeJSON(w, out)
	default:
		return writeSimulationTable(w, out)
	}
}

func writeSimulationTable(w io.Writer, out *simulation.Output) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tRent/yr\tRent total\tBuy/yr\tBuy total\tHome value\tMortgage\tEquity\tBuy net\t")
	for _, r := range out.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Year,
			Dollars(r.RentAnnualCost),
			Dollars(r.RentCumulativeCost),
			Dollars(r.BuyAnnualOutOfPocket),
			Dollars(r.BuyCumulativeOutOfPocket),
			Dollars(r.BuyHomeValue),
			Dollars(r.BuyRemainingMortgage),
			Dollars(r.BuyEquity),
			Dollars(r.BuyNetCost),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	summary, err := Summarize(out)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Loan amount:               %s\n", Dollars(out.LoanAmount))
	fmt.Fprintf(w, "Monthly mortgage payment:  %s\n", Dollars(out.MonthlyMortgagePayment))
	fmt.Fprintf(w, "Interest paid in horizon:  %s\n", Dollars(out.InterestPaidInHorizon))
	fmt.Fprintf(w, "Total rent cost:           %s\n", Dollars(out.TotalRentCost))
	fmt.Fprintf(w, "Total buy cost (net):      %s\n", Dollars(out.TotalBuyCostNet))
	fmt.Fprintf(w, "Average rent per year:     %s\n", Dollars(summary.AverageRentAnnual))
	fmt.Fprintf(w, "Peak rent per year:        %s\n", Dollars(summary.PeakRentAnnual))
	fmt.Fprintf(w, "Average buy cost per year: %s\n", Dollars(summary.AverageBuyAnnual))
	fmt.Fprintf(w, "Median buy cost per year:  %s\n", Dollars(summary.MedianBuyAnnual))
	if out.BreakEvenYear != nil {
		fmt.Fprintf(w, "Break-even year:           %d\n", *out.BreakEvenYear)
	} else {
		fmt.Fprintln(w, "Break-even year:           never")
	}
	_, err = fmt.Fprintf(w, "\n%s\n", out.Recommendation)
	return err
}

// ScheduleRow is one CSV line of an amortization schedule. Period is the
// month number, or the loan year for yearly schedules.
type ScheduleRow struct {
	Period           int   `csv:"period"`
	Payment          Money `csv:"payment"`
	Interest         Money `csv:"interest"`
	Principal        Money `csv:"principal"`
	RemainingBalance Money `csv:"remaining_balance"`
}

// ScheduleRows converts a schedule to CSV rows at monthly or yearly granularity.
func ScheduleRows(s simulation.Schedule, yearly bool) []ScheduleRow {
	if yearly {
		years := s.Years()
		rows := make([]ScheduleRow, len(years))
		for i, y := range years {
			rows[i] = ScheduleRow{y.Year, NewMoney(y.Payment), NewMoney(y.Interest), NewMoney(y.Principal), NewMoney(y.RemainingBalance)}
		}
		return rows
	}
	rows := make([]ScheduleRow, len(s.Entries))
	for i, e := range s.Entries {
		rows[i] = ScheduleRow{e.Period, NewMoney(e.Payment), NewMoney(e.Interest), NewMoney(e.Principal), NewMoney(e.RemainingBalance)}
	}
	return rows
}

// WriteSchedule renders an amortization schedule in the given format.
func WriteSchedule(w io.Writer, format Format, s simulation.Schedule, yearly bool) error {
	rows := ScheduleRows(s, yearly)
	switch format {
	case FormatCSV:
		return gocsv.Marshal(rows, w)
	case FormatJSON:
		if yearly {
			return writeJSON(w, s.Years())
		}
		return writeJSON(w, s.Entries)
	}

	label := "Month"
	if yearly {
		label = "Year"
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tPayment\tInterest\tPrincipal\tBalance\t\n", label)
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", r.Period,
			r.Payment.Dollars(), r.Interest.Dollars(), r.Principal.Dollars(), r.RemainingBalance.Dollars())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nLoan %s at %s/month, total interest %s\n",
		Dollars(s.LoanPrincipal), Dollars(s.MonthlyPayment), Dollars(s.TotalInterest()))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
