package simulation

import (
	"fmt"
	"math"
)

const monthsPerYear = 12

// AmortizationEntry is one monthly loan period.
type AmortizationEntry struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// AmortizationYear aggregates the twelve periods of one loan year.
type AmortizationYear struct {
	Year             int     `json:"year"`
	Payment          float64 `json:"payment"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// Schedule is the full monthly amortization of a fixed-rate mortgage.
type Schedule struct {
	LoanPrincipal  float64             `json:"loan_principal"`
	MonthlyPayment float64             `json:"monthly_payment"`
	MonthlyRate    float64             `json:"monthly_rate"`
	Entries        []AmortizationEntry `json:"entries"`
}

// MonthlyPayment returns the fixed annuity payment for a loan of principal
// at monthlyRate over n periods. A zero rate degenerates to principal/n.
func MonthlyPayment(principal, monthlyRate float64, n int) float64 {
	return annuityPayment(principal, monthlyRate, float64(n))
}

func annuityPayment(principal, monthlyRate, periods float64) float64 {
	if principal <= 0 || periods <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / periods
	}
	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -periods))
}

// Amortize builds the monthly schedule of the mortgage taken to buy a home.
// The final period absorbs any rounding residue so the balance ends at exactly zero.
func Amortize(homePrice, downPaymentPercent, annualRatePercent float64, termYears int) Schedule {
	return amortize(homePrice, downPaymentPercent, annualRatePercent, termYears, termYears)
}

// amortize materializes at most the first maxYears of the loan. Balances and
// payments of the materialized periods match the full schedule.
func amortize(homePrice, downPaymentPercent, annualRatePercent float64, termYears, maxYears int) Schedule {
	principal := homePrice * (1 - pct(downPaymentPercent))
	if principal < 0 {
		principal = 0
	}
	rate := annualRatePercent / monthsPerYear / 100
	payment := annuityPayment(principal, rate, float64(termYears)*monthsPerYear)

	// last stays 0 when the final period lies beyond the materialized range.
	last := 0
	if termYears <= maxYears {
		last = termYears * monthsPerYear
	}
	n := min(termYears, maxYears) * monthsPerYear

	entries := make([]AmortizationEntry, 0, max(n, 0))
	balance := principal
	for period := 1; period <= n; period++ {
		interest := balance * rate
		principalPart := payment - interest
		if period == last || principalPart > balance {
			principalPart = balance
		}
		balance -= principalPart
		if period == last || balance < 0 {
			balance = 0
		}
		entries = append(entries, AmortizationEntry{
			Period:           period,
			Payment:          interest + principalPart,
			Interest:         interest,
			Principal:        principalPart,
			RemainingBalance: balance,
		})
	}

	return Schedule{
		LoanPrincipal:  principal,
		MonthlyPayment: payment,
		MonthlyRate:    rate,
		Entries:        entries,
	}
}

// AmortizeLoan is Amortize over a LoanInput.
func AmortizeLoan(loan LoanInput) Schedule {
	return Amortize(loan.HomePrice, loan.DownPaymentPercent, loan.MortgageInterestRatePercent, loan.LoanTermYears)
}

// Year returns the periods paid during loan year y (1-indexed).
// It is empty once the loan term has elapsed.
func (s Schedule) Year(y int) []AmortizationEntry {
	start := (y - 1) * monthsPerYear
	if y < 1 || start >= len(s.Entries) {
		return nil
	}
	return s.Entries[start:min(start+monthsPerYear, len(s.Entries))]
}

// BalanceAfterYear returns the outstanding balance at the end of year y.
func (s Schedule) BalanceAfterYear(y int) float64 {
	if y < 1 {
		return s.LoanPrincipal
	}
	idx := y*monthsPerYear - 1
	if idx >= len(s.Entries) {
		return 0
	}
	return s.Entries[idx].RemainingBalance
}

// Years returns the schedule aggregated per loan year.
func (s Schedule) Years() []AmortizationYear {
	years := make([]AmortizationYear, 0, (len(s.Entries)+monthsPerYear-1)/monthsPerYear)
	for y := 1; ; y++ {
		entries := s.Year(y)
		if len(entries) == 0 {
			return years
		}
		year := AmortizationYear{Year: y, RemainingBalance: s.BalanceAfterYear(y)}
		for _, e := range entries {
			year.Payment += e.Payment
			year.Interest += e.Interest
			year.Principal += e.Principal
		}
		years = append(years, year)
	}
}

// TotalInterest returns the interest paid over the whole loan.
func (s Schedule) TotalInterest() float64 {
	var total float64
	for _, e := range s.Entries {
		total += e.Interest
	}
	return total
}

// BuildSchedule validates the loan parameters and amortizes them.
func BuildSchedule(loan LoanInput) (Schedule, error) {
	loan, err := ValidateLoan(loan)
	if err != nil {
		return Schedule{}, err
	}
	if loan.LoanTermYears > MaxScheduleTermYears {
		return Schedule{}, NewInvalidInputError(FieldError{
			Field:  "loan_term_years",
			Reason: fmt.Sprintf("must be at most %d to list a schedule", MaxScheduleTermYears),
		})
	}
	schedule := AmortizeLoan(loan)
	if !schedule.finite() {
		return Schedule{}, NewInvalidInputError(loanOverflow...)
	}
	return schedule, nil
}

func (s Schedule) finite() bool {
	if !isFinite(s.MonthlyPayment) {
		return false
	}
	for _, e := range s.Entries {
		if !isFinite(e.Payment) || !isFinite(e.Interest) || !isFinite(e.RemainingBalance) {
			return false
		}
	}
	return true
}
