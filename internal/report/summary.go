package report

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"rentorbuy/internal/simulation"
)

// Summary holds descriptive statistics over the yearly results.
type Summary struct {
	Years             int     `json:"years"`
	AverageRentAnnual float64 `json:"average_rent_annual"`
	PeakRentAnnual    float64 `json:"peak_rent_annual"`
	AverageBuyAnnual  float64 `json:"average_buy_annual"`
	MedianBuyAnnual   float64 `json:"median_buy_annual"`
	// FinalAdvantage is positive when buying ends up cheaper.
	FinalAdvantage float64 `json:"final_advantage"`
}

// Summarize computes a Summary for out.
func Summarize(out *simulation.Output) (Summary, error) {
	if len(out.Results) == 0 {
		return Summary{}, fmt.Errorf("no yearly results to summarize")
	}

	rent := make(stats.Float64Data, len(out.Results))
	buy := make(stats.Float64Data, len(out.Results))
	for i, r := range out.Results {
		rent[i] = r.RentAnnualCost
		buy[i] = r.BuyAnnualOutOfPocket
	}

	s := Summary{
		Years:          len(out.Results),
		FinalAdvantage: out.TotalRentCost - out.TotalBuyCostNet,
	}

	var err error
	if s.AverageRentAnnual, err = rent.Mean(); err != nil {
		return Summary{}, fmt.Errorf("failed to average rent: %w", err)
	}
	if s.PeakRentAnnual, err = rent.Max(); err != nil {
		return Summary{}, fmt.Errorf("failed to find peak rent: %w", err)
	}
	if s.AverageBuyAnnual, err = buy.Mean(); err != nil {
		return Summary{}, fmt.Errorf("failed to average buy cost: %w", err)
	}
	if s.MedianBuyAnnual, err = buy.Median(); err != nil {
		return Summary{}, fmt.Errorf("failed to find median buy cost: %w", err)
	}
	return s, nil
}
