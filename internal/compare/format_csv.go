package compare

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/kmorton/planwise/internal/domain"
)

// CSVFormatter renders the per-month timelines of both strategies as CSV.
type CSVFormatter struct{}

// Format writes one row per simulated month per strategy.
func (cf *CSVFormatter) Format(sc *StrategyComparison) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"strategy", "month", "total_remaining", "interest_accrued"}); err != nil {
		return "", err
	}
	for _, r := range []*domain.PaydownResult{sc.Avalanche, sc.Snowball} {
		for _, snap := range r.Timeline {
			record := []string{
				string(r.Strategy),
				fmt.Sprintf("%d", snap.Month),
				snap.TotalRemaining.StringFixed(2),
				snap.InterestAccrued.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
