// Package validate filters extraction candidates down to usable transactions.
package validate

import (
	"strings"

	"github.com/balynce/balynce/internal/domain"
)

// Rejection reasons.
const (
	ReasonZeroAmount       = "zeroAmount"
	ReasonBadAmount        = "badAmount"
	ReasonEmptyDescription = "emptyDescription"
)

// Rejection records one dropped candidate and why.
type Rejection struct {
	Index       int
	Reason      string
	Description string
}

// Result summarizes a Filter pass.
type Result struct {
	Kept     int
	Rejected []Rejection
}

// Filter drops candidates that cannot become transactions: empty
// descriptions, the literal zero amount a template produces when it matched
// a non-transaction row, and amounts that do not parse to a finite number.
// The input slice is not modified.
func Filter(candidates []domain.Transaction) ([]domain.Transaction, *Result) {
	kept := make([]domain.Transaction, 0, len(candidates))
	result := &Result{}

	for i, c := range candidates {
		if strings.TrimSpace(c.Description) == "" {
			result.Rejected = append(result.Rejected, Rejection{
				Index:  i,
				Reason: ReasonEmptyDescription,
			})
			continue
		}
		if c.Amount == "0.00" {
			result.Rejected = append(result.Rejected, Rejection{
				Index:       i,
				Reason:      ReasonZeroAmount,
				Description: c.Description,
			})
			continue
		}
		if _, err := c.AmountValue(); err != nil {
			result.Rejected = append(result.Rejected, Rejection{
				Index:       i,
				Reason:      ReasonBadAmount,
				Description: c.Description,
			})
			continue
		}
		kept = append(kept, c)
	}

	result.Kept = len(kept)
	return kept, result
}
