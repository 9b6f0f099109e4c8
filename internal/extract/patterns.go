package extract

import (
	"regexp"

	"github.com/balynce/balynce/internal/bank"
)

// Template lists per issuer, tried strictly in order. The extractor stops at
// the first template that produces at least one match; later templates in
// the list, and every other issuer's list, are never consulted. Issuers
// without a dedicated list use the generic list.
//
// Capture-group contract (see submatch dispatch in extractor.go):
//   3 groups -> (date, description, amount)
//   2 groups -> (date, amount), description is the unconsumed remainder
//   more     -> date is group 1, amount is the last group
var templateSets = map[bank.Bank][]*regexp.Regexp{
	bank.Chase: {
		// Full table row: txn date, post date, payee, phone, state, amount,
		// trailing running balance. Only date and amount are captured
		// reliably, so the dispatch synthesizes the description.
		regexp.MustCompile(`(\d{2}/\d{2})\s+.*?\s+(\d{2}/\d{2})\s+([^-+\d]*?)\s+[\d\-\(\)]+\s+[A-Z]{2}\s+.*?(-?\d{1,3}(?:,\d{3})*\.\d{2})\s+[\d,]+\.\d{2}`),
		// Plain row: date, payee, amount.
		regexp.MustCompile(`(\d{2}/\d{2})\s+([^-+\d]*?[^-+\d\s])\s+(-?\d{1,3}(?:,\d{3})*\.\d{2})`),
		// Typed row: date, transaction type, post date, payee, amount.
		regexp.MustCompile(`(\d{2}/\d{2})\s+(?:Card Purchase|Payment|Deposit|Transfer|Withdrawal)\s+\d{2}/\d{2}\s+([^-+\d]*?)\s+(-?\d{1,3}(?:,\d{3})*\.\d{2})`),
	},
	bank.Generic: {
		// Date (optionally with year), payee, amount.
		regexp.MustCompile(`(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\s+([^-+\d]*?)\s+(-?\d{1,3}(?:,\d{3})*\.\d{2})`),
		// Catch-all: date, anything, amount. The amount token accepts
		// uncomma'd thousands ("2500.00") so large round figures are
		// captured whole instead of losing their leading digits.
		regexp.MustCompile(`(\d{1,2}/\d{1,2})\s+.*?(-?\d+(?:,\d{3})*\.\d{2})`),
	},
}

// templatesFor returns the template list for an issuer, falling back to the
// generic list for issuers without a dedicated one.
func templatesFor(issuer bank.Bank) []*regexp.Regexp {
	if templates, ok := templateSets[issuer]; ok {
		return templates
	}
	return templateSets[bank.Generic]
}
