// Package export renders transactions as CSV and double-entry ledger text.
//
// Rows are assembled by hand instead of encoding/csv: the output contract
// quotes exactly the description (and the ledger's category) field, leaves
// every other field bare, and omits the trailing newline. encoding/csv
// quotes conditionally and always terminates records.
package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/balynce/balynce/internal/domain"
	"github.com/balynce/balynce/internal/i18n"
)

// Writer renders export formats with localized category labels.
type Writer struct {
	label func(domain.Category) string
}

// NewWriter creates a writer using the given label lookup, or English
// labels when nil.
func NewWriter(label func(domain.Category) string) *Writer {
	if label == nil {
		label = i18n.Labeler(language.English)
	}
	return &Writer{label: label}
}

func (w *Writer) categoryLabel(c domain.Category) string {
	if c == "" {
		return i18n.Uncategorized
	}
	return w.label(c)
}

// WriteCSV renders the flat export: one header row, then one row per
// transaction with the amount text carried through verbatim.
func (w *Writer) WriteCSV(txns []domain.Transaction) string {
	lines := make([]string, 0, len(txns)+1)
	lines = append(lines, "Date,Description,Amount,Category")
	for _, t := range txns {
		lines = append(lines, fmt.Sprintf("%s,\"%s\",%s,%s",
			t.Date, t.Description, t.Amount, w.categoryLabel(t.Category)))
	}
	return strings.Join(lines, "\n")
}

// WriteLedger renders the double-entry export against a single Checking
// account. Negative amounts post as debits, everything else as credits,
// both as unsigned two-decimal figures. Unparseable amounts post as a zero
// credit so the row count still matches the input.
func (w *Writer) WriteLedger(txns []domain.Transaction) string {
	lines := make([]string, 0, len(txns)+1)
	lines = append(lines, "Date,Description,Account,Debit,Credit,Category")
	for _, t := range txns {
		v, err := t.AmountValue()
		if err != nil {
			v = 0
		}
		figure := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
		debit, credit := "", figure
		if v < 0 {
			debit, credit = figure, ""
		}
		lines = append(lines, fmt.Sprintf("%s,\"%s\",Checking,%s,%s,\"%s\"",
			t.Date, t.Description, debit, credit, w.categoryLabel(t.Category)))
	}
	return strings.Join(lines, "\n")
}
