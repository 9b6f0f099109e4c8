// Package extract turns raw statement text into transaction candidates
// using per-issuer regex templates with a line-scan fallback.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/balynce/balynce/internal/bank"
	"github.com/balynce/balynce/internal/domain"
)

// maxDescriptionLen caps candidate descriptions in bytes.
const maxDescriptionLen = 50

var amountCleaner = strings.NewReplacer("$", "", ",", "")

// Categorizer assigns a category key to a description/amount pair.
type Categorizer interface {
	Categorize(description string, amount float64) domain.Category
}

// Extractor extracts transaction candidates from statement text.
type Extractor struct {
	rules Categorizer
}

// New creates an extractor backed by the given categorizer.
func New(rules Categorizer) *Extractor {
	return &Extractor{rules: rules}
}

// Extract runs the issuer's template list in order and keeps the results of
// the first template that matches anything. If no template matches, the
// line-scan fallback runs instead. The returned candidates are unvalidated;
// callers filter them before use.
func (e *Extractor) Extract(text string, issuer bank.Bank) []domain.Transaction {
	for _, template := range templatesFor(issuer) {
		matches := template.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		txns := make([]domain.Transaction, 0, len(matches))
		for i, m := range matches {
			txns = append(txns, e.fromMatch(m, i, issuer))
		}
		return txns
	}
	return e.extractFromLines(text, issuer)
}

// fromMatch maps a submatch slice to a candidate by capture-group count.
// Slices carry the full match at index 0, so a 3-group template yields
// length 4 and a 2-group template length 3.
func (e *Extractor) fromMatch(m []string, index int, issuer bank.Bank) domain.Transaction {
	var date, desc, amount string
	switch len(m) {
	case 4:
		date, desc, amount = m[1], m[2], m[3]
	case 3:
		date, amount = m[1], m[2]
		// Description is whatever the template did not capture: the full
		// match with the date and amount tokens removed once each.
		desc = strings.Replace(m[0], m[1], "", 1)
		desc = strings.Replace(desc, m[2], "", 1)
	default:
		date = m[1]
		amount = m[len(m)-1]
		desc = fmt.Sprintf("Transaction %d", index+1)
	}

	// Categorization sees the cleaned description, not the raw capture:
	// collapsed whitespace keeps multi-word keywords matchable.
	desc = normalizeDescription(desc, index, issuer)

	return domain.Transaction{
		Date:        normalizeDate(date, index),
		Description: desc,
		Amount:      amountCleaner.Replace(strings.TrimSpace(amount)),
		Category:    e.categorize(desc, amount),
	}
}

func (e *Extractor) categorize(desc, amount string) domain.Category {
	t := domain.Transaction{Amount: amountCleaner.Replace(strings.TrimSpace(amount))}
	value, err := t.AmountValue()
	if err != nil {
		value = 0
	}
	return e.rules.Categorize(desc, value)
}

// normalizeDate trims dates to MM/DD and synthesizes one for templates that
// captured nothing. Synthetic dates place the i-th candidate on the first of
// month i+1 so month grouping stays stable.
func normalizeDate(date string, index int) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return fmt.Sprintf("%02d/01", index+1)
	}
	if len(date) > 5 {
		date = date[:5]
	}
	return date
}

// normalizeDescription collapses runs of whitespace, truncates, and replaces
// descriptions too short to mean anything with an issuer-tagged placeholder.
func normalizeDescription(desc string, index int, issuer bank.Bank) string {
	desc = strings.Join(strings.Fields(desc), " ")
	if len(desc) > maxDescriptionLen {
		desc = desc[:maxDescriptionLen]
	}
	if len(desc) < 2 {
		return fmt.Sprintf("%s Transaction %d", issuer, index+1)
	}
	return desc
}

var (
	lineSplitter = regexp.MustCompile(`[\n\r]+`)
	lineDate     = regexp.MustCompile(`\d{2}/\d{2}`)
	lineAmount   = regexp.MustCompile(`-?\d+(?:,\d{3})*\.\d{2}`)
)

// extractFromLines is the last-resort scan: any line long enough to be a
// transaction row that carries both a date token and an amount token becomes
// a candidate. Summary rows are excluded by literal markers.
func (e *Extractor) extractFromLines(text string, issuer bank.Bank) []domain.Transaction {
	var txns []domain.Transaction
	index := 0
	for _, line := range lineSplitter.Split(text, -1) {
		line = strings.TrimSpace(line)
		if len(line) <= 10 {
			continue
		}
		if strings.Contains(line, "Balance") || strings.Contains(line, "TOTAL") || strings.Contains(line, "SUMMARY") {
			continue
		}
		date := lineDate.FindString(line)
		amounts := lineAmount.FindAllString(line, -1)
		if date == "" || len(amounts) == 0 {
			continue
		}
		index++

		// Rows with a trailing running balance end with two amounts; the
		// last amount on the line is taken as the transaction amount.
		amount := amounts[len(amounts)-1]

		desc := strings.Replace(line, date, "", 1)
		for _, a := range amounts {
			desc = strings.Replace(desc, a, "", 1)
		}
		desc = strings.Join(strings.Fields(desc), " ")
		if len(desc) > maxDescriptionLen {
			desc = desc[:maxDescriptionLen]
		}
		if desc == "" {
			desc = fmt.Sprintf("Transaction %d", index)
		}

		txns = append(txns, domain.Transaction{
			Date:        date,
			Description: desc,
			Amount:      amountCleaner.Replace(amount),
			Category:    e.categorize(desc, amount),
		})
	}
	return txns
}
