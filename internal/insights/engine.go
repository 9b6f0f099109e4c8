// Package insights derives month-over-month spending insights from
// categorized transactions.
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/balynce/balynce/internal/domain"
	"github.com/balynce/balynce/internal/i18n"
)

// Change thresholds for the month-over-month comparison, in percent.
const (
	comparisonMinChange     = 15
	comparisonWarningChange = 50
)

// budgetVariability is the (max-min)/avg spread above which a category is
// considered volatile enough to suggest a budget for.
const budgetVariability = 0.3

// budgetHeadroom scales the average into the suggested monthly budget.
const budgetHeadroom = 1.2

// Multipliers over the historical category average.
const (
	unusualMultiplier          = 2
	largeTxnMultiplier         = 3
	largeTxnCriticalMultiplier = 5
)

// Engine generates spending insights. Generation is gated on entitlement:
// a non-entitled engine always returns nil.
type Engine struct {
	entitled bool
	now      func() time.Time
	label    func(domain.Category) string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source. Tests pin the current month with it.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLabels overrides the category label lookup used in messages.
func WithLabels(label func(domain.Category) string) Option {
	return func(e *Engine) { e.label = label }
}

// NewEngine creates an insights engine. Labels default to English.
func NewEngine(entitled bool, opts ...Option) *Engine {
	e := &Engine{
		entitled: entitled,
		now:      time.Now,
		label:    i18n.Labeler(language.English),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate runs every analysis over the transaction set and returns the
// insights ordered by severity (critical first), ties broken by newest
// timestamp. Returns nil when the engine is not entitled.
func (e *Engine) Generate(txns []domain.Transaction) []domain.SpendingInsight {
	if !e.entitled || len(txns) == 0 {
		return nil
	}

	now := e.now()
	current := int(now.Month())
	previous := current - 1
	if previous == 0 {
		previous = 12
	}

	var insights []domain.SpendingInsight
	insights = append(insights, e.compareMonths(txns, current, previous, now)...)
	insights = append(insights, e.suggestBudgets(txns, current, now)...)
	insights = append(insights, e.detectUnusual(txns, current, now)...)
	insights = append(insights, e.flagLargeTransactions(txns, current, now)...)

	sort.SliceStable(insights, func(i, j int) bool {
		ri, rj := insights[i].Severity.Rank(), insights[j].Severity.Rank()
		if ri != rj {
			return ri > rj
		}
		return insights[i].Timestamp.After(insights[j].Timestamp)
	})
	return insights
}

// monthlySpending totals absolute expense amounts per category for one month
// token. Income is excluded.
func monthlySpending(txns []domain.Transaction, month int) domain.MonthlySpending {
	spending := domain.MonthlySpending{}
	for _, t := range txns {
		m, err := t.MonthToken()
		if err != nil || m != month {
			continue
		}
		v, err := t.AmountValue()
		if err != nil || v >= 0 {
			continue
		}
		spending[t.Category] += math.Abs(v)
	}
	return spending
}

// sortedCategories fixes iteration order so insight output is deterministic.
func sortedCategories(spending domain.MonthlySpending) []domain.Category {
	cats := make([]domain.Category, 0, len(spending))
	for c := range spending {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

func newID(typ domain.InsightType, cat domain.Category) string {
	return fmt.Sprintf("%s_%s_%s", typ, cat, uuid.NewString())
}

// compareMonths emits one insight per category whose current-month spending
// moved at least 15% against the previous month. Moves of 50% or more are
// warnings; increases are actionable, decreases are not. Categories with no
// previous-month spending are skipped (no baseline to compare against).
func (e *Engine) compareMonths(txns []domain.Transaction, current, previous int, now time.Time) []domain.SpendingInsight {
	curSpending := monthlySpending(txns, current)
	prevSpending := monthlySpending(txns, previous)

	var insights []domain.SpendingInsight
	for _, cat := range sortedCategories(curSpending) {
		cur := curSpending[cat]
		prev := prevSpending[cat]
		if prev <= 0 {
			continue
		}
		change := (cur - prev) / prev * 100
		if math.Abs(change) < comparisonMinChange {
			continue
		}

		severity := domain.SeverityInfo
		if math.Abs(change) >= comparisonWarningChange {
			severity = domain.SeverityWarning
		}
		direction := "more"
		if change < 0 {
			direction = "less"
		}

		insights = append(insights, domain.SpendingInsight{
			ID:       newID(domain.InsightComparison, cat),
			Type:     domain.InsightComparison,
			Category: cat,
			Message: fmt.Sprintf("You spent %.0f%% %s on %s this month ($%.2f vs $%.2f)",
				math.Abs(change), direction, e.label(cat), cur, prev),
			Severity: severity,
			Data: domain.InsightData{
				CurrentAmount:  cur,
				PreviousAmount: prev,
				ChangePercent:  change,
			},
			Actionable: change > 0,
			Timestamp:  now,
		})
	}
	return insights
}

// suggestBudgets looks at the last three months per category and suggests a
// monthly budget when spending is volatile: spread over 30% of the average.
// The suggestion is the average plus 20% headroom.
func (e *Engine) suggestBudgets(txns []domain.Transaction, current int, now time.Time) []domain.SpendingInsight {
	months := make([]int, 0, 3)
	for offset := 0; offset < 3; offset++ {
		m := current - offset
		if m <= 0 {
			m += 12
		}
		months = append(months, m)
	}

	series := map[domain.Category][]float64{}
	union := domain.MonthlySpending{}
	for _, month := range months {
		spending := monthlySpending(txns, month)
		for cat, v := range spending {
			series[cat] = append(series[cat], v)
			union[cat] += v
		}
	}

	var insights []domain.SpendingInsight
	for _, cat := range sortedCategories(union) {
		points := series[cat]
		if len(points) < 2 {
			continue
		}
		var total, max, min float64
		max = points[0]
		min = points[0]
		for _, p := range points {
			total += p
			if p > max {
				max = p
			}
			if p < min {
				min = p
			}
		}
		avg := total / float64(len(points))
		if avg == 0 || (max-min)/avg <= budgetVariability {
			continue
		}

		suggested := avg * budgetHeadroom
		insights = append(insights, domain.SpendingInsight{
			ID:       newID(domain.InsightBudget, cat),
			Type:     domain.InsightBudget,
			Category: cat,
			Message: fmt.Sprintf("Based on your %s spending pattern, consider setting a monthly budget of $%.2f (your average is $%.2f)",
				e.label(cat), suggested, avg),
			Severity: domain.SeverityInfo,
			Data: domain.InsightData{
				CurrentAmount:   avg,
				SuggestedBudget: suggested,
			},
			Actionable: true,
			Timestamp:  now,
		})
	}
	return insights
}

// detectUnusual compares current-month spending against the all-time monthly
// average per category and warns when it more than doubles. A category needs
// at least two distinct months of history before it has a meaningful average.
func (e *Engine) detectUnusual(txns []domain.Transaction, current int, now time.Time) []domain.SpendingInsight {
	totals := domain.MonthlySpending{}
	monthsSeen := map[domain.Category]map[int]bool{}
	for _, t := range txns {
		m, err := t.MonthToken()
		if err != nil {
			continue
		}
		v, err := t.AmountValue()
		if err != nil || v >= 0 {
			continue
		}
		totals[t.Category] += math.Abs(v)
		if monthsSeen[t.Category] == nil {
			monthsSeen[t.Category] = map[int]bool{}
		}
		monthsSeen[t.Category][m] = true
	}

	curSpending := monthlySpending(txns, current)

	var insights []domain.SpendingInsight
	for _, cat := range sortedCategories(curSpending) {
		months := len(monthsSeen[cat])
		if months < 2 {
			continue
		}
		avg := totals[cat] / float64(months)
		threshold := avg * unusualMultiplier
		cur := curSpending[cat]
		if cur <= threshold {
			continue
		}

		insights = append(insights, domain.SpendingInsight{
			ID:       newID(domain.InsightAlert, cat),
			Type:     domain.InsightAlert,
			Category: cat,
			Message: fmt.Sprintf("Unusual spending detected: your %s spending this month ($%.2f) is significantly higher than your typical $%.2f",
				e.label(cat), cur, avg),
			Severity: domain.SeverityWarning,
			Data: domain.InsightData{
				CurrentAmount:  cur,
				PreviousAmount: avg,
				Threshold:      threshold,
			},
			Actionable: true,
			Timestamp:  now,
		})
	}
	return insights
}

// flagLargeTransactions flags individual current-month transactions whose
// absolute amount exceeds three times the category's all-time mean. Five
// times the mean escalates to warning. These are informational, never
// actionable: a single purchase is not a habit.
func (e *Engine) flagLargeTransactions(txns []domain.Transaction, current int, now time.Time) []domain.SpendingInsight {
	totals := map[domain.Category]float64{}
	counts := map[domain.Category]int{}
	for _, t := range txns {
		v, err := t.AmountValue()
		if err != nil {
			continue
		}
		totals[t.Category] += math.Abs(v)
		counts[t.Category]++
	}

	var insights []domain.SpendingInsight
	for _, t := range txns {
		m, err := t.MonthToken()
		if err != nil || m != current {
			continue
		}
		v, err := t.AmountValue()
		if err != nil {
			continue
		}
		mean := totals[t.Category] / float64(counts[t.Category])
		abs := math.Abs(v)
		if abs <= mean*largeTxnMultiplier {
			continue
		}

		severity := domain.SeverityInfo
		if abs > mean*largeTxnCriticalMultiplier {
			severity = domain.SeverityWarning
		}

		insights = append(insights, domain.SpendingInsight{
			ID:       newID(domain.InsightAlert, t.Category),
			Type:     domain.InsightAlert,
			Category: t.Category,
			Message: fmt.Sprintf("Large %s transaction: $%.2f - %q",
				e.label(t.Category), abs, t.Description),
			Severity: severity,
			Data: domain.InsightData{
				CurrentAmount: abs,
				Threshold:     mean * largeTxnMultiplier,
			},
			Actionable: false,
			Timestamp:  now,
		})
	}
	return insights
}
