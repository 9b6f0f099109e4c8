// Package domain holds the core value types shared by the statement
// parsing and insight pipeline.
package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Category is the canonical spending category key. Grouping and aggregation
// always compare canonical keys; display strings live in the i18n package
// and never participate in identity.
type Category string

const (
	CategorySalary            Category = "salary"
	CategoryTransferIn        Category = "transferIn"
	CategoryOtherIncome       Category = "otherIncome"
	CategoryFastFood          Category = "fastFood"
	CategoryRestaurants       Category = "restaurants"
	CategoryCoffee            Category = "coffee"
	CategoryFoodDelivery      Category = "foodDelivery"
	CategoryGas               Category = "gas"
	CategoryAutoPayment       Category = "autoPayment"
	CategoryRideshare         Category = "rideshare"
	CategoryMovies            Category = "movies"
	CategorySubscriptions     Category = "subscriptions"
	CategoryOnlineShopping    Category = "onlineShopping"
	CategoryGeneralShopping   Category = "generalShopping"
	CategoryClothing          Category = "clothing"
	CategoryTechnology        Category = "technology"
	CategoryPersonalTransfers Category = "personalTransfers"
	CategoryGeneralExpenses   Category = "generalExpenses"
)

var validCategories = map[Category]struct{}{
	CategorySalary: {}, CategoryTransferIn: {}, CategoryOtherIncome: {},
	CategoryFastFood: {}, CategoryRestaurants: {}, CategoryCoffee: {},
	CategoryFoodDelivery: {}, CategoryGas: {}, CategoryAutoPayment: {},
	CategoryRideshare: {}, CategoryMovies: {}, CategorySubscriptions: {},
	CategoryOnlineShopping: {}, CategoryGeneralShopping: {}, CategoryClothing: {},
	CategoryTechnology: {}, CategoryPersonalTransfers: {}, CategoryGeneralExpenses: {},
}

// ValidateCategory checks if the category key is one of the canonical set
func ValidateCategory(c Category) bool {
	_, ok := validCategories[c]
	return ok
}

// Transaction is one extracted statement record.
type Transaction struct {
	Date        string `json:"date"` // MM/DD, no year
	Description string `json:"description"`
	// Amount keeps the statement's decimal text verbatim.
	// Sign convention:
	//   Positive = income/inflow (deposits, payroll)
	//   Negative = expense/outflow (card purchases, withdrawals)
	// Consumers parse it to a number themselves.
	Amount   string   `json:"amount"`
	Category Category `json:"category,omitempty"`
}

// AmountValue parses the decimal amount text.
func (t *Transaction) AmountValue() (float64, error) {
	v, err := strconv.ParseFloat(t.Amount, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", t.Amount, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount %q is not finite", t.Amount)
	}
	return v, nil
}

// MonthToken returns the 1-based calendar month embedded in the date.
func (t *Transaction) MonthToken() (int, error) {
	monthStr, _, ok := strings.Cut(t.Date, "/")
	if !ok {
		return 0, fmt.Errorf("date %q has no month token", t.Date)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, fmt.Errorf("invalid month token in date %q: %w", t.Date, err)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month token %d out of range in date %q", month, t.Date)
	}
	return month, nil
}

// InsightType classifies a spending insight.
type InsightType string

const (
	InsightComparison InsightType = "comparison"
	InsightBudget     InsightType = "budget"
	InsightAlert      InsightType = "alert"
)

// Severity orders insights for display.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank returns the sort weight for the severity (critical > warning > info).
// Unknown severities rank below info.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// InsightData carries the numbers behind an insight message. Zero values
// mean the field does not apply to the insight's type.
type InsightData struct {
	CurrentAmount   float64 `json:"currentAmount"`
	PreviousAmount  float64 `json:"previousAmount,omitempty"`
	ChangePercent   float64 `json:"changePercent,omitempty"`
	SuggestedBudget float64 `json:"suggestedBudget,omitempty"`
	Threshold       float64 `json:"threshold,omitempty"`
}

// SpendingInsight is one derived observation about the transaction list.
// Insights are created fresh on every generation run and carry no identity
// across runs.
type SpendingInsight struct {
	ID         string      `json:"id"`
	Type       InsightType `json:"type"`
	Category   Category    `json:"category"`
	Message    string      `json:"message"`
	Severity   Severity    `json:"severity"`
	Data       InsightData `json:"data"`
	Actionable bool        `json:"actionable"`
	Timestamp  time.Time   `json:"timestamp"`
}

// MonthlySpending maps a category to its aggregated absolute expense total
// for one calendar month. Derived on demand, never stored.
type MonthlySpending map[Category]float64
