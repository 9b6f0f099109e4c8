// Package rules provides a YAML-based rules engine mapping transaction
// descriptions to spending categories.
package rules

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/balynce/balynce/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var embeddedRules []byte

// Branch selects which side of the amount sign a rule applies to.
type Branch string

const (
	// BranchIncome rules apply to amounts >= 0.
	BranchIncome Branch = "income"
	// BranchExpense rules apply to amounts < 0.
	BranchExpense Branch = "expense"
)

// Rule represents a single categorization rule.
//
// Rules are created via YAML loading (NewEngine, LoadEmbedded, LoadFromFile),
// which validates all invariants:
//   - Priority in range [0, 999]
//   - Branch must be "income" or "expense"
//   - Category must be a valid domain.Category
//   - At least one keyword, none empty after trimming
//   - MaxAbsAmount must not be negative
//
// WARNING: direct struct construction bypasses validation. Fields are
// exported for YAML unmarshaling and testing.
type Rule struct {
	Name     string   `yaml:"name"`
	Branch   Branch   `yaml:"branch"`
	Priority int      `yaml:"priority"`
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	// MaxAbsAmount restricts the rule to |amount| strictly below this
	// value. Zero means no cap.
	MaxAbsAmount float64 `yaml:"max_abs_amount"`
}

// RuleSet represents the top-level YAML structure
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// Engine categorizes descriptions by evaluating rules in priority order.
// Safe for concurrent use: rules are read-only after construction.
type Engine struct {
	income  []Rule // Sorted by priority (highest first)
	expense []Rule
}

// NewEngine creates a rules engine from YAML data
func NewEngine(rulesData []byte) (*Engine, error) {
	var ruleSet RuleSet
	if err := yaml.Unmarshal(rulesData, &ruleSet); err != nil {
		return nil, fmt.Errorf("failed to parse YAML rules (check syntax, indentation, and field names): %w", err)
	}

	for i := range ruleSet.Rules {
		rule := &ruleSet.Rules[i]

		if !domain.ValidateCategory(domain.Category(rule.Category)) {
			return nil, fmt.Errorf("rule %d (%s): invalid category %q", i, rule.Name, rule.Category)
		}

		if rule.Branch != BranchIncome && rule.Branch != BranchExpense {
			return nil, fmt.Errorf("rule %d (%s): invalid branch %q (must be 'income' or 'expense')", i, rule.Name, rule.Branch)
		}

		if rule.Priority < 0 || rule.Priority > 999 {
			return nil, fmt.Errorf("rule %d (%s): priority must be in [0,999], got %d", i, rule.Name, rule.Priority)
		}

		if rule.MaxAbsAmount < 0 {
			return nil, fmt.Errorf("rule %d (%s): max_abs_amount must not be negative, got %f", i, rule.Name, rule.MaxAbsAmount)
		}

		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d (%s): at least one keyword is required", i, rule.Name)
		}
		for j, kw := range rule.Keywords {
			normalized := strings.ToLower(strings.TrimSpace(kw))
			if normalized == "" {
				return nil, fmt.Errorf("rule %d (%s): keyword %d is empty", i, rule.Name, j)
			}
			rule.Keywords[j] = normalized
		}
	}

	// Sort rules by priority (highest first). Use SliceStable to preserve
	// YAML file order for rules with equal priority (guarantees
	// deterministic matching).
	sortedRules := make([]Rule, len(ruleSet.Rules))
	copy(sortedRules, ruleSet.Rules)
	sort.SliceStable(sortedRules, func(i, j int) bool {
		return sortedRules[i].Priority > sortedRules[j].Priority
	})

	engine := &Engine{}
	for _, rule := range sortedRules {
		if rule.Branch == BranchIncome {
			engine.income = append(engine.income, rule)
		} else {
			engine.expense = append(engine.expense, rule)
		}
	}

	return engine, nil
}

// LoadEmbedded loads the embedded rules.yaml file
func LoadEmbedded() (*Engine, error) {
	engine, err := NewEngine(embeddedRules)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded rules (possible binary corruption): %w", err)
	}
	return engine, nil
}

// LoadFromFile loads rules from a filesystem path
func LoadFromFile(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	engine, err := NewEngine(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules from %q: %w", path, err)
	}
	return engine, nil
}

// Categorize maps a description and signed amount to a canonical category
// key. The amount sign selects the branch (>= 0 income), then rules are
// evaluated in priority order and the first keyword hit wins. Descriptions
// matching no rule fall back to the branch default. Pure function of its
// inputs: calling it twice with the same pair yields the same key.
func (e *Engine) Categorize(description string, amount float64) domain.Category {
	normalizedDesc := strings.ToLower(strings.TrimSpace(description))

	branch := e.income
	fallback := domain.CategoryOtherIncome
	if amount < 0 {
		branch = e.expense
		fallback = domain.CategoryGeneralExpenses
	}

	abs := math.Abs(amount)
	for _, rule := range branch {
		if rule.MaxAbsAmount > 0 && abs >= rule.MaxAbsAmount {
			continue
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(normalizedDesc, kw) {
				return domain.Category(rule.Category)
			}
		}
	}

	return fallback
}

// Rules returns a copy of all rules for inspection/debugging, income branch
// first, each branch in priority order (highest first).
func (e *Engine) Rules() []Rule {
	result := make([]Rule, 0, len(e.income)+len(e.expense))
	result = append(result, e.income...)
	result = append(result, e.expense...)
	return result
}
