// Package pipeline wires issuer detection, extraction, validation, and
// insight generation into a single statement-processing pass.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/balynce/balynce/internal/bank"
	"github.com/balynce/balynce/internal/domain"
	"github.com/balynce/balynce/internal/extract"
	"github.com/balynce/balynce/internal/insights"
	"github.com/balynce/balynce/internal/rules"
	"github.com/balynce/balynce/internal/validate"
)

// ErrNoTransactions reports a statement that parsed cleanly but yielded no
// usable transactions. Callers treat it as a per-statement condition, not a
// pipeline failure.
var ErrNoTransactions = errors.New("no transactions found in statement text")

// TextProvider supplies the page texts of one statement. Implementations
// decide what a "page" is; the pipeline joins them with newlines.
type TextProvider interface {
	PageTexts(ctx context.Context, ref string) ([]string, error)
}

// Result is the outcome of processing one statement.
type Result struct {
	Bank         bank.Bank
	Transactions []domain.Transaction
	Insights     []domain.SpendingInsight
	Report       *validate.Result
}

// Pipeline processes statement text end to end.
type Pipeline struct {
	extractor *extract.Extractor
	insights  *insights.Engine
}

// New assembles a pipeline from a rules engine and an insights engine.
func New(rules *rules.Engine, ins *insights.Engine) *Pipeline {
	return &Pipeline{
		extractor: extract.New(rules),
		insights:  ins,
	}
}

// Process reads a statement through the provider and processes its text,
// insights included. Provider errors are hard failures; a statement with no
// usable transactions returns ErrNoTransactions.
func (p *Pipeline) Process(ctx context.Context, provider TextProvider, ref string) (*Result, error) {
	result, err := p.Parse(ctx, provider, ref)
	if err != nil {
		return nil, err
	}
	result.Insights = p.insights.Generate(result.Transactions)
	return result, nil
}

// ProcessText runs the full pass over already-loaded statement text.
func (p *Pipeline) ProcessText(text string) (*Result, error) {
	result, err := p.ParseText(text)
	if err != nil {
		return nil, err
	}
	result.Insights = p.insights.Generate(result.Transactions)
	return result, nil
}

// Parse reads a statement through the provider and extracts its
// transactions without generating insights. Callers merging several
// statements parse each one and generate insights once over the combined
// list, so month-over-month analysis sees the whole history.
func (p *Pipeline) Parse(ctx context.Context, provider TextProvider, ref string) (*Result, error) {
	pages, err := provider.PageTexts(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("reading statement %q: %w", ref, err)
	}
	return p.ParseText(strings.Join(pages, "\n"))
}

// ParseText detects the issuer, extracts candidates, and filters them.
func (p *Pipeline) ParseText(text string) (*Result, error) {
	issuer := bank.Detect(text)

	candidates := p.extractor.Extract(text, issuer)
	txns, report := validate.Filter(candidates)
	if len(txns) == 0 {
		return nil, ErrNoTransactions
	}

	return &Result{
		Bank:         issuer,
		Transactions: txns,
		Report:       report,
	}, nil
}

// GenerateInsights runs the insight engine over an already-merged
// transaction list.
func (p *Pipeline) GenerateInsights(txns []domain.Transaction) []domain.SpendingInsight {
	return p.insights.Generate(txns)
}
