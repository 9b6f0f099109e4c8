package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/balynce/balynce/internal/domain"
	"github.com/balynce/balynce/internal/export"
	"github.com/balynce/balynce/internal/i18n"
	"github.com/balynce/balynce/internal/insights"
	"github.com/balynce/balynce/internal/pipeline"
	"github.com/balynce/balynce/internal/rules"
	"github.com/balynce/balynce/internal/scanner"
	"github.com/balynce/balynce/internal/textsource"
	"github.com/balynce/balynce/internal/ui"
)

const (
	version = "0.1.0"
)

var (
	// Global flags
	versionFlag = flag.Bool("version", false, "Show version")

	// Core CLI flags
	inputPath = flag.String("input", "", "Statement text file or directory of .txt statements (required)")
	langFlag  = flag.String("lang", "en", "Label language (BCP 47 tag, e.g. en, es)")
	verbose   = flag.Bool("verbose", false, "Show detailed processing logs")

	// Output flags
	outputFile = flag.String("output", "", "Write transaction CSV to this file")
	ledgerFile = flag.String("ledger", "", "Write double-entry ledger CSV to this file")

	// Analysis flags
	premium   = flag.Bool("premium", false, "Enable spending insight generation")
	rulesFile = flag.String("rules", "", "Category rules YAML file (default: embedded rules)")
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `balynce - Bank statement parser and spending insight engine

Usage:
  balynce [flags]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprint(os.Stderr, `
Examples:
  # Parse one statement dump and print a summary
  balynce -input chase_july.txt

  # Parse a directory of statements with insights and Spanish labels
  balynce -input ~/statements -premium -lang es

  # Export transactions and a double-entry ledger
  balynce -input ~/statements -output transactions.csv -ledger ledger.csv

`)
	}

	flag.Parse()

	// Handle version flag
	if *versionFlag {
		fmt.Printf("balynce version %s\n", version)
		os.Exit(0)
	}

	// Validate required flags
	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	lang := i18n.MatchLanguage(*langFlag)
	label := i18n.Labeler(lang)

	if !*verbose {
		ui.Header("Balynce Statement Analysis")
		ui.Step(1, 4, "Locating statements")
	} else {
		fmt.Fprintf(os.Stderr, "Locating statements under: %s\n", *inputPath)
	}

	files, err := locateStatements(*inputPath)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no statement files found in %s\n\nPlease check:\n  - The path is correct\n  - Files have a .txt extension\n  - You have read permissions on the directory and files", *inputPath)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "Found %d statement files\n", len(files))
		for _, f := range files {
			fmt.Fprintf(os.Stderr, "  - %s (%s)\n", f.Path, f.Name)
		}
	} else {
		ui.Success(fmt.Sprintf("Found %d statement files", len(files)))
	}

	if !*verbose {
		ui.Step(2, 4, "Loading category rules")
	}
	engine, err := loadRules()
	if err != nil {
		return err
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d rules\n", len(engine.Rules()))
	}

	insightEngine := insights.NewEngine(*premium, insights.WithLabels(label))
	proc := pipeline.New(engine, insightEngine)
	provider := textsource.FileProvider{}

	if !*verbose {
		ui.Step(3, 4, "Parsing statements")
	}

	var transactions []domain.Transaction
	banks := make(map[string]int)
	for _, file := range files {
		result, err := proc.Parse(ctx, provider, file.Path)
		if errors.Is(err, pipeline.ErrNoTransactions) {
			ui.Warning(fmt.Sprintf("%s: no transactions found, skipping", file.Name))
			continue
		}
		if err != nil {
			return fmt.Errorf("processing %s: %w", file.Name, err)
		}

		if *verbose {
			fmt.Fprintf(os.Stderr, "  %s: issuer %s, %d transactions kept, %d rejected\n",
				file.Name, result.Bank, result.Report.Kept, len(result.Report.Rejected))
			for _, r := range result.Report.Rejected {
				fmt.Fprintf(os.Stderr, "    rejected #%d (%s): %s\n", r.Index, r.Reason, r.Description)
			}
		}

		banks[string(result.Bank)]++
		transactions = append(transactions, result.Transactions...)
	}

	if len(transactions) == 0 {
		return errors.New("no usable transactions in any statement")
	}

	if !*verbose {
		ui.Success(fmt.Sprintf("Parsed %d transactions from %d issuers", len(transactions), len(banks)))
		ui.Step(4, 4, "Generating report")
	}

	printSummary(transactions)

	// Insights run once over the merged set so month-over-month analysis
	// sees every statement, not one file at a time.
	if *premium {
		generated := proc.GenerateInsights(transactions)
		fmt.Println()
		ui.BlueText(fmt.Sprintf("Insights (%d):", len(generated)))
		for _, ins := range generated {
			ui.Insight(ins)
		}
	}

	writer := export.NewWriter(label)
	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(writer.WriteCSV(transactions)), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		ui.Success(fmt.Sprintf("Transactions written to %s", *outputFile))
	}
	if *ledgerFile != "" {
		if err := os.WriteFile(*ledgerFile, []byte(writer.WriteLedger(transactions)), 0o644); err != nil {
			return fmt.Errorf("failed to write ledger: %w", err)
		}
		ui.Success(fmt.Sprintf("Ledger written to %s", *ledgerFile))
	}

	return nil
}

// locateStatements accepts either a single statement file or a directory to
// scan recursively.
func locateStatements(path string) ([]scanner.ScanResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}
	if !info.IsDir() {
		return []scanner.ScanResult{{Path: path, Name: info.Name()}}, nil
	}
	return scanner.New(path).Scan()
}

func loadRules() (*rules.Engine, error) {
	if *rulesFile != "" {
		engine, err := rules.LoadFromFile(*rulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules file: %w", err)
		}
		return engine, nil
	}
	engine, err := rules.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded rules: %w", err)
	}
	return engine, nil
}

func printSummary(txns []domain.Transaction) {
	var income, spent float64
	for _, t := range txns {
		v, err := t.AmountValue()
		if err != nil {
			continue
		}
		if v >= 0 {
			income += v
		} else {
			spent += math.Abs(v)
		}
	}

	fmt.Println()
	ui.Info(fmt.Sprintf("Transactions: %d", len(txns)))
	ui.Info(fmt.Sprintf("Income:  $%.2f", income))
	ui.Info(fmt.Sprintf("Spent:   $%.2f", spent))
	ui.Info(fmt.Sprintf("Net:     $%.2f", income-spent))
}
