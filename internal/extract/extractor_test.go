package extract

import (
	"strings"
	"testing"

	"github.com/balynce/balynce/internal/bank"
	"github.com/balynce/balynce/internal/domain"
	"github.com/balynce/balynce/internal/rules"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	engine, err := rules.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	return New(engine)
}

func TestExtract_GenericStatement(t *testing.T) {
	e := newTestExtractor(t)

	// The first generic template cannot span the store number digits in the
	// coffee line, so the whole pass falls through to the catch-all
	// template, which must still capture the full 2500.00 deposit.
	text := "WELLS FARGO Statement\n" +
		"07/15 STARBUCKS STORE #12345 SEATTLE WA -5.75\n" +
		"07/16 PAYCHECK DEPOSIT 2500.00"

	txns := e.Extract(text, bank.WellsFargo)
	if len(txns) != 2 {
		t.Fatalf("Extract() returned %d transactions, want 2", len(txns))
	}

	coffee := txns[0]
	if coffee.Date != "07/15" {
		t.Errorf("coffee.Date = %q, want 07/15", coffee.Date)
	}
	if coffee.Amount != "-5.75" {
		t.Errorf("coffee.Amount = %q, want -5.75", coffee.Amount)
	}
	if !strings.Contains(coffee.Description, "STARBUCKS") {
		t.Errorf("coffee.Description = %q, want it to contain STARBUCKS", coffee.Description)
	}
	if coffee.Category != domain.CategoryCoffee {
		t.Errorf("coffee.Category = %q, want %q", coffee.Category, domain.CategoryCoffee)
	}

	deposit := txns[1]
	if deposit.Amount != "2500.00" {
		t.Errorf("deposit.Amount = %q, want 2500.00 (leading digits must not be lost)", deposit.Amount)
	}
	if deposit.Category != domain.CategoryTransferIn {
		t.Errorf("deposit.Category = %q, want %q", deposit.Category, domain.CategoryTransferIn)
	}
}

func TestExtract_ChasePlainRow(t *testing.T) {
	e := newTestExtractor(t)

	text := "CHASE BANK\n01/10 AMAZON MKTP -19.99"
	txns := e.Extract(text, bank.Chase)
	if len(txns) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1", len(txns))
	}
	if txns[0].Date != "01/10" {
		t.Errorf("Date = %q, want 01/10", txns[0].Date)
	}
	if txns[0].Description != "AMAZON MKTP" {
		t.Errorf("Description = %q, want AMAZON MKTP", txns[0].Description)
	}
	if txns[0].Amount != "-19.99" {
		t.Errorf("Amount = %q, want -19.99", txns[0].Amount)
	}
	if txns[0].Category != domain.CategoryOnlineShopping {
		t.Errorf("Category = %q, want %q", txns[0].Category, domain.CategoryOnlineShopping)
	}
}

func TestExtract_ChaseTableRow(t *testing.T) {
	e := newTestExtractor(t)

	// Full table row with phone, state, amount, and running balance. The
	// template captures more than three groups, so the description is
	// synthesized and the amount is the captured column, not the balance.
	text := "Chase statement\n07/12 Card Purchase 07/13 ORCHARD SUPPLY 555-1234 CA 84123 -84.23 1,915.77"
	txns := e.Extract(text, bank.Chase)
	if len(txns) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1", len(txns))
	}
	if txns[0].Amount != "-84.23" {
		t.Errorf("Amount = %q, want -84.23 (not the running balance)", txns[0].Amount)
	}
	if txns[0].Description != "Transaction 1" {
		t.Errorf("Description = %q, want Transaction 1", txns[0].Description)
	}
}

func TestExtract_StripsCurrencyAndCommas(t *testing.T) {
	e := newTestExtractor(t)

	text := "01/05 PAYMENT TO LANDLORD -1,234.56"
	txns := e.Extract(text, bank.Generic)
	if len(txns) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1", len(txns))
	}
	if txns[0].Amount != "-1234.56" {
		t.Errorf("Amount = %q, want -1234.56", txns[0].Amount)
	}
	if _, err := txns[0].AmountValue(); err != nil {
		t.Errorf("cleaned amount must parse: %v", err)
	}
}

func TestExtract_UnknownIssuerUsesGenericTemplates(t *testing.T) {
	e := newTestExtractor(t)

	text := "02/01 NETFLIX.COM -15.49"
	txns := e.Extract(text, bank.Bank("somethingelse"))
	if len(txns) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1", len(txns))
	}
	if txns[0].Category != domain.CategorySubscriptions {
		t.Errorf("Category = %q, want %q", txns[0].Category, domain.CategorySubscriptions)
	}
}

func TestExtract_CategorizesCleanedDescription(t *testing.T) {
	e := newTestExtractor(t)

	// The raw capture carries a doubled space inside the keyword phrase.
	// Categorization must run on the collapsed description so "uber eats"
	// still matches as a delivery app instead of falling to "uber".
	text := "01/05 UBER  EATS ORDER -20.00"
	txns := e.Extract(text, bank.Generic)
	if len(txns) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1", len(txns))
	}
	if txns[0].Description != "UBER EATS ORDER" {
		t.Errorf("Description = %q, want UBER EATS ORDER", txns[0].Description)
	}
	if txns[0].Category != domain.CategoryFoodDelivery {
		t.Errorf("Category = %q, want %q", txns[0].Category, domain.CategoryFoodDelivery)
	}
}

func TestExtract_Empty(t *testing.T) {
	e := newTestExtractor(t)
	if txns := e.Extract("", bank.Generic); len(txns) != 0 {
		t.Errorf("Extract(\"\") returned %d transactions, want 0", len(txns))
	}
}

func TestExtract_LineFallback(t *testing.T) {
	e := newTestExtractor(t)

	// No whitespace after the date, so every template misses and the line
	// scan takes over. Summary lines are skipped, and the last amount on a
	// line wins so trailing running balances shadow nothing smaller.
	text := "01/05Beginning Balance 1,000.00\n" +
		"01/06COSTCO WHOLESALE 45.00 955.00\n" +
		"TOTAL 955.00\n" +
		"short 1/1"
	txns := e.Extract(text, bank.Generic)
	if len(txns) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1", len(txns))
	}
	if txns[0].Date != "01/06" {
		t.Errorf("Date = %q, want 01/06", txns[0].Date)
	}
	if txns[0].Amount != "955.00" {
		t.Errorf("Amount = %q, want 955.00 (last amount on the line)", txns[0].Amount)
	}
	if txns[0].Description != "COSTCO WHOLESALE" {
		t.Errorf("Description = %q, want COSTCO WHOLESALE", txns[0].Description)
	}
}

func TestExtract_LineFallbackRequiresTwoDigitDate(t *testing.T) {
	e := newTestExtractor(t)

	// The line scan only accepts MM/DD with both parts two digits wide.
	text := "1/06COSTCO WHOLESALE 45.00"
	if txns := e.Extract(text, bank.Generic); len(txns) != 0 {
		t.Errorf("Extract() returned %d transactions, want 0 for a single-digit date", len(txns))
	}
}

func TestNormalizeDescription(t *testing.T) {
	long := strings.Repeat("PAYEE ", 20)
	got := normalizeDescription(long, 0, bank.Generic)
	if len(got) != maxDescriptionLen {
		t.Errorf("len = %d, want %d", len(got), maxDescriptionLen)
	}

	if got := normalizeDescription("  POS   DEBIT\tSTORE ", 0, bank.Generic); got != "POS DEBIT STORE" {
		t.Errorf("whitespace collapse = %q, want POS DEBIT STORE", got)
	}

	if got := normalizeDescription(" ", 2, bank.Chase); got != "chase Transaction 3" {
		t.Errorf("placeholder = %q, want chase Transaction 3", got)
	}
}

func TestNormalizeDate(t *testing.T) {
	if got := normalizeDate("07/15/2026", 0); got != "07/15" {
		t.Errorf("normalizeDate = %q, want 07/15", got)
	}
	if got := normalizeDate("", 2); got != "03/01" {
		t.Errorf("synthetic date = %q, want 03/01", got)
	}
}
