package domain

import (
	"testing"
)

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategorySalary, true},
		{CategoryCoffee, true},
		{CategoryGeneralExpenses, true},
		{Category("groceries"), false},
		{Category(""), false},
		{Category("Coffee"), false}, // keys are case-sensitive
	}

	for _, tt := range tests {
		if got := ValidateCategory(tt.category); got != tt.want {
			t.Errorf("ValidateCategory(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestAmountValue(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		want    float64
		wantErr bool
	}{
		{"negative expense", "-5.75", -5.75, false},
		{"positive income", "2500.00", 2500.00, false},
		{"no decimals", "42", 42, false},
		{"empty", "", 0, true},
		{"currency symbol not stripped here", "$5.75", 0, true},
		{"not a number", "five", 0, true},
		{"nan", "NaN", 0, true},
		{"infinity", "Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{Amount: tt.amount}
			got, err := txn.AmountValue()
			if (err != nil) != tt.wantErr {
				t.Fatalf("AmountValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("AmountValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthToken(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    int
		wantErr bool
	}{
		{"standard", "07/15", 7, false},
		{"single digit month", "7/15", 7, false},
		{"december", "12/01", 12, false},
		{"zero month", "00/15", 0, true},
		{"month too large", "13/01", 0, true},
		{"no separator", "0715", 0, true},
		{"not numeric", "ab/15", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{Date: tt.date}
			got, err := txn.MonthToken()
			if (err != nil) != tt.wantErr {
				t.Fatalf("MonthToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("MonthToken() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeverityRank(t *testing.T) {
	if SeverityCritical.Rank() <= SeverityWarning.Rank() {
		t.Error("critical must outrank warning")
	}
	if SeverityWarning.Rank() <= SeverityInfo.Rank() {
		t.Error("warning must outrank info")
	}
	if Severity("bogus").Rank() >= SeverityInfo.Rank() {
		t.Error("unknown severity must rank below info")
	}
}
