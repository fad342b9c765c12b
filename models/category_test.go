package models

import "testing"

func TestCategoryLookups(t *testing.T) {
	if got := CategoryLabel("food_grocery"); got != "Alimentação - Mercado" {
		t.Errorf("CategoryLabel = %q", got)
	}
	if got := CategoryLabel("nonexistent"); got != "nonexistent" {
		t.Errorf("unknown key fallback = %q", got)
	}

	if got := CategoryColor("transport_fuel"); got != GroupColors["transport"] {
		t.Errorf("CategoryColor = %q", got)
	}
	if got := CategoryColor("nonexistent"); got != GroupColors["other"] {
		t.Errorf("unknown color fallback = %q", got)
	}
}

func TestEstimateCost(t *testing.T) {
	// gemini-2.5-flash-lite: 0.1 in / 0.4 out per million tokens.
	got := EstimateCost("gemini-2.5-flash-lite", 1_000_000, 1_000_000)
	if got != 0.5 {
		t.Errorf("EstimateCost = %v, want 0.5", got)
	}
	if got := EstimateCost("unknown-model", 100, 100); got != 0 {
		t.Errorf("unknown model cost = %v, want 0", got)
	}
}

func TestTransactionTypeValid(t *testing.T) {
	if !TransactionIncoming.Valid() || !TransactionOutgoing.Valid() {
		t.Error("canonical types reported invalid")
	}
	if TransactionType("sideways").Valid() {
		t.Error("arbitrary type reported valid")
	}
}
