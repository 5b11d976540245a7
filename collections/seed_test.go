package collections_test

import (
	"math"
	"testing"

	"callcenter/collections"
	"callcenter/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	col, _ := app.FindCollectionByNameOrId(collections.QuoteRequestsCollection)
	records, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("query quote requests error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 quote requests, got %d", len(records))
	}

	nightOwl := testhelpers.FindQuoteRequests(t, app, "aisha@nightowl.example")
	if len(nightOwl) != 1 {
		t.Fatalf("expected 1 Night Owl request, got %d", len(nightOwl))
	}
	if got := nightOwl[0].GetFloat("total"); math.Abs(got-20490.62) > 0.001 {
		t.Errorf("24x7 total = %v, want 20490.62", got)
	}
	if got := nightOwl[0].GetInt("total_hours"); got != 672 {
		t.Errorf("total_hours = %d, want 672", got)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	col, _ := app.FindCollectionByNameOrId(collections.QuoteRequestsCollection)
	records, _ := app.FindAllRecords(col)
	if len(records) != 3 {
		t.Errorf("expected 3 quote requests after two runs, got %d", len(records))
	}
}
