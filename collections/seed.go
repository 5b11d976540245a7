package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"callcenter/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type quoteRequestDef struct {
	name        string
	email       string
	company     string
	hoursPerDay string
	daysPerWeek string
	status      string
}

var demoQuoteRequests = []quoteRequestDef{
	{"Maria Jansen", "maria@harbourfreight.example", "Harbour Freight BV", "8", "5", "new"},
	{"Tom Verbeek", "tom@clinicplus.example", "ClinicPlus", "12", "6", "contacted"},
	{"Aisha Khan", "aisha@nightowl.example", "Night Owl Hosting", "24", "7", "won"},
}

// Seed inserts demo quote requests so the admin views have something to
// show. It does nothing when the collection already holds records.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId(QuoteRequestsCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find %s collection: %w", QuoteRequestsCollection, err)
	}

	existing, err := app.FindRecordsByFilter(col, "id != ''", "", 1, 0)
	if err != nil {
		return fmt.Errorf("seed: could not query %s: %w", QuoteRequestsCollection, err)
	}
	if len(existing) > 0 {
		log.Println("Seed data already exists, skipping.")
		return nil
	}

	for _, def := range demoQuoteRequests {
		q := services.CalculateSimpleQuote(def.hoursPerDay, def.daysPerWeek)
		if q == nil {
			return fmt.Errorf("seed: invalid demo quote %sx%s", def.hoursPerDay, def.daysPerWeek)
		}

		rec := core.NewRecord(col)
		rec.Set("name", def.name)
		rec.Set("email", def.email)
		rec.Set("company", def.company)
		rec.Set("hours_per_day", q.HoursPerDay)
		rec.Set("days_per_week", q.DaysPerWeek)
		rec.Set("total_hours", q.TotalHours)
		rec.Set("base_price", q.BasePrice)
		rec.Set("discount", q.Discount)
		rec.Set("vat", q.VAT)
		rec.Set("total", q.Total)
		rec.Set("status", def.status)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: save quote request for %s: %w", def.email, err)
		}
	}

	fmt.Printf("Seeded %d demo quote requests\n", len(demoQuoteRequests))
	return nil
}
