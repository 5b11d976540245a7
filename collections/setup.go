package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"callcenter/storage"
)

// QuoteRequestsCollection holds submissions of the public quote form.
const QuoteRequestsCollection = "quote_requests"

// Setup programmatically creates/ensures the storage_slots and quote_requests
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, storage.SlotsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "key", Required: true, Max: 100})
		c.Fields.Add(&core.TextField{Name: "value", Required: false, Max: 1 << 20})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_storage_slots_key", true, "`key`", "")
	})

	ensureCollection(app, QuoteRequestsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email", Required: true})
		c.Fields.Add(&core.TextField{Name: "company", Required: false})
		c.Fields.Add(&core.NumberField{Name: "hours_per_day", Required: true})
		c.Fields.Add(&core.NumberField{Name: "days_per_week", Required: true})
		c.Fields.Add(&core.NumberField{Name: "total_hours", Required: false})
		c.Fields.Add(&core.NumberField{Name: "base_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "discount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "vat", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"new", "contacted", "won", "lost"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
