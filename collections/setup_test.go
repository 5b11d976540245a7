package collections_test

import (
	"testing"

	"callcenter/collections"
	"callcenter/storage"
	"callcenter/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	storage.SlotsCollection,
	collections.QuoteRequestsCollection,
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_StorageSlotsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId(storage.SlotsCollection)

	for _, f := range []string{"key", "value", "created", "updated"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("storage_slots: missing field %q", f)
		}
	}

	if len(col.Indexes) == 0 {
		t.Error("storage_slots: expected a unique index on key")
	}
}

func TestSetup_QuoteRequestsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId(collections.QuoteRequestsCollection)

	fields := []string{"name", "email", "company", "hours_per_day", "days_per_week", "total_hours",
		"base_price", "discount", "vat", "total", "status", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("quote_requests: missing field %q", f)
		}
	}

	if _, ok := col.Fields.GetByName("email").(*core.EmailField); !ok {
		t.Error("quote_requests.email is not an EmailField")
	}

	statusField := col.Fields.GetByName("status")
	if sf, ok := statusField.(*core.SelectField); ok {
		expected := map[string]bool{"new": true, "contacted": true, "won": true, "lost": true}
		for _, v := range sf.Values {
			if !expected[v] {
				t.Errorf("unexpected status value: %q", v)
			}
			delete(expected, v)
		}
		for v := range expected {
			t.Errorf("missing status value: %q", v)
		}
	} else {
		t.Errorf("status field is not a SelectField")
	}
}

func TestSetup_StorageSlotKeyIsUnique(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId(storage.SlotsCollection)

	first := core.NewRecord(col)
	first.Set("key", "dup")
	if err := app.Save(first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := core.NewRecord(col)
	second.Set("key", "dup")
	if err := app.Save(second); err == nil {
		t.Error("expected duplicate key to be rejected")
	}
}
