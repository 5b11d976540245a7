package storage_test

import (
	"errors"
	"testing"

	"callcenter/storage"
	"callcenter/testhelpers"
)

func TestMemorySlot_LoadEmpty(t *testing.T) {
	s := storage.NewMemorySlot(nil)
	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil data from empty slot, got %q", data)
	}
}

func TestMemorySlot_SaveCopiesInput(t *testing.T) {
	s := storage.NewMemorySlot(nil)
	buf := []byte(`{"a":1}`)
	if err := s.Save(buf); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	buf[2] = 'X'

	got, _ := s.Load()
	if string(got) != `{"a":1}` {
		t.Errorf("slot changed through caller's buffer: %q", got)
	}

	got[0] = 'Y'
	again, _ := s.Load()
	if string(again) != `{"a":1}` {
		t.Errorf("slot changed through loaded buffer: %q", again)
	}
	if s.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", s.Saves())
	}
}

func TestSlotFuncs_NilFuncs(t *testing.T) {
	var f storage.SlotFuncs
	data, err := f.Load()
	if err != nil || data != nil {
		t.Errorf("nil LoadFunc: got (%q, %v), want (nil, nil)", data, err)
	}
	if err := f.Save([]byte("x")); err != nil {
		t.Errorf("nil SaveFunc: unexpected error %v", err)
	}
}

func TestSlotFuncs_PassesErrors(t *testing.T) {
	boom := errors.New("boom")
	f := storage.SlotFuncs{
		LoadFunc: func() ([]byte, error) { return nil, boom },
		SaveFunc: func([]byte) error { return boom },
	}
	if _, err := f.Load(); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want boom", err)
	}
	if err := f.Save(nil); !errors.Is(err, boom) {
		t.Errorf("Save() error = %v, want boom", err)
	}
}

func TestRecordSlot_RoundTrip(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := storage.NewRecordSlot(app, "client_profile", nil)

	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on missing slot error: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil for missing slot, got %q", data)
	}

	if err := s.Save([]byte(`{"v":1}`)); err != nil {
		t.Fatalf("first Save() error: %v", err)
	}
	if err := s.Save([]byte(`{"v":2}`)); err != nil {
		t.Fatalf("second Save() error: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("Load() = %q, want latest value", got)
	}

	col, _ := app.FindCollectionByNameOrId(storage.SlotsCollection)
	records, _ := app.FindAllRecords(col)
	if len(records) != 1 {
		t.Errorf("expected one record per slot, got %d", len(records))
	}
}

func TestRecordSlot_KeysAreIndependent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	a := storage.NewRecordSlot(app, "openai_api_key", nil)
	b := storage.NewRecordSlot(app, "gemini_api_key", nil)

	if err := a.Save([]byte("sk-a")); err != nil {
		t.Fatalf("Save(a) error: %v", err)
	}
	if got := testhelpers.GetSlot(t, app, "gemini_api_key"); got != "" {
		t.Errorf("gemini slot = %q, want empty", got)
	}
	if err := b.Save([]byte("g-b")); err != nil {
		t.Fatalf("Save(b) error: %v", err)
	}
	if got := testhelpers.GetSlot(t, app, "openai_api_key"); got != "sk-a" {
		t.Errorf("openai slot = %q, want sk-a", got)
	}
	if a.Key() != "openai_api_key" {
		t.Errorf("Key() = %q", a.Key())
	}
}
