package services

import (
	"errors"
	"testing"

	"callcenter/catalog"
	"callcenter/storage"
)

func TestServiceLabel_Fallbacks(t *testing.T) {
	cfg := ServiceConfig{
		Overrides: map[catalog.ServiceKey]ServiceOverride{
			catalog.LiveChat:  {Name: "Web Chat"},
			catalog.Analytics: {Description: "Dashboards"},
		},
	}
	tests := []struct {
		key      catalog.ServiceKey
		wantName string
		wantDesc string
	}{
		{catalog.LiveChat, "Web Chat", "Website and in-app chat staffed by trained agents."},
		{catalog.Analytics, "Analytics", "Dashboards"},
		{catalog.EmailSupport, "Email Support", "Shared inbox triage with response-time targets."},
		{"mystery", "mystery", ""},
	}
	for _, tt := range tests {
		if got := ServiceLabel(cfg, tt.key); got != tt.wantName {
			t.Errorf("ServiceLabel(%q) = %q, want %q", tt.key, got, tt.wantName)
		}
		if got := ServiceDescription(cfg, tt.key); got != tt.wantDesc {
			t.Errorf("ServiceDescription(%q) = %q, want %q", tt.key, got, tt.wantDesc)
		}
	}
}

func TestIsServiceEnabled(t *testing.T) {
	cfg := ServiceConfig{Enabled: map[catalog.ServiceKey]bool{catalog.LiveChat: false}}

	if IsServiceEnabled(cfg, catalog.LiveChat) {
		t.Error("live_chat explicitly disabled, got enabled")
	}
	if !IsServiceEnabled(cfg, catalog.Analytics) {
		t.Error("analytics has no flag, should default to enabled")
	}
	if IsServiceEnabled(cfg, "mystery") {
		t.Error("unknown service should not be enabled")
	}
	if n := len(EnabledServices(cfg)); n != len(catalog.Services)-1 {
		t.Errorf("EnabledServices len = %d, want %d", n, len(catalog.Services)-1)
	}
}

func TestServiceConfigStore_RoundTrip(t *testing.T) {
	slot := storage.NewMemorySlot(nil)
	store := NewServiceConfigStore(slot, nil)

	empty, err := store.IsEmpty()
	if err != nil || !empty {
		t.Fatalf("IsEmpty() = %v, %v; want true, nil", empty, err)
	}

	cfg := DefaultServiceConfig()
	cfg.Enabled[catalog.OutboundSales] = false
	cfg.Overrides[catalog.LiveChat] = ServiceOverride{Name: "Web Chat"}
	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got := store.Load()
	if got.Enabled[catalog.OutboundSales] {
		t.Error("outbound_sales should be disabled after reload")
	}
	if got.Overrides[catalog.LiveChat].Name != "Web Chat" {
		t.Errorf("override = %+v", got.Overrides[catalog.LiveChat])
	}
}

func TestServiceConfigStore_CorruptOrFailingSlot(t *testing.T) {
	corrupt := NewServiceConfigStore(storage.NewMemorySlot([]byte("nope")), nil)
	cfg := corrupt.Load()
	if cfg.Enabled == nil || cfg.Overrides == nil {
		t.Fatal("expected empty, non-nil maps")
	}
	if !IsServiceEnabled(cfg, catalog.LiveChat) {
		t.Error("corrupt config should fall back to catalog defaults")
	}

	failing := NewServiceConfigStore(storage.SlotFuncs{
		LoadFunc: func() ([]byte, error) { return nil, errors.New("boom") },
		SaveFunc: func([]byte) error { return errors.New("boom") },
	}, nil)
	if ServiceLabel(failing.Load(), catalog.LiveChat) != "Live Chat" {
		t.Error("failing slot should fall back to catalog labels")
	}
	if err := failing.Save(DefaultServiceConfig()); err == nil {
		t.Error("expected Save error from failing slot")
	}
}
