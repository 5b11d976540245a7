package catalog

import "testing"

func TestLookupService(t *testing.T) {
	tests := []struct {
		key     ServiceKey
		wantOK  bool
		wantFee float64
	}{
		{AIAgentCalling, true, 600},
		{LiveChat, true, 300},
		{Analytics, true, 250},
		{"fax_relay", false, 0},
		{"", false, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			s, ok := LookupService(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("LookupService(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if s.MonthlyFee != tt.wantFee {
				t.Errorf("MonthlyFee = %v, want %v", s.MonthlyFee, tt.wantFee)
			}
		})
	}
}

func TestServiceKeys_MatchesCatalogOrder(t *testing.T) {
	keys := ServiceKeys()
	if len(keys) != len(Services) {
		t.Fatalf("len = %d, want %d", len(keys), len(Services))
	}
	for i, k := range keys {
		if k != Services[i].Key {
			t.Errorf("keys[%d] = %q, want %q", i, k, Services[i].Key)
		}
	}
}

func TestFilterKnownServices(t *testing.T) {
	got := FilterKnownServices([]ServiceKey{LiveChat, "bogus", LiveChat, Analytics})
	want := []ServiceKey{LiveChat, Analytics}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseTier(t *testing.T) {
	if tier, ok := ParseTier("professional"); !ok || tier != TierProfessional {
		t.Errorf("ParseTier(professional) = %q, %v", tier, ok)
	}
	if _, ok := ParseTier("platinum"); ok {
		t.Error("ParseTier(platinum) should not be ok")
	}
	info, ok := LookupTier(TierProfessional)
	if !ok || info.PlatformFee != 1299 || info.SetupFee != 1200 {
		t.Errorf("professional tier = %+v", info)
	}
}
