package collections_test

import (
	"encoding/json"
	"testing"

	"callcenter/catalog"
	"callcenter/collections"
	"callcenter/services"
	"callcenter/testhelpers"
)

func TestMigrateDefaultServiceConfig_SeedsEmptySlot(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.MigrateDefaultServiceConfig(app, "service_config", nil); err != nil {
		t.Fatalf("MigrateDefaultServiceConfig() error: %v", err)
	}

	var cfg services.ServiceConfig
	if err := json.Unmarshal([]byte(testhelpers.GetSlot(t, app, "service_config")), &cfg); err != nil {
		t.Fatalf("stored config is not valid JSON: %v", err)
	}
	for _, key := range catalog.ServiceKeys() {
		if !cfg.Enabled[key] {
			t.Errorf("expected %q enabled by default", key)
		}
	}
}

func TestMigrateDefaultServiceConfig_KeepsExisting(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	existing := `{"enabled":{"live_chat":false},"overrides":{}}`
	testhelpers.SetSlot(t, app, "service_config", existing)

	if err := collections.MigrateDefaultServiceConfig(app, "service_config", nil); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	if err := collections.MigrateDefaultServiceConfig(app, "service_config", nil); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	if got := testhelpers.GetSlot(t, app, "service_config"); got != existing {
		t.Errorf("slot was overwritten: %s", got)
	}
}
