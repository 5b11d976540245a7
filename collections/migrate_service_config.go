package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap"

	"callcenter/services"
	"callcenter/storage"
)

// MigrateDefaultServiceConfig writes an all-enabled service config into slot
// when nothing has been saved there yet. Safe to call on every startup.
func MigrateDefaultServiceConfig(app *pocketbase.PocketBase, slot string, logger *zap.Logger) error {
	store := services.NewServiceConfigStore(storage.NewRecordSlot(app, slot, logger), logger)

	empty, err := store.IsEmpty()
	if err != nil {
		return fmt.Errorf("migrate_service_config: %w", err)
	}
	if !empty {
		return nil
	}

	if err := store.Save(services.DefaultServiceConfig()); err != nil {
		return fmt.Errorf("migrate_service_config: %w", err)
	}
	if logger != nil {
		logger.Info("seeded default service config", zap.String("slot", slot))
	}
	return nil
}
