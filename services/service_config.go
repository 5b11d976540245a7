package services

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"callcenter/catalog"
	"callcenter/storage"
)

// ServiceOverride replaces the catalog name and/or description of a service.
type ServiceOverride struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ServiceConfig is the admin's enable/override record for the catalog.
type ServiceConfig struct {
	Enabled   map[catalog.ServiceKey]bool            `json:"enabled"`
	Overrides map[catalog.ServiceKey]ServiceOverride `json:"overrides"`
}

// DefaultServiceConfig enables every catalog service with no overrides.
func DefaultServiceConfig() ServiceConfig {
	cfg := ServiceConfig{
		Enabled:   make(map[catalog.ServiceKey]bool, len(catalog.Services)),
		Overrides: map[catalog.ServiceKey]ServiceOverride{},
	}
	for _, s := range catalog.Services {
		cfg.Enabled[s.Key] = true
	}
	return cfg
}

// ServiceLabel returns the override name, else the catalog name, else the key.
func ServiceLabel(cfg ServiceConfig, key catalog.ServiceKey) string {
	if o, ok := cfg.Overrides[key]; ok && o.Name != "" {
		return o.Name
	}
	if s, ok := catalog.LookupService(key); ok {
		return s.Name
	}
	return string(key)
}

// ServiceDescription returns the override description, else the catalog one.
func ServiceDescription(cfg ServiceConfig, key catalog.ServiceKey) string {
	if o, ok := cfg.Overrides[key]; ok && o.Description != "" {
		return o.Description
	}
	if s, ok := catalog.LookupService(key); ok {
		return s.Description
	}
	return ""
}

// IsServiceEnabled returns the admin flag, defaulting to enabled when no flag
// has been set for a catalog service. Unknown keys are never enabled.
func IsServiceEnabled(cfg ServiceConfig, key catalog.ServiceKey) bool {
	if enabled, ok := cfg.Enabled[key]; ok {
		return enabled
	}
	return catalog.IsKnownService(key)
}

// EnabledServices returns the enabled catalog entries in display order.
func EnabledServices(cfg ServiceConfig) []catalog.Service {
	var out []catalog.Service
	for _, s := range catalog.Services {
		if IsServiceEnabled(cfg, s.Key) {
			out = append(out, s)
		}
	}
	return out
}

// ServiceConfigStore reads and writes the ServiceConfig slot.
type ServiceConfigStore struct {
	slot   storage.Slot
	logger *zap.Logger
}

func NewServiceConfigStore(slot storage.Slot, logger *zap.Logger) *ServiceConfigStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceConfigStore{slot: slot, logger: logger}
}

// Load returns the stored config. An empty, unreadable or corrupt slot yields
// an empty config, which the lookup helpers resolve from the catalog.
func (s *ServiceConfigStore) Load() ServiceConfig {
	cfg := ServiceConfig{
		Enabled:   map[catalog.ServiceKey]bool{},
		Overrides: map[catalog.ServiceKey]ServiceOverride{},
	}
	data, err := s.slot.Load()
	if err != nil {
		s.logger.Warn("service config: could not read slot", zap.Error(err))
		return cfg
	}
	if len(data) == 0 {
		return cfg
	}
	var stored ServiceConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.Warn("service config: stored config unreadable", zap.Error(err))
		return cfg
	}
	if stored.Enabled != nil {
		cfg.Enabled = stored.Enabled
	}
	if stored.Overrides != nil {
		cfg.Overrides = stored.Overrides
	}
	return cfg
}

// IsEmpty reports whether nothing has been saved yet.
func (s *ServiceConfigStore) IsEmpty() (bool, error) {
	data, err := s.slot.Load()
	if err != nil {
		return false, fmt.Errorf("service config: load: %w", err)
	}
	return len(data) == 0, nil
}

func (s *ServiceConfigStore) Save(cfg ServiceConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("service config: encode: %w", err)
	}
	if err := s.slot.Save(data); err != nil {
		return fmt.Errorf("service config: save: %w", err)
	}
	return nil
}
