package storage

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// SlotsCollection is the PocketBase collection backing RecordSlot.
const SlotsCollection = "storage_slots"

// RecordSlot stores a slot as one storage_slots record keyed by name.
type RecordSlot struct {
	app    core.App
	key    string
	logger *zap.Logger
}

// NewRecordSlot returns a slot bound to key. A nil logger is replaced by a no-op.
func NewRecordSlot(app core.App, key string, logger *zap.Logger) *RecordSlot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordSlot{app: app, key: key, logger: logger}
}

// Key returns the slot name.
func (s *RecordSlot) Key() string { return s.key }

func (s *RecordSlot) find() (*core.Record, error) {
	col, err := s.app.FindCollectionByNameOrId(SlotsCollection)
	if err != nil {
		return nil, fmt.Errorf("storage: find %s collection: %w", SlotsCollection, err)
	}
	records, err := s.app.FindRecordsByFilter(col, "key = {:key}", "", 1, 0, map[string]any{"key": s.key})
	if err != nil {
		return nil, fmt.Errorf("storage: query slot %q: %w", s.key, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (s *RecordSlot) Load() ([]byte, error) {
	rec, err := s.find()
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return []byte(rec.GetString("value")), nil
}

func (s *RecordSlot) Save(data []byte) error {
	rec, err := s.find()
	if err != nil {
		return err
	}
	if rec == nil {
		col, err := s.app.FindCollectionByNameOrId(SlotsCollection)
		if err != nil {
			return fmt.Errorf("storage: find %s collection: %w", SlotsCollection, err)
		}
		rec = core.NewRecord(col)
		rec.Set("key", s.key)
		s.logger.Debug("creating slot record", zap.String("slot", s.key))
	}
	rec.Set("value", string(data))
	if err := s.app.Save(rec); err != nil {
		return fmt.Errorf("storage: save slot %q: %w", s.key, err)
	}
	return nil
}
