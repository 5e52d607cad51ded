package sqlitedb

import (
	"context"
	"encoding/json"
	"os"

	"freightmatch/internal/adapters/out/sqlitedb/recordstore"

	"gorm.io/gorm"
)

// SnapshotExporter writes a best-effort mirror of the durable records to a
// plain JSON file. The snapshot is purely a convenience for inspection and
// recovery; the database remains the authoritative store.
type SnapshotExporter struct {
	db *gorm.DB
}

// NewSnapshotExporter creates an exporter over the given database.
func NewSnapshotExporter(db *gorm.DB) *SnapshotExporter {
	return &SnapshotExporter{db: db}
}

// Export dumps every record as a key-to-document JSON object at path,
// replacing any previous snapshot atomically via a rename.
func (e *SnapshotExporter) Export(ctx context.Context, path string) error {
	var records []recordstore.RecordDTO
	if err := e.db.WithContext(ctx).Find(&records).Error; err != nil {
		return err
	}

	snapshot := make(map[string]json.RawMessage, len(records))
	for _, rec := range records {
		snapshot[rec.Key] = json.RawMessage(rec.Value)
	}

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
