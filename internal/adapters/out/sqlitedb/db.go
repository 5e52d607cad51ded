// Package sqlitedb implements the durable on-device storage of the
// application over an embedded SQLite database accessed through GORM.
//
// The storage contract is deliberately simple: two independently keyed,
// string-valued records (see the recordstore package), written as whole
// units inside unit-of-work transactions so a committed mutation is also
// durable. No other process reads the database.
package sqlitedb

import (
	"freightmatch/internal/adapters/out/sqlitedb/recordstore"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens (creating if needed) the on-device SQLite database at the
// given path and migrates the records table. Use "file::memory:?cache=shared"
// for an ephemeral store in tests.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&recordstore.RecordDTO{}); err != nil {
		return nil, err
	}

	return db, nil
}
