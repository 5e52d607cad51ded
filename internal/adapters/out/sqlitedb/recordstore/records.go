// Package recordstore defines the keyed string records underlying the
// durable storage: one record holds the serialized order collection, one
// the serialized carrier profile. Repositories serialize their whole unit
// as JSON and write it back after every mutation.
package recordstore

import (
	"errors"

	"gorm.io/gorm"
)

// Storage keys for the two durable records.
const (
	OrdersKey  = "orders"
	ProfileKey = "carrier_profile"
)

// RecordDTO is a single keyed string record in the store.
type RecordDTO struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// TableName overrides GORM's default naming convention.
func (RecordDTO) TableName() string {
	return "records"
}

// Read loads the value stored under key. The second return value is false
// when no record exists, which callers treat as an empty unit rather than
// an error.
func Read(db *gorm.DB, key string) (string, bool, error) {
	var dto RecordDTO
	err := db.First(&dto, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return dto.Value, true, nil
}

// Write upserts the value stored under key.
func Write(db *gorm.DB, key, value string) error {
	res := db.Model(&RecordDTO{}).Where("key = ?", key).Update("value", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return db.Create(&RecordDTO{Key: key, Value: value}).Error
	}
	return nil
}
