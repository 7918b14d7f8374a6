package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ImageURLs is stored as a text[] column on Postgres and as the same array
// literal in a text column elsewhere. The URLs are not interpreted.
type ImageURLs []string

func (u ImageURLs) Value() (driver.Value, error) {
	if u == nil {
		u = ImageURLs{}
	}
	return pq.StringArray(u).Value()
}

func (u *ImageURLs) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*u = ImageURLs(arr)
	return nil
}

// GormDBDataType picks the column type per dialect.
func (ImageURLs) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
