package models

import (
	"time"

	"gorm.io/gorm"
)

// Thread is a named discussion topic. Title uniqueness is enforced by the
// database index, which is the source of truth under concurrent creates.
// CreatedOn is deliberately day-granular (a DATE column, not a timestamp).
type Thread struct {
	gorm.Model
	Title     string    `gorm:"uniqueIndex;size:255;not null"`
	CreatedOn time.Time `gorm:"type:date;not null"`
}
