package models

import (
	"time"

	"gorm.io/gorm"
)

// DirectMessage is a private, two-party message row. Rows are append-only:
// nothing in the application edits or deletes them.
type DirectMessage struct {
	gorm.Model
	SenderID    uint      `gorm:"index;not null"`
	RecipientID uint      `gorm:"index;not null"`
	Text        string    `gorm:"type:text;not null"`
	Timestamp   time.Time `gorm:"autoCreateTime"`
}
