package models

import (
	"time"

	"gorm.io/gorm"
)

type ThreadMessage struct {
	gorm.Model
	SenderID  uint      `gorm:"index;not null"`
	ThreadID  uint      `gorm:"index;not null"`
	Text      string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"autoCreateTime"`
}
