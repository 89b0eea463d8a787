package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	Type        string         `json:"type" gorm:"not null;default:'choice';index"` // "choice", "essay"
	Options     string         `json:"options" gorm:"type:text"`                     // JSON array, sometimes double-encoded on import
	Answer      string         `json:"answer" gorm:"type:text"`
	Explanation string         `json:"explanation,omitempty" gorm:"type:text"`
	Subject     string         `json:"subject" gorm:"index"`
	Year        string         `json:"year" gorm:"index"`
	Tags        string         `json:"tags" gorm:"type:text"` // JSON array of strings
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
