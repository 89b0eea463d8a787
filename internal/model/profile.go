package model

import (
	"time"
)

// Profile mirrors the auth provider's user profile. Only the membership flag
// is read here.
type Profile struct {
	ID        string    `gorm:"primarykey;size:64" json:"id"`
	Email     string    `json:"email,omitempty"`
	IsVIP     bool      `json:"is_vip" gorm:"column:is_vip;not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
