package models

import "time"

// BaseModel is gorm.Model without the soft-delete column. Projects and
// tasks are removed with hard deletes, so they must not carry a
// DeletedAt tombstone.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
