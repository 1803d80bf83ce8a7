package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Country      string
	PasswordHash string `gorm:"not null"`

	// Relationships
	Projects []Project `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
