package models

type Project struct {
	BaseModel

	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	OwnerID     uint   `gorm:"not null;index"`

	// Relationships
	Owner User   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
