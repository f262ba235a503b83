package models

type Subject struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	Name        string   `gorm:"size:255;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Icon        string   `gorm:"size:255" json:"icon,omitempty"`
	OrderNum    int      `gorm:"not null;default:0" json:"order_num"`
	Modules     []Module `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"modules,omitempty"`
}
