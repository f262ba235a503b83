package models

type Module struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	SubjectID   string     `gorm:"size:36;not null;index" json:"subject_id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	OrderNum    int        `gorm:"not null;default:0" json:"order_num"`
	Activities  []Activity `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
}
