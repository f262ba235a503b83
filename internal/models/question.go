package models

import "github.com/lib/pq"

// QuestionOptionCount is fixed: every quiz question offers exactly three choices.
const QuestionOptionCount = 3

type Question struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	ActivityID   string         `gorm:"size:36;not null;index" json:"activity_id"`
	Prompt       string         `gorm:"type:text;not null" json:"prompt"`
	Options      pq.StringArray `gorm:"type:text[];not null" json:"options"`
	CorrectIndex int            `gorm:"not null" json:"correct_index"`
	OrderNum     int            `gorm:"not null;default:0" json:"order_num"`
}
