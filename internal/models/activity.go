package models

const (
	ActivityKindText = "text"
	ActivityKindQuiz = "quiz"
)

type Activity struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ModuleID string `gorm:"size:36;not null;index" json:"module_id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Kind     string `gorm:"size:10;not null" json:"kind"`
	OrderNum int    `gorm:"not null;default:0" json:"order_num"`

	// Content is set for text activities, Questions for quizzes.
	Content   string     `gorm:"type:text" json:"content,omitempty"`
	Questions []Question `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}
