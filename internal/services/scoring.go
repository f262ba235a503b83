package services

import (
	"context"
	"log"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store"
)

type QuizResult struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ScoringService grades quiz submissions and credits the result to the
// student's running score.
type ScoringService struct {
	users store.UserRepository
}

func NewScoringService(users store.UserRepository) *ScoringService {
	return &ScoringService{users: users}
}

// Grade counts the questions whose selected option matches the correct
// index. Selections are keyed by question position; an absent key means the
// question was left unanswered and never counts as correct.
func (s *ScoringService) Grade(questions []models.Question, selections map[int]int) QuizResult {
	result := QuizResult{Total: len(questions)}
	for i, q := range questions {
		selected, answered := selections[i]
		if answered && selected == q.CorrectIndex {
			result.Correct++
		}
	}
	return result
}

// Submit grades a quiz activity and adds the correct count to the user's
// score. A failed score write does not invalidate the result shown to the
// student; it is logged and dropped.
func (s *ScoringService) Submit(ctx context.Context, userID string, activity *models.Activity, selections map[int]int) (QuizResult, error) {
	if activity.Kind != models.ActivityKindQuiz {
		return QuizResult{}, validationErrorf("activity is not a quiz")
	}
	result := s.Grade(activity.Questions, selections)
	if result.Correct > 0 {
		if err := s.users.AddScore(ctx, userID, result.Correct); err != nil {
			log.Printf("scoring: score update failed for %s: %v", userID, err)
		}
	}
	return result, nil
}
