package services

import (
	"context"
	"log"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store"
)

// ContentService is the student-facing read path. Listing never fails from
// the caller's point of view: store faults are logged and an empty slice is
// returned so there is always something renderable.
type ContentService struct {
	content store.ContentRepository
}

func NewContentService(content store.ContentRepository) *ContentService {
	return &ContentService{content: content}
}

func (s *ContentService) ListSubjects(ctx context.Context) []models.Subject {
	subjects, err := s.content.ListSubjects(ctx)
	if err != nil {
		log.Printf("content: list subjects: %v", err)
		return []models.Subject{}
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}
	return subjects
}

func (s *ContentService) ListModules(ctx context.Context, subjectID string) []models.Module {
	modules, err := s.content.ListModules(ctx, subjectID)
	if err != nil {
		log.Printf("content: list modules of %s: %v", subjectID, err)
		return []models.Module{}
	}
	if modules == nil {
		modules = []models.Module{}
	}
	return modules
}

func (s *ContentService) ListActivities(ctx context.Context, subjectID, moduleID string) []models.Activity {
	activities, err := s.content.ListActivities(ctx, subjectID, moduleID)
	if err != nil {
		log.Printf("content: list activities of %s/%s: %v", subjectID, moduleID, err)
		return []models.Activity{}
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	return activities
}

// GetSubject and GetModule surface errors: navigation needs to know whether
// a referenced parent still exists.
func (s *ContentService) GetSubject(ctx context.Context, id string) (*models.Subject, error) {
	return s.content.GetSubject(ctx, id)
}

func (s *ContentService) GetModule(ctx context.Context, subjectID, moduleID string) (*models.Module, error) {
	return s.content.GetModule(ctx, subjectID, moduleID)
}

func (s *ContentService) GetActivity(ctx context.Context, subjectID, moduleID, activityID string) (*models.Activity, error) {
	return s.content.GetActivity(ctx, subjectID, moduleID, activityID)
}
