package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store"
)

// AdminService is the write path of the content tree. Every input is
// validated before a single store call is made.
type AdminService struct {
	content  store.ContentRepository
	validate *validator.Validate
}

func NewAdminService(content store.ContentRepository) *AdminService {
	return &AdminService{content: content, validate: validator.New()}
}

// OrderNum is pointer-typed in every input: zero is a legal display order,
// so "required" must mean "present", not "non-zero".
type SubjectInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	OrderNum    *int   `json:"order_num" validate:"required"`
}

type ModuleInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	OrderNum    *int   `json:"order_num" validate:"required"`
}

type QuestionInput struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correct_index"`
}

type ActivityInput struct {
	Title     string          `json:"title" validate:"required"`
	Kind      string          `json:"kind" validate:"required,oneof=text quiz"`
	OrderNum  *int            `json:"order_num" validate:"required"`
	Content   string          `json:"content"`
	Questions []QuestionInput `json:"questions"`
}

// --- Subjects ---

func (s *AdminService) CreateSubject(ctx context.Context, in SubjectInput) (*models.Subject, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationErrorf("name and display order are required")
	}
	subject := models.Subject{
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		OrderNum:    *in.OrderNum,
	}
	if err := s.content.CreateSubject(ctx, &subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *AdminService) UpdateSubject(ctx context.Context, id string, in SubjectInput) (*models.Subject, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationErrorf("name and display order are required")
	}
	subject := models.Subject{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		OrderNum:    *in.OrderNum,
	}
	if err := s.content.UpdateSubject(ctx, &subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

// DeleteSubject removes the subject and, by design, everything beneath it.
func (s *AdminService) DeleteSubject(ctx context.Context, id string) error {
	return s.content.DeleteSubject(ctx, id)
}

// --- Modules ---

func (s *AdminService) CreateModule(ctx context.Context, subjectID string, in ModuleInput) (*models.Module, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationErrorf("name and display order are required")
	}
	if _, err := s.content.GetSubject(ctx, subjectID); err != nil {
		return nil, err
	}
	module := models.Module{
		SubjectID:   subjectID,
		Name:        in.Name,
		Description: in.Description,
		OrderNum:    *in.OrderNum,
	}
	if err := s.content.CreateModule(ctx, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (s *AdminService) UpdateModule(ctx context.Context, subjectID, moduleID string, in ModuleInput) (*models.Module, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationErrorf("name and display order are required")
	}
	module := models.Module{
		ID:          moduleID,
		SubjectID:   subjectID,
		Name:        in.Name,
		Description: in.Description,
		OrderNum:    *in.OrderNum,
	}
	if err := s.content.UpdateModule(ctx, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (s *AdminService) DeleteModule(ctx context.Context, subjectID, moduleID string) error {
	return s.content.DeleteModule(ctx, subjectID, moduleID)
}

// --- Activities ---

func (s *AdminService) CreateActivity(ctx context.Context, subjectID, moduleID string, in ActivityInput) (*models.Activity, error) {
	activity, err := s.buildActivity(moduleID, in)
	if err != nil {
		return nil, err
	}
	if _, err := s.content.GetModule(ctx, subjectID, moduleID); err != nil {
		return nil, err
	}
	if err := s.content.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *AdminService) UpdateActivity(ctx context.Context, subjectID, moduleID, activityID string, in ActivityInput) (*models.Activity, error) {
	activity, err := s.buildActivity(moduleID, in)
	if err != nil {
		return nil, err
	}
	if _, err := s.content.GetModule(ctx, subjectID, moduleID); err != nil {
		return nil, err
	}
	activity.ID = activityID
	if err := s.content.UpdateActivity(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *AdminService) DeleteActivity(ctx context.Context, subjectID, moduleID, activityID string) error {
	return s.content.DeleteActivity(ctx, subjectID, moduleID, activityID)
}

func (s *AdminService) buildActivity(moduleID string, in ActivityInput) (*models.Activity, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationErrorf("title, display order and kind are required")
	}

	activity := models.Activity{
		ModuleID: moduleID,
		Title:    in.Title,
		Kind:     in.Kind,
		OrderNum: *in.OrderNum,
	}

	switch in.Kind {
	case models.ActivityKindText:
		activity.Content = in.Content
	case models.ActivityKindQuiz:
		questions, err := buildQuestions(in.Questions)
		if err != nil {
			return nil, err
		}
		activity.Questions = questions
	}
	return &activity, nil
}

// buildQuestions enforces the quiz shape: every question carries a prompt,
// exactly three non-empty options and a correct index among them.
func buildQuestions(inputs []QuestionInput) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(inputs))
	for _, in := range inputs {
		if in.Prompt == "" || len(in.Options) != models.QuestionOptionCount || in.CorrectIndex == nil {
			return nil, validationErrorf("fill all fields of all questions")
		}
		for _, opt := range in.Options {
			if opt == "" {
				return nil, validationErrorf("fill all fields of all questions")
			}
		}
		if *in.CorrectIndex < 0 || *in.CorrectIndex >= models.QuestionOptionCount {
			return nil, validationErrorf("fill all fields of all questions")
		}
		questions = append(questions, models.Question{
			Prompt:       in.Prompt,
			Options:      append([]string(nil), in.Options...),
			CorrectIndex: *in.CorrectIndex,
		})
	}
	return questions, nil
}
