package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func wrap(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return &store.PersistenceError{Op: op, Err: err}
}

func orderByNum(db *gorm.DB) *gorm.DB {
	return db.Order("order_num ASC")
}

// --- Subjects ---

func (r *ContentRepository) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.WithContext(ctx).Order("order_num ASC").Find(&subjects).Error
	if err != nil {
		return nil, wrap("list subjects", err)
	}
	return subjects, nil
}

func (r *ContentRepository) GetSubject(ctx context.Context, id string) (*models.Subject, error) {
	var subject models.Subject
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&subject).Error; err != nil {
		return nil, wrap("get subject", err)
	}
	return &subject, nil
}

func (r *ContentRepository) CreateSubject(ctx context.Context, s *models.Subject) error {
	s.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return wrap("create subject", err)
	}
	return nil
}

func (r *ContentRepository) UpdateSubject(ctx context.Context, s *models.Subject) error {
	res := r.db.WithContext(ctx).Model(&models.Subject{}).Where("id = ?", s.ID).
		Select("name", "description", "icon", "order_num").
		Updates(s)
	if res.Error != nil {
		return wrap("update subject", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *ContentRepository) DeleteSubject(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Subject{})
	if res.Error != nil {
		return wrap("delete subject", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// --- Modules ---

func (r *ContentRepository) ListModules(ctx context.Context, subjectID string) ([]models.Module, error) {
	var modules []models.Module
	err := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).
		Order("order_num ASC").
		Find(&modules).Error
	if err != nil {
		return nil, wrap("list modules", err)
	}
	return modules, nil
}

func (r *ContentRepository) GetModule(ctx context.Context, subjectID, moduleID string) (*models.Module, error) {
	var module models.Module
	err := r.db.WithContext(ctx).Where("id = ? AND subject_id = ?", moduleID, subjectID).
		First(&module).Error
	if err != nil {
		return nil, wrap("get module", err)
	}
	return &module, nil
}

func (r *ContentRepository) CreateModule(ctx context.Context, m *models.Module) error {
	m.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return wrap("create module", err)
	}
	return nil
}

func (r *ContentRepository) UpdateModule(ctx context.Context, m *models.Module) error {
	res := r.db.WithContext(ctx).Model(&models.Module{}).
		Where("id = ? AND subject_id = ?", m.ID, m.SubjectID).
		Select("name", "description", "order_num").
		Updates(m)
	if res.Error != nil {
		return wrap("update module", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *ContentRepository) DeleteModule(ctx context.Context, subjectID, moduleID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND subject_id = ?", moduleID, subjectID).
		Delete(&models.Module{})
	if res.Error != nil {
		return wrap("delete module", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// --- Activities ---

func (r *ContentRepository) ListActivities(ctx context.Context, subjectID, moduleID string) ([]models.Activity, error) {
	if _, err := r.GetModule(ctx, subjectID, moduleID); err != nil {
		return nil, err
	}
	var activities []models.Activity
	err := r.db.WithContext(ctx).Where("module_id = ?", moduleID).
		Order("order_num ASC").
		Preload("Questions", orderByNum).
		Find(&activities).Error
	if err != nil {
		return nil, wrap("list activities", err)
	}
	return activities, nil
}

func (r *ContentRepository) GetActivity(ctx context.Context, subjectID, moduleID, activityID string) (*models.Activity, error) {
	if _, err := r.GetModule(ctx, subjectID, moduleID); err != nil {
		return nil, err
	}
	var activity models.Activity
	err := r.db.WithContext(ctx).Where("id = ? AND module_id = ?", activityID, moduleID).
		Preload("Questions", orderByNum).
		First(&activity).Error
	if err != nil {
		return nil, wrap("get activity", err)
	}
	return &activity, nil
}

func (r *ContentRepository) CreateActivity(ctx context.Context, a *models.Activity) error {
	a.ID = uuid.NewString()
	for i := range a.Questions {
		a.Questions[i].ID = uuid.NewString()
		a.Questions[i].ActivityID = a.ID
		a.Questions[i].OrderNum = i
	}

	tx := r.db.WithContext(ctx).Begin()
	questions := a.Questions
	a.Questions = nil
	if err := tx.Create(a).Error; err != nil {
		tx.Rollback()
		return wrap("create activity", err)
	}
	for i := range questions {
		if err := tx.Create(&questions[i]).Error; err != nil {
			tx.Rollback()
			return wrap("create question", err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return wrap("create activity", err)
	}
	a.Questions = questions
	return nil
}

// UpdateActivity replaces the full field set and rewrites the question rows
// wholesale inside one transaction.
func (r *ContentRepository) UpdateActivity(ctx context.Context, a *models.Activity) error {
	for i := range a.Questions {
		a.Questions[i].ID = uuid.NewString()
		a.Questions[i].ActivityID = a.ID
		a.Questions[i].OrderNum = i
	}

	tx := r.db.WithContext(ctx).Begin()
	res := tx.Model(&models.Activity{}).
		Where("id = ? AND module_id = ?", a.ID, a.ModuleID).
		Select("title", "kind", "order_num", "content").
		Updates(a)
	if res.Error != nil {
		tx.Rollback()
		return wrap("update activity", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return store.ErrNotFound
	}
	if err := tx.Where("activity_id = ?", a.ID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		return wrap("update activity", err)
	}
	for i := range a.Questions {
		if err := tx.Create(&a.Questions[i]).Error; err != nil {
			tx.Rollback()
			return wrap("update question", err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return wrap("update activity", err)
	}
	return nil
}

func (r *ContentRepository) DeleteActivity(ctx context.Context, subjectID, moduleID, activityID string) error {
	if _, err := r.GetModule(ctx, subjectID, moduleID); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Where("id = ? AND module_id = ?", activityID, moduleID).
		Delete(&models.Activity{})
	if res.Error != nil {
		return wrap("delete activity", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
