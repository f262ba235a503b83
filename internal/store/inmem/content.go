package inmem

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store"
)

type ContentRepository struct {
	db *DB
}

func NewContentRepository(db *DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// --- Subjects ---

func (r *ContentRepository) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if err := r.db.failing(); err != nil {
		return nil, &store.PersistenceError{Op: "list subjects", Err: err}
	}
	subjects := append([]models.Subject(nil), r.db.subjects...)
	sort.SliceStable(subjects, func(i, j int) bool {
		return subjects[i].OrderNum < subjects[j].OrderNum
	})
	return subjects, nil
}

func (r *ContentRepository) GetSubject(ctx context.Context, id string) (*models.Subject, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if err := r.db.failing(); err != nil {
		return nil, &store.PersistenceError{Op: "get subject", Err: err}
	}
	return r.findSubject(id)
}

func (r *ContentRepository) findSubject(id string) (*models.Subject, error) {
	for _, s := range r.db.subjects {
		if s.ID == id {
			subject := s
			return &subject, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *ContentRepository) CreateSubject(ctx context.Context, s *models.Subject) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "create subject", Err: err}
	}
	s.ID = uuid.NewString()
	r.db.subjects = append(r.db.subjects, *s)
	return nil
}

func (r *ContentRepository) UpdateSubject(ctx context.Context, s *models.Subject) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "update subject", Err: err}
	}
	for i := range r.db.subjects {
		if r.db.subjects[i].ID == s.ID {
			r.db.subjects[i] = *s
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *ContentRepository) DeleteSubject(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "delete subject", Err: err}
	}
	for i := range r.db.subjects {
		if r.db.subjects[i].ID == id {
			r.db.subjects = append(r.db.subjects[:i], r.db.subjects[i+1:]...)
			r.dropModulesOf(id)
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *ContentRepository) dropModulesOf(subjectID string) {
	kept := r.db.modules[:0]
	for _, m := range r.db.modules {
		if m.SubjectID == subjectID {
			r.dropActivitiesOf(m.ID)
			continue
		}
		kept = append(kept, m)
	}
	r.db.modules = kept
}

func (r *ContentRepository) dropActivitiesOf(moduleID string) {
	kept := r.db.activities[:0]
	for _, a := range r.db.activities {
		if a.ModuleID != moduleID {
			kept = append(kept, a)
		}
	}
	r.db.activities = kept
}

// --- Modules ---

func (r *ContentRepository) ListModules(ctx context.Context, subjectID string) ([]models.Module, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if err := r.db.failing(); err != nil {
		return nil, &store.PersistenceError{Op: "list modules", Err: err}
	}
	modules := []models.Module{}
	for _, m := range r.db.modules {
		if m.SubjectID == subjectID {
			modules = append(modules, m)
		}
	}
	sort.SliceStable(modules, func(i, j int) bool {
		return modules[i].OrderNum < modules[j].OrderNum
	})
	return modules, nil
}

func (r *ContentRepository) GetModule(ctx context.Context, subjectID, moduleID string) (*models.Module, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if err := r.db.failing(); err != nil {
		return nil, &store.PersistenceError{Op: "get module", Err: err}
	}
	return r.findModule(subjectID, moduleID)
}

func (r *ContentRepository) findModule(subjectID, moduleID string) (*models.Module, error) {
	for _, m := range r.db.modules {
		if m.ID == moduleID && m.SubjectID == subjectID {
			module := m
			return &module, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *ContentRepository) CreateModule(ctx context.Context, m *models.Module) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "create module", Err: err}
	}
	m.ID = uuid.NewString()
	r.db.modules = append(r.db.modules, *m)
	return nil
}

func (r *ContentRepository) UpdateModule(ctx context.Context, m *models.Module) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "update module", Err: err}
	}
	for i := range r.db.modules {
		if r.db.modules[i].ID == m.ID && r.db.modules[i].SubjectID == m.SubjectID {
			r.db.modules[i] = *m
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *ContentRepository) DeleteModule(ctx context.Context, subjectID, moduleID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "delete module", Err: err}
	}
	for i := range r.db.modules {
		if r.db.modules[i].ID == moduleID && r.db.modules[i].SubjectID == subjectID {
			r.db.modules = append(r.db.modules[:i], r.db.modules[i+1:]...)
			r.dropActivitiesOf(moduleID)
			return nil
		}
	}
	return store.ErrNotFound
}

// --- Activities ---

func (r *ContentRepository) ListActivities(ctx context.Context, subjectID, moduleID string) ([]models.Activity, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if err := r.db.failing(); err != nil {
		return nil, &store.PersistenceError{Op: "list activities", Err: err}
	}
	if _, err := r.findModule(subjectID, moduleID); err != nil {
		return nil, err
	}
	activities := []models.Activity{}
	for _, a := range r.db.activities {
		if a.ModuleID == moduleID {
			activities = append(activities, a)
		}
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].OrderNum < activities[j].OrderNum
	})
	return activities, nil
}

func (r *ContentRepository) GetActivity(ctx context.Context, subjectID, moduleID, activityID string) (*models.Activity, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if err := r.db.failing(); err != nil {
		return nil, &store.PersistenceError{Op: "get activity", Err: err}
	}
	if _, err := r.findModule(subjectID, moduleID); err != nil {
		return nil, err
	}
	for _, a := range r.db.activities {
		if a.ID == activityID && a.ModuleID == moduleID {
			activity := a
			return &activity, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *ContentRepository) CreateActivity(ctx context.Context, a *models.Activity) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "create activity", Err: err}
	}
	a.ID = uuid.NewString()
	for i := range a.Questions {
		a.Questions[i].ID = uuid.NewString()
		a.Questions[i].ActivityID = a.ID
		a.Questions[i].OrderNum = i
	}
	r.db.activities = append(r.db.activities, *a)
	return nil
}

func (r *ContentRepository) UpdateActivity(ctx context.Context, a *models.Activity) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "update activity", Err: err}
	}
	for i := range r.db.activities {
		if r.db.activities[i].ID == a.ID && r.db.activities[i].ModuleID == a.ModuleID {
			for j := range a.Questions {
				a.Questions[j].ID = uuid.NewString()
				a.Questions[j].ActivityID = a.ID
				a.Questions[j].OrderNum = j
			}
			r.db.activities[i] = *a
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *ContentRepository) DeleteActivity(ctx context.Context, subjectID, moduleID, activityID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "delete activity", Err: err}
	}
	if _, err := r.findModule(subjectID, moduleID); err != nil {
		return err
	}
	for i := range r.db.activities {
		if r.db.activities[i].ID == activityID && r.db.activities[i].ModuleID == moduleID {
			r.db.activities = append(r.db.activities[:i], r.db.activities[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
