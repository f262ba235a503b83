package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store/inmem"
)

func newContentFixture() (*ContentService, *AdminService, *inmem.DB) {
	db := inmem.Open()
	repo := inmem.NewContentRepository(db)
	return NewContentService(repo), NewAdminService(repo), db
}

func TestListSubjectsOrdering(t *testing.T) {
	content, admin, _ := newContentFixture()
	ctx := context.Background()

	// Inserted out of display order: Math first with order 1, Art second
	// with order 0. The listing must come back Art, then Math.
	_, err := admin.CreateSubject(ctx, SubjectInput{Name: "Math", OrderNum: order(1)})
	require.NoError(t, err)
	_, err = admin.CreateSubject(ctx, SubjectInput{Name: "Art", OrderNum: order(0)})
	require.NoError(t, err)

	subjects := content.ListSubjects(ctx)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Art", subjects[0].Name)
	assert.Equal(t, "Math", subjects[1].Name)

	// Listing again without writes yields the same result.
	again := content.ListSubjects(ctx)
	assert.Equal(t, subjects, again)
}

func TestListModulesAndActivitiesOrdering(t *testing.T) {
	content, admin, _ := newContentFixture()
	ctx := context.Background()

	subject, err := admin.CreateSubject(ctx, SubjectInput{Name: "Math", OrderNum: order(0)})
	require.NoError(t, err)
	_, err = admin.CreateModule(ctx, subject.ID, ModuleInput{Name: "Second", OrderNum: order(5)})
	require.NoError(t, err)
	first, err := admin.CreateModule(ctx, subject.ID, ModuleInput{Name: "First", OrderNum: order(1)})
	require.NoError(t, err)

	modules := content.ListModules(ctx, subject.ID)
	require.Len(t, modules, 2)
	assert.Equal(t, "First", modules[0].Name)
	assert.Equal(t, "Second", modules[1].Name)

	_, err = admin.CreateActivity(ctx, subject.ID, first.ID, ActivityInput{
		Title: "Later", Kind: models.ActivityKindText, OrderNum: order(9),
	})
	require.NoError(t, err)
	_, err = admin.CreateActivity(ctx, subject.ID, first.ID, ActivityInput{
		Title: "Sooner", Kind: models.ActivityKindText, OrderNum: order(2),
	})
	require.NoError(t, err)

	activities := content.ListActivities(ctx, subject.ID, first.ID)
	require.Len(t, activities, 2)
	assert.Equal(t, "Sooner", activities[0].Title)
	assert.Equal(t, "Later", activities[1].Title)
}

// Read faults degrade to an empty listing instead of an error so screens
// still render.
func TestListingsDegradeOnStoreFault(t *testing.T) {
	content, admin, db := newContentFixture()
	ctx := context.Background()

	subject, err := admin.CreateSubject(ctx, SubjectInput{Name: "Math", OrderNum: order(0)})
	require.NoError(t, err)

	db.Fail(assert.AnError)
	defer db.Fail(nil)

	subjects := content.ListSubjects(ctx)
	assert.NotNil(t, subjects)
	assert.Empty(t, subjects)

	modules := content.ListModules(ctx, subject.ID)
	assert.NotNil(t, modules)
	assert.Empty(t, modules)

	activities := content.ListActivities(ctx, subject.ID, "m1")
	assert.NotNil(t, activities)
	assert.Empty(t, activities)
}

func TestGetActivityPropagatesNotFound(t *testing.T) {
	content, admin, _ := newContentFixture()
	ctx := context.Background()

	subject, err := admin.CreateSubject(ctx, SubjectInput{Name: "Math", OrderNum: order(0)})
	require.NoError(t, err)
	module, err := admin.CreateModule(ctx, subject.ID, ModuleInput{Name: "Fractions", OrderNum: order(0)})
	require.NoError(t, err)

	_, err = content.GetActivity(ctx, subject.ID, module.ID, "missing")
	assert.Error(t, err)
}
