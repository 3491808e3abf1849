package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func float(v float64) *float64 { return &v }

func TestResourceService_CreateSetsOwner(t *testing.T) {
	ctx := context.Background()
	svc := NewReminderService(memory.NewDocumentRepository[domain.Reminder](), false)
	alice := primitive.NewObjectID()

	r, err := svc.Create(ctx, alice, &domain.Reminder{Title: "Stretch", Date: time.Now()})
	require.NoError(t, err)
	assert.False(t, r.ID.IsZero())
	assert.Equal(t, alice, r.User)
	assert.False(t, r.Completed)
}

func TestResourceService_CreateWithoutPrincipal(t *testing.T) {
	ctx := context.Background()
	svc := NewDietPlanService(memory.NewDocumentRepository[domain.DietPlan](), false)

	p, err := svc.Create(ctx, primitive.NilObjectID, &domain.DietPlan{Title: "Keto"})
	require.NoError(t, err)
	assert.True(t, p.CreatedBy.IsZero())
	assert.Equal(t, []domain.Meal{}, p.Meals)
}

func TestResourceService_ListScoping(t *testing.T) {
	ctx := context.Background()
	progress := NewProgressService(memory.NewDocumentRepository[domain.Progress](), false)
	plans := NewWorkoutPlanService(memory.NewDocumentRepository[domain.WorkoutPlan](), false)
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, user := range []primitive.ObjectID{alice, bob, alice} {
		_, err := progress.Create(ctx, user, &domain.Progress{Date: base.AddDate(0, 0, i), Weight: float(70 + float64(i))})
		require.NoError(t, err)
	}
	_, err := plans.Create(ctx, alice, &domain.WorkoutPlan{Title: "A"})
	require.NoError(t, err)
	_, err = plans.Create(ctx, bob, &domain.WorkoutPlan{Title: "B"})
	require.NoError(t, err)

	mine, err := progress.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 72.0, *mine[0].Weight, "newest first")
	assert.Equal(t, 70.0, *mine[1].Weight)

	all, err := plans.List(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, all, 2, "plans are listed for everyone")
}

func TestResourceService_ReminderSortAscending(t *testing.T) {
	ctx := context.Background()
	svc := NewReminderService(memory.NewDocumentRepository[domain.Reminder](), false)
	user := primitive.NewObjectID()
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, d := range []int{3, 1, 2} {
		_, err := svc.Create(ctx, user, &domain.Reminder{Title: "r", Date: base.AddDate(0, 0, d)})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].Date.Before(list[i].Date))
	}
}

func TestResourceService_UpdatePatch(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(memory.NewDocumentRepository[domain.Progress](), false)
	user := primitive.NewObjectID()

	p, err := svc.Create(ctx, user, &domain.Progress{Date: time.Now(), Weight: float(70)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, user, p.ID, func(doc *domain.Progress) {
		doc.Notes = "felt good"
		doc.ID = primitive.NewObjectID()
		doc.User = primitive.NewObjectID()
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, user, updated.User)
	assert.Equal(t, "felt good", updated.Notes)
	assert.Equal(t, 70.0, *updated.Weight)

	got, err := svc.Get(ctx, user, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "felt good", got.Notes)
}

func TestResourceService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkoutPlanService(memory.NewDocumentRepository[domain.WorkoutPlan](), false)
	user, missing := primitive.NewObjectID(), primitive.NewObjectID()

	_, err := svc.Get(ctx, user, missing)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Workout plan not found", err.Error())

	_, err = svc.Update(ctx, user, missing, func(*domain.WorkoutPlan) {})
	assert.ErrorAs(t, err, &nf)

	err = svc.Delete(ctx, user, missing)
	assert.ErrorAs(t, err, &nf)
}

func TestResourceService_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	svc := NewReminderService(memory.NewDocumentRepository[domain.Reminder](), false)
	user := primitive.NewObjectID()

	r, err := svc.Create(ctx, user, &domain.Reminder{Title: "x", Date: time.Now()})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, user, r.ID))

	_, err = svc.Get(ctx, user, r.ID)
	assert.EqualError(t, err, "Reminder not found")
}

func TestResourceService_Ownership(t *testing.T) {
	ctx := context.Background()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	t.Run("not enforced", func(t *testing.T) {
		svc := NewReminderService(memory.NewDocumentRepository[domain.Reminder](), false)
		r, err := svc.Create(ctx, alice, &domain.Reminder{Title: "x", Date: time.Now()})
		require.NoError(t, err)

		_, err = svc.Get(ctx, bob, r.ID)
		assert.NoError(t, err)
		_, err = svc.Update(ctx, bob, r.ID, func(doc *domain.Reminder) { doc.Completed = true })
		assert.NoError(t, err)
		assert.NoError(t, svc.Delete(ctx, bob, r.ID))
	})

	t.Run("enforced", func(t *testing.T) {
		svc := NewReminderService(memory.NewDocumentRepository[domain.Reminder](), true)
		r, err := svc.Create(ctx, alice, &domain.Reminder{Title: "x", Date: time.Now()})
		require.NoError(t, err)

		var nf *NotFoundError
		_, err = svc.Get(ctx, bob, r.ID)
		assert.ErrorAs(t, err, &nf)
		_, err = svc.Update(ctx, bob, r.ID, func(doc *domain.Reminder) { doc.Completed = true })
		assert.ErrorAs(t, err, &nf)
		assert.ErrorAs(t, svc.Delete(ctx, bob, r.ID), &nf)

		got, err := svc.Get(ctx, alice, r.ID)
		require.NoError(t, err)
		assert.False(t, got.Completed)
	})

	t.Run("plans stay readable", func(t *testing.T) {
		svc := NewDietPlanService(memory.NewDocumentRepository[domain.DietPlan](), true)
		p, err := svc.Create(ctx, alice, &domain.DietPlan{Title: "Paleo"})
		require.NoError(t, err)

		_, err = svc.Get(ctx, bob, p.ID)
		assert.NoError(t, err)
		assert.Error(t, svc.Delete(ctx, bob, p.ID))
	})
}

func TestCreatorService_Resolve(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	u := &domain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	_, err := users.Create(ctx, u)
	require.NoError(t, err)

	svc := NewCreatorService(users)
	gone := primitive.NewObjectID()
	creators, err := svc.Resolve(ctx, []primitive.ObjectID{u.ID, u.ID, gone, primitive.NilObjectID})
	require.NoError(t, err)
	require.Len(t, creators, 1)
	assert.Equal(t, &domain.Creator{ID: u.ID, Name: "Alice", Email: "alice@example.com"}, creators[u.ID])
	assert.Nil(t, creators[gone])

	empty, err := svc.Resolve(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()
	got, err := ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("nope")
	var invalid *InvalidIDError
	assert.ErrorAs(t, err, &invalid)
}
