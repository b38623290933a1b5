package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func registerUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	user, err := NewAuthService(db, testSecret).Register(username, "pw123")
	require.NoError(t, err)
	return user.ID
}

func TestWorkoutCreateAndListOwned(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)
	alice := registerUser(t, db, "alice")
	bob := registerUser(t, db, "bob")

	created, err := svc.Create(alice, "Push-ups", "Upper body")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, alice, created.UserID)

	_, err = svc.Create(bob, "Squats", "")
	require.NoError(t, err)

	owned, err := svc.ListOwned(alice)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Push-ups", owned[0].Name)
}

func TestWorkoutGetEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)
	alice := registerUser(t, db, "alice")
	bob := registerUser(t, db, "bob")

	created, err := svc.Create(alice, "Push-ups", "")
	require.NoError(t, err)

	workout, err := svc.Get(alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, workout.ID)

	_, err = svc.Get(bob, created.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	_, err = svc.Get(alice, created.ID+99)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestWorkoutDeleteEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)
	alice := registerUser(t, db, "alice")
	bob := registerUser(t, db, "bob")

	created, err := svc.Create(alice, "Push-ups", "")
	require.NoError(t, err)

	err = svc.Delete(bob, created.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	owned, err := svc.ListOwned(alice)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	require.NoError(t, svc.Delete(alice, created.ID))

	owned, err = svc.ListOwned(alice)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestWorkoutDeleteRemovesMemberships(t *testing.T) {
	db := newTestDB(t)
	workouts := NewWorkoutService(db)
	routines := NewRoutineService(db)
	alice := registerUser(t, db, "alice")

	w1, err := workouts.Create(alice, "Push-ups", "")
	require.NoError(t, err)
	w2, err := workouts.Create(alice, "Squats", "")
	require.NoError(t, err)

	routine, err := routines.Create(alice, "AM", "", []uint{w1.ID, w2.ID})
	require.NoError(t, err)

	require.NoError(t, workouts.Delete(alice, w1.ID))

	var joinRows int64
	require.NoError(t, db.Table("workout_routines").Where("workout_id = ?", w1.ID).Count(&joinRows).Error)
	assert.Zero(t, joinRows)

	// The routine survives with its remaining member.
	owned, err := routines.ListOwned(alice)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, routine.ID, owned[0].ID)
	require.Len(t, owned[0].Workouts, 1)
	assert.Equal(t, w2.ID, owned[0].Workouts[0].ID)
}
