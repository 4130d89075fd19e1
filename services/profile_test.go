package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketnative/pocketnative_api/dto"
	"github.com/pocketnative/pocketnative_api/model"
	"github.com/pocketnative/pocketnative_api/shared"
)

// persistRecorder captures fire-and-forget persistence calls.
type persistRecorder struct {
	mu   sync.Mutex
	docs map[string][]interface{}
}

func newPersistRecorder() *persistRecorder {
	return &persistRecorder{docs: map[string][]interface{}{}}
}

func (r *persistRecorder) Persist(namespace string, doc interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[namespace] = append(r.docs[namespace], doc)
}

func (r *persistRecorder) last(namespace string) interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	docs := r.docs[namespace]
	if len(docs) == 0 {
		return nil
	}
	return docs[len(docs)-1]
}

func newTestProfileService() (*ProfileService, *persistRecorder) {
	recorder := newPersistRecorder()
	return &ProfileService{
		storage:         recorder,
		gamificationSvc: &GamificationService{},
	}, recorder
}

func TestLoginBuildsProfileFromEmail(t *testing.T) {
	svc, recorder := newTestProfileService()

	user := svc.Login("alice@example.com", "whatever")
	require.NotNil(t, user)

	require.NotNil(t, user.Name)
	assert.Equal(t, "alice", *user.Name)
	require.NotNil(t, user.Email)
	assert.Equal(t, "alice@example.com", *user.Email)
	assert.False(t, user.IsGuest)
	assert.Equal(t, 0, user.Points)
	assert.Equal(t, 1, user.Level)
	assert.Empty(t, user.CompletedModules)
	assert.True(t, svc.IsAuthenticated())

	state := recorder.last(shared.AuthStorageNamespace).(model.AuthState)
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, user.ID, state.User.ID)
}

func TestLoginAsGuest(t *testing.T) {
	svc, _ := newTestProfileService()

	user := svc.LoginAsGuest()
	require.NotNil(t, user)

	assert.True(t, user.IsGuest)
	assert.Nil(t, user.Email)
	assert.Contains(t, user.ID, "guest-")
	assert.Equal(t, 1, user.Level)
	assert.True(t, svc.IsAuthenticated())

	other := svc.LoginAsGuest()
	assert.NotEqual(t, user.ID, other.ID, "guest ids must be session unique")
}

func TestMutationsBeforeLoginFail(t *testing.T) {
	svc, _ := newTestProfileService()

	_, err := svc.AddPoints(10)
	assert.True(t, shared.IsNoActiveProfile(err))

	_, err = svc.CompleteModule("getting-started")
	assert.True(t, shared.IsNoActiveProfile(err))

	_, err = svc.CompleteQuiz("getting-started-quiz")
	assert.True(t, shared.IsNoActiveProfile(err))

	_, err = svc.CompleteDailyTask("task-x")
	assert.True(t, shared.IsNoActiveProfile(err))

	name := "someone"
	_, err = svc.UpdateIdentity(dto.UpdateProfileRequest{Name: &name})
	assert.True(t, shared.IsNoActiveProfile(err))
}

func TestAddPointsIsAdditiveAndLevelConsistent(t *testing.T) {
	svc, _ := newTestProfileService()
	svc.Login("bob@example.com", "pw")

	_, err := svc.AddPoints(80)
	require.NoError(t, err)

	user, err := svc.AddPoints(30)
	require.NoError(t, err)
	assert.Equal(t, 110, user.Points)
	assert.Equal(t, 2, user.Level)
}

func TestAddPointsRejectsNonPositive(t *testing.T) {
	svc, _ := newTestProfileService()
	svc.Login("bob@example.com", "pw")

	_, err := svc.AddPoints(0)
	assert.True(t, shared.IsInvalidArgument(err))

	_, err = svc.AddPoints(-5)
	assert.True(t, shared.IsInvalidArgument(err))

	user := svc.Profile()
	assert.Equal(t, 0, user.Points, "rejected award must not mutate state")
}

func TestAddPointsCanJumpMultipleLevels(t *testing.T) {
	svc, _ := newTestProfileService()
	svc.Login("bob@example.com", "pw")

	user, err := svc.AddPoints(250)
	require.NoError(t, err)
	assert.Equal(t, 3, user.Level)
}

func TestCompletionIsIdempotent(t *testing.T) {
	svc, _ := newTestProfileService()
	svc.Login("bob@example.com", "pw")

	newly, err := svc.CompleteModule("styling")
	require.NoError(t, err)
	assert.True(t, newly)

	newly, err = svc.CompleteModule("styling")
	require.NoError(t, err)
	assert.False(t, newly)

	user := svc.Profile()
	assert.Equal(t, []string{"styling"}, user.CompletedModules)

	for i := 0; i < 2; i++ {
		_, err = svc.CompleteQuiz("styling-quiz")
		require.NoError(t, err)
		_, err = svc.CompleteDailyTask("task-abc-1")
		require.NoError(t, err)
	}
	user = svc.Profile()
	assert.Len(t, user.CompletedQuizzes, 1)
	assert.Len(t, user.CompletedDailyTasks, 1)
}

func TestUpdateIdentityNeverTouchesPoints(t *testing.T) {
	svc, _ := newTestProfileService()
	svc.Login("carol@example.com", "pw")

	_, err := svc.AddPoints(120)
	require.NoError(t, err)

	name := "Carol"
	email := "carol@new.example.com"
	user, err := svc.UpdateIdentity(dto.UpdateProfileRequest{Name: &name, Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "Carol", *user.Name)
	assert.Equal(t, "carol@new.example.com", *user.Email)
	assert.Equal(t, 120, user.Points)
	assert.Equal(t, 2, user.Level)
}

func TestUpdateIdentityMergesPartially(t *testing.T) {
	svc, _ := newTestProfileService()
	svc.Login("carol@example.com", "pw")

	name := "Carol"
	user, err := svc.UpdateIdentity(dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Carol", *user.Name)
	assert.Equal(t, "carol@example.com", *user.Email, "unset fields keep their value")
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, recorder := newTestProfileService()
	svc.Login("dave@example.com", "pw")

	svc.Logout()
	assert.Nil(t, svc.Profile())
	assert.False(t, svc.IsAuthenticated())

	state := recorder.last(shared.AuthStorageNamespace).(model.AuthState)
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)

	svc.Logout()
	assert.False(t, svc.IsAuthenticated())
}
