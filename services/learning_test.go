package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketnative/pocketnative_api/model"
	"github.com/pocketnative/pocketnative_api/shared"
)

func newTestLearningService() (*LearningService, *ProfileService, *ProgressService) {
	gamification := &GamificationService{}
	profile := &ProfileService{
		storage:         newPersistRecorder(),
		gamificationSvc: gamification,
	}
	progress := &ProgressService{
		storage: newPersistRecorder(),
		clock:   fixedClock{now: day("2024-01-01")},
		record:  model.NewProgressRecord(),
	}
	learning := &LearningService{
		profileSvc:      profile,
		progressSvc:     progress,
		gamificationSvc: gamification,
	}
	return learning, profile, progress
}

func TestCompleteModuleWithoutProfileLeavesNoPartialState(t *testing.T) {
	learning, _, progress := newTestLearningService()

	_, err := learning.CompleteModule("components")
	assert.True(t, shared.IsNoActiveProfile(err))

	_, ok := progress.Record().ModuleProgress["components"]
	assert.False(t, ok, "progress must not move when the profile half cannot apply")
}

func TestCompleteModuleAppliesBothStores(t *testing.T) {
	learning, profile, progress := newTestLearningService()
	profile.Login("alice@example.com", "pw")

	res, err := learning.CompleteModule("components")
	require.NoError(t, err)

	assert.True(t, res.NewCompletion)
	assert.Equal(t, shared.ModuleCompletionPoints, res.PointsAwarded)
	assert.Equal(t, 50, res.User.Points)
	assert.Equal(t, []string{"components"}, res.User.CompletedModules)
	assert.Equal(t, 100, progress.Record().ModuleProgress["components"])
}

func TestCompleteModuleAwardsOnlyOnce(t *testing.T) {
	learning, profile, _ := newTestLearningService()
	profile.Login("alice@example.com", "pw")

	_, err := learning.CompleteModule("components")
	require.NoError(t, err)

	res, err := learning.CompleteModule("components")
	require.NoError(t, err)

	assert.False(t, res.NewCompletion)
	assert.Equal(t, 0, res.PointsAwarded)
	assert.Equal(t, 50, res.User.Points)
	assert.Len(t, res.User.CompletedModules, 1)
}

func TestCompleteQuizRecordsScoreAndAwardsHalf(t *testing.T) {
	learning, profile, progress := newTestLearningService()
	profile.Login("bob@example.com", "pw")

	res, err := learning.CompleteQuiz("components-quiz", 75)
	require.NoError(t, err)

	assert.True(t, res.NewCompletion)
	assert.Equal(t, 38, res.PointsAwarded)
	assert.Equal(t, 38, res.User.Points)
	assert.Equal(t, 75, progress.Record().QuizScores["components-quiz"])
}

func TestCompleteQuizRetakeOverwritesScoreWithoutAward(t *testing.T) {
	learning, profile, progress := newTestLearningService()
	profile.Login("bob@example.com", "pw")

	_, err := learning.CompleteQuiz("components-quiz", 90)
	require.NoError(t, err)

	res, err := learning.CompleteQuiz("components-quiz", 40)
	require.NoError(t, err)

	assert.False(t, res.NewCompletion)
	assert.Equal(t, 0, res.PointsAwarded)
	assert.Equal(t, 45, res.User.Points, "only the first completion pays out")
	assert.Equal(t, 40, progress.Record().QuizScores["components-quiz"], "score overwrite still applies")
}

func TestCompleteQuizValidatesBeforeMutating(t *testing.T) {
	learning, profile, progress := newTestLearningService()
	profile.Login("bob@example.com", "pw")

	_, err := learning.CompleteQuiz("components-quiz", 101)
	assert.True(t, shared.IsInvalidArgument(err))

	_, ok := progress.Record().QuizScores["components-quiz"]
	assert.False(t, ok)
	assert.Empty(t, profile.Profile().CompletedQuizzes)
}

func TestCompleteQuizZeroScoreCompletesWithoutPoints(t *testing.T) {
	learning, profile, _ := newTestLearningService()
	profile.Login("bob@example.com", "pw")

	res, err := learning.CompleteQuiz("components-quiz", 0)
	require.NoError(t, err)

	assert.True(t, res.NewCompletion)
	assert.Equal(t, 0, res.PointsAwarded)
	assert.Equal(t, 0, res.User.Points)
	assert.Len(t, res.User.CompletedQuizzes, 1)
}

func TestCompleteDailyTask(t *testing.T) {
	learning, profile, _ := newTestLearningService()
	profile.Login("carol@example.com", "pw")

	res, err := learning.CompleteDailyTask("task-gen-3", 40)
	require.NoError(t, err)
	assert.True(t, res.NewCompletion)
	assert.Equal(t, 40, res.User.Points)

	res, err = learning.CompleteDailyTask("task-gen-3", 40)
	require.NoError(t, err)
	assert.False(t, res.NewCompletion)
	assert.Equal(t, 40, res.User.Points)

	_, err = learning.CompleteDailyTask("task-gen-4", 0)
	assert.True(t, shared.IsInvalidArgument(err))
}

func TestOpenSession(t *testing.T) {
	learning, _, progress := newTestLearningService()

	res, err := learning.OpenSession()
	require.NoError(t, err)

	assert.Equal(t, 1, res.DailyStreak)
	assert.Len(t, res.Tasks, 5)
	assert.Equal(t, 1, progress.DailyStreak())

	// second open on the same day leaves the streak untouched
	res, err = learning.OpenSession()
	require.NoError(t, err)
	assert.Equal(t, 1, res.DailyStreak)
}
