package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketnative/pocketnative_api/shared"
)

func TestLevelForPoints(t *testing.T) {
	svc := &GamificationService{}

	tests := []struct {
		points int
		level  int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{250, 3},
		{1000, 11},
		{-10, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, svc.LevelForPoints(tt.points), "points=%d", tt.points)
	}
}

func TestPointsForQuizScore(t *testing.T) {
	svc := &GamificationService{}

	tests := []struct {
		score  int
		points int
	}{
		{0, 0},
		{80, 40},
		{75, 38}, // round half up
		{1, 1},
		{100, 50},
		{-5, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.points, svc.PointsForQuizScore(tt.score), "score=%d", tt.score)
	}
}

func TestGenerateDailyTasks(t *testing.T) {
	svc := &GamificationService{}

	tasks := svc.GenerateDailyTasks()
	require.Len(t, tasks, 5)

	seen := map[string]bool{}
	types := map[string]bool{}
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate task id %s", task.ID)
		seen[task.ID] = true

		assert.NotEmpty(t, task.Title)
		assert.Greater(t, task.Points, 0)
		assert.Contains(t, []string{shared.TaskTypeLearning, shared.TaskTypePractice, shared.TaskTypeChallenge}, task.Type)
		assert.Contains(t, []string{shared.DifficultyEasy, shared.DifficultyMedium, shared.DifficultyHard}, task.Difficulty)
		types[task.Type] = true
	}
	assert.Len(t, types, 3, "tasks should span all three types")
}

func TestGenerateDailyTasksNewIDsPerGeneration(t *testing.T) {
	svc := &GamificationService{}

	first := svc.GenerateDailyTasks()
	second := svc.GenerateDailyTasks()

	firstIDs := map[string]bool{}
	for _, task := range first {
		firstIDs[task.ID] = true
	}
	for _, task := range second {
		assert.False(t, firstIDs[task.ID], "task id %s reused across generations", task.ID)
	}
}
