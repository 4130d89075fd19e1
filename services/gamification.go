package services

import (
	"fmt"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"

	"github.com/pocketnative/pocketnative_api/model"
	"github.com/pocketnative/pocketnative_api/shared"
)

// GamificationService holds the pure derivation rules shared by the stores.
// Nothing here has side effects on profile or progress state.
type GamificationService struct {
	context.DefaultService
}

const GAMIFICATION_SVC = "gamification_svc"

func (svc GamificationService) Id() string {
	return GAMIFICATION_SVC
}

func (svc *GamificationService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *GamificationService) Start() error {
	return nil
}

// LevelForPoints derives the level from total points: one level per 100
// points, starting at level 1.
func (svc *GamificationService) LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/shared.PointsPerLevel + 1
}

// PointsForQuizScore awards half the percentage score, rounded half up.
func (svc *GamificationService) PointsForQuizScore(score int) int {
	if score < 0 {
		return 0
	}
	return (score + 1) / 2
}

type taskSpec struct {
	title       string
	description string
	points      int
	taskType    string
	difficulty  string
}

var dailyTaskSpecs = []taskSpec{
	{
		title:       "Complete a Module",
		description: "Finish studying one complete module today",
		points:      50,
		taskType:    shared.TaskTypeLearning,
		difficulty:  shared.DifficultyMedium,
	},
	{
		title:       "Take a Quiz",
		description: "Complete at least one quiz with a score of 80% or higher",
		points:      30,
		taskType:    shared.TaskTypeLearning,
		difficulty:  shared.DifficultyEasy,
	},
	{
		title:       "Code Challenge",
		description: "Create a simple counter component using useState",
		points:      40,
		taskType:    shared.TaskTypePractice,
		difficulty:  shared.DifficultyEasy,
	},
	{
		title:       "Advanced Challenge",
		description: "Implement a custom hook for form validation",
		points:      70,
		taskType:    shared.TaskTypeChallenge,
		difficulty:  shared.DifficultyHard,
	},
	{
		title:       "Review Concepts",
		description: "Review your notes from a previous module",
		points:      20,
		taskType:    shared.TaskTypeLearning,
		difficulty:  shared.DifficultyEasy,
	},
}

// GenerateDailyTasks returns the curated task set with ids unique to this
// generation. Ids are deliberately not stable across invocations, so
// completion tracking scoped to the current session never collides across
// days or restarts.
func (svc *GamificationService) GenerateDailyTasks() []model.DailyTask {
	batch := uuid.New().String()

	tasks := make([]model.DailyTask, 0, len(dailyTaskSpecs))
	for i, spec := range dailyTaskSpecs {
		tasks = append(tasks, model.DailyTask{
			ID:          fmt.Sprintf("task-%s-%d", batch, i+1),
			Title:       spec.title,
			Description: spec.description,
			Points:      spec.points,
			Type:        spec.taskType,
			Difficulty:  spec.difficulty,
		})
	}
	return tasks
}
