package services

import (
	"fmt"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/pocketnative/pocketnative_api/dto"
	"github.com/pocketnative/pocketnative_api/model"
	"github.com/pocketnative/pocketnative_api/shared"
)

// LearningService turns UI events into their store mutations. Each event
// validates everything up front and then applies its Profile Store and
// Progress Tracker writes in one synchronous turn, so a reader never
// observes one half of the pair without the other.
type LearningService struct {
	context.DefaultService

	profileSvc      *ProfileService
	progressSvc     *ProgressService
	gamificationSvc *GamificationService
}

const LEARNING_SVC = "learning_svc"

func (svc LearningService) Id() string {
	return LEARNING_SVC
}

func (svc *LearningService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *LearningService) Start() error {
	svc.profileSvc = svc.Service(PROFILE_SVC).(*ProfileService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.gamificationSvc = svc.Service(GAMIFICATION_SVC).(*GamificationService)
	return nil
}

// CompleteModule finishes a module: progress jumps to 100 and, on first
// completion only, the flat module reward is credited.
func (svc *LearningService) CompleteModule(moduleID string) (*dto.CompletionResponse, error) {
	if !svc.profileSvc.IsAuthenticated() {
		return nil, shared.NewNoActiveProfileError()
	}

	if err := svc.progressSvc.RecordModuleProgress(moduleID, 100); err != nil {
		return nil, err
	}

	newly, err := svc.profileSvc.CompleteModule(moduleID)
	if err != nil {
		return nil, err
	}

	awarded := 0
	if newly {
		if _, err := svc.profileSvc.AddPoints(shared.ModuleCompletionPoints); err != nil {
			return nil, err
		}
		awarded = shared.ModuleCompletionPoints
		log.WithFields(log.Fields{"module_id": moduleID, "points": awarded}).Info("Module completed")
	}

	return &dto.CompletionResponse{
		User:          svc.profileSvc.Profile(),
		PointsAwarded: awarded,
		NewCompletion: newly,
	}, nil
}

// CompleteQuiz records the score (overwrite, every attempt) and awards
// half the score, rounded half up, on first completion only.
func (svc *LearningService) CompleteQuiz(quizID string, score int) (*dto.CompletionResponse, error) {
	if !svc.profileSvc.IsAuthenticated() {
		return nil, shared.NewNoActiveProfileError()
	}

	if err := svc.progressSvc.RecordQuizScore(quizID, score); err != nil {
		return nil, err
	}

	newly, err := svc.profileSvc.CompleteQuiz(quizID)
	if err != nil {
		return nil, err
	}

	awarded := 0
	if newly {
		if points := svc.gamificationSvc.PointsForQuizScore(score); points > 0 {
			if _, err := svc.profileSvc.AddPoints(points); err != nil {
				return nil, err
			}
			awarded = points
		}
		log.WithFields(log.Fields{"quiz_id": quizID, "score": score, "points": awarded}).Info("Quiz completed")
	}

	return &dto.CompletionResponse{
		User:          svc.profileSvc.Profile(),
		PointsAwarded: awarded,
		NewCompletion: newly,
	}, nil
}

// CompleteDailyTask credits the task's own point value on first completion.
// The task id comes from the current generation; the engine does not check
// it against a catalog.
func (svc *LearningService) CompleteDailyTask(taskID string, points int) (*dto.CompletionResponse, error) {
	if points <= 0 {
		return nil, shared.NewInvalidArgumentError(fmt.Sprintf("task points must be positive, got %d", points))
	}
	if !svc.profileSvc.IsAuthenticated() {
		return nil, shared.NewNoActiveProfileError()
	}

	newly, err := svc.profileSvc.CompleteDailyTask(taskID)
	if err != nil {
		return nil, err
	}

	awarded := 0
	if newly {
		if _, err := svc.profileSvc.AddPoints(points); err != nil {
			return nil, err
		}
		awarded = points
		log.WithFields(log.Fields{"task_id": taskID, "points": awarded}).Info("Daily task completed")
	}

	return &dto.CompletionResponse{
		User:          svc.profileSvc.Profile(),
		PointsAwarded: awarded,
		NewCompletion: newly,
	}, nil
}

// OpenSession is the app-open event: one streak transition for today plus a
// fresh daily task set. The streak lives in the device-scoped Progress
// Tracker, so it advances with or without an active profile.
func (svc *LearningService) OpenSession() (*dto.OpenSessionResponse, error) {
	streak := svc.progressSvc.RefreshDailyStreak()

	return &dto.OpenSessionResponse{
		DailyStreak: streak,
		Tasks:       svc.gamificationSvc.GenerateDailyTasks(),
	}, nil
}

// DailyTasks returns a fresh generation without touching the streak.
func (svc *LearningService) DailyTasks() []model.DailyTask {
	return svc.gamificationSvc.GenerateDailyTasks()
}
