package handlers

import (
	"github.com/pocketnative/pocketnative_api/dto"
	"github.com/pocketnative/pocketnative_api/model"
)

type ProfileServiceInterface interface {
	Login(email, password string) *model.LearnerProfile
	LoginAsGuest() *model.LearnerProfile
	Logout()
	UpdateIdentity(req dto.UpdateProfileRequest) (*model.LearnerProfile, error)
	Profile() *model.LearnerProfile
	IsAuthenticated() bool
}

type ProgressServiceInterface interface {
	SetLastVisitedModule(moduleID string)
	RecordModuleProgress(moduleID string, percent int) error
	RecordQuizScore(quizID string, score int) error
	Record() *model.ProgressRecord
}

type LearningServiceInterface interface {
	CompleteModule(moduleID string) (*dto.CompletionResponse, error)
	CompleteQuiz(quizID string, score int) (*dto.CompletionResponse, error)
	CompleteDailyTask(taskID string, points int) (*dto.CompletionResponse, error)
	OpenSession() (*dto.OpenSessionResponse, error)
	DailyTasks() []model.DailyTask
}

type ContentServiceInterface interface {
	GetModules() []model.Module
	GetModule(moduleID string) (*model.Module, error)
	GetQuizzes() []model.Quiz
	GetQuiz(quizID string) (*model.Quiz, error)
	GetMiniProjects() []model.MiniProject
}
