package dto

import "github.com/pocketnative/pocketnative_api/model"

type LastVisitedRequest struct {
	ModuleID string `json:"module_id" validate:"required"`
}

func (r LastVisitedRequest) Validate() error {
	return GetValidator().Struct(r)
}

// Percent ranges are validated in the progress service so the range rule
// lives in one place; the dto only guards the payload shape.
type ModuleProgressRequest struct {
	Progress int `json:"progress"`
}

type QuizScoreRequest struct {
	Score int `json:"score"`
}

type CompleteQuizRequest struct {
	Score int `json:"score"`
}

type CompleteTaskRequest struct {
	TaskID string `json:"task_id" validate:"required"`
	Points int    `json:"points" validate:"required,min=1"`
}

func (r CompleteTaskRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ProgressResponse struct {
	Record *model.ProgressRecord `json:"record"`
}

type OpenSessionResponse struct {
	DailyStreak int               `json:"daily_streak"`
	Tasks       []model.DailyTask `json:"tasks"`
}

type CompletionResponse struct {
	User          *model.LearnerProfile `json:"user"`
	PointsAwarded int                   `json:"points_awarded"`
	NewCompletion bool                  `json:"new_completion"`
}
