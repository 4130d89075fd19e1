package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketnative/pocketnative_api/dto"
	"github.com/pocketnative/pocketnative_api/shared"
)

type ProgressHandler struct {
	progressSvc ProgressServiceInterface
	learningSvc LearningServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface, learningSvc LearningServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
		learningSvc: learningSvc,
	}
}

// @Summary Get Progress
// @Description Returns the full progress record: module percentages, quiz scores, streak and last visited module
// @Tags progress
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ProgressResponse}
// @Router /api/v1/progress [get]
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.ProgressResponse{
		Record: h.progressSvc.Record(),
	})
}

// @Summary Set Last Visited Module
// @Description Overwrites the last visited module on every module view
// @Tags progress
// @Accept  json
// @Produce json
// @Param lastVisitedRequest body dto.LastVisitedRequest true "Last visited request"
// @Success 200
// @Router /api/v1/progress/last-visited [put]
func (h *ProgressHandler) SetLastVisited(c *fiber.Ctx) error {
	var req dto.LastVisitedRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	h.progressSvc.SetLastVisitedModule(req.ModuleID)
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Record Module Progress
// @Description Stores the completion percentage for a module, last write wins
// @Tags progress
// @Accept  json
// @Produce json
// @Param moduleId path string true "Module ID"
// @Param moduleProgressRequest body dto.ModuleProgressRequest true "Module progress request"
// @Success 200
// @Router /api/v1/progress/modules/{moduleId} [put]
func (h *ProgressHandler) RecordModuleProgress(c *fiber.Ctx) error {
	moduleID := c.Params("moduleId")

	var req dto.ModuleProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := h.progressSvc.RecordModuleProgress(moduleID, req.Progress); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Record Quiz Score
// @Description Stores the score for a quiz, last write wins
// @Tags progress
// @Accept  json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param quizScoreRequest body dto.QuizScoreRequest true "Quiz score request"
// @Success 200
// @Router /api/v1/progress/quizzes/{quizId} [put]
func (h *ProgressHandler) RecordQuizScore(c *fiber.Ctx) error {
	quizID := c.Params("quizId")

	var req dto.QuizScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := h.progressSvc.RecordQuizScore(quizID, req.Score); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Complete Module
// @Description Marks a module completed, sets its progress to 100 and awards the completion reward on first completion
// @Tags progress
// @Accept  json
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} shared.Response{data=dto.CompletionResponse}
// @Router /api/v1/modules/{moduleId}/complete [post]
func (h *ProgressHandler) CompleteModule(c *fiber.Ctx) error {
	res, err := h.learningSvc.CompleteModule(c.Params("moduleId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", res)
}

// @Summary Complete Quiz
// @Description Records the quiz score and awards half the score on first completion
// @Tags progress
// @Accept  json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param completeQuizRequest body dto.CompleteQuizRequest true "Complete quiz request"
// @Success 200 {object} shared.Response{data=dto.CompletionResponse}
// @Router /api/v1/quizzes/{quizId}/complete [post]
func (h *ProgressHandler) CompleteQuiz(c *fiber.Ctx) error {
	var req dto.CompleteQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	res, err := h.learningSvc.CompleteQuiz(c.Params("quizId"), req.Score)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", res)
}
