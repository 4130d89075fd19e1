package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketnative/pocketnative_api/dto"
	"github.com/pocketnative/pocketnative_api/shared"
)

type TaskHandler struct {
	learningSvc LearningServiceInterface
}

func NewTaskHandler(learningSvc LearningServiceInterface) *TaskHandler {
	return &TaskHandler{learningSvc: learningSvc}
}

// @Summary Open Session
// @Description App-open event: advances the daily streak for today and returns a fresh daily task set
// @Tags tasks
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.OpenSessionResponse}
// @Router /api/v1/session/open [post]
func (h *TaskHandler) OpenSession(c *fiber.Ctx) error {
	res, err := h.learningSvc.OpenSession()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", res)
}

// @Summary Get Daily Tasks
// @Description Generates a fresh daily task set. Task ids are unique per generation and not stable across calls.
// @Tags tasks
// @Accept  json
// @Produce json
// @Success 200
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetDailyTasks(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.learningSvc.DailyTasks())
}

// @Summary Complete Daily Task
// @Description Marks a daily task completed and awards its points on first completion
// @Tags tasks
// @Accept  json
// @Produce json
// @Param completeTaskRequest body dto.CompleteTaskRequest true "Complete task request"
// @Success 200 {object} shared.Response{data=dto.CompletionResponse}
// @Router /api/v1/tasks/complete [post]
func (h *TaskHandler) CompleteTask(c *fiber.Ctx) error {
	var req dto.CompleteTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	res, err := h.learningSvc.CompleteDailyTask(req.TaskID, req.Points)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", res)
}
