package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketnative/pocketnative_api/shared"
)

type ContentHandler struct {
	contentSvc ContentServiceInterface
}

func NewContentHandler(contentSvc ContentServiceInterface) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc}
}

// @Summary List Modules
// @Tags content
// @Produce json
// @Success 200
// @Router /api/v1/content/modules [get]
func (h *ContentHandler) GetModules(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.contentSvc.GetModules())
}

// @Summary Get Module
// @Tags content
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200
// @Router /api/v1/content/modules/{moduleId} [get]
func (h *ContentHandler) GetModule(c *fiber.Ctx) error {
	module, err := h.contentSvc.GetModule(c.Params("moduleId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", module)
}

// @Summary List Quizzes
// @Tags content
// @Produce json
// @Success 200
// @Router /api/v1/content/quizzes [get]
func (h *ContentHandler) GetQuizzes(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.contentSvc.GetQuizzes())
}

// @Summary Get Quiz
// @Tags content
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200
// @Router /api/v1/content/quizzes/{quizId} [get]
func (h *ContentHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.contentSvc.GetQuiz(c.Params("quizId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", quiz)
}

// @Summary List Mini Projects
// @Tags content
// @Produce json
// @Success 200
// @Router /api/v1/content/projects [get]
func (h *ContentHandler) GetMiniProjects(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.contentSvc.GetMiniProjects())
}
