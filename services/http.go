package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"github.com/pocketnative/pocketnative_api/services/handlers"
	"github.com/pocketnative/pocketnative_api/shared"
)

type HttpService struct {
	context.DefaultService

	profileSvc  *ProfileService
	progressSvc *ProgressService
	learningSvc *LearningService
	contentSvc  *ContentService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.profileSvc = svc.Service(PROFILE_SVC).(*ProfileService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.learningSvc = svc.Service(LEARNING_SVC).(*LearningService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)

	app := fiber.New(fiber.Config{
		AppName:      "pocketnative_api",
		ErrorHandler: svc.handleError,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/ping", svc.ping)

	authHandler := handlers.NewAuthHandler(svc.profileSvc)
	progressHandler := handlers.NewProgressHandler(svc.progressSvc, svc.learningSvc)
	taskHandler := handlers.NewTaskHandler(svc.learningSvc)
	contentHandler := handlers.NewContentHandler(svc.contentSvc)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	auth := v1.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/guest", authHandler.LoginAsGuest)
	auth.Post("/logout", authHandler.Logout)

	v1.Get("/profile", authHandler.GetProfile)
	v1.Patch("/profile", authHandler.UpdateProfile)

	progress := v1.Group("/progress")
	progress.Get("/", progressHandler.GetProgress)
	progress.Put("/last-visited", progressHandler.SetLastVisited)
	progress.Put("/modules/:moduleId", progressHandler.RecordModuleProgress)
	progress.Put("/quizzes/:quizId", progressHandler.RecordQuizScore)

	v1.Post("/modules/:moduleId/complete", progressHandler.CompleteModule)
	v1.Post("/quizzes/:quizId/complete", progressHandler.CompleteQuiz)

	v1.Post("/session/open", taskHandler.OpenSession)
	v1.Get("/tasks", taskHandler.GetDailyTasks)
	v1.Post("/tasks/complete", taskHandler.CompleteTask)

	content := v1.Group("/content")
	content.Get("/modules", contentHandler.GetModules)
	content.Get("/modules/:moduleId", contentHandler.GetModule)
	content.Get("/quizzes", contentHandler.GetQuizzes)
	content.Get("/quizzes/:quizId", contentHandler.GetQuiz)
	content.Get("/projects", contentHandler.GetMiniProjects)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.app = app

	log.WithField("port", svc.port).Info("HTTP service listening")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).Error("Unhandled error")
	return shared.ResponseInternalError(c, err)
}
