package services

import (
	"fmt"

	"github.com/alphabatem/common/context"

	"github.com/pocketnative/pocketnative_api/model"
	"github.com/pocketnative/pocketnative_api/shared"
)

// ContentService serves the static catalog the mobile app renders. The data
// is read-only reference material; completion ids recorded by the progress
// engine are never validated against it.
type ContentService struct {
	context.DefaultService

	modules  []model.Module
	quizzes  []model.Quiz
	projects []model.MiniProject
}

const CONTENT_SVC = "content_svc"

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *context.Context) error {
	svc.modules = catalogModules
	svc.quizzes = catalogQuizzes
	svc.projects = catalogProjects
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	return nil
}

func (svc *ContentService) GetModules() []model.Module {
	return svc.modules
}

func (svc *ContentService) GetModule(moduleID string) (*model.Module, error) {
	for i := range svc.modules {
		if svc.modules[i].ID == moduleID {
			return &svc.modules[i], nil
		}
	}
	return nil, shared.NewNotFoundError(fmt.Sprintf("module %s not found", moduleID))
}

func (svc *ContentService) GetQuizzes() []model.Quiz {
	return svc.quizzes
}

func (svc *ContentService) GetQuiz(quizID string) (*model.Quiz, error) {
	for i := range svc.quizzes {
		if svc.quizzes[i].ID == quizID {
			return &svc.quizzes[i], nil
		}
	}
	return nil, shared.NewNotFoundError(fmt.Sprintf("quiz %s not found", quizID))
}

func (svc *ContentService) GetMiniProjects() []model.MiniProject {
	return svc.projects
}

var catalogModules = []model.Module{
	{ID: "getting-started", Title: "Getting Started with React Native", Description: "Learn the basics of React Native and set up your development environment.", Duration: "30 min", Level: "beginner"},
	{ID: "components", Title: "Core Components", Description: "Explore the fundamental building blocks of React Native apps.", Duration: "45 min", Level: "beginner"},
	{ID: "styling", Title: "Styling & Layout", Description: "Master Flexbox and styling in React Native.", Duration: "60 min", Level: "beginner"},
	{ID: "navigation", Title: "Navigation", Description: "Implement navigation between screens in your app.", Duration: "75 min", Level: "intermediate"},
	{ID: "state-management", Title: "State Management", Description: "Learn different approaches to manage state in React Native.", Duration: "90 min", Level: "intermediate"},
	{ID: "networking", Title: "Networking & APIs", Description: "Connect your app to external services and APIs.", Duration: "60 min", Level: "intermediate"},
	{ID: "animations", Title: "Animations", Description: "Create smooth and engaging animations in your app.", Duration: "75 min", Level: "advanced"},
}

var catalogQuizzes = []model.Quiz{
	{ID: "getting-started-quiz", ModuleID: "getting-started", Title: "Getting Started Quiz", QuestionCount: 5},
	{ID: "components-quiz", ModuleID: "components", Title: "Core Components Quiz", QuestionCount: 5},
	{ID: "styling-quiz", ModuleID: "styling", Title: "Styling & Layout Quiz", QuestionCount: 5},
	{ID: "navigation-quiz", ModuleID: "navigation", Title: "Navigation Quiz", QuestionCount: 5},
	{ID: "state-management-quiz", ModuleID: "state-management", Title: "State Management Quiz", QuestionCount: 5},
}

var catalogProjects = []model.MiniProject{
	{ID: "todo-app", Title: "Todo App", Difficulty: "beginner", Points: 100},
	{ID: "weather-app", Title: "Weather App", Difficulty: "intermediate", Points: 150},
	{ID: "photo-gallery", Title: "Photo Gallery", Difficulty: "intermediate", Points: 150},
	{ID: "chat-app", Title: "Chat App", Difficulty: "advanced", Points: 200},
	{ID: "fitness-tracker", Title: "Fitness Tracker", Difficulty: "advanced", Points: 200},
}
