package services

import (
	"fmt"
	"strings"
	"sync"

	appContext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pocketnative/pocketnative_api/dto"
	"github.com/pocketnative/pocketnative_api/model"
	"github.com/pocketnative/pocketnative_api/shared"
)

// ProfileService is the Profile Store: single source of truth for identity
// and the point economy. All mutations are synchronous read-modify-write
// against the in-memory profile; the auth-storage document is persisted as a
// fire-and-forget side effect after every accepted mutation.
//
// Every mutation with no active profile fails with NoActiveProfile.
type ProfileService struct {
	appContext.DefaultService

	storage         documentPersister
	gamificationSvc *GamificationService

	mu            sync.Mutex
	user          *model.LearnerProfile
	authenticated bool
}

const PROFILE_SVC = "profile_svc"

func (svc ProfileService) Id() string {
	return PROFILE_SVC
}

func (svc *ProfileService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProfileService) Start() error {
	storageSvc := svc.Service(STORAGE_SVC).(*StorageService)
	svc.storage = storageSvc
	svc.gamificationSvc = svc.Service(GAMIFICATION_SVC).(*GamificationService)

	var state model.AuthState
	found, err := storageSvc.Load(shared.AuthStorageNamespace, &state)
	if err != nil {
		return fmt.Errorf("failed to load auth state: %w", err)
	}
	if found {
		svc.mu.Lock()
		svc.user = state.User
		svc.authenticated = state.IsAuthenticated && state.User != nil
		svc.mu.Unlock()
		log.WithField("authenticated", svc.authenticated).Info("Auth state restored")
	}

	return nil
}

// Login simulates authentication: the profile is constructed
// deterministically from the email and the password is never verified.
// Credential checks belong to an external identity provider.
func (svc *ProfileService) Login(email, password string) *model.LearnerProfile {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	user := &model.LearnerProfile{
		ID:                  uuid.New().String(),
		Email:               &email,
		Name:                &name,
		IsGuest:             false,
		Level:               1,
		Points:              0,
		CompletedModules:    []string{},
		CompletedQuizzes:    []string{},
		CompletedDailyTasks: []string{},
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.user = user
	svc.authenticated = true
	svc.persistLocked()

	log.WithField("user_id", user.ID).Info("User logged in")
	return user.Clone()
}

// LoginAsGuest constructs a session-scoped guest profile with no identity.
func (svc *ProfileService) LoginAsGuest() *model.LearnerProfile {
	name := "Guest User"
	user := &model.LearnerProfile{
		ID:                  "guest-" + uuid.New().String(),
		Name:                &name,
		IsGuest:             true,
		Level:               1,
		Points:              0,
		CompletedModules:    []string{},
		CompletedQuizzes:    []string{},
		CompletedDailyTasks: []string{},
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.user = user
	svc.authenticated = true
	svc.persistLocked()

	log.WithField("user_id", user.ID).Info("Guest session started")
	return user.Clone()
}

// Logout discards the current profile. Idempotent.
func (svc *ProfileService) Logout() {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.user == nil && !svc.authenticated {
		return
	}

	svc.user = nil
	svc.authenticated = false
	svc.persistLocked()

	log.Info("User logged out")
}

// UpdateIdentity merges identity fields only. Points, level and completion
// sets are never touched here, so no level recomputation happens.
func (svc *ProfileService) UpdateIdentity(req dto.UpdateProfileRequest) (*model.LearnerProfile, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.user == nil {
		return nil, shared.NewNoActiveProfileError()
	}

	if req.Name != nil {
		name := *req.Name
		svc.user.Name = &name
	}
	if req.Email != nil {
		email := *req.Email
		svc.user.Email = &email
	}
	svc.persistLocked()

	return svc.user.Clone(), nil
}

// AddPoints credits n points and recomputes the level. The level may jump by
// more than one when n is large.
func (svc *ProfileService) AddPoints(n int) (*model.LearnerProfile, error) {
	if n <= 0 {
		return nil, shared.NewInvalidArgumentError(fmt.Sprintf("points must be positive, got %d", n))
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.user == nil {
		return nil, shared.NewNoActiveProfileError()
	}

	svc.user.Points += n
	oldLevel := svc.user.Level
	svc.user.Level = svc.gamificationSvc.LevelForPoints(svc.user.Points)
	svc.persistLocked()

	if svc.user.Level > oldLevel {
		log.WithFields(log.Fields{
			"user_id": svc.user.ID,
			"level":   svc.user.Level,
		}).Info("User leveled up")
	}

	return svc.user.Clone(), nil
}

// CompleteModule marks a module completed. Returns true when the id was
// newly added; repeating the call is a no-op, not an error.
func (svc *ProfileService) CompleteModule(moduleID string) (bool, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.user == nil {
		return false, shared.NewNoActiveProfileError()
	}
	return svc.completeLocked(&svc.user.CompletedModules, moduleID), nil
}

// CompleteQuiz marks a quiz completed. Idempotent like CompleteModule.
func (svc *ProfileService) CompleteQuiz(quizID string) (bool, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.user == nil {
		return false, shared.NewNoActiveProfileError()
	}
	return svc.completeLocked(&svc.user.CompletedQuizzes, quizID), nil
}

// CompleteDailyTask marks a daily task completed. Task ids are scoped to the
// current generation epoch, so stale ids simply accumulate until logout.
func (svc *ProfileService) CompleteDailyTask(taskID string) (bool, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.user == nil {
		return false, shared.NewNoActiveProfileError()
	}
	return svc.completeLocked(&svc.user.CompletedDailyTasks, taskID), nil
}

func (svc *ProfileService) completeLocked(set *[]string, id string) bool {
	for _, existing := range *set {
		if existing == id {
			return false
		}
	}
	*set = append(*set, id)
	svc.persistLocked()
	return true
}

// Profile returns a copy of the active profile, or nil when logged out.
func (svc *ProfileService) Profile() *model.LearnerProfile {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.user.Clone()
}

func (svc *ProfileService) IsAuthenticated() bool {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.authenticated && svc.user != nil
}

func (svc *ProfileService) persistLocked() {
	if svc.storage == nil {
		return
	}
	svc.storage.Persist(shared.AuthStorageNamespace, model.AuthState{
		User:            svc.user.Clone(),
		IsAuthenticated: svc.authenticated,
	})
}
