package services

import (
	"fmt"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/pocketnative/pocketnative_api/model"
	"github.com/pocketnative/pocketnative_api/shared"
)

const dateLayout = "2006-01-02"

// ProgressService is the Progress Tracker: per-module completion
// percentages, quiz scores, the last-visited module and the daily-streak
// state machine. Its lifecycle follows the app installation, not the login
// session, so it survives logout.
type ProgressService struct {
	appContext.DefaultService

	storage documentPersister
	clock   Clock

	mu     sync.Mutex
	record *model.ProgressRecord
}

const PROGRESS_SVC = "progress_svc"

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *appContext.Context) error {
	svc.record = model.NewProgressRecord()
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	storageSvc := svc.Service(STORAGE_SVC).(*StorageService)
	svc.storage = storageSvc
	svc.clock = svc.Service(CLOCK_SVC).(*ClockService)

	var record model.ProgressRecord
	found, err := storageSvc.Load(shared.ProgressStorageNamespace, &record)
	if err != nil {
		return fmt.Errorf("failed to load progress state: %w", err)
	}
	if found {
		if record.ModuleProgress == nil {
			record.ModuleProgress = map[string]int{}
		}
		if record.QuizScores == nil {
			record.QuizScores = map[string]int{}
		}
		svc.mu.Lock()
		svc.record = &record
		svc.mu.Unlock()
		log.WithField("streak", record.DailyStreak).Info("Progress state restored")
	}

	return nil
}

// SetLastVisitedModule overwrites unconditionally on every module view.
func (svc *ProgressService) SetLastVisitedModule(moduleID string) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.record.LastVisitedModule = &moduleID
	svc.persistLocked()
}

// RecordModuleProgress overwrites the stored percentage for the module.
// Later calls with a lower percentage than before are accepted: there is no
// high-watermark clamp, matching the client's historical behavior.
func (svc *ProgressService) RecordModuleProgress(moduleID string, percent int) error {
	if percent < 0 || percent > 100 {
		return shared.NewInvalidArgumentError(fmt.Sprintf("progress must be between 0 and 100, got %d", percent))
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.record.ModuleProgress[moduleID] = percent
	svc.persistLocked()
	return nil
}

// RecordQuizScore overwrites the stored score for the quiz, with the same
// last-write-wins semantics as RecordModuleProgress.
func (svc *ProgressService) RecordQuizScore(quizID string, score int) error {
	if score < 0 || score > 100 {
		return shared.NewInvalidArgumentError(fmt.Sprintf("score must be between 0 and 100, got %d", score))
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.record.QuizScores[quizID] = score
	svc.persistLocked()
	return nil
}

// RefreshDailyStreak advances the streak machine using the injected clock
// and returns the current streak.
func (svc *ProgressService) RefreshDailyStreak() int {
	return svc.RefreshDailyStreakAt(svc.clock.Now())
}

// RefreshDailyStreakAt applies one streak transition for the given date:
// cold start and broken streaks reset to 1, a consecutive day increments,
// and repeat calls within the same day leave the streak unchanged. The day
// difference is a calendar-date difference at the midnight boundary, never
// elapsed wall-clock hours.
func (svc *ProgressService) RefreshDailyStreakAt(now time.Time) int {
	today := now.Format(dateLayout)

	svc.mu.Lock()
	defer svc.mu.Unlock()

	switch {
	case svc.record.LastActiveDate == nil:
		svc.record.DailyStreak = 1
	default:
		switch daysBetween(*svc.record.LastActiveDate, today) {
		case 0:
			// Same day, streak unchanged
		case 1:
			svc.record.DailyStreak++
		default:
			svc.record.DailyStreak = 1
		}
	}

	svc.record.LastActiveDate = &today
	svc.persistLocked()
	return svc.record.DailyStreak
}

// daysBetween counts midnight boundaries between two YYYY-MM-DD dates.
// An unparseable stored date counts as a gap, which resets the streak.
func daysBetween(from, to string) int {
	fromDay, err := time.ParseInLocation(dateLayout, from, time.UTC)
	if err != nil {
		return -1
	}
	toDay, err := time.ParseInLocation(dateLayout, to, time.UTC)
	if err != nil {
		return -1
	}
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// Record returns a copy of the full progress document.
func (svc *ProgressService) Record() *model.ProgressRecord {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.record.Clone()
}

func (svc *ProgressService) DailyStreak() int {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.record.DailyStreak
}

func (svc *ProgressService) persistLocked() {
	if svc.storage == nil {
		return
	}
	svc.storage.Persist(shared.ProgressStorageNamespace, svc.record.Clone())
}
