package model

// LearnerProfile is the single source of truth for identity and the point
// economy. Level is always derived from points, never set independently.
//
// JSON tags keep the camelCase wire shape of the mobile client's persisted
// "auth-storage" document.
type LearnerProfile struct {
	ID                  string   `json:"id"`
	Email               *string  `json:"email"`
	Name                *string  `json:"name"`
	IsGuest             bool     `json:"isGuest"`
	Level               int      `json:"level"`
	Points              int      `json:"points"`
	CompletedModules    []string `json:"completedModules"`
	CompletedQuizzes    []string `json:"completedQuizzes"`
	CompletedDailyTasks []string `json:"dailyTasksCompleted"`
}

// AuthState is the whole persisted auth-storage document, written as one unit
// on every accepted mutation.
type AuthState struct {
	User            *LearnerProfile `json:"user"`
	IsAuthenticated bool            `json:"isAuthenticated"`
}

func (p *LearnerProfile) Clone() *LearnerProfile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.CompletedModules = append([]string(nil), p.CompletedModules...)
	cp.CompletedQuizzes = append([]string(nil), p.CompletedQuizzes...)
	cp.CompletedDailyTasks = append([]string(nil), p.CompletedDailyTasks...)
	return &cp
}
