package model

// ProgressRecord is the whole persisted progress-storage document. Module
// percentages and quiz scores are last-write-wins per id; the streak fields
// drive the calendar-day state machine.
//
// LastActiveDate is a day-granularity date (YYYY-MM-DD), not a timestamp.
type ProgressRecord struct {
	LastVisitedModule *string        `json:"lastVisitedModule"`
	ModuleProgress    map[string]int `json:"moduleProgress"`
	QuizScores        map[string]int `json:"quizScores"`
	DailyStreak       int            `json:"dailyStreak"`
	LastActiveDate    *string        `json:"lastActiveDate"`
}

func NewProgressRecord() *ProgressRecord {
	return &ProgressRecord{
		ModuleProgress: map[string]int{},
		QuizScores:     map[string]int{},
	}
}

func (r *ProgressRecord) Clone() *ProgressRecord {
	if r == nil {
		return nil
	}
	cp := *r
	cp.ModuleProgress = make(map[string]int, len(r.ModuleProgress))
	for k, v := range r.ModuleProgress {
		cp.ModuleProgress[k] = v
	}
	cp.QuizScores = make(map[string]int, len(r.QuizScores))
	for k, v := range r.QuizScores {
		cp.QuizScores[k] = v
	}
	return &cp
}
