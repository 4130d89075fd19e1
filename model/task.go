package model

// DailyTask is ephemeral: generated per session, never persisted as a catalog.
// Only completion references (ids) end up in the learner profile.
type DailyTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Type        string `json:"type"`       // learning, practice, challenge
	Difficulty  string `json:"difficulty"` // easy, medium, hard
}
