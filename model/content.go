package model

// Static catalog entries. The catalog is read-only reference data; the
// progress engine never validates completion ids against it.

type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Level       string `json:"level"` // beginner, intermediate, advanced
}

type Quiz struct {
	ID            string `json:"id"`
	ModuleID      string `json:"module_id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
}

type MiniProject struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Points     int    `json:"points"`
}
