package shared

const (
	AuthStorageNamespace     = "auth-storage"
	ProgressStorageNamespace = "progress-storage"

	TaskTypeLearning  = "learning"
	TaskTypePractice  = "practice"
	TaskTypeChallenge = "challenge"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	ModuleCompletionPoints = 50
	PointsPerLevel         = 100
)
