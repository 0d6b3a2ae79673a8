package models

// DimensionScore is a running correct/total pair for one key of a
// score breakdown map.
type DimensionScore struct {
	Correct int `bson:"correct" json:"correct"`
	Total   int `bson:"total" json:"total"`
}

// QuizScore is the multi-dimensional score of a session. It is derived
// state: always recomputable from (questions, answers) and never persisted
// independently of its session.
type QuizScore struct {
	Correct      int                       `bson:"correct" json:"correct"`
	Incorrect    int                       `bson:"incorrect" json:"incorrect"`
	Skipped      int                       `bson:"skipped" json:"skipped"`
	Total        int                       `bson:"total" json:"total"`
	Percentage   float64                   `bson:"percentage" json:"percentage"`
	BySystem     map[string]DimensionScore `bson:"by_system" json:"by_system"`
	ByDifficulty map[string]DimensionScore `bson:"by_difficulty" json:"by_difficulty"`
	ByType       map[string]DimensionScore `bson:"by_type" json:"by_type"`
}
