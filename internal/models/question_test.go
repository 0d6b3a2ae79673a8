package models

import (
	"testing"
	"time"
)

func validQuestion() Question {
	return Question{
		ID:         "q1",
		Domain:     "cardiology",
		System:     "cardiovascular",
		Type:       TypeRecall,
		Format:     FormatMultipleChoice,
		Difficulty: 3,
		Prompt:     "Which chamber pumps blood into the aorta?",
		Choices: []Choice{
			{ID: "A", Text: "Right ventricle"},
			{ID: "B", Text: "Left ventricle", Correct: true},
			{ID: "C", Text: "Left atrium"},
		},
		CorrectAnswer: "B",
	}
}

func TestQuestionValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"empty prompt", func(q *Question) { q.Prompt = "" }, true},
		{"difficulty below range", func(q *Question) { q.Difficulty = 0 }, true},
		{"difficulty above range", func(q *Question) { q.Difficulty = 6 }, true},
		{"missing correct answer", func(q *Question) { q.CorrectAnswer = "" }, true},
		{"no correct choice", func(q *Question) {
			q.Choices[1].Correct = false
		}, true},
		{"two correct choices", func(q *Question) {
			q.Choices[0].Correct = true
		}, true},
		{"free response needs no choices", func(q *Question) {
			q.Format = FormatFreeResponse
			q.Choices = nil
			q.CorrectAnswer = "left ventricle"
		}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuestion()
			tc.mutate(&q)
			err := q.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewHistoryEntry(t *testing.T) {
	completed := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	session := &QuizSession{
		ID:     "s1",
		UserID: "learner-1",
		Title:  "Cardio drill",
		Config: SessionConfig{
			Systems:       []string{"cardiovascular"},
			Difficulty:    3,
			QuestionCount: 10,
		},
		Questions:        make([]Question, 8), // selector came up short of 10
		Status:           StatusCompleted,
		CompletedAt:      completed,
		Score:            QuizScore{Correct: 6, Incorrect: 2, Total: 8, Percentage: 75},
		TotalTimeSeconds: 412,
	}

	entry := NewHistoryEntry(session)

	if entry.SessionID != "s1" || entry.UserID != "learner-1" {
		t.Errorf("identity fields wrong: %+v", entry)
	}
	if !entry.CompletedAt.Equal(completed) {
		t.Errorf("completedAt = %v, want %v", entry.CompletedAt, completed)
	}
	if entry.QuestionCount != 8 {
		t.Errorf("question count = %d, want actual list length 8", entry.QuestionCount)
	}
	if entry.DurationSeconds != 412 {
		t.Errorf("duration = %.0f, want 412", entry.DurationSeconds)
	}
	if entry.Difficulty != 3 || len(entry.Systems) != 1 {
		t.Errorf("config projection wrong: %+v", entry)
	}
	if entry.Score.Percentage != 75 {
		t.Errorf("score not carried over: %+v", entry.Score)
	}
}
