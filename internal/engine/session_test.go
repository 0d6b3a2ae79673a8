package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"assessment-service/internal/models"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func testConfig() models.SessionConfig {
	return models.SessionConfig{
		Systems:       []string{"cardiovascular"},
		Difficulty:    3,
		QuestionCount: 4,
	}
}

func testQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			ID:            string(rune('a' + i)),
			System:        "cardiovascular",
			Type:          models.TypeRecall,
			Difficulty:    3,
			Format:        models.FormatMultipleChoice,
			CorrectAnswer: "A",
		}
	}
	return questions
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*models.SessionConfig)
		wantErr error
	}{
		{"valid", func(c *models.SessionConfig) {}, nil},
		{"no systems", func(c *models.SessionConfig) { c.Systems = nil }, ErrNoSystemsSelected},
		{"zero count", func(c *models.SessionConfig) { c.QuestionCount = 0 }, ErrInvalidQuestionCount},
		{"negative count", func(c *models.SessionConfig) { c.QuestionCount = -2 }, ErrInvalidQuestionCount},
		{"difficulty too low", func(c *models.SessionConfig) { c.Difficulty = 0 }, ErrInvalidDifficulty},
		{"difficulty too high", func(c *models.SessionConfig) { c.Difficulty = 6 }, ErrInvalidDifficulty},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			if err := ValidateConfig(cfg); !errors.Is(err, tc.wantErr) {
				t.Errorf("ValidateConfig() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession("learner-1", "Cardio drill", testConfig(), testQuestions(4), testNow)

	if s.Status != models.StatusNotStarted {
		t.Fatalf("new session status = %s", s.Status)
	}
	if s.ID == "" {
		t.Fatal("new session must have an id")
	}

	// Submitting before start is rejected and leaves the session untouched.
	if _, err := SubmitAnswer(s, "A", 10, 0, testNow); !errors.Is(err, ErrNotStarted) {
		t.Errorf("submit before start = %v, want ErrNotStarted", err)
	}
	if len(s.Answers) != 0 || s.CurrentIndex != 0 {
		t.Error("rejected submit must not mutate the session")
	}

	if err := Start(s, testNow); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Status != models.StatusInProgress || !s.StartedAt.Equal(testNow) {
		t.Errorf("after start: status=%s startedAt=%v", s.Status, s.StartedAt)
	}

	// Starting twice is a logic error, not silently ignored.
	if err := Start(s, testNow); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second start = %v, want ErrAlreadyStarted", err)
	}
}

func TestSubmitAnswerScenario(t *testing.T) {
	// Answers correct, correct, incorrect, correct with times 30/25/40/20.
	s := NewSession("learner-1", "", testConfig(), testQuestions(4), testNow)
	if err := Start(s, testNow); err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		value string
		time  float64
	}{
		{"A", 30},
		{"A", 25},
		{"B", 40},
		{"A", 20},
	}
	for i, step := range steps {
		ans, err := SubmitAnswer(s, step.value, step.time, 0, testNow.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if ans.QuestionID != s.Questions[i].ID {
			t.Errorf("answer %d graded against question %s", i, ans.QuestionID)
		}
	}

	if s.Status != models.StatusCompleted {
		t.Fatalf("status after final answer = %s, want completed", s.Status)
	}
	if s.CompletedAt.IsZero() {
		t.Error("completed session must stamp completion time")
	}
	if s.Score.Correct != 3 || s.Score.Incorrect != 1 || s.Score.Total != 4 {
		t.Errorf("score = %+v, want 3 correct / 1 incorrect / 4 total", s.Score)
	}
	if s.Score.Percentage != 75 {
		t.Errorf("percentage = %.2f, want 75", s.Score.Percentage)
	}
	if s.TotalTimeSeconds != 115 {
		t.Errorf("total time = %.2f, want 115", s.TotalTimeSeconds)
	}
	if avg := s.TotalTimeSeconds / float64(len(s.Answers)); math.Abs(avg-28.75) > 1e-9 {
		t.Errorf("average time = %.2f, want 28.75", avg)
	}

	// Completed is terminal.
	if _, err := SubmitAnswer(s, "A", 5, 0, testNow); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("submit after completion = %v, want ErrSessionCompleted", err)
	}
	if err := Abandon(s, testNow); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("abandon after completion = %v, want ErrSessionCompleted", err)
	}
	if len(s.Answers) != 4 {
		t.Errorf("terminal session grew answers: %d", len(s.Answers))
	}
}

func TestSubmitSkippedAnswer(t *testing.T) {
	s := NewSession("learner-1", "", testConfig(), testQuestions(2), testNow)
	if err := Start(s, testNow); err != nil {
		t.Fatal(err)
	}

	ans, err := SubmitAnswer(s, "   ", 12, 0, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if !ans.Skipped || ans.IsCorrect {
		t.Errorf("blank submission: skipped=%v correct=%v, want skipped and not correct", ans.Skipped, ans.IsCorrect)
	}
	if s.Score.Skipped != 1 || s.Score.Total != 1 {
		t.Errorf("score after skip = %+v", s.Score)
	}
}

func TestAbandon(t *testing.T) {
	s := NewSession("learner-1", "", testConfig(), testQuestions(3), testNow)

	if err := Abandon(s, testNow); !errors.Is(err, ErrNotStarted) {
		t.Errorf("abandon before start = %v, want ErrNotStarted", err)
	}

	if err := Start(s, testNow); err != nil {
		t.Fatal(err)
	}
	if _, err := SubmitAnswer(s, "A", 10, 0, testNow); err != nil {
		t.Fatal(err)
	}
	if err := Abandon(s, testNow); err != nil {
		t.Fatalf("abandon in progress: %v", err)
	}
	if s.Status != models.StatusAbandoned {
		t.Errorf("status = %s, want abandoned", s.Status)
	}

	// Abandoned is terminal too.
	if _, err := SubmitAnswer(s, "A", 10, 0, testNow); !errors.Is(err, ErrSessionAbandoned) {
		t.Errorf("submit after abandon = %v, want ErrSessionAbandoned", err)
	}
}

func TestSubmitAnswerConfidenceRecorded(t *testing.T) {
	s := NewSession("learner-1", "", testConfig(), testQuestions(1), testNow)
	if err := Start(s, testNow); err != nil {
		t.Fatal(err)
	}
	ans, err := SubmitAnswer(s, "A", 15, 4, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if ans.Confidence != 4 {
		t.Errorf("confidence = %d, want 4", ans.Confidence)
	}
}
