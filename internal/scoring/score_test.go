package scoring

import (
	"reflect"
	"testing"

	"assessment-service/internal/models"
)

func fixtureQuestions() []models.Question {
	return []models.Question{
		{ID: "q1", System: "cardiovascular", Type: models.TypeRecall, Difficulty: 2, Format: models.FormatMultipleChoice, CorrectAnswer: "A"},
		{ID: "q2", System: "cardiovascular", Type: models.TypeApplication, Difficulty: 3, Format: models.FormatMultipleChoice, CorrectAnswer: "B"},
		{ID: "q3", System: "respiratory", Type: models.TypeRecall, Difficulty: 3, Format: models.FormatTrueFalse, CorrectAnswer: "true"},
		{ID: "q4", System: "respiratory", Type: models.TypeClinicalCase, Difficulty: 4, Format: models.FormatMultipleChoice, CorrectAnswer: "C"},
	}
}

func answer(questionID string, correct bool, timeTaken float64) models.UserAnswer {
	return models.UserAnswer{QuestionID: questionID, IsCorrect: correct, TimeTakenSeconds: timeTaken}
}

func TestScoreFixedScenario(t *testing.T) {
	// Four answers: correct, correct, incorrect, correct.
	questions := fixtureQuestions()
	answers := []models.UserAnswer{
		answer("q1", true, 30),
		answer("q2", true, 25),
		answer("q3", false, 40),
		answer("q4", true, 20),
	}

	score := Score(questions, answers)

	if score.Correct != 3 || score.Incorrect != 1 || score.Total != 4 {
		t.Errorf("got correct=%d incorrect=%d total=%d, want 3/1/4", score.Correct, score.Incorrect, score.Total)
	}
	if score.Percentage != 75 {
		t.Errorf("got percentage %.2f, want 75", score.Percentage)
	}
	if got := score.BySystem["cardiovascular"]; got != (models.DimensionScore{Correct: 2, Total: 2}) {
		t.Errorf("cardiovascular breakdown = %+v", got)
	}
	if got := score.BySystem["respiratory"]; got != (models.DimensionScore{Correct: 1, Total: 2}) {
		t.Errorf("respiratory breakdown = %+v", got)
	}
	if got := score.ByDifficulty["3"]; got != (models.DimensionScore{Correct: 1, Total: 2}) {
		t.Errorf("difficulty-3 breakdown = %+v", got)
	}
	if got := score.ByType[string(models.TypeRecall)]; got != (models.DimensionScore{Correct: 1, Total: 2}) {
		t.Errorf("recall breakdown = %+v", got)
	}
}

func TestScoreTotalsInvariant(t *testing.T) {
	questions := fixtureQuestions()

	testCases := []struct {
		name    string
		answers []models.UserAnswer
	}{
		{"no answers", nil},
		{"single correct", []models.UserAnswer{answer("q1", true, 10)}},
		{"all incorrect", []models.UserAnswer{answer("q1", false, 10), answer("q2", false, 12)}},
		{"with skipped", []models.UserAnswer{answer("q1", true, 10), {QuestionID: "q2", Skipped: true, TimeTakenSeconds: 5}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score := Score(questions, tc.answers)
			if score.Correct+score.Incorrect+score.Skipped != score.Total {
				t.Errorf("correct+incorrect+skipped = %d, total = %d",
					score.Correct+score.Incorrect+score.Skipped, score.Total)
			}
			if score.Total != len(tc.answers) {
				t.Errorf("total = %d, want %d", score.Total, len(tc.answers))
			}
		})
	}
}

func TestScoreEmptyAnswersZeroPercentage(t *testing.T) {
	score := Score(fixtureQuestions(), nil)
	if score.Percentage != 0 {
		t.Errorf("empty answer list must score 0%%, got %.2f", score.Percentage)
	}
}

func TestScoreIdempotent(t *testing.T) {
	questions := fixtureQuestions()
	answers := []models.UserAnswer{
		answer("q1", true, 30),
		answer("q2", false, 25),
		{QuestionID: "q3", Skipped: true, TimeTakenSeconds: 8},
	}

	first := Score(questions, answers)
	second := Score(questions, answers)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("scoring is not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestScoreIgnoresUnknownQuestionID(t *testing.T) {
	score := Score(fixtureQuestions(), []models.UserAnswer{answer("ghost", true, 10)})
	if score.Total != 0 {
		t.Errorf("answer for unknown question must be ignored, total = %d", score.Total)
	}
}

func TestRoundPercent(t *testing.T) {
	testCases := []struct {
		correct, total int
		want           float64
	}{
		{0, 0, 0},
		{3, 4, 75},
		{9, 13, 69}, // (7+2)/(10+3): always round, never truncate
		{1, 3, 33},
		{2, 3, 67},
	}

	for _, tc := range testCases {
		if got := RoundPercent(tc.correct, tc.total); got != tc.want {
			t.Errorf("RoundPercent(%d, %d) = %.2f, want %.2f", tc.correct, tc.total, got, tc.want)
		}
	}
}
