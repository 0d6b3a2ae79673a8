package scoring

import (
	"math"
	"strconv"

	"assessment-service/internal/models"
)

// Score recomputes the full multi-dimensional breakdown from a question
// list and the answers submitted against it. Deterministic and total:
// answers whose question id is not in the list are ignored.
func Score(questions []models.Question, answers []models.UserAnswer) models.QuizScore {
	byID := make(map[string]*models.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	score := models.QuizScore{
		BySystem:     map[string]models.DimensionScore{},
		ByDifficulty: map[string]models.DimensionScore{},
		ByType:       map[string]models.DimensionScore{},
	}

	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}

		score.Total++
		switch {
		case a.Skipped:
			score.Skipped++
		case a.IsCorrect:
			score.Correct++
		default:
			score.Incorrect++
		}

		bump(score.BySystem, q.System, a.IsCorrect)
		bump(score.ByDifficulty, strconv.Itoa(q.Difficulty), a.IsCorrect)
		bump(score.ByType, string(q.Type), a.IsCorrect)
	}

	score.Percentage = RoundPercent(score.Correct, score.Total)
	return score
}

func bump(dim map[string]models.DimensionScore, key string, correct bool) {
	d := dim[key]
	d.Total++
	if correct {
		d.Correct++
	}
	dim[key] = d
}

// RoundPercent returns round(correct/total*100), and 0 when total is 0.
// One rounding convention for every percentage the engine produces.
func RoundPercent(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct) / float64(total) * 100)
}
