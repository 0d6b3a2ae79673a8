package engine

import "assessment-service/internal/models"

// ReviewQuality maps a graded session answer onto the 0-5 recall quality
// scale the spaced-repetition scheduler consumes. Correct answers grade
// higher the faster they came; a skipped question counts as a blackout.
func ReviewQuality(a models.UserAnswer) int {
	switch {
	case a.Skipped:
		return 0
	case !a.IsCorrect:
		return 2
	case a.TimeTakenSeconds < fastAnswerSeconds:
		return 5
	case a.TimeTakenSeconds < 2*fastAnswerSeconds:
		return 4
	default:
		return 3
	}
}
