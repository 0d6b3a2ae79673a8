// Package repetition schedules question reviews with an SM-2 family
// algorithm: quality-graded intervals with a bounded ease factor.
package repetition

import (
	"fmt"
	"math"
	"sort"
	"time"

	"assessment-service/internal/models"
)

// passingQuality is the recall grade at or above which a review counts as
// successful.
const passingQuality = 3

// Review applies one graded recall to a scheduling item and returns the
// updated copy. Quality outside [0,5] is a contract violation.
func Review(item models.RepetitionItem, quality int, now time.Time) (models.RepetitionItem, error) {
	if quality < 0 || quality > 5 {
		return item, fmt.Errorf("review quality %d outside [0,5]", quality)
	}

	if quality >= passingQuality {
		switch item.Repetitions {
		case 0:
			item.IntervalDays = 1
		case 1:
			item.IntervalDays = 6
		default:
			item.IntervalDays = int(math.Round(float64(item.IntervalDays) * item.EaseFactor))
		}
		item.Repetitions++
	} else {
		// Failed recall restarts the schedule; no partial credit.
		item.Repetitions = 0
		item.IntervalDays = 1
	}

	// Ease always updates, pass or fail, floored at the minimum.
	q := float64(quality)
	item.EaseFactor = item.EaseFactor + 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if item.EaseFactor < models.MinEaseFactor {
		item.EaseFactor = models.MinEaseFactor
	}

	item.LastReview = now
	item.NextReview = now.AddDate(0, 0, item.IntervalDays)
	return item, nil
}

// Due returns exactly the items whose next review is at or before now,
// earliest first. It has no notion of a session; it is the entry point for
// building a remediation quiz.
func Due(items []models.RepetitionItem, now time.Time) []models.RepetitionItem {
	due := make([]models.RepetitionItem, 0)
	for _, item := range items {
		if !item.NextReview.After(now) {
			due = append(due, item)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].NextReview.Before(due[j].NextReview)
	})
	return due
}
