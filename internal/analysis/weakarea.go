// Package analysis derives remediation recommendations from the learner's
// topic aggregates. Everything is re-derivable; nothing here mutates the
// aggregates it reads.
package analysis

import (
	"sort"

	"assessment-service/internal/models"
)

const (
	// minAttempts guards against statistical noise from tiny samples.
	minAttempts = 3

	// Accuracy percentages bounding the priority tiers.
	weakThreshold   = 60
	mediumThreshold = 50
	highThreshold   = 30
)

var suggestions = map[models.Priority]string{
	models.PriorityHigh:   "Revisit the core material for this topic before attempting more questions.",
	models.PriorityMedium: "Work through a focused question set on this topic and review every explanation.",
	models.PriorityLow:    "Schedule a short refresher session on this topic.",
}

var priorityRank = map[models.Priority]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

// IdentifyWeakAreas returns prioritized recommendations for every topic
// with enough attempts and accuracy below 60%, highest priority first and
// weakest accuracy first within a tier.
func IdentifyWeakAreas(performance []models.TopicPerformance) []models.WeakAreaRecommendation {
	recs := make([]models.WeakAreaRecommendation, 0)
	for _, tp := range performance {
		if tp.Attempted < minAttempts || tp.Accuracy >= weakThreshold {
			continue
		}

		priority := models.PriorityLow
		switch {
		case tp.Accuracy < highThreshold:
			priority = models.PriorityHigh
		case tp.Accuracy < mediumThreshold:
			priority = models.PriorityMedium
		}

		recs = append(recs, models.WeakAreaRecommendation{
			Topic:      tp.Topic,
			Accuracy:   tp.Accuracy,
			Attempted:  tp.Attempted,
			Priority:   priority,
			Suggestion: suggestions[priority],
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if priorityRank[recs[i].Priority] != priorityRank[recs[j].Priority] {
			return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
		}
		return recs[i].Accuracy < recs[j].Accuracy
	})
	return recs
}
