package analysis

import (
	"testing"

	"assessment-service/internal/models"
)

func perf(topic string, attempted int, accuracy float64) models.TopicPerformance {
	return models.TopicPerformance{Topic: topic, Attempted: attempted, Accuracy: accuracy}
}

func TestIdentifyWeakAreasEligibility(t *testing.T) {
	input := []models.TopicPerformance{
		perf("cardiology", 5, 25),   // high priority
		perf("pulmonology", 2, 10),  // excluded: below attempt threshold
		perf("nephrology", 8, 55),   // low priority
		perf("endocrine", 4, 45),    // medium priority
		perf("neurology", 12, 85),   // excluded: not weak
		perf("hematology", 3, 60),   // excluded: exactly at the accuracy bound
	}

	recs := IdentifyWeakAreas(input)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}

	byTopic := map[string]models.WeakAreaRecommendation{}
	for _, r := range recs {
		byTopic[r.Topic] = r
	}

	if _, ok := byTopic["pulmonology"]; ok {
		t.Error("topic with 2 attempts must be excluded regardless of accuracy")
	}
	if got := byTopic["cardiology"].Priority; got != models.PriorityHigh {
		t.Errorf("cardiology priority = %s, want high", got)
	}
	if got := byTopic["endocrine"].Priority; got != models.PriorityMedium {
		t.Errorf("endocrine priority = %s, want medium", got)
	}
	if got := byTopic["nephrology"].Priority; got != models.PriorityLow {
		t.Errorf("nephrology priority = %s, want low", got)
	}
}

func TestIdentifyWeakAreasOrdering(t *testing.T) {
	input := []models.TopicPerformance{
		perf("a", 5, 55),
		perf("b", 5, 10),
		perf("c", 5, 40),
		perf("d", 5, 25),
	}

	recs := IdentifyWeakAreas(input)
	wantOrder := []string{"b", "d", "c", "a"} // high(10,25), medium(40), low(55)
	if len(recs) != len(wantOrder) {
		t.Fatalf("got %d recommendations, want %d", len(recs), len(wantOrder))
	}
	for i, want := range wantOrder {
		if recs[i].Topic != want {
			t.Errorf("position %d: got %s, want %s", i, recs[i].Topic, want)
		}
	}
}

func TestIdentifyWeakAreasSuggestions(t *testing.T) {
	recs := IdentifyWeakAreas([]models.TopicPerformance{perf("cardiology", 5, 25)})
	if len(recs) != 1 {
		t.Fatal("expected one recommendation")
	}
	if recs[0].Suggestion == "" {
		t.Error("recommendation must carry its tier suggestion")
	}
	if recs[0].Suggestion != suggestions[models.PriorityHigh] {
		t.Errorf("suggestion does not match the high tier: %q", recs[0].Suggestion)
	}
}

func TestIdentifyWeakAreasPure(t *testing.T) {
	input := []models.TopicPerformance{perf("cardiology", 5, 25)}
	before := input[0]
	IdentifyWeakAreas(input)
	if input[0] != before {
		t.Error("analyzer must not mutate the performance it reads")
	}
}

func TestIdentifyWeakAreasEmpty(t *testing.T) {
	if recs := IdentifyWeakAreas(nil); len(recs) != 0 {
		t.Errorf("no performance means no recommendations, got %d", len(recs))
	}
}
