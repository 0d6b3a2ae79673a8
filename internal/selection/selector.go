// Package selection picks the question list for a new session from the
// learner's question bank and topic aggregates.
package selection

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"assessment-service/internal/models"
)

// unseenAccuracy is the empirical accuracy assumed for a question the
// learner has never answered, so unseen content neither dominates nor
// disappears in weak-area ordering.
const unseenAccuracy = 0.5

// difficultyWindow bounds the adaptive window: candidates within +-1 of
// the target keep sessions near the learner's current level.
const difficultyWindow = 1.0

// Selector filters and orders candidate questions. Pure given its inputs;
// the rand source only matters when weak-area focus is off.
type Selector struct {
	rand *rand.Rand
}

func NewSelector() *Selector {
	return &Selector{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSelectorWithSeed fixes the shuffle order; used by tests.
func NewSelectorWithSeed(seed int64) *Selector {
	return &Selector{rand: rand.New(rand.NewSource(seed))}
}

type candidate struct {
	question models.Question
	accuracy float64
	weakTie  bool // topic flagged needs-review, breaks accuracy ties first
}

// Select returns at most cfg.QuestionCount questions matching the
// configuration. Fewer candidates than requested is not an error: the
// caller must treat a short list as valid.
func (s *Selector) Select(
	cfg models.SessionConfig,
	questions []models.Question,
	stats map[string]models.QuestionStats,
	performance map[string]models.TopicPerformance,
) []models.Question {
	systems := toSet(cfg.Systems)
	types := typeSet(cfg.QuestionTypes)

	candidates := make([]candidate, 0, len(questions))
	for _, q := range questions {
		if !systems[q.System] {
			continue
		}
		if len(types) > 0 && !types[q.Type] {
			continue
		}
		if math.Abs(effectiveDifficulty(q, stats)-float64(cfg.Difficulty)) > difficultyWindow {
			continue
		}

		c := candidate{question: q, accuracy: unseenAccuracy}
		if st, ok := stats[q.ID]; ok {
			if acc, seen := st.Accuracy(); seen {
				c.accuracy = acc
			}
		}
		if tp, ok := performance[q.Domain]; ok {
			c.weakTie = tp.NeedsReview
		}
		candidates = append(candidates, c)
	}

	if cfg.FocusOnWeakAreas {
		// Weakest-performing questions surface first.
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].accuracy != candidates[j].accuracy {
				return candidates[i].accuracy < candidates[j].accuracy
			}
			return candidates[i].weakTie && !candidates[j].weakTie
		})
	} else {
		s.rand.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	count := cfg.QuestionCount
	if count > len(candidates) {
		count = len(candidates)
	}

	selected := make([]models.Question, count)
	for i := 0; i < count; i++ {
		selected[i] = candidates[i].question
	}
	return selected
}

// effectiveDifficulty is the empirically drifted difficulty when the
// learner has seen the question, the authored value otherwise. Drifted
// values are clamped to [1,5] on write, so anything outside that range is
// an unseeded stats row and falls back to the authored difficulty.
func effectiveDifficulty(q models.Question, stats map[string]models.QuestionStats) float64 {
	if st, ok := stats[q.ID]; ok && st.TimesAsked > 0 &&
		st.UserDifficulty >= 1 && st.UserDifficulty <= 5 {
		return st.UserDifficulty
	}
	return float64(q.Difficulty)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func typeSet(values []models.QuestionType) map[models.QuestionType]bool {
	set := make(map[models.QuestionType]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
