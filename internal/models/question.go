package models

import "fmt"

// AnswerFormat selects the grading comparator for a question.
type AnswerFormat string

const (
	FormatMultipleChoice AnswerFormat = "multiple_choice"
	FormatTrueFalse      AnswerFormat = "true_false"
	FormatOrdering       AnswerFormat = "ordering"
	FormatFreeResponse   AnswerFormat = "free_response"
)

// QuestionType classifies the cognitive demand of a question, independent
// of its answer format.
type QuestionType string

const (
	TypeRecall        QuestionType = "recall"
	TypeComprehension QuestionType = "comprehension"
	TypeApplication   QuestionType = "application"
	TypeClinicalCase  QuestionType = "clinical_case"
)

type Choice struct {
	ID        string `bson:"id" json:"id"`
	Text      string `bson:"text" json:"text"`
	Correct   bool   `bson:"correct" json:"correct"`
	Rationale string `bson:"rationale,omitempty" json:"rationale,omitempty"`
}

type Explanation struct {
	Brief             string   `bson:"brief" json:"brief"`
	Detailed          string   `bson:"detailed,omitempty" json:"detailed,omitempty"`
	ClinicalRelevance string   `bson:"clinical_relevance,omitempty" json:"clinical_relevance,omitempty"`
	Mnemonic          string   `bson:"mnemonic,omitempty" json:"mnemonic,omitempty"`
	RelatedConcepts   []string `bson:"related_concepts,omitempty" json:"related_concepts,omitempty"`
}

// Question is an immutable content unit supplied by the content source.
// The engine never edits question content; learner-specific statistics live
// in QuestionStats.
type Question struct {
	ID            string       `bson:"_id,omitempty" json:"id"`
	Domain        string       `bson:"domain" json:"domain"`
	System        string       `bson:"system" json:"system"`
	Type          QuestionType `bson:"type" json:"type"`
	Format        AnswerFormat `bson:"format" json:"format"`
	Difficulty    int          `bson:"difficulty" json:"difficulty"`
	Prompt        string       `bson:"prompt" json:"prompt"`
	Choices       []Choice     `bson:"choices,omitempty" json:"choices,omitempty"`
	CorrectAnswer string       `bson:"correct_answer" json:"correct_answer"`
	Explanation   Explanation  `bson:"explanation" json:"explanation"`
	Tags          []string     `bson:"tags,omitempty" json:"tags,omitempty"`
	RelatedTopics []string     `bson:"related_topics,omitempty" json:"related_topics,omitempty"`
}

// Validate checks the structural invariants of authored content.
// Single-select multiple choice must mark exactly one choice correct.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question %s: empty prompt", q.ID)
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return fmt.Errorf("question %s: difficulty %d outside 1-5", q.ID, q.Difficulty)
	}
	if q.CorrectAnswer == "" {
		return fmt.Errorf("question %s: missing correct answer", q.ID)
	}
	if q.Format == FormatMultipleChoice {
		correct := 0
		for _, c := range q.Choices {
			if c.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("question %s: multiple choice requires exactly one correct choice, found %d", q.ID, correct)
		}
	}
	return nil
}
