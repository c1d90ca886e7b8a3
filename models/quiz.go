package models

import (
	"errors"
	"fmt"
)

// QuizAnswerCount is the required number of answer options per question.
const QuizAnswerCount = 4

var ErrCorrectAnswerMissing = errors.New("correctAnswer must be one of the answers")

// QuizQuestion is one multiple-choice trivia question attached to a subject.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Validate enforces the quiz invariants: exactly four answers and a correct
// answer that is one of them.
func (q QuizQuestion) Validate() error {
	if q.Question == "" {
		return &MissingFieldError{Field: "question"}
	}
	if len(q.Answers) != QuizAnswerCount {
		return fmt.Errorf("question must have exactly %d answers, got %d", QuizAnswerCount, len(q.Answers))
	}
	for _, a := range q.Answers {
		if a == q.CorrectAnswer {
			return nil
		}
	}
	return ErrCorrectAnswerMissing
}
