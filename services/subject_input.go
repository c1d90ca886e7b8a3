package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/lomdim/lomdim-backend/models"
)

var ErrEmptyPayload = errors.New("request body cannot be empty")

// ParseSubjectPayloads accepts the body of POST /subjects, which may be a
// single subject document or an array of them, and validates every document.
func ParseSubjectPayloads(raw any) ([]models.Subject, error) {
	if raw == nil {
		return nil, ErrEmptyPayload
	}
	items, ok := raw.([]any)
	if !ok {
		items = []any{raw}
	}
	if len(items) == 0 {
		return nil, ErrEmptyPayload
	}
	subjects := make([]models.Subject, 0, len(items))
	for _, item := range items {
		subject, err := ParseSubjectPayload(item)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

// ParseSubjectPayload validates one raw subject document and converts it to a
// typed Subject. The id, createdBy and editedBy fields are owned by the server
// and ignored on input.
func ParseSubjectPayload(raw any) (models.Subject, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return models.Subject{}, models.ErrInvalidShape
	}

	str := func(key string) string {
		v, _ := obj[key].(string)
		return v
	}

	subjectName := str("subjectName")
	if subjectName == "" {
		return models.Subject{}, &models.MissingFieldError{Field: "subjectName"}
	}
	if str("courseName") == "" {
		return models.Subject{}, &models.MissingFieldError{Field: "courseName"}
	}

	info, err := DecodeInfoForest(obj["info"])
	if err != nil {
		return models.Subject{}, err
	}
	tags, err := DecodeTags(obj["tags"])
	if err != nil {
		return models.Subject{}, err
	}
	trivia, err := DecodeTrivia(obj["subjectTrivia"])
	if err != nil {
		return models.Subject{}, err
	}

	return models.Subject{
		ID:          uuid.New(),
		SubjectName: subjectName,
		CourseName:  str("courseName"),
		Slug:        slug.Make(subjectName),
		ImageUrl:    str("imageUrl"),
		YouTubeUrl:  str("youTubeUrl"),
		AudioUrl:    str("audioUrl"),
		Tags:        tags,
		Info:        info,
		Trivia:      trivia,
	}, nil
}

// DecodeTags validates the raw "tags" array. Tag names are required; a
// missing color falls back to the default. Duplicates are allowed.
func DecodeTags(raw any) ([]models.Tag, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, models.ErrInvalidShape
	}
	tags := make([]models.Tag, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, models.ErrInvalidShape
		}
		name, _ := obj["tagName"].(string)
		if name == "" {
			return nil, &models.MissingFieldError{Field: "tagName"}
		}
		color, _ := obj["tagColor"].(string)
		if color == "" {
			color = models.DefaultTagColor
		}
		tags = append(tags, models.Tag{Name: name, Color: color})
	}
	return tags, nil
}

// DecodeTrivia validates the raw "subjectTrivia" array of quiz questions.
func DecodeTrivia(raw any) ([]models.QuizQuestion, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, models.ErrInvalidShape
	}
	questions := make([]models.QuizQuestion, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, models.ErrInvalidShape
		}
		q := models.QuizQuestion{}
		q.Question, _ = obj["question"].(string)
		q.CorrectAnswer, _ = obj["correctAnswer"].(string)
		q.Explanation, _ = obj["explanation"].(string)
		if answers, ok := obj["answers"].([]any); ok {
			for _, a := range answers {
				s, _ := a.(string)
				q.Answers = append(q.Answers, s)
			}
		}
		if err := q.Validate(); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}
