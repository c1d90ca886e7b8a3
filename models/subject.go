package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Subject is one unit of educational content: metadata, a recursive info
// forest, tags and a trivia quiz. Nested collections are stored as JSON
// columns so the persisted documents keep the exact shape older clients expect.
type Subject struct {
	ID          uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectName string                            `gorm:"size:255;not null;unique" json:"subjectName"`
	CourseName  string                            `gorm:"size:255;not null" json:"courseName"`
	Slug        string                            `gorm:"size:255;index" json:"slug"`
	ImageUrl    string                            `gorm:"type:text" json:"imageUrl"`
	YouTubeUrl  string                            `gorm:"type:text" json:"youTubeUrl"`
	AudioUrl    string                            `gorm:"type:text" json:"audioUrl"`
	Tags        datatypes.JSONSlice[Tag]          `json:"tags"`
	Info        datatypes.JSONSlice[ContentNode]  `json:"info"`
	Trivia      datatypes.JSONSlice[QuizQuestion] `gorm:"column:subject_trivia" json:"subjectTrivia"`
	CreatedBy   string                            `gorm:"size:150" json:"createdBy"`
	EditedBy    datatypes.JSONSlice[string]       `json:"editedBy"`
	CreatedAt   time.Time                         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time                         `gorm:"autoUpdateTime" json:"updatedAt"`
}

// SubjectCard is the read-optimized projection used by list views.
// It never carries the info forest or the trivia questions.
type SubjectCard struct {
	ID          uuid.UUID                `json:"id"`
	SubjectName string                   `json:"subjectName"`
	CourseName  string                   `json:"courseName"`
	Tags        datatypes.JSONSlice[Tag] `json:"tags"`
	ImageUrl    string                   `json:"imageUrl"`
}

// RecordEditor appends name to EditedBy if it is not already present.
func (s *Subject) RecordEditor(name string) {
	for _, existing := range s.EditedBy {
		if existing == name {
			return
		}
	}
	s.EditedBy = append(s.EditedBy, name)
}
