package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID              uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string                         `gorm:"size:150;not null;uniqueIndex" json:"name"`
	Password        string                         `gorm:"type:text;not null" json:"-"`
	Role            UserRole                       `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	LearnedSubjects datatypes.JSONSlice[uuid.UUID] `json:"learnedSubjects"`
	CreatedAt       time.Time                      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                      `gorm:"autoUpdateTime" json:"updated_at"`
}

// HasLearned reports whether the subject id is already in LearnedSubjects.
func (u *User) HasLearned(subjectID uuid.UUID) bool {
	for _, id := range u.LearnedSubjects {
		if id == subjectID {
			return true
		}
	}
	return false
}

// MarkLearned adds the subject id to LearnedSubjects. Idempotent.
func (u *User) MarkLearned(subjectID uuid.UUID) {
	if u.HasLearned(subjectID) {
		return
	}
	u.LearnedSubjects = append(u.LearnedSubjects, subjectID)
}

// UnmarkLearned removes the subject id from LearnedSubjects. Idempotent.
func (u *User) UnmarkLearned(subjectID uuid.UUID) {
	for i, id := range u.LearnedSubjects {
		if id == subjectID {
			u.LearnedSubjects = append(u.LearnedSubjects[:i], u.LearnedSubjects[i+1:]...)
			return
		}
	}
}
