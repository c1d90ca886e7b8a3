package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/lomdim/lomdim-backend/models"
	"github.com/lomdim/lomdim-backend/services"
)

// POST /subjects (teacher/admin)
// Accepts a single subject document or an array of them, like the stored
// collection's original import format.
func CreateSubject(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	userName := c.GetString("user_name")
	if userName == "" {
		userName = "unknown"
	}

	var raw any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request body cannot be empty"})
		return
	}

	subjects, err := services.ParseSubjectPayloads(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	// Exact, case-sensitive name match decides uniqueness.
	for i := range subjects {
		var count int64
		if err := db.Model(&models.Subject{}).Where("subject_name = ?", subjects[i].SubjectName).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error checking for duplicates"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Subject with subjectName \"" + subjects[i].SubjectName + "\" already exists",
			})
			return
		}
		subjects[i].CreatedBy = userName
	}

	if err := db.Create(&subjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error adding subjects"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "count": len(subjects), "data": subjects})
}

// GET /subjects
func GetSubjects(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var subjects []models.Subject
	if err := db.Order("created_at desc").Find(&subjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(subjects), "data": subjects})
}

// GET /subjectcards
// Read-optimized list projection: never returns the info forest or trivia.
func GetSubjectsForCards(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var cards []models.SubjectCard
	err := db.Model(&models.Subject{}).
		Select("id, subject_name, course_name, tags, image_url").
		Order("created_at desc").
		Find(&cards).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching card data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(cards), "data": cards})
}

// GET /subjects/:id?fields=subjectName,courseName
func GetSubjectByID(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid subject ID"})
		return
	}

	var subject models.Subject
	if err := db.First(&subject, "id = ?", subjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Document not found"})
		return
	}

	fields := c.Query("fields")
	if fields == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": subject})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": projectSubject(&subject, strings.Split(fields, ","))})
}

// UpdateSubjectInput is the allow-listed patch shape: only these fields can be
// changed, anything else in the body is ignored. Nested collections are
// replaced wholesale when present, never deep-merged.
type UpdateSubjectInput struct {
	SubjectName *string `json:"subjectName"`
	CourseName  *string `json:"courseName"`
	ImageUrl    *string `json:"imageUrl"`
	YouTubeUrl  *string `json:"youTubeUrl"`
	AudioUrl    *string `json:"audioUrl"`
	Tags        any     `json:"tags"`
	Info        any     `json:"info"`
	Trivia      any     `json:"subjectTrivia"`
}

// PUT /subjects/:id (any authenticated user)
func UpdateSubject(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userName := c.GetString("user_name")
	if userName == "" {
		userName = "unknown"
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid subject ID"})
		return
	}

	var subject models.Subject
	if err := db.First(&subject, "id = ?", subjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Subject not found"})
		return
	}

	var input UpdateSubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if input.SubjectName != nil {
		if *input.SubjectName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": (&models.MissingFieldError{Field: "subjectName"}).Error()})
			return
		}
		if *input.SubjectName != subject.SubjectName {
			var count int64
			db.Model(&models.Subject{}).Where("subject_name = ? AND id <> ?", *input.SubjectName, subject.ID).Count(&count)
			if count > 0 {
				c.JSON(http.StatusConflict, gin.H{
					"success": false,
					"message": "Subject with subjectName \"" + *input.SubjectName + "\" already exists",
				})
				return
			}
		}
		subject.SubjectName = *input.SubjectName
		subject.Slug = slug.Make(*input.SubjectName)
	}
	if input.CourseName != nil {
		if *input.CourseName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": (&models.MissingFieldError{Field: "courseName"}).Error()})
			return
		}
		subject.CourseName = *input.CourseName
	}
	if input.ImageUrl != nil {
		subject.ImageUrl = *input.ImageUrl
	}
	if input.YouTubeUrl != nil {
		subject.YouTubeUrl = *input.YouTubeUrl
	}
	if input.AudioUrl != nil {
		subject.AudioUrl = *input.AudioUrl
	}
	if input.Tags != nil {
		tags, err := services.DecodeTags(input.Tags)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		subject.Tags = tags
	}
	if input.Info != nil {
		info, err := services.DecodeInfoForest(input.Info)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		subject.Info = info
	}
	if input.Trivia != nil {
		trivia, err := services.DecodeTrivia(input.Trivia)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		subject.Trivia = trivia
	}

	subject.RecordEditor(userName)

	if err := db.Save(&subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating subject"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": subject})
}

// EditSubjectInfoInput is one tree-editor operation applied to the stored
// info forest. Empty titles/descriptions are legal mid-edit; full field
// validation happens when the document is saved through PUT /subjects/:id.
type EditSubjectInfoInput struct {
	Op       string               `json:"op" binding:"required"`
	Path     []int                `json:"path"`
	Field    string               `json:"field"`
	Value    string               `json:"value"`
	Children []models.ContentNode `json:"children"`
}

// PATCH /subjects/:id/info (any authenticated user)
func EditSubjectInfo(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userName := c.GetString("user_name")
	if userName == "" {
		userName = "unknown"
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid subject ID"})
		return
	}

	var subject models.Subject
	if err := db.First(&subject, "id = ?", subjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Subject not found"})
		return
	}

	var input EditSubjectInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	forest := []models.ContentNode(subject.Info)
	var next []models.ContentNode

	switch input.Op {
	case "addChild":
		next, err = services.AddChild(forest, input.Path)
	case "removeNode":
		next, err = services.RemoveNode(forest, input.Path)
	case "updateField":
		var field services.InfoField
		field, err = services.ParseInfoField(input.Field)
		if err == nil {
			next, err = services.UpdateField(forest, input.Path, field, input.Value)
		}
	case "setChildren":
		if models.DepthForest(input.Children)+len(input.Path) > services.MaxInfoDepth {
			err = models.ErrDepthExceeded
		} else {
			next, err = services.SetChildren(forest, input.Path, input.Children)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown edit operation"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	subject.Info = next
	subject.RecordEditor(userName)

	if err := db.Save(&subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating subject"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": subject})
}

// projectSubject reduces a subject to the requested wire fields. Unknown
// field names are ignored, matching the old API's behavior.
func projectSubject(subject *models.Subject, fields []string) map[string]any {
	raw, err := json.Marshal(subject)
	if err != nil {
		return nil
	}
	var full map[string]any
	if err := json.Unmarshal(raw, &full); err != nil {
		return nil
	}

	out := map[string]any{"id": full["id"]}
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if v, ok := full[f]; ok {
			out[f] = v
		}
	}
	return out
}
