package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lomdim/lomdim-backend/models"
	"github.com/lomdim/lomdim-backend/utils"
)

// ====== INPUT STRUCTS ======

type LoginInput struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type SubjectDoneInput struct {
	SubjectID string `json:"subjectId" binding:"required"`
}

// ====== HANDLERS ======

// POST /auth/login
func Login(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide both name and password"})
		return
	}

	var user models.User
	if err := db.Where("name = ?", input.Name).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	courses := make([]string, 0, len(user.LearnedSubjects))
	for _, id := range user.LearnedSubjects {
		courses = append(courses, id.String())
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Name, string(user.Role), courses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// POST /auth/register (admin only)
func Register(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide both name and a password of at least 6 characters"})
		return
	}

	var existing models.User
	if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username already exists"})
		return
	}

	role := models.RoleStudent
	if input.Role != "" && models.ValidRole(input.Role) {
		role = models.UserRole(input.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during registration"})
		return
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     input.Name,
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during registration"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

// GET /auth/me
func GetCurrentUser(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var user models.User
	if err := db.First(&user, "id = ?", c.GetString("user_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// POST /auth/mark-subject-done
func MarkSubjectDone(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input SubjectDoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Subject ID is required"})
		return
	}

	subjectID, err := uuid.Parse(input.SubjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid subject ID"})
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", c.GetString("user_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	if user.HasLearned(subjectID) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subject already marked as done", "user": user})
		return
	}

	user.MarkLearned(subjectID)
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subject marked as done", "user": user})
}

// POST /auth/unmark-subject-done
func UnmarkSubjectDone(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input SubjectDoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Subject ID is required"})
		return
	}

	subjectID, err := uuid.Parse(input.SubjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid subject ID"})
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", c.GetString("user_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	if !user.HasLearned(subjectID) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subject was not marked as done", "user": user})
		return
	}

	user.UnmarkLearned(subjectID)
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subject unmarked as done", "user": user})
}
