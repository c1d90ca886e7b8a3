package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lomdim/lomdim-backend/controllers"
	"github.com/lomdim/lomdim-backend/middleware"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", middleware.DBMiddleware(db), controllers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.DBMiddleware(db))

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		// Registration is admin-gated: accounts are provisioned, not self-serve.
		auth.POST("/register", middleware.AuthMiddleware(), middleware.RequireRoles("admin"), controllers.Register)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.GetCurrentUser)
		auth.POST("/mark-subject-done", middleware.AuthMiddleware(), controllers.MarkSubjectDone)
		auth.POST("/unmark-subject-done", middleware.AuthMiddleware(), controllers.UnmarkSubjectDone)
	}

	// Reads are public; mutations require a token, creation a content role.
	api.GET("/subjects", middleware.OptionalAuthMiddleware(), controllers.GetSubjects)
	api.GET("/subjectcards", middleware.OptionalAuthMiddleware(), controllers.GetSubjectsForCards)
	api.GET("/subjects/:id", middleware.OptionalAuthMiddleware(), controllers.GetSubjectByID)
	api.POST("/subjects", middleware.AuthMiddleware(), middleware.RequireRoles("teacher", "admin"), controllers.CreateSubject)
	api.PUT("/subjects/:id", middleware.AuthMiddleware(), controllers.UpdateSubject)
	api.PATCH("/subjects/:id/info", middleware.AuthMiddleware(), controllers.EditSubjectInfo)

	return r
}
