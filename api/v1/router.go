package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/middleware"
	"github.com/taskhive/taskhive/services"
	"github.com/taskhive/taskhive/storage"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, store *storage.LocalStore) {
	projectService = services.NewProjectService(store)
	fileService = services.NewFileService(store)
	chatbotService = services.NewChatbotService()

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Everything below requires authentication
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware())

	projectGroup := authed.Group("/projects")
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
		projectGroup.GET("/:id/members", ListProjectMembers)
		projectGroup.POST("/:id/members", AddProjectMember)
		projectGroup.DELETE("/:id/members/:userId", RemoveProjectMember)
	}

	taskGroup := authed.Group("/tasks")
	{
		taskGroup.GET("", ListTasks)
		taskGroup.POST("", CreateTask)
		taskGroup.GET("/:id", GetTask)
		taskGroup.PUT("/:id", UpdateTask)
		taskGroup.PATCH("/:id", UpdateTask)
		taskGroup.DELETE("/:id", DeleteTask)
		taskGroup.GET("/:id/comments", ListTaskComments)
		taskGroup.POST("/:id/comments", CreateTaskComment)
	}

	commentGroup := authed.Group("/comments")
	{
		commentGroup.GET("", ListComments)
		commentGroup.POST("", CreateComment)
	}

	fileGroup := authed.Group("/files")
	{
		fileGroup.POST("/upload", UploadFile)
		fileGroup.GET("", ListFiles)
		fileGroup.GET("/:id", GetFile)
		fileGroup.DELETE("/:id", DeleteFile)
	}

	userGroup := authed.Group("/users")
	{
		userGroup.GET("", ListUsers)
		userGroup.GET("/:id", GetUser)
		userGroup.PUT("/me", UpdateProfile)
		userGroup.PUT("/:id/role", middleware.AdminMiddleware(), UpdateUserRole)
	}

	authed.GET("/activities", ListActivities)
	authed.GET("/dashboard", GetDashboard)
	authed.POST("/feedback", SubmitFeedback)
	authed.POST("/chatbot", SendChatbotMessage)
}
