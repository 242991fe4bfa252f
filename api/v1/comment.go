package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/services"
)

var commentService = services.NewCommentService()

// ListComments returns comments for a task or a project
func ListComments(c *gin.Context) {
	filter := dto.CommentFilter{
		TaskID:    c.Query("taskId"),
		ProjectID: c.Query("projectId"),
	}

	comments, err := commentService.ListComments(actorFrom(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   comments,
	})
}

// CreateComment attaches a comment to the task or project named in the body
func CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	comment, err := commentService.CreateComment(actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   comment,
	})
}

// ListTaskComments returns the comments of the task in the path
func ListTaskComments(c *gin.Context) {
	filter := dto.CommentFilter{TaskID: c.Param("id")}

	comments, err := commentService.ListComments(actorFrom(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   comments,
	})
}

// CreateTaskComment attaches a comment to the task in the path
func CreateTaskComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	taskID := c.Param("id")
	req.TaskID = &taskID
	req.ProjectID = nil

	comment, err := commentService.CreateComment(actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   comment,
	})
}
