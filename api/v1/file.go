package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/services"
)

// fileService is initialized in RegisterRoutes once the upload store exists
var fileService *services.FileService

// UploadFile stores a multipart upload and its metadata. The form carries
// the file plus optional description and a task_id or project_id target.
func UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: file field is required",
		})
		return
	}

	file, err := fileService.Upload(
		actorFrom(c),
		header,
		c.PostForm("description"),
		c.PostForm("task_id"),
		c.PostForm("project_id"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   file,
	})
}

// ListFiles returns file metadata filtered by project or task
func ListFiles(c *gin.Context) {
	filter := dto.FileFilter{
		ProjectID: c.Query("projectId"),
		TaskID:    c.Query("taskId"),
	}

	files, err := fileService.ListFiles(actorFrom(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   files,
	})
}

// GetFile returns a single file's metadata
func GetFile(c *gin.Context) {
	file, err := fileService.GetFile(actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   file,
	})
}

// DeleteFile removes a file's metadata and content, uploader or project
// owner only
func DeleteFile(c *gin.Context) {
	if err := fileService.DeleteFile(actorFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
