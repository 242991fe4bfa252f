package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive/repositories"
	"github.com/taskhive/taskhive/storage"
)

var (
	uploadStore *storage.LocalStore
	fileRepo    = repositories.NewFileRepository()
)

// InitUploads wires the content store used to serve stored files
func InitUploads(store *storage.LocalStore) {
	uploadStore = store
}

// ServeUpload streams stored file content back to an authenticated client.
// The URL carries the on-disk name, the browser gets the original filename
// through the download header.
func ServeUpload(c *gin.Context) {
	file, err := fileRepo.FindByStoredName(c.Param("filename"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "File not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
		})
		return
	}

	path := uploadStore.Path(file.StoredName)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "File content not found",
		})
		return
	}

	if file.MimeType != "" {
		c.Header("Content-Type", file.MimeType)
	}
	c.FileAttachment(path, file.Name)
}
