package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/services"
)

var feedbackService = services.NewFeedbackService()

// SubmitFeedback records feedback in the activity feed. The entry is stored
// under the anonymous sentinel user, not the caller's identity.
func SubmitFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := feedbackService.Submit(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   response,
	})
}
