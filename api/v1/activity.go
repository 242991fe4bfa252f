package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/services"
)

var activityService = services.NewActivityService()

// ListActivities returns the activity feed, newest first
func ListActivities(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	filter := dto.ActivityFilter{
		Limit:     limit,
		ProjectID: c.Query("projectId"),
		UserID:    c.Query("userId"),
	}

	activities, err := activityService.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   activities,
	})
}
