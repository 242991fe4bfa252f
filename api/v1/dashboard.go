package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/services"
)

var dashboardService = services.NewDashboardService()

// GetDashboard returns the aggregate overview counts, computed fresh on
// every call
func GetDashboard(c *gin.Context) {
	dashboard, err := dashboardService.GetDashboard()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dashboard,
	})
}
