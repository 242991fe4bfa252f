package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/services"
)

// chatbotService is initialized in RegisterRoutes so the webhook URL is read
// after the environment is loaded
var chatbotService *services.ChatbotService

// SendChatbotMessage forwards a message to the assistant bot and returns
// its reply
func SendChatbotMessage(c *gin.Context) {
	var req dto.ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := chatbotService.Send(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}
