package chat

import (
	"civictrack/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatbotHealth reports connectivity to the hosted chatbot space without
// sending a real query.
func ChatbotHealth(c *gin.Context) {
	client := services.GetChatbotClient()

	if err := client.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":          "unhealthy",
			"chatbot_service": "Gradio",
			"space":           client.BaseURL(),
			"connected":       false,
			"error":           err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"chatbot_service": "Gradio",
		"space":           client.BaseURL(),
		"connected":       true,
	})
}
