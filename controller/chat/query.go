package chat

import (
	"civictrack/dto"
	"civictrack/services"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func QueryChatbot(c *gin.Context) {
	var req dto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = "conv_" + uuid.NewString()
	}

	conversations.Append(conversationID, "user", req.Message)

	client := services.GetChatbotClient()
	answer, err := client.Ask(c.Request.Context(), req.Message)
	if err != nil {
		fmt.Printf("Warning: Chatbot call failed: %v\n", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chatbot service temporarily unavailable"})
		return
	}

	conversations.Append(conversationID, "assistant", answer)

	c.JSON(http.StatusOK, dto.ChatResponse{
		Response:       answer,
		ConversationID: conversationID,
		Status:         "success",
	})
}
