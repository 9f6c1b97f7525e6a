package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetConversation(c *gin.Context) {
	conversationID := c.Param("conversationid")

	messages, ok := conversations.Messages(conversationID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conversation_id": conversationID,
		"messages":        messages,
	})
}

func DeleteConversation(c *gin.Context) {
	conversationID := c.Param("conversationid")

	if !conversations.Delete(conversationID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Conversation deleted",
	})
}

func ResetChatbot(c *gin.Context) {
	conversations.Reset()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "All conversations cleared",
	})
}
