package chat

import (
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Shared conversation log. Bounded and swept by the scheduler so a
// long-running deployment cannot grow it without limit.
var conversations = NewConversationStore(256, 100, 30*time.Minute)

func ChatController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/chat")
	{
		routes.POST("/query", func(c *gin.Context) {
			QueryChatbot(c)
		})
		routes.GET("/conversation/:conversationid", func(c *gin.Context) {
			GetConversation(c)
		})
		routes.DELETE("/conversation/:conversationid", func(c *gin.Context) {
			DeleteConversation(c)
		})
		routes.POST("/reset", func(c *gin.Context) {
			ResetChatbot(c)
		})
		routes.GET("/health", func(c *gin.Context) {
			ChatbotHealth(c)
		})
	}
}

// SweepExpiredConversations evicts idle conversations; the scheduler calls
// this periodically.
func SweepExpiredConversations() int {
	return conversations.Sweep()
}
