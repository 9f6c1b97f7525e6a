package connection

import (
	"civictrack/controller/assignment"
	"civictrack/controller/chat"
	"civictrack/scheduler"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	FB, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	assignment.AssignmentController(router, DB, FB)

	chat.ChatController(router, DB, FB)

	scheduler.StartScheduler(DB, FB)

	router.Run()
}
