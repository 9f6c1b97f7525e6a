package scheduler

import (
	"civictrack/controller/chat"
	"civictrack/services"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler wires the background jobs: expired-conversation sweeps every
// minute and overdue-assignment reminders every hour.
func StartScheduler(db *gorm.DB, firestoreClient *firestore.Client) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 * * * * *", func() {
		if removed := chat.SweepExpiredConversations(); removed > 0 {
			log.Printf("Evicted %d expired conversations", removed)
		}
	})
	if err != nil {
		log.Fatalf("Failed to add conversation sweep job: %v", err)
	}

	_, err = c.AddFunc("0 0 * * * *", func() {
		log.Println("Running overdue assignment reminder job...")
		services.SendOverdueReminders(db, firestoreClient)
	})
	if err != nil {
		log.Fatalf("Failed to add overdue reminder job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")
}
