package connection

import (
	"civictrack/model"
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func DBConnection() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found or failed to load")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is not configured")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Profile{},
		&model.Issue{},
		&model.Assignment{},
		&model.Notification{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

func FBConnection() (*firestore.Client, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found or failed to load")
	}

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	credentials := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_1")
	if projectID == "" || credentials == "" {
		return nil, fmt.Errorf("firebase credentials not configured")
	}

	return firestore.NewClient(context.Background(), projectID, option.WithCredentialsFile(credentials))
}
