package services

import (
	"civictrack/model"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

// NotifyAssignmentCreated records a notification for the assignee and pushes
// it to their device. Callers treat failures as non-fatal: the assignment
// itself is already committed.
func NotifyAssignmentCreated(db *gorm.DB, firestoreClient *firestore.Client, assigneeID, issueID, assignedBy int) error {
	assignee, err := GetProfileData(db, assigneeID)
	if err != nil {
		return fmt.Errorf("failed to load assignee profile: %v", err)
	}
	issue, err := GetIssueData(db, issueID)
	if err != nil {
		return fmt.Errorf("failed to load issue: %v", err)
	}
	assigner, err := GetProfileData(db, assignedBy)
	if err != nil {
		return fmt.Errorf("failed to load assigner profile: %v", err)
	}

	message := fmt.Sprintf("You have been assigned to issue '%s' by %s", issue.Title, assigner.FullName)

	notification := model.Notification{
		UserID:  assigneeID,
		IssueID: issueID,
		Message: message,
	}
	if err := db.Create(&notification).Error; err != nil {
		return fmt.Errorf("failed to record notification: %v", err)
	}

	mirrorFirestoreNotification(firestoreClient, assignee.Email, notification)

	return pushToProfile(firestoreClient, assignee.Email, "New assignment", message, map[string]string{
		"payload":  "notification",
		"issue_id": strconv.Itoa(issueID),
	})
}

// NotifyAssignmentOverdue pushes a reminder for an assignment past its
// deadline. The assignment is expected to carry its Staff and Issue
// relations.
func NotifyAssignmentOverdue(db *gorm.DB, firestoreClient *firestore.Client, assignment model.Assignment) error {
	message := fmt.Sprintf("Assignment for issue '%s' is past its deadline", assignment.Issue.Title)

	notification := model.Notification{
		UserID:  assignment.StaffID,
		IssueID: assignment.IssueID,
		Message: message,
	}
	if err := db.Create(&notification).Error; err != nil {
		return fmt.Errorf("failed to record notification: %v", err)
	}

	mirrorFirestoreNotification(firestoreClient, assignment.Staff.Email, notification)

	return pushToProfile(firestoreClient, assignment.Staff.Email, "Assignment overdue", message, map[string]string{
		"payload":  "notification",
		"issue_id": strconv.Itoa(assignment.IssueID),
	})
}

// SendOverdueReminders pushes a reminder for every active assignment past its
// deadline. Failures are logged per assignment and do not stop the batch.
func SendOverdueReminders(db *gorm.DB, firestoreClient *firestore.Client) {
	var overdue []model.Assignment
	err := db.Preload("Staff").Preload("Issue").
		Where("status IN ? AND deadline IS NOT NULL AND deadline < ?", []string{"assigned", "in_progress"}, time.Now()).
		Find(&overdue).Error
	if err != nil {
		log.Printf("Failed to query overdue assignments: %v", err)
		return
	}

	for _, assignment := range overdue {
		if err := NotifyAssignmentOverdue(db, firestoreClient, assignment); err != nil {
			log.Printf("Warning: Failed to send overdue reminder for assignment %d: %v", assignment.AssID, err)
		}
	}
}

func mirrorFirestoreNotification(firestoreClient *firestore.Client, email string, notification model.Notification) {
	if firestoreClient == nil {
		return
	}

	docPath := fmt.Sprintf("Notifications/%s/Assignments/%d", email, notification.NotificationID)
	firebaseData := map[string]interface{}{
		"notificationId": notification.NotificationID,
		"issueId":        notification.IssueID,
		"message":        notification.Message,
		"notiCount":      false,
		"updatedAt":      firestore.ServerTimestamp,
	}

	_, err := firestoreClient.Doc(docPath).Set(context.Background(), firebaseData, firestore.MergeAll)
	if err != nil {
		fmt.Printf("Error updating Firestore document: %v\n", err)
	}
}

func pushToProfile(firestoreClient *firestore.Client, email, title, body string, data map[string]string) error {
	if firestoreClient == nil {
		return fmt.Errorf("firestore client not configured")
	}

	fcmToken, err := getFCMToken(firestoreClient, email)
	if err != nil {
		return err
	}

	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found or failed to load")
	}

	serviceAccountKeyPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_1")
	if serviceAccountKeyPath == "" {
		return fmt.Errorf("firebase credentials not configured")
	}

	app, err := initializeFirebaseApp(serviceAccountKeyPath)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %v", err)
	}

	return sendPushNotification(app, fcmToken, title, body, data)
}

func getFCMToken(firestoreClient *firestore.Client, email string) (string, error) {
	doc, err := firestoreClient.Collection("usersLogin").Doc(email).Get(context.Background())
	if err != nil {
		return "", fmt.Errorf("failed to get user token from Firestore: %v", err)
	}
	if !doc.Exists() {
		return "", fmt.Errorf("user login data not found")
	}

	data := doc.Data()
	fcmTokenInterface, exists := data["FMCToken"]
	if !exists {
		return "", fmt.Errorf("FCM token not found for user")
	}

	fcmToken, ok := fcmTokenInterface.(string)
	if !ok || fcmToken == "" {
		return "", fmt.Errorf("invalid or empty FCM token")
	}
	return fcmToken, nil
}

func initializeFirebaseApp(serviceAccountKeyPath string) (*firebase.App, error) {
	opt := option.WithCredentialsFile(serviceAccountKeyPath)
	return firebase.NewApp(context.Background(), nil, opt)
}

func sendPushNotification(app *firebase.App, token, title, body string, data map[string]string) error {
	ctx := context.Background()

	client, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("error getting Messaging client: %v", err)
	}

	message := &messaging.Message{
		Data: data,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Token: token,
	}

	response, err := client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("error sending message: %v", err)
	}

	fmt.Printf("Successfully sent message: %s", response)
	return nil
}
