package utils

import (
	"context"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// InitFCM connects to Firebase Cloud Messaging with the given service
// account file. An empty path leaves push notifications disabled.
func InitFCM(ctx context.Context, credentialsPath string) error {
	if credentialsPath == "" {
		Log.Warn("FIREBASE_CREDENTIALS not set, push notifications disabled")
		return nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return err
	}

	fcmClient = client
	Log.Info("Firebase Cloud Messaging ready")
	return nil
}

// SendNotification pushes a message to one device token and logs the
// outcome. It is a no-op when FCM is disabled or the token is empty.
func SendNotification(ctx context.Context, token, title, body string, data map[string]string) {
	if fcmClient == nil || token == "" {
		return
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := fcmClient.Send(ctx, message)
	if err != nil {
		Log.WithError(err).Error("Failed to send push notification")
		return
	}

	Log.WithField("message_id", id).Debug("Push notification sent")
}
