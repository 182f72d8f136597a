package utils

import (
	"context"
	"testing"
)

func TestInitFCMWithoutCredentialsLeavesPushDisabled(t *testing.T) {
	fcmClient = nil
	if err := InitFCM(context.Background(), ""); err != nil {
		t.Fatalf("InitFCM: %v", err)
	}
	if fcmClient != nil {
		t.Fatal("expected FCM to stay disabled")
	}

	// disabled client and empty token are both no-ops
	SendNotification(context.Background(), "device-token", "title", "body", nil)
	SendNotification(context.Background(), "", "title", "body", map[string]string{"k": "v"})
}
