package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// GoogleUserInfoURL is the OpenID userinfo endpoint queried on Google login.
var GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

var ErrGoogleEmailUnverified = errors.New("google account email is not verified")

type GoogleUser struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// FetchGoogleUser resolves an OAuth2 access token to the Google profile it
// belongs to.
func FetchGoogleUser(ctx context.Context, accessToken string) (*GoogleUser, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	resp, err := client.Get(GoogleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned %d", resp.StatusCode)
	}

	var user GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	if !user.EmailVerified {
		return nil, ErrGoogleEmailUnverified
	}
	return &user, nil
}
