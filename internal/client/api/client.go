package api

import (
	"context"

	"github.com/applyline/applyline/internal/client/models"
)

// Client is the API contract the rest of the client is written against.
// Implementations must be safe for concurrent use.
type Client interface {
	// Login exchanges credentials for a token. It does not persist the token.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Register creates an account and returns the issued token.
	Register(ctx context.Context, data models.Registration) (string, error)

	// GetProfile fetches the authenticated user's profile.
	GetProfile(ctx context.Context) (*models.UserProfile, error)

	// UpdateProfile applies a partial profile update and returns the stored
	// profile as the backend now sees it.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error)

	// GetApplicationHistory returns past sends, newest first per the backend.
	GetApplicationHistory(ctx context.Context) ([]models.ApplicationRecord, error)

	// SendBatchApplications sends one application per recipient and returns
	// the count the backend reports as sent.
	SendBatchApplications(ctx context.Context, batch models.Batch) (int, error)

	// PersonalizeLetter asks the backend to tailor baseLetter to the given
	// job description.
	PersonalizeLetter(ctx context.Context, jobDescription, baseLetter string) (string, error)
}

// TokenSource provides read access to the stored credential token.
// An empty token with a nil error means "no token stored"; the gateway then
// simply omits the Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
