package services

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/applyline/applyline/internal/client/models"
	"github.com/applyline/applyline/internal/client/notifications"
	"github.com/applyline/applyline/internal/client/session"
	"github.com/applyline/applyline/internal/logging"
)

// fakeClient implements api.Client for workflow tests.
type fakeClient struct {
	LoginToken    string
	LoginErr      error
	RegisterToken string
	RegisterErr   error

	Profile        *models.UserProfile
	ProfileErr     error
	UpdatedErr     error
	HistoryRet     []models.ApplicationRecord
	HistoryErr     error
	SentCount      int
	SendErr        error
	Personalized   string
	PersonalizeErr error

	LoginCalls  int
	SendCalls   int
	AICalls     int
	LastBatch   models.Batch
	LastUpdate  models.ProfileUpdate
	LastJobDesc string
	LastBaseLtr string
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	f.LoginCalls++
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, data models.Registration) (string, error) {
	return f.RegisterToken, f.RegisterErr
}

func (f *fakeClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	if f.ProfileErr != nil {
		return nil, f.ProfileErr
	}
	p := *f.Profile
	return &p, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {
	f.LastUpdate = update
	if f.UpdatedErr != nil {
		return nil, f.UpdatedErr
	}
	return f.Profile, nil
}

func (f *fakeClient) GetApplicationHistory(ctx context.Context) ([]models.ApplicationRecord, error) {
	return f.HistoryRet, f.HistoryErr
}

func (f *fakeClient) SendBatchApplications(ctx context.Context, batch models.Batch) (int, error) {
	f.SendCalls++
	f.LastBatch = batch
	return f.SentCount, f.SendErr
}

func (f *fakeClient) PersonalizeLetter(ctx context.Context, jobDescription, baseLetter string) (string, error) {
	f.AICalls++
	f.LastJobDesc = jobDescription
	f.LastBaseLtr = baseLetter
	return f.Personalized, f.PersonalizeErr
}

func setupSessionDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	return db
}

func newSession(t *testing.T, client *fakeClient) *session.Manager {
	t.Helper()
	store := session.NewTokenStore(setupSessionDB(t))
	return session.NewManager(client, store, logging.NewNop())
}

func newQueue(t *testing.T) *notifications.Queue {
	t.Helper()
	q := notifications.NewQueue(notifications.DefaultTTL)
	t.Cleanup(q.Close)
	return q
}

func lastNotification(t *testing.T, q *notifications.Queue) notifications.Notification {
	t.Helper()
	active := q.Active()
	require.NotEmpty(t, active, "expected at least one notification")
	return active[len(active)-1]
}
