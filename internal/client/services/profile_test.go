package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/applyline/applyline/internal/client/api"
	"github.com/applyline/applyline/internal/client/models"
	"github.com/applyline/applyline/internal/client/notifications"
	"github.com/applyline/applyline/internal/logging"
)

func TestProfileUpdate_RefetchesFromBackend(t *testing.T) {
	// The backend normalizes the name; the session must end up with the
	// backend's version, not the locally submitted patch.
	client := &fakeClient{
		Profile: &models.UserProfile{ID: "u1", Name: "Normalized Name", Email: "a@b.com"},
	}
	sess := newSession(t, client)
	require.NoError(t, sess.Restore(context.Background()))

	q := newQueue(t)
	svc := NewProfileService(client, sess, q, logging.NewNop())

	// Authenticate the session first.
	client.LoginToken = "tok"
	require.NoError(t, sess.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"}))

	err := svc.Update(context.Background(), models.ProfileUpdate{Name: "typed name"})
	require.NoError(t, err)

	assert.Equal(t, "typed name", client.LastUpdate.Name)
	require.NotNil(t, sess.User())
	assert.Equal(t, "Normalized Name", sess.User().Name)

	n := lastNotification(t, q)
	assert.Equal(t, notifications.KindSuccess, n.Kind)
	assert.Equal(t, "Profile updated successfully!", n.Message)
}

func TestProfileUpdate_FailureNotifiesWithBackendMessage(t *testing.T) {
	client := &fakeClient{
		Profile:    &models.UserProfile{ID: "u1", Name: "A"},
		UpdatedErr: &api.Error{Message: "name too long", Status: 422},
	}
	sess := newSession(t, client)
	q := newQueue(t)
	svc := NewProfileService(client, sess, q, logging.NewNop())

	err := svc.Update(context.Background(), models.ProfileUpdate{Name: "way too long"})
	require.Error(t, err)

	n := lastNotification(t, q)
	assert.Equal(t, notifications.KindError, n.Kind)
	assert.Equal(t, "name too long", n.Message)
}
