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

func newAppService(t *testing.T, client *fakeClient) (*ApplicationService, *notifications.Queue) {
	t.Helper()
	q := newQueue(t)
	return NewApplicationService(client, q, logging.NewNop()), q
}

func TestSubmit_NoValidRecipients_FailsFastWithoutNetworkCall(t *testing.T) {
	client := &fakeClient{}
	svc, q := newAppService(t, client)

	list := models.NewRecipientList()
	list.Set(0, models.Recipient{Email: "", CompanyName: ""})

	_, err := svc.Submit(context.Background(), list, "Subj")
	require.ErrorIs(t, err, ErrNoValidRecipients)
	assert.Zero(t, client.SendCalls, "validation failures must not reach the network")

	n := lastNotification(t, q)
	assert.Equal(t, notifications.KindError, n.Kind)
	assert.Equal(t, "Please add at least one valid recipient.", n.Message)
}

func TestSubmit_SendsOnlyValidSubset(t *testing.T) {
	client := &fakeClient{SentCount: 2}
	svc, _ := newAppService(t, client)

	list := models.NewRecipientList()
	list.Append(models.Recipient{Email: "hr@acme.com", CompanyName: "Acme"})
	list.Append(models.Recipient{Email: "half@filled.com", CompanyName: ""})
	list.Append(models.Recipient{Email: "jobs@globex.com", CompanyName: "Globex"})

	sent, err := svc.Submit(context.Background(), list, "Application for Open Position")
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	require.Len(t, client.LastBatch.Recipients, 2)
	assert.Equal(t, "hr@acme.com", client.LastBatch.Recipients[0].Email)
	assert.Equal(t, "jobs@globex.com", client.LastBatch.Recipients[1].Email)
	assert.Equal(t, "Application for Open Position", client.LastBatch.Subject)
}

func TestSubmit_SuccessResetsListAndNotifiesCount(t *testing.T) {
	client := &fakeClient{SentCount: 3}
	svc, q := newAppService(t, client)

	list := models.NewRecipientList()
	list.Append(models.Recipient{Email: "a@a.com", CompanyName: "A"})
	list.Append(models.Recipient{Email: "b@b.com", CompanyName: "B"})
	list.Append(models.Recipient{Email: "c@c.com", CompanyName: "C"})

	_, err := svc.Submit(context.Background(), list, "Subj")
	require.NoError(t, err)

	require.Equal(t, 1, list.Len(), "list must reset to the single-blank-row default")
	assert.Equal(t, models.Recipient{}, list.Rows()[0])

	n := lastNotification(t, q)
	assert.Equal(t, notifications.KindSuccess, n.Kind)
	assert.Equal(t, "Successfully sent 3 applications!", n.Message)
}

func TestSubmit_MissingSentCountFallsBackToFilteredCount(t *testing.T) {
	client := &fakeClient{SentCount: 0}
	svc, q := newAppService(t, client)

	list := models.NewRecipientList()
	list.Append(models.Recipient{Email: "a@a.com", CompanyName: "A"})

	sent, err := svc.Submit(context.Background(), list, "Subj")
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, "Successfully sent 1 applications!", lastNotification(t, q).Message)
}

func TestSubmit_FailureKeepsListAndSurfacesBackendMessage(t *testing.T) {
	client := &fakeClient{SendErr: &api.Error{Message: "quota exceeded", Status: 429}}
	svc, q := newAppService(t, client)

	list := models.NewRecipientList()
	list.Append(models.Recipient{Email: "hr@acme.com", CompanyName: "Acme"})
	list.Append(models.Recipient{Email: "", CompanyName: "Half"})

	_, err := svc.Submit(context.Background(), list, "Subj")
	require.Error(t, err)

	assert.Equal(t, 2, list.Len(), "recipient list must be left untouched for retry")

	n := lastNotification(t, q)
	assert.Equal(t, notifications.KindError, n.Kind)
	assert.Equal(t, "quota exceeded", n.Message)
}

func TestSubmit_FailureWithoutBackendMessageUsesFallback(t *testing.T) {
	client := &fakeClient{SendErr: &api.Error{Status: 500}}
	svc, q := newAppService(t, client)

	list := models.NewRecipientList()
	list.Append(models.Recipient{Email: "hr@acme.com", CompanyName: "Acme"})

	_, err := svc.Submit(context.Background(), list, "Subj")
	require.Error(t, err)
	assert.Equal(t, "Failed to send applications.", lastNotification(t, q).Message)
}

func TestHistory_PassesThrough(t *testing.T) {
	records := []models.ApplicationRecord{
		{ID: "1", CompanyName: "Acme", RecipientEmail: "hr@acme.com", Status: "Sent"},
	}
	client := &fakeClient{HistoryRet: records}
	svc, _ := newAppService(t, client)

	got, err := svc.History(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestHistory_ErrorPropagates(t *testing.T) {
	client := &fakeClient{HistoryErr: &api.Error{Message: "boom", Status: 500}}
	svc, q := newAppService(t, client)

	_, err := svc.History(context.Background())
	require.Error(t, err)
	assert.Empty(t, q.Active(), "history failures render inline, not as notifications")
}
