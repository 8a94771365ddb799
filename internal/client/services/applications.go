package services

import (
	"context"
	"fmt"

	"github.com/applyline/applyline/internal/client/api"
	"github.com/applyline/applyline/internal/client/models"
	"github.com/applyline/applyline/internal/client/notifications"
	"github.com/applyline/applyline/internal/logging"
)

// ApplicationService drives batch sends and history lookups.
type ApplicationService struct {
	api    api.Client
	notify *notifications.Queue
	log    logging.Logger
}

func NewApplicationService(client api.Client, notify *notifications.Queue, log logging.Logger) *ApplicationService {
	return &ApplicationService{api: client, notify: notify, log: log}
}

// Submit filters the list down to valid recipients and sends one batch.
//
// With no valid rows it fails fast with ErrNoValidRecipients and never calls
// the network. On success the list resets to its single-blank-row default and
// a success notification reports the sent count; on failure the list is left
// untouched so the user can retry without re-entering anything.
func (s *ApplicationService) Submit(ctx context.Context, list *models.RecipientList, subject string) (int, error) {
	valid := list.Valid()
	if len(valid) == 0 {
		s.notify.Error(msgNoValidRecipients)
		return 0, ErrNoValidRecipients
	}

	sent, err := s.api.SendBatchApplications(ctx, models.Batch{Recipients: valid, Subject: subject})
	if err != nil {
		s.log.Warn(ctx, "batch send failed", "recipients", len(valid), "error", err)
		s.notify.Error(api.Message(err, msgSendFallback))
		return 0, err
	}

	// The backend reports a single count for the whole batch; trust it when
	// present, otherwise fall back to what we actually submitted.
	if sent == 0 {
		sent = len(valid)
	}

	s.notify.Success(fmt.Sprintf("Successfully sent %d applications!", sent))
	list.Reset()
	return sent, nil
}

// History returns past sends. Failures propagate to the caller, which renders
// them inline rather than as a notification.
func (s *ApplicationService) History(ctx context.Context) ([]models.ApplicationRecord, error) {
	return s.api.GetApplicationHistory(ctx)
}
