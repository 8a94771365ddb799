package services

import (
	"context"

	"github.com/applyline/applyline/internal/client/api"
	"github.com/applyline/applyline/internal/client/models"
	"github.com/applyline/applyline/internal/client/notifications"
	"github.com/applyline/applyline/internal/client/session"
	"github.com/applyline/applyline/internal/logging"
)

// ProfileService updates the profile through the backend and re-hydrates the
// session afterwards, so the session ends up holding the backend's stored
// state rather than the local edit.
type ProfileService struct {
	api     api.Client
	session *session.Manager
	notify  *notifications.Queue
	log     logging.Logger
}

func NewProfileService(client api.Client, sess *session.Manager, notify *notifications.Queue, log logging.Logger) *ProfileService {
	return &ProfileService{api: client, session: sess, notify: notify, log: log}
}

// Update sends the partial profile, then refetches the user. The success
// notification only fires once the refetch round trip completed.
func (s *ProfileService) Update(ctx context.Context, update models.ProfileUpdate) error {
	if _, err := s.api.UpdateProfile(ctx, update); err != nil {
		s.notify.Error(api.Message(err, msgProfileFallback))
		return err
	}

	if err := s.session.RefetchUser(ctx); err != nil {
		s.log.Error(ctx, "refetch after profile update failed", "error", err)
		return err
	}

	s.notify.Success(msgProfileUpdated)
	return nil
}
