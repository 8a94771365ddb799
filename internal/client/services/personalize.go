package services

import (
	"context"

	"github.com/applyline/applyline/internal/client/api"
	"github.com/applyline/applyline/internal/client/notifications"
	"github.com/applyline/applyline/internal/logging"
)

// PersonalizationService asks the backend's AI endpoint to tailor a base
// cover letter to a specific job description.
type PersonalizationService struct {
	api    api.Client
	notify *notifications.Queue
	log    logging.Logger
}

func NewPersonalizationService(client api.Client, notify *notifications.Queue, log logging.Logger) *PersonalizationService {
	return &PersonalizationService{api: client, notify: notify, log: log}
}

// Personalize fails fast on an empty job description without touching the
// network; otherwise it delegates to the gateway and surfaces the outcome as
// a notification, same pattern as the submission workflow.
func (s *PersonalizationService) Personalize(ctx context.Context, jobDescription, baseLetter string) (string, error) {
	if jobDescription == "" {
		s.notify.Error(msgEmptyJobDescription)
		return "", ErrEmptyJobDescription
	}

	letter, err := s.api.PersonalizeLetter(ctx, jobDescription, baseLetter)
	if err != nil {
		s.log.Warn(ctx, "personalization failed", "error", err)
		s.notify.Error(api.Message(err, msgPersonalizeFallback))
		return "", err
	}

	s.notify.Success(msgPersonalized)
	return letter, nil
}
