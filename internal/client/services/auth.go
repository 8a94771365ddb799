package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/applyline/applyline/internal/client/models"
	"github.com/applyline/applyline/internal/client/notifications"
	"github.com/applyline/applyline/internal/client/session"
)

// AuthService wraps the session manager's login/register with local input
// validation and user-facing notifications. Validation failures never reach
// the network.
type AuthService struct {
	session  *session.Manager
	notify   *notifications.Queue
	validate *validator.Validate
}

func NewAuthService(sess *session.Manager, notify *notifications.Queue) *AuthService {
	return &AuthService{
		session:  sess,
		notify:   notify,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) error {
	creds := models.Credentials{Email: email, Password: password}
	if err := s.validate.StructCtx(ctx, creds); err != nil {
		s.notify.Error(msgInvalidCredentials)
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.session.Login(ctx, creds); err != nil {
		s.notify.Error(msgLoginFailed)
		return err
	}

	s.notify.Success(msgLoginOK)
	return nil
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	reg := models.Registration{Name: name, Email: email, Password: password}
	if err := s.validate.StructCtx(ctx, reg); err != nil {
		s.notify.Error(msgInvalidRegistration)
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.session.Register(ctx, reg); err != nil {
		s.notify.Error(msgRegisterFailed)
		return err
	}

	s.notify.Success(msgRegisterOK)
	return nil
}

// IsValidationError reports whether err came from local input validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNoValidRecipients) ||
		errors.Is(err, ErrEmptyJobDescription)
}
