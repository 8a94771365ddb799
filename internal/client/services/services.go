// Package services contains the application workflows that sit between the
// interactive surface and the request gateway. Each workflow catches its own
// failures at the boundary and converts them into notifications; local
// validation failures never reach the network.
package services

import "errors"

var (
	// ErrNoValidRecipients means the recipient list had no row with both
	// email and company name filled in.
	ErrNoValidRecipients = errors.New("no valid recipients")

	// ErrEmptyJobDescription means personalization was requested without a
	// job description.
	ErrEmptyJobDescription = errors.New("empty job description")

	// ErrInvalidInput means login/register input failed local validation.
	ErrInvalidInput = errors.New("invalid input")
)

// User-facing notification texts.
const (
	msgNoValidRecipients   = "Please add at least one valid recipient."
	msgSendFallback        = "Failed to send applications."
	msgEmptyJobDescription = "Please paste a job description."
	msgPersonalizeFallback = "Failed to personalize letter."
	msgPersonalized        = "Cover letter personalized!"
	msgProfileUpdated      = "Profile updated successfully!"
	msgProfileFallback     = "Failed to update profile."
	msgLoginOK             = "Login successful!"
	msgLoginFailed         = "Login failed!"
	msgRegisterOK          = "Registration successful!"
	msgRegisterFailed      = "Registration failed!"
	msgInvalidCredentials  = "Please enter a valid email and password."
	msgInvalidRegistration = "Please fill in a name, a valid email and a password."
)
