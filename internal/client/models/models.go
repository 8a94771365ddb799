// Package models defines the data shapes exchanged with the Applyline backend
// and the client-side containers built on top of them.
package models

import "time"

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the sign-up payload.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile is the backend's view of the account. It is replaced wholesale
// on every profile fetch; local edits are never treated as source of truth.
type UserProfile struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	ResumeURL          string `json:"resumeUrl,omitempty"`
	LinkedinProfile    string `json:"linkedinProfile,omitempty"`
	PortfolioURL       string `json:"portfolioUrl,omitempty"`
	GithubURL          string `json:"githubUrl,omitempty"`
	DefaultCoverLetter string `json:"defaultCoverLetter,omitempty"`
}

// ProfileUpdate is the partial profile sent on update. The email is owned by
// the backend and deliberately has no field here.
type ProfileUpdate struct {
	Name               string `json:"name"`
	ResumeURL          string `json:"resumeUrl"`
	LinkedinProfile    string `json:"linkedinProfile"`
	PortfolioURL       string `json:"portfolioUrl"`
	GithubURL          string `json:"githubUrl"`
	DefaultCoverLetter string `json:"defaultCoverLetter"`
}

// Recipient is one addressee of a batch application send.
type Recipient struct {
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
}

// Valid reports whether the recipient can actually be sent to.
func (r Recipient) Valid() bool {
	return r.Email != "" && r.CompanyName != ""
}

// Batch is the payload of a batch application send.
type Batch struct {
	Recipients []Recipient `json:"recipients"`
	Subject    string      `json:"subject"`
}

// ApplicationRecord is a single row of send history. It is backend-owned and
// never mutated client-side.
type ApplicationRecord struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	RecipientEmail string    `json:"recipientEmail"`
	SentAt         time.Time `json:"sentAt"`
	Status         string    `json:"status"`
}
