package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/applyline/applyline/internal/client/models"
)

// ShowProfile prints the hydrated profile of the logged-in user.
func (a *App) ShowProfile(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn("Name:        ", u.Name)
	printlnFn("Email:       ", u.Email)
	printlnFn("Resume:      ", u.ResumeURL)
	printlnFn("LinkedIn:    ", u.LinkedinProfile)
	printlnFn("Portfolio:   ", u.PortfolioURL)
	printlnFn("GitHub:      ", u.GithubURL)
	printlnFn("Cover letter:", u.DefaultCoverLetter)
	return nil
}

// EditProfile prompts for each editable field; pressing Enter keeps the
// current value. The email is backend-owned and not editable. The outcome is
// reported through the notification queue.
func (a *App) EditProfile(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	ask := func(label, current string) (string, error) {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), os.Stdout)
		if err != nil {
			return "", err
		}
		if v == "" {
			return current, nil
		}
		return v, nil
	}

	update := models.ProfileUpdate{}
	var err error

	if update.Name, err = ask("Name", u.Name); err != nil {
		return err
	}
	if update.ResumeURL, err = ask("Resume URL", u.ResumeURL); err != nil {
		return err
	}
	if update.LinkedinProfile, err = ask("LinkedIn profile", u.LinkedinProfile); err != nil {
		return err
	}
	if update.PortfolioURL, err = ask("Portfolio URL", u.PortfolioURL); err != nil {
		return err
	}
	if update.GithubURL, err = ask("GitHub URL", u.GithubURL); err != nil {
		return err
	}

	letter, err := getMultiline(a.reader, "Default cover letter (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if letter == "" {
		letter = u.DefaultCoverLetter
	}
	update.DefaultCoverLetter = letter

	return a.profile.Update(ctx, update)
}
