package cli

import (
	"context"
	"os"
)

// Personalize reads a pasted job description and asks the backend to tailor
// the user's default cover letter to it. The resulting letter is printed and
// also offered as the new default via editprofile.
func (a *App) Personalize(ctx context.Context) error {
	jobDescription, err := getMultiline(a.reader, "Paste the job description", os.Stdout)
	if err != nil {
		return err
	}

	baseLetter := ""
	if u := a.session.User(); u != nil {
		baseLetter = u.DefaultCoverLetter
	}

	letter, err := a.ai.Personalize(ctx, jobDescription, baseLetter)
	if err != nil {
		return err
	}

	printlnFn(letter)
	return nil
}
