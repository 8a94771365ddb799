package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/applyline/applyline/internal/client/models"
)

// AddRecipient prompts for an email and a company name and appends the row
// to the recipient list. Partially filled rows are kept; they are simply
// skipped at send time.
func (a *App) AddRecipient(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Recipient email", os.Stdout)
	if err != nil {
		return err
	}

	company, err := getSimpleText(a.reader, "Company name", os.Stdout)
	if err != nil {
		return err
	}

	a.recipients.Append(models.Recipient{Email: email, CompanyName: company})
	return nil
}

// RemoveRecipient deletes the row at the 1-based index in args[0].
func (a *App) RemoveRecipient(ctx context.Context, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: remove <n>")
		return err
	}

	if err := a.recipients.Remove(n - 1); err != nil {
		printlnFn("No such recipient:", args[0])
		return err
	}
	return nil
}

// ShowRecipients prints the current recipient list with 1-based indexes.
// Rows that will be skipped at send time are marked.
func (a *App) ShowRecipients(ctx context.Context) error {
	printlnFn("Subject:", a.subject)
	for i, r := range a.recipients.Rows() {
		mark := ""
		if !r.Valid() {
			mark = " (incomplete, will be skipped)"
		}
		printlnFn(fmt.Sprintf("%d. %s - %s%s", i+1, r.Email, r.CompanyName, mark))
	}
	printlnFn(fmt.Sprintf("Valid recipients: %d", len(a.recipients.Valid())))
	return nil
}

// SetSubject prompts for a new email subject. An empty answer keeps the
// current one.
func (a *App) SetSubject(ctx context.Context) error {
	s, err := getSimpleText(a.reader, fmt.Sprintf("Subject [%s]", a.subject), os.Stdout)
	if err != nil {
		return err
	}
	if s != "" {
		a.subject = s
	}
	return nil
}

// Send submits one application per valid recipient. The outcome is reported
// through the notification queue; on success the list resets to a single
// blank row.
func (a *App) Send(ctx context.Context) error {
	_, err := a.apps.Submit(ctx, a.recipients, a.subject)
	return err
}
