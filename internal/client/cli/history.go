package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// History fetches and prints past sends. Fetch failures are rendered inline
// rather than through the notification queue, matching where the data would
// have appeared.
func (a *App) History(ctx context.Context) error {
	records, err := a.apps.History(ctx)
	if err != nil {
		printlnFn("Failed to fetch application history.")
		return err
	}

	if len(records) == 0 {
		printlnFn("No applications sent yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMPANY\tRECIPIENT\tSENT\tSTATUS")
	for _, r := range records {
		sent := ""
		if !r.SentAt.IsZero() {
			sent = r.SentAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.CompanyName, r.RecipientEmail, sent, r.Status)
	}
	return w.Flush()
}
