package cli

import (
	"context"
	"os"
)

// Ask sends one question to the travel agent and prints the reply. On
// backend failure a locally generated reply is shown with a warning.
func (a *App) Ask(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Your question", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.agent.Ask(ctx, query)
	if err != nil {
		return err
	}

	if res.Degraded {
		printlnFn("Warning:", res.Reason, "- showing an offline reply")
	}
	printlnFn("Agent:", res.Reply)
	return nil
}
