package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wjn/LanguageFlashCards/internal/service"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show word bank and quiz history statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("session", "", "Show the answers of one quiz session")
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if a.cfg.History.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.History.Timeout)
		defer cancel()
	}

	if sessionID, _ := cmd.Flags().GetString("session"); sessionID != "" {
		results, err := a.services.SessionResults(ctx, sessionID)
		if err != nil {
			return err
		}
		a.console.Session(sessionID, results)
		return nil
	}

	a.console.WordStats(a.services.WordStats())

	stats, err := a.services.QuizStats(ctx)
	if errors.Is(err, service.ErrHistoryDisabled) {
		fmt.Fprintln(cmd.OutOrStdout(), "Quiz history is disabled.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	a.console.QuizStats(stats)
	return nil
}
