package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/wjn/LanguageFlashCards/internal/models"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run a quiz on the word bank",
	Long: `Run a quiz of --count cards. Count, type and direction default to the
quiz section of the config.

Types:     random, least-recent, most-incorrect
Direction: foreign, native, random`,
	Args: cobra.NoArgs,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().IntP("count", "n", 0, "Number of cards")
	quizCmd.Flags().StringP("type", "t", "", "Selection: random, least-recent or most-incorrect")
	quizCmd.Flags().StringP("direction", "d", "", "Shown side: foreign, native or random")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	count := a.cfg.Quiz.Count
	if cmd.Flags().Changed("count") {
		count, _ = cmd.Flags().GetInt("count")
	}

	typeName := a.cfg.Quiz.Type
	if cmd.Flags().Changed("type") {
		typeName, _ = cmd.Flags().GetString("type")
	}
	quizType, err := models.ParseQuizType(typeName)
	if err != nil {
		return err
	}

	directionName := a.cfg.Quiz.Direction
	if cmd.Flags().Changed("direction") {
		directionName, _ = cmd.Flags().GetString("direction")
	}
	direction, err := models.ParseDirection(directionName)
	if err != nil {
		return err
	}

	quiz := a.services.NewQuiz(a.console)
	if err := quiz.Configure(count, quizType, direction); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report, err := quiz.Run(ctx)
	if report.Total > 0 {
		a.console.Report(report)
		fmt.Fprintf(cmd.OutOrStdout(), "session: %s\n", report.SessionID)
	}
	return err
}
