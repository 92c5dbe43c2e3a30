package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/wjn/LanguageFlashCards/internal/models"
)

const (
	hr       = "-------------------------------------------------------"
	lineSep  = "\u2028"
	never    = "never"
	noAnswer = "no answer given"
)

// Console asks quiz cards on a terminal. It reads one answer per line.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	now func() time.Time

	readOnce sync.Once
	lines    chan line
}

type line struct {
	text string
	err  error
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		now: time.Now,
	}
}

func (c *Console) Start(info models.QuizInfo) {
	fmt.Fprintln(c.out, hr)
	fmt.Fprintf(c.out, "type:\t\t%s\n", info.Type.Title())
	fmt.Fprintf(c.out, "direction:\t%s\n", info.Direction.Title())
	fmt.Fprintf(c.out, "words:\t\t%d of %d\n", info.Count, info.BankSize)
	fmt.Fprintf(c.out, "word bank:\t%s\n", info.BankPath)
	fmt.Fprintln(c.out, hr)
	fmt.Fprintln(c.out)
}

// Ask prints the card and waits for a line of input. A canceled ctx stops
// the wait.
func (c *Console) Ask(ctx context.Context, card models.Card) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rec := card.Record
	header := fmt.Sprintf("%d. %s", card.Number, display(card.Prompt))
	if rec.Grammar != "" {
		header += " (" + display(rec.Grammar) + ")"
	}
	fmt.Fprintln(c.out, header)
	if rec.CountSeen > 0 {
		fmt.Fprintf(c.out, "- seen %d times\n", rec.CountSeen)
		if rec.CountIncorrect == 0 {
			fmt.Fprintln(c.out, "- not missed before")
		} else {
			fmt.Fprintf(c.out, "- missed %d time(s)\n", rec.CountIncorrect)
		}
		fmt.Fprintf(c.out, "- last seen %s\n", c.relative(rec.LastSeen))
	}
	fmt.Fprint(c.out, "> ")

	c.readOnce.Do(c.startReader)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", fmt.Errorf("%s: %w", noAnswer, io.EOF)
		}
		if l.err != nil && !(errors.Is(l.err, io.EOF) && l.text != "") {
			return "", fmt.Errorf("%s: %w", noAnswer, l.err)
		}
		return strings.TrimRight(l.text, "\r\n"), nil
	}
}

// startReader feeds lines from in to c.lines until the first read error.
// A line read after a canceled Ask is kept for the next Ask.
func (c *Console) startReader() {
	c.lines = make(chan line)
	go func() {
		defer close(c.lines)
		for {
			text, err := c.in.ReadString('\n')
			c.lines <- line{text: text, err: err}
			if err != nil {
				return
			}
		}
	}()
}

func (c *Console) Feedback(eval models.Evaluation) {
	if eval.IsCorrect {
		fmt.Fprintln(c.out, "✅ Correct!")
	} else {
		fmt.Fprintf(c.out, "❌ Incorrect. Looking for: %s\n", display(eval.Expected))
	}
	if eval.Record.Answer != "" {
		fmt.Fprintln(c.out, display(eval.Record.Answer))
	}
	fmt.Fprintln(c.out)
}

// Report prints the score followed by every quizzed entry with its updated
// statistics.
func (c *Console) Report(report models.ScoreReport) {
	fmt.Fprintln(c.out, hr)
	fmt.Fprintf(c.out, "You scored %s%% (%d of %d)\n", report.Percent(), report.Correct, report.Total)
	if report.UpdateFailures > 0 {
		fmt.Fprintf(c.out, "%d entries could not be updated in the word bank\n", report.UpdateFailures)
	}
	fmt.Fprintln(c.out, hr)

	if len(report.Evaluations) == 0 {
		return
	}

	fmt.Fprintln(c.out, "Quizzed Word List:")
	for i, eval := range report.Evaluations {
		rec := eval.Record
		fmt.Fprintf(c.out, "%d: %s : %s - seen %d, missed %d, last seen %s\n",
			i+1, display(rec.ForeignTerm), display(rec.NativeTerm),
			rec.CountSeen, rec.CountIncorrect, c.relative(rec.LastSeen))
	}
	fmt.Fprintln(c.out, hr)
}

// Results prints search results, or a note when there are none.
func (c *Console) Results(term string, field models.SearchField, records []models.Record) {
	fmt.Fprintf(c.out, "RESULTS for %q in %s:\n", term, field)
	if len(records) == 0 {
		fmt.Fprintln(c.out, "No entries found.")
		return
	}

	for i, rec := range records {
		fmt.Fprintf(c.out, "\n%d. %s : %s", i+1, display(rec.ForeignTerm), display(rec.NativeTerm))
		if rec.Grammar != "" {
			fmt.Fprintf(c.out, " (%s)", display(rec.Grammar))
		}
		fmt.Fprintln(c.out)
		if rec.Answer != "" {
			fmt.Fprintln(c.out, display(rec.Answer))
		}
		fmt.Fprintf(c.out, "seen %d, missed %d, last seen %s\n", rec.CountSeen, rec.CountIncorrect, c.relative(rec.LastSeen))
	}
}

func (c *Console) WordStats(stats models.WordStats) {
	fmt.Fprintf(c.out, "📚 Words: %d\n", stats.TotalCount)
	fmt.Fprintf(c.out, "👀 Seen: %d\n", stats.SeenCount)
	fmt.Fprintf(c.out, "🆕 Never seen: %d\n", stats.NeverSeen)
	fmt.Fprintf(c.out, "❌ Missed at least once: %d\n", stats.MissedCount)
}

func (c *Console) QuizStats(stats models.QuizStats) {
	fmt.Fprintf(c.out, "🧩 Quizzes: %d\n", stats.SessionsRun)
	fmt.Fprintf(c.out, "✅ Right answers: %d\n", stats.RightCount)
	fmt.Fprintf(c.out, "❌ Wrong answers: %d\n", stats.WrongCount)
	fmt.Fprintf(c.out, "📈 Total: %d\n", stats.TotalCount)
}

// Session prints the recorded answers of one quiz.
func (c *Console) Session(sessionID string, results []models.QuizResult) {
	fmt.Fprintf(c.out, "Session %s:\n", sessionID)
	if len(results) == 0 {
		fmt.Fprintln(c.out, "No answers recorded.")
		return
	}

	for i, r := range results {
		mark := "✅"
		if !r.IsCorrect {
			mark = "❌"
		}
		fmt.Fprintf(c.out, "%d. %s %s : %s (given: %s)\n", i+1, mark, display(r.Prompt), display(r.Expected), r.Given)
	}
}

func (c *Console) relative(t time.Time) string {
	if t.IsZero() {
		return never
	}

	d := c.now().Sub(t)
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)

	return fmt.Sprintf("%d days, %d hours ago", days, hours)
}

// display turns stored line separators back into newlines.
func display(s string) string {
	return strings.ReplaceAll(s, lineSep, "\n")
}
