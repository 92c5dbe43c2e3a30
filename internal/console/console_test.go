package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wjn/LanguageFlashCards/internal/models"
)

var consoleNow = time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)

func newConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	c := New(strings.NewReader(input), out)
	c.now = func() time.Time { return consoleNow }
	return c, out
}

func TestConsole_Ask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		card     models.Card
		want     string
		wantErr  bool
		wantOut  []string
		notInOut []string
	}{
		{
			name:     "new word",
			input:    "dog\n",
			card:     models.Card{Number: 1, Prompt: "Hund", Record: models.Record{Grammar: "Noun"}},
			want:     "dog",
			wantOut:  []string{"1. Hund (Noun)", "> "},
			notInOut: []string{"seen"},
		},
		{
			name:  "seen before",
			input: "cat\r\n",
			card: models.Card{Number: 2, Prompt: "Katze", Record: models.Record{
				CountSeen:      3,
				CountIncorrect: 1,
				LastSeen:       consoleNow.Add(-50 * time.Hour),
			}},
			want:    "cat",
			wantOut: []string{"2. Katze", "- seen 3 times", "- missed 1 time(s)", "- last seen 2 days, 2 hours ago"},
		},
		{
			name:    "never missed",
			input:   "dog\n",
			card:    models.Card{Number: 1, Prompt: "Hund", Record: models.Record{CountSeen: 1, LastSeen: consoleNow}},
			want:    "dog",
			wantOut: []string{"- not missed before", "- last seen 0 days, 0 hours ago"},
		},
		{
			name:  "last line without newline",
			input: "dog",
			card:  models.Card{Number: 1, Prompt: "Hund"},
			want:  "dog",
		},
		{
			name:  "empty answer",
			input: "\n",
			card:  models.Card{Number: 1, Prompt: "Hund"},
			want:  "",
		},
		{
			name:    "closed input",
			input:   "",
			card:    models.Card{Number: 1, Prompt: "Hund"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, out := newConsole(tt.input)

			got, err := c.Ask(context.Background(), tt.card)
			if tt.wantErr {
				require.ErrorIs(t, err, io.EOF)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			for _, s := range tt.wantOut {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.notInOut {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestConsole_Ask_Canceled(t *testing.T) {
	t.Parallel()

	c, out := newConsole("dog\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Ask(ctx, models.Card{Number: 1, Prompt: "Hund"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestConsole_Ask_ReusableAfterCancel(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pr.Close()

	out := &bytes.Buffer{}
	c := New(pr, out)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Ask(ctx, models.Card{Number: 1, Prompt: "Hund"})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		_, _ = pw.Write([]byte("dog\n"))
		_ = pw.Close()
	}()

	got, err := c.Ask(context.Background(), models.Card{Number: 1, Prompt: "Hund"})
	require.NoError(t, err)
	assert.Equal(t, "dog", got)

	_, err = c.Ask(context.Background(), models.Card{Number: 2, Prompt: "Katze"})
	require.ErrorIs(t, err, io.EOF)
}

func TestConsole_Ask_Sequence(t *testing.T) {
	t.Parallel()

	c, _ := newConsole("dog\ncat\n")

	first, err := c.Ask(context.Background(), models.Card{Number: 1, Prompt: "Hund"})
	require.NoError(t, err)
	second, err := c.Ask(context.Background(), models.Card{Number: 2, Prompt: "Katze"})
	require.NoError(t, err)

	assert.Equal(t, "dog", first)
	assert.Equal(t, "cat", second)
}

func TestConsole_Feedback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		eval    models.Evaluation
		wantOut []string
	}{
		{
			name:    "correct",
			eval:    models.Evaluation{IsCorrect: true, Expected: "dog"},
			wantOut: []string{"Correct!"},
		},
		{
			name: "incorrect with details",
			eval: models.Evaluation{
				Expected: "dog",
				Record:   models.Record{Answer: "der Hund\u2028die Hunde"},
			},
			wantOut: []string{"Incorrect. Looking for: dog", "der Hund\ndie Hunde"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, out := newConsole("")
			c.Feedback(tt.eval)

			for _, s := range tt.wantOut {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestConsole_StartAndReport(t *testing.T) {
	t.Parallel()

	c, out := newConsole("")
	c.Start(models.QuizInfo{
		Type:      models.QuizLeastRecentlySeen,
		Direction: models.NativeToForeign,
		Count:     5,
		BankSize:  40,
		BankPath:  "german-english.csv",
	})
	c.Report(models.ScoreReport{Correct: 2, Total: 3, Score: 66.67, UpdateFailures: 1})

	got := out.String()
	assert.Contains(t, got, "least recently seen")
	assert.Contains(t, got, "Native > Foreign")
	assert.Contains(t, got, "5 of 40")
	assert.Contains(t, got, "german-english.csv")
	assert.Contains(t, got, "You scored 66.67% (2 of 3)")
	assert.Contains(t, got, "1 entries could not be updated")
	assert.NotContains(t, got, "Quizzed Word List")
}

func TestConsole_Report_QuizzedList(t *testing.T) {
	t.Parallel()

	c, out := newConsole("")
	c.Report(models.ScoreReport{
		Correct: 1,
		Total:   2,
		Score:   50,
		Evaluations: []models.Evaluation{
			{IsCorrect: true, Record: models.Record{ForeignTerm: "Hund", NativeTerm: "dog", CountSeen: 3, LastSeen: consoleNow}},
			{Record: models.Record{ForeignTerm: "Katze", NativeTerm: "cat", CountSeen: 1, CountIncorrect: 1, LastSeen: consoleNow.Add(-26 * time.Hour)}},
		},
	})

	got := out.String()
	assert.Contains(t, got, "You scored 50.00% (1 of 2)")
	assert.Contains(t, got, "Quizzed Word List:")
	assert.Contains(t, got, "1: Hund : dog - seen 3, missed 0, last seen 0 days, 0 hours ago")
	assert.Contains(t, got, "2: Katze : cat - seen 1, missed 1, last seen 1 days, 2 hours ago")
}

func TestConsole_Results(t *testing.T) {
	t.Parallel()

	c, out := newConsole("")
	c.Results("Hund", models.FieldForeign, []models.Record{
		{ForeignTerm: "Hund", NativeTerm: "dog", Grammar: "Noun", CountSeen: 2, CountIncorrect: 1, LastSeen: consoleNow.Add(-25 * time.Hour)},
	})

	got := out.String()
	assert.Contains(t, got, `RESULTS for "Hund" in foreign:`)
	assert.Contains(t, got, "1. Hund : dog (Noun)")
	assert.Contains(t, got, "seen 2, missed 1, last seen 1 days, 1 hours ago")

	c, out = newConsole("")
	c.Results("Maus", models.FieldNative, nil)
	assert.Contains(t, out.String(), "No entries found.")
}

func TestConsole_Stats(t *testing.T) {
	t.Parallel()

	c, out := newConsole("")
	c.WordStats(models.WordStats{TotalCount: 3, SeenCount: 2, MissedCount: 1, NeverSeen: 1})
	c.QuizStats(models.QuizStats{TotalCount: 10, RightCount: 7, WrongCount: 3, SessionsRun: 2})

	got := out.String()
	assert.Contains(t, got, "Words: 3")
	assert.Contains(t, got, "Never seen: 1")
	assert.Contains(t, got, "Quizzes: 2")
	assert.Contains(t, got, "Right answers: 7")
	assert.Contains(t, got, "Wrong answers: 3")
}

func TestConsole_relative(t *testing.T) {
	t.Parallel()

	c, _ := newConsole("")

	assert.Equal(t, "never", c.relative(time.Time{}))
	assert.Equal(t, "3 days, 4 hours ago", c.relative(consoleNow.Add(-76*time.Hour-30*time.Minute)))
	assert.Equal(t, "0 days, 0 hours ago", c.relative(consoleNow.Add(time.Hour)))
}

func TestConsole_Session(t *testing.T) {
	t.Parallel()

	c, out := newConsole("")
	c.Session("abc", []models.QuizResult{
		{Prompt: "Hund", Expected: "dog", Given: "dog", IsCorrect: true},
		{Prompt: "Katze", Expected: "cat", Given: "dog"},
	})

	got := out.String()
	assert.Contains(t, got, "Session abc:")
	assert.Contains(t, got, "1. ✅ Hund : dog (given: dog)")
	assert.Contains(t, got, "2. ❌ Katze : cat (given: dog)")

	c, out = newConsole("")
	c.Session("none", nil)
	assert.Contains(t, out.String(), "No answers recorded.")
}
