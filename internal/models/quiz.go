package models

import (
	"fmt"
	"strings"
	"time"
)

type QuizType int

const (
	QuizRandom QuizType = iota
	QuizLeastRecentlySeen
	QuizMostIncorrect
)

var quizTypes = []struct {
	t     QuizType
	name  string
	title string
}{
	{QuizRandom, "random", "random"},
	{QuizLeastRecentlySeen, "least-recent", "least recently seen"},
	{QuizMostIncorrect, "most-incorrect", "most times answered incorrectly"},
}

func (t QuizType) String() string {
	for _, q := range quizTypes {
		if q.t == t {
			return q.name
		}
	}
	return "unknown"
}

func (t QuizType) Title() string {
	for _, q := range quizTypes {
		if q.t == t {
			return q.title
		}
	}
	return "unknown"
}

func ParseQuizType(s string) (QuizType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, q := range quizTypes {
		if q.name == s {
			return q.t, nil
		}
	}
	return 0, fmt.Errorf("quiz type %q: %w", s, ErrUnknownOption)
}

type Direction int

const (
	ForeignToNative Direction = iota
	NativeToForeign
	DirectionRandom
)

var directions = []struct {
	d     Direction
	name  string
	title string
}{
	{ForeignToNative, "foreign", "Foreign > Native"},
	{NativeToForeign, "native", "Native > Foreign"},
	{DirectionRandom, "random", "Random bi-directional"},
}

func (d Direction) String() string {
	for _, v := range directions {
		if v.d == d {
			return v.name
		}
	}
	return "unknown"
}

func (d Direction) Title() string {
	for _, v := range directions {
		if v.d == d {
			return v.title
		}
	}
	return "unknown"
}

func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range directions {
		if v.name == s {
			return v.d, nil
		}
	}
	return 0, fmt.Errorf("direction %q: %w", s, ErrUnknownOption)
}

// QuizInfo describes a configured quiz before the first card is shown.
type QuizInfo struct {
	SessionID string
	Type      QuizType
	Direction Direction
	Count     int
	BankSize  int
	BankPath  string
}

// Card is what the user is asked. Record is a copy taken before grading.
type Card struct {
	Number   int
	Prompt   string
	Expected string
	Record   Record
}

type Evaluation struct {
	Index     int
	Prompt    string
	Expected  string
	Given     string
	IsCorrect bool
	Record    Record
}

type ScoreReport struct {
	SessionID      string
	Correct        int
	Total          int
	Score          float64
	UpdateFailures int
	Evaluations    []Evaluation
}

func (s ScoreReport) Percent() string {
	return fmt.Sprintf("%.2f", s.Score)
}

// QuizResult is one graded answer as kept in the quiz history.
type QuizResult struct {
	SessionID string    `db:"session_id"`
	QuizType  string    `db:"quiz_type"`
	Direction string    `db:"direction"`
	Prompt    string    `db:"prompt"`
	Expected  string    `db:"expected"`
	Given     string    `db:"given"`
	IsCorrect bool      `db:"is_correct"`
	CreatedAt time.Time `db:"created_at"`
}

type QuizStats struct {
	TotalCount  int `db:"total_count" yaml:"total"`
	RightCount  int `db:"right_count" yaml:"right"`
	WrongCount  int `db:"wrong_count" yaml:"wrong"`
	SessionsRun int `db:"sessions_run" yaml:"sessions"`
}
