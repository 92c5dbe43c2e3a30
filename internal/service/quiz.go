package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wjn/LanguageFlashCards/internal/models"
	"go.uber.org/zap"
)

type QuizState int

const (
	StateNew QuizState = iota
	StateConfigured
	StateRunning
	StateGraded
	StatePersisted
	StateAborted
)

func (s QuizState) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateConfigured:
		return "configured"
	case StateRunning:
		return "running"
	case StateGraded:
		return "graded"
	case StatePersisted:
		return "persisted"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}

// QuizS runs a single quiz. It is not safe for concurrent use and is meant
// to be thrown away once Run returns.
type QuizS struct {
	bank      WordBankI
	history   QuizRI
	presenter Presenter
	log       *zap.Logger
	rnd       *rand.Rand
	now       func() time.Time

	id        string
	state     QuizState
	count     int
	quizType  models.QuizType
	direction models.Direction
}

func NewQuizService(bank WordBankI, history QuizRI, presenter Presenter, log *zap.Logger) *QuizS {
	return &QuizS{
		bank:      bank,
		history:   history,
		presenter: presenter,
		log:       log,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
		id:        uuid.New().String(),
	}
}

func (q *QuizS) ID() string {
	return q.id
}

func (q *QuizS) State() QuizState {
	return q.state
}

// Configure fixes the size, selection policy and direction of the quiz. A
// quiz can never ask for more words than the bank holds.
func (q *QuizS) Configure(count int, quizType models.QuizType, direction models.Direction) error {
	if q.state != StateNew {
		return fmt.Errorf("configure in state %s: %w", q.state, models.ErrSessionState)
	}

	if count < 1 {
		q.state = StateAborted
		return models.ErrInvalidCount
	}
	if size := q.bank.Size(); count > size {
		q.state = StateAborted
		q.log.Warn("more words requested than in word bank",
			zap.String("session_id", q.id),
			zap.Int("requested", count),
			zap.Int("available", size),
		)
		return notEnough(size, count)
	}

	q.count = count
	q.quizType = quizType
	q.direction = direction
	q.state = StateConfigured

	return nil
}

// Run asks every selected card, updates the statistics of the asked entries
// and saves the word bank. When saving fails the report is still returned
// together with the error.
func (q *QuizS) Run(ctx context.Context) (models.ScoreReport, error) {
	if q.state != StateConfigured {
		return models.ScoreReport{}, fmt.Errorf("run in state %s: %w", q.state, models.ErrSessionState)
	}
	q.state = StateRunning

	chosen, err := Select(q.rnd, q.bank.Records(), q.quizType, q.count)
	if err != nil {
		q.state = StateAborted
		q.log.Warn("could not build quiz", zap.String("session_id", q.id), zap.Error(err))
		return models.ScoreReport{}, err
	}

	q.presenter.Start(models.QuizInfo{
		SessionID: q.id,
		Type:      q.quizType,
		Direction: q.direction,
		Count:     q.count,
		BankSize:  q.bank.Size(),
		BankPath:  q.bank.Path(),
	})

	evals := make([]models.Evaluation, 0, len(chosen))
	for n, idx := range chosen {
		eval, err := q.evaluate(ctx, n+1, idx)
		if err != nil {
			q.state = StateAborted
			return models.ScoreReport{}, fmt.Errorf("quiz interrupted at card %d: %w", n+1, err)
		}
		evals = append(evals, eval)
		q.presenter.Feedback(eval)
		q.addHistory(ctx, eval)
	}

	q.state = StateGraded
	report := q.grade(evals)

	if err := q.bank.Save(); err != nil {
		q.log.Error("failed to save word bank after quiz", zap.String("session_id", q.id), zap.Error(err))
		return report, fmt.Errorf("failed to save word bank: %w", err)
	}
	q.state = StatePersisted

	q.log.Info("quiz finished",
		zap.String("session_id", q.id),
		zap.Int("correct", report.Correct),
		zap.Int("total", report.Total),
		zap.String("score", report.Percent()),
	)

	return report, nil
}

func (q *QuizS) evaluate(ctx context.Context, number, idx int) (models.Evaluation, error) {
	rec := q.bank.Record(idx)
	if rec == nil {
		return models.Evaluation{}, fmt.Errorf("entry %d: %w", idx, models.ErrUpdateNotFound)
	}

	prompt, expected := Orient(q.rnd, *rec, q.direction)

	given, err := q.presenter.Ask(ctx, models.Card{
		Number:   number,
		Prompt:   prompt,
		Expected: expected,
		Record:   *rec,
	})
	if err != nil {
		return models.Evaluation{}, err
	}

	correct := normalize(given) == normalize(expected)
	if !correct {
		rec.IncrementIncorrect()
	}
	rec.IncrementSeen()
	if now := q.now(); !rec.UpdateLastSeen(now) {
		q.log.Warn("clock is behind last seen, keeping old value",
			zap.String("foreign", rec.ForeignTerm),
			zap.Time("last_seen", rec.LastSeen),
			zap.Time("now", now),
		)
	}

	return models.Evaluation{
		Index:     idx,
		Prompt:    prompt,
		Expected:  expected,
		Given:     given,
		IsCorrect: correct,
		Record:    *rec,
	}, nil
}

// grade checks that every asked entry is still where it was read from and
// falls back to a lookup by key when it is not. The entries were updated in
// place, so a fallback only happens if the bank changed under the quiz.
func (q *QuizS) grade(evals []models.Evaluation) models.ScoreReport {
	report := models.ScoreReport{
		SessionID:   q.id,
		Total:       len(evals),
		Evaluations: evals,
	}

	for _, eval := range evals {
		if eval.IsCorrect {
			report.Correct++
		}

		if cur := q.bank.Record(eval.Index); cur != nil && cur.SameKey(eval.Record) {
			continue
		}
		if err := q.bank.UpdateByKey(eval.Record); err != nil {
			report.UpdateFailures++
			q.log.Warn("failed to update entry in word bank",
				zap.String("session_id", q.id),
				zap.String("foreign", eval.Record.ForeignTerm),
				zap.String("native", eval.Record.NativeTerm),
				zap.Error(err),
			)
		}
	}

	if report.Total > 0 {
		report.Score = math.Round(float64(report.Correct)/float64(report.Total)*100*100) / 100
	}

	return report
}

func (q *QuizS) addHistory(ctx context.Context, eval models.Evaluation) {
	if q.history == nil {
		return
	}

	err := q.history.AddQuizResult(ctx, models.QuizResult{
		SessionID: q.id,
		QuizType:  q.quizType.String(),
		Direction: q.direction.String(),
		Prompt:    eval.Prompt,
		Expected:  eval.Expected,
		Given:     eval.Given,
		IsCorrect: eval.IsCorrect,
		CreatedAt: q.now(),
	})
	if err != nil {
		q.log.Warn("failed to add quiz result to history", zap.String("session_id", q.id), zap.Error(err))
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
