package service

import (
	"context"
	"errors"

	"github.com/wjn/LanguageFlashCards/internal/models"
	"go.uber.org/zap"
)

var ErrHistoryDisabled = errors.New("quiz history is disabled")

type WordBankI interface {
	Size() int
	Path() string
	Record(i int) *models.Record
	Records() []models.Record
	Find(term string, field models.SearchField) []models.Record
	IsDuplicate(foreignTerm string) bool
	Append(records ...models.Record)
	UpdateByKey(record models.Record) error
	Save() error
	Stats() models.WordStats
}

type QuizRI interface {
	AddQuizResult(ctx context.Context, result models.QuizResult) error
	QuizStats(ctx context.Context) (models.QuizStats, error)
	SessionResults(ctx context.Context, sessionID string) ([]models.QuizResult, error)
}

// Presenter shows quiz cards to the user and collects typed answers.
type Presenter interface {
	Start(info models.QuizInfo)
	Ask(ctx context.Context, card models.Card) (string, error)
	Feedback(eval models.Evaluation)
}

type Service struct {
	*WordS
	bank    WordBankI
	history QuizRI
	log     *zap.Logger
}

// InitServices wires the services. history may be nil when the quiz
// history is switched off.
func InitServices(bank WordBankI, history QuizRI, log *zap.Logger) *Service {
	return &Service{
		WordS:   NewWordService(bank, log),
		bank:    bank,
		history: history,
		log:     log,
	}
}

// NewQuiz starts a fresh quiz session against the word bank.
func (s *Service) NewQuiz(presenter Presenter) *QuizS {
	return NewQuizService(s.bank, s.history, presenter, s.log)
}

func (s *Service) QuizStats(ctx context.Context) (models.QuizStats, error) {
	if s.history == nil {
		return models.QuizStats{}, ErrHistoryDisabled
	}

	stats, err := s.history.QuizStats(ctx)
	if err != nil {
		s.log.Warn("failed to get quiz stats", zap.Error(err))
		return models.QuizStats{}, err
	}
	return stats, nil
}

func (s *Service) SessionResults(ctx context.Context, sessionID string) ([]models.QuizResult, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}

	results, err := s.history.SessionResults(ctx, sessionID)
	if err != nil {
		s.log.Warn("failed to get session results", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return results, nil
}
