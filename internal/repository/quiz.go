package repository

import (
	"context"

	"github.com/wjn/LanguageFlashCards/internal/models"
)

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{
		db: db,
	}
}

func (q *QuizR) AddQuizResult(ctx context.Context, result models.QuizResult) error {
	query := `
        INSERT INTO quiz_results (session_id, quiz_type, direction, prompt, expected, given, is_correct, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := q.db.ExecContext(ctx, query,
		result.SessionID, result.QuizType, result.Direction,
		result.Prompt, result.Expected, result.Given,
		result.IsCorrect, result.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (q *QuizR) QuizStats(ctx context.Context) (models.QuizStats, error) {
	query := `SELECT
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS right_count,
		COUNT(DISTINCT session_id) AS sessions_run
	FROM quiz_results`

	var stats models.QuizStats
	err := q.db.GetContext(ctx, &stats, query)
	if err != nil {
		return models.QuizStats{}, err
	}

	stats.WrongCount = stats.TotalCount - stats.RightCount

	return stats, nil
}

// SessionResults returns the graded answers of one quiz in insertion order.
func (q *QuizR) SessionResults(ctx context.Context, sessionID string) ([]models.QuizResult, error) {
	query := `
		SELECT session_id, quiz_type, direction, prompt, expected, given, is_correct, created_at
		FROM quiz_results
		WHERE session_id = ?
		ORDER BY id
	`

	results := make([]models.QuizResult, 0)
	if err := q.db.SelectContext(ctx, &results, query, sessionID); err != nil {
		return nil, err
	}

	return results, nil
}
