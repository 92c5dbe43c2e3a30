package service

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wjn/LanguageFlashCards/internal/models"
)

// The selectors below return positions into records rather than copies, so
// the caller can update the chosen entries in place.

// Random draws n positions uniformly with replacement; the same entry can
// come up more than once and n may exceed len(records).
func Random(r *rand.Rand, records []models.Record, n int) ([]int, error) {
	if n < 1 {
		return nil, models.ErrInvalidCount
	}
	if len(records) == 0 {
		return nil, models.ErrEmptyWordBank
	}

	chosen := make([]int, n)
	for i := range chosen {
		chosen[i] = r.Intn(len(records))
	}
	return chosen, nil
}

// LeastRecentlySeen takes the n entries with the oldest LastSeen and returns
// them in random order.
func LeastRecentlySeen(r *rand.Rand, records []models.Record, n int) ([]int, error) {
	if n < 1 {
		return nil, models.ErrInvalidCount
	}
	if n > len(records) {
		return nil, notEnough(len(records), n)
	}

	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return records[order[a]].LastSeen.Before(records[order[b]].LastSeen)
	})

	chosen := append([]int(nil), order[:n]...)
	r.Shuffle(len(chosen), func(a, b int) {
		chosen[a], chosen[b] = chosen[b], chosen[a]
	})
	return chosen, nil
}

// MostIncorrect draws n positions with replacement from the entries that
// have been missed at least once. At least n such entries must exist.
func MostIncorrect(r *rand.Rand, records []models.Record, n int) ([]int, error) {
	if n < 1 {
		return nil, models.ErrInvalidCount
	}

	missed := make([]int, 0)
	for i, rec := range records {
		if rec.CountIncorrect > 0 {
			missed = append(missed, i)
		}
	}
	if len(missed) < n {
		return nil, notEnough(len(missed), n)
	}

	chosen := make([]int, n)
	for i := range chosen {
		chosen[i] = missed[r.Intn(len(missed))]
	}
	return chosen, nil
}

// Select dispatches to the selector for quizType.
func Select(r *rand.Rand, records []models.Record, quizType models.QuizType, n int) ([]int, error) {
	switch quizType {
	case models.QuizLeastRecentlySeen:
		return LeastRecentlySeen(r, records, n)
	case models.QuizMostIncorrect:
		return MostIncorrect(r, records, n)
	default:
		return Random(r, records, n)
	}
}

// Orient picks which side of rec is shown and which is expected.
func Orient(r *rand.Rand, rec models.Record, direction models.Direction) (prompt, expected string) {
	switch direction {
	case models.NativeToForeign:
		return rec.NativeTerm, rec.ForeignTerm
	case models.DirectionRandom:
		if r.Intn(2) == 1 {
			return rec.NativeTerm, rec.ForeignTerm
		}
		return rec.ForeignTerm, rec.NativeTerm
	default:
		return rec.ForeignTerm, rec.NativeTerm
	}
}

func notEnough(available, requested int) error {
	return fmt.Errorf("%d available, %d requested: %w", available, requested, models.ErrNotEnoughRecords)
}
