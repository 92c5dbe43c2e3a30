package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/wjn/LanguageFlashCards/internal/models"
	"github.com/wjn/LanguageFlashCards/pkg/validator"
	"go.uber.org/zap"
)

type WordS struct {
	bank WordBankI
	log  *zap.Logger
	now  func() time.Time
}

func NewWordService(bank WordBankI, log *zap.Logger) *WordS {
	return &WordS{
		bank: bank,
		log:  log,
		now:  time.Now,
	}
}

// AddWords validates records, rejects foreign terms that already exist in
// the bank or earlier in records, appends them and saves the bank. Nothing
// is appended when any record is rejected. New entries are stamped as seen
// now, and an empty answer defaults to the native term and grammar note.
func (w *WordS) AddWords(records ...models.Record) error {
	seen := make(map[string]bool, len(records))
	clean := make([]models.Record, 0, len(records))
	now := w.now()

	for _, r := range records {
		r.ForeignTerm = strings.TrimSpace(r.ForeignTerm)
		r.NativeTerm = strings.TrimSpace(r.NativeTerm)
		r.Grammar = strings.TrimSpace(r.Grammar)
		if strings.TrimSpace(r.Answer) == "" {
			r.Answer = defaultAnswer(r)
		}
		if r.LastSeen.IsZero() {
			r.LastSeen = now
		}

		if err := validator.ValidateStruct(r); err != nil {
			return fmt.Errorf("entry %q: %w", r.ForeignTerm, err)
		}

		key := strings.ToLower(r.ForeignTerm)
		if seen[key] || w.bank.IsDuplicate(r.ForeignTerm) {
			w.log.Warn("duplicate entry rejected", zap.String("foreign", r.ForeignTerm))
			return fmt.Errorf("%q: %w", r.ForeignTerm, models.ErrDuplicateKey)
		}
		seen[key] = true

		clean = append(clean, r)
	}

	if len(clean) == 0 {
		return nil
	}

	w.bank.Append(clean...)
	if err := w.bank.Save(); err != nil {
		w.log.Error("failed to save new entries", zap.Int("count", len(clean)), zap.Error(err))
		return fmt.Errorf("failed to save word bank: %w", err)
	}

	w.log.Info("entries added", zap.Int("count", len(clean)), zap.Int("bank_size", w.bank.Size()))
	return nil
}

func defaultAnswer(r models.Record) string {
	if r.Grammar == "" {
		return r.NativeTerm
	}
	return r.NativeTerm + "\n\n" + r.Grammar
}

func (w *WordS) IsDuplicate(foreignTerm string) bool {
	return w.bank.IsDuplicate(strings.TrimSpace(foreignTerm))
}

func (w *WordS) Search(term string, field models.SearchField) []models.Record {
	results := w.bank.Find(term, field)
	w.log.Debug("word bank searched",
		zap.String("term", term),
		zap.Stringer("field", field),
		zap.Int("results", len(results)),
	)
	return results
}

func (w *WordS) WordStats() models.WordStats {
	return w.bank.Stats()
}
