package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/wjn/LanguageFlashCards/internal/models"
	"github.com/wjn/LanguageFlashCards/internal/storage/cache"
	"go.uber.org/zap"
)

// WordBank is the in-memory, ordered copy of one word bank file.
//
// The file has a header row followed by one row per entry:
//
//	ForeignLanguage,NativeLanguage,Grammar,Answer,LastSeen,CountSeen,CountIncorrect
type WordBank struct {
	file    FileI
	path    string
	verbose bool
	loc     *time.Location
	log     *zap.Logger

	records []models.Record
	terms   *cache.TermIndex

	countOnLoad int
	appended    int
}

type Option func(*WordBank)

// WithLocation sets the zone LastSeen values are written and parsed in.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(w *WordBank) {
		w.loc = loc
	}
}

// LoadWordBank reads the word bank at path. With verbose set every loaded
// entry is logged.
func LoadWordBank(file FileI, path string, verbose bool, log *zap.Logger, opts ...Option) (*WordBank, error) {
	w := &WordBank{
		file:    file,
		path:    path,
		verbose: verbose,
		loc:     time.Local,
		log:     log,
		terms:   cache.NewTermIndex(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.load(); err != nil {
		return nil, err
	}
	w.countOnLoad = len(w.records)

	return w, nil
}

func (w *WordBank) load() error {
	if !w.file.IsFile(w.path) {
		return fmt.Errorf("%s: %w", w.path, models.ErrFileNotFound)
	}

	data, err := w.file.ReadFile(w.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", w.path, models.ErrFileNotFound)
		}
		return fmt.Errorf("failed to read word bank %s: %w", w.path, err)
	}

	records, err := w.parse(string(data))
	if err != nil {
		return fmt.Errorf("word bank %s: %w", w.path, err)
	}

	w.records = records
	w.reindex()

	return nil
}

func (w *WordBank) parse(data string) ([]models.Record, error) {
	lines := strings.Split(data, "\n")
	records := make([]models.Record, 0, len(lines))

	for n, line := range lines {
		// header row is never validated
		if n == 0 {
			continue
		}
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields, cols := splitRow(line)
		if cols != columnCount {
			w.log.Warn("word bank row has wrong number of columns",
				zap.Int("line", n+1),
				zap.Int("columns", cols),
				zap.Int("expected", columnCount),
				zap.String("foreign", fields[colForeign]),
				zap.String("native", fields[colNative]),
			)
		}

		record, err := parseRow(fields, w.loc)
		if err != nil {
			if cols == columnCount {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
			// misaligned columns, usually a comma inside a field
			w.log.Warn("skipping word bank row",
				zap.Int("line", n+1),
				zap.String("foreign", fields[colForeign]),
				zap.Error(err),
			)
			continue
		}

		if w.verbose {
			w.log.Debug("entry loaded",
				zap.Int("line", n+1),
				zap.String("foreign", record.ForeignTerm),
				zap.String("native", record.NativeTerm),
			)
		}

		records = append(records, record)
	}

	return records, nil
}

func (w *WordBank) reindex() {
	terms := make([]string, len(w.records))
	for i, r := range w.records {
		terms[i] = r.ForeignTerm
	}
	w.terms.Reset(terms)
}

// Save writes every entry back to the file and then reloads the file to
// check that nothing was lost. ErrIntegrityMismatch means the file was
// written but reads back with a different number of entries.
func (w *WordBank) Save() error {
	var sb strings.Builder
	sb.WriteString(headerRow())
	for _, r := range w.records {
		sb.WriteString(formatRow(r, w.loc))
	}

	if err := w.file.WriteFile(w.path, []byte(sb.String())); err != nil {
		return fmt.Errorf("failed to write word bank %s: %w", w.path, err)
	}

	expected := w.countOnLoad + w.appended
	previous := w.records
	w.records = nil

	if err := w.load(); err != nil {
		w.records = previous
		w.reindex()
		w.log.Error("could not read word bank after write", zap.String("path", w.path), zap.Error(err))
		return fmt.Errorf("failed to read word bank back: %w", err)
	}

	if len(w.records) != expected {
		w.log.Error("word bank size changed during write",
			zap.String("path", w.path),
			zap.Int("count_on_load", w.countOnLoad),
			zap.Int("appended", w.appended),
			zap.Int("count_after_write", len(w.records)),
		)
		return fmt.Errorf("expected %d entries, read back %d: %w", expected, len(w.records), models.ErrIntegrityMismatch)
	}

	w.countOnLoad = len(w.records)
	w.appended = 0

	return nil
}

// Find returns copies of the entries matching term in field. Foreign and
// native terms match exactly, grammar matches by substring; all matching
// ignores case.
func (w *WordBank) Find(term string, field models.SearchField) []models.Record {
	needle := strings.ToLower(strings.TrimSpace(term))
	results := make([]models.Record, 0)

	for _, r := range w.records {
		var match bool
		switch field {
		case models.FieldForeign:
			match = strings.EqualFold(needle, r.ForeignTerm)
		case models.FieldNative:
			match = strings.EqualFold(needle, r.NativeTerm)
		case models.FieldGrammar:
			match = strings.Contains(strings.ToLower(r.Grammar), needle)
		}
		if match {
			results = append(results, r)
		}
	}

	return results
}

func (w *WordBank) IsDuplicate(foreignTerm string) bool {
	return w.terms.Contains(foreignTerm)
}

// Append adds records to the end of the bank. Nothing is written until Save.
func (w *WordBank) Append(records ...models.Record) {
	for _, r := range records {
		w.records = append(w.records, r)
		w.terms.Add(r.ForeignTerm)
	}
	w.appended += len(records)
}

// UpdateByKey replaces the first entry with the same foreign and native
// terms as record.
func (w *WordBank) UpdateByKey(record models.Record) error {
	for i := range w.records {
		if w.records[i].SameKey(record) {
			w.records[i] = record
			return nil
		}
	}
	return fmt.Errorf("%s : %s: %w", record.ForeignTerm, record.NativeTerm, models.ErrUpdateNotFound)
}

// Record returns the entry at position i, or nil when i is out of range.
// The pointer stays valid until the next Append or Save.
func (w *WordBank) Record(i int) *models.Record {
	if i < 0 || i >= len(w.records) {
		return nil
	}
	return &w.records[i]
}

// Records returns a copy of all entries in file order.
func (w *WordBank) Records() []models.Record {
	out := make([]models.Record, len(w.records))
	copy(out, w.records)
	return out
}

func (w *WordBank) Size() int {
	return len(w.records)
}

func (w *WordBank) Path() string {
	return w.path
}

func (w *WordBank) Stats() models.WordStats {
	stats := models.WordStats{TotalCount: len(w.records)}
	for _, r := range w.records {
		if r.CountSeen > 0 {
			stats.SeenCount++
		} else {
			stats.NeverSeen++
		}
		if r.CountIncorrect > 0 {
			stats.MissedCount++
		}
	}
	return stats
}
