package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wjn/LanguageFlashCards/internal/models"
)

const (
	delimiter     = ","
	quote         = `"`
	lineSeparator = "\u2028"
	timeLayout    = "2006-01-02 15:04:05.999999999"
	neverSeen     = "0001-01-01 00:00:00"
)

const (
	colForeign = iota
	colNative
	colGrammar
	colAnswer
	colLastSeen
	colCountSeen
	colCountIncorrect
	columnCount
)

var headings = [columnCount]string{
	"ForeignLanguage",
	"NativeLanguage",
	"Grammar",
	"Answer",
	"LastSeen",
	"CountSeen",
	"CountIncorrect",
}

func headerRow() string {
	return strings.Join(headings[:], delimiter) + "\n"
}

// cleanText strips quotes and delimiters, which the format cannot escape,
// and folds line breaks into lineSeparator.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, quote, "")
	s = strings.ReplaceAll(s, delimiter, "")
	s = strings.ReplaceAll(s, "\r\n", lineSeparator)
	return strings.ReplaceAll(s, "\n", lineSeparator)
}

func formatTimestamp(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return neverSeen
	}
	return t.In(loc).Format(timeLayout)
}

func formatRow(r models.Record, loc *time.Location) string {
	fields := [columnCount]string{
		colForeign:        cleanText(r.ForeignTerm),
		colNative:         cleanText(r.NativeTerm),
		colGrammar:        cleanText(r.Grammar),
		colAnswer:         cleanText(r.Answer),
		colLastSeen:       formatTimestamp(r.LastSeen, loc),
		colCountSeen:      strconv.Itoa(r.CountSeen),
		colCountIncorrect: strconv.Itoa(r.CountIncorrect),
	}

	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(delimiter)
		}
		sb.WriteString(quote)
		sb.WriteString(f)
		sb.WriteString(quote)
	}
	sb.WriteString("\n")
	return sb.String()
}

func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(timeLayout, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	if t.Year() == 1 && t.YearDay() == 1 && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return time.Time{}, nil
	}
	return t, nil
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// splitRow splits line into exactly columnCount unquoted fields and returns
// how many fields the line really had.
func splitRow(line string) ([columnCount]string, int) {
	var fields [columnCount]string
	cols := strings.Split(line, delimiter)
	for i := 0; i < len(cols) && i < columnCount; i++ {
		fields[i] = strings.ReplaceAll(cols[i], quote, "")
	}
	return fields, len(cols)
}

func parseRow(fields [columnCount]string, loc *time.Location) (models.Record, error) {
	lastSeen, err := parseTimestamp(fields[colLastSeen], loc)
	if err != nil {
		return models.Record{}, fmt.Errorf("%s %q: %w", headings[colLastSeen], fields[colLastSeen], models.ErrMalformedRow)
	}
	seen, err := parseCount(fields[colCountSeen])
	if err != nil {
		return models.Record{}, fmt.Errorf("%s %q: %w", headings[colCountSeen], fields[colCountSeen], models.ErrMalformedRow)
	}
	incorrect, err := parseCount(fields[colCountIncorrect])
	if err != nil {
		return models.Record{}, fmt.Errorf("%s %q: %w", headings[colCountIncorrect], fields[colCountIncorrect], models.ErrMalformedRow)
	}

	return models.Record{
		ForeignTerm:    fields[colForeign],
		NativeTerm:     fields[colNative],
		Grammar:        fields[colGrammar],
		Answer:         fields[colAnswer],
		LastSeen:       lastSeen,
		CountSeen:      seen,
		CountIncorrect: incorrect,
	}, nil
}
