package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wjn/LanguageFlashCards/internal/models"
)

func TestFormatRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record models.Record
		want   string
	}{
		{
			name: "never seen",
			record: models.Record{
				ForeignTerm: "Hund",
				NativeTerm:  "dog",
				Grammar:     "Noun",
				Answer:      "dog",
			},
			want: `"Hund","dog","Noun","dog","0001-01-01 00:00:00","0","0"` + "\n",
		},
		{
			name: "quotes stripped and newlines replaced",
			record: models.Record{
				ForeignTerm:    `"laufen"`,
				NativeTerm:     "to run",
				Grammar:        "Verb\nstrong",
				Answer:         "ich laufe\r\ndu läufst",
				LastSeen:       time.Date(2024, 3, 1, 9, 30, 15, 123000000, time.UTC),
				CountSeen:      4,
				CountIncorrect: 7,
			},
			want: `"laufen","to run","Verb` + "\u2028" + `strong","ich laufe` + "\u2028" + `du läufst","2024-03-01 09:30:15.123","4","7"` + "\n",
		},
		{
			name: "commas stripped",
			record: models.Record{
				ForeignTerm: "der",
				NativeTerm:  "the",
				Grammar:     "Article, masculine",
			},
			want: `"der","the","Article masculine","","0001-01-01 00:00:00","0","0"` + "\n",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, formatRow(tt.record, time.UTC))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "empty is never seen", in: "", want: time.Time{}},
		{name: "sentinel", in: "0001-01-01 00:00:00", want: time.Time{}},
		{name: "sentinel with fraction", in: "0001-01-01 00:00:00.0", want: time.Time{}},
		{name: "millis", in: "2023-03-05 10:11:12.345", want: time.Date(2023, 3, 5, 10, 11, 12, 345000000, time.UTC)},
		{name: "nanos", in: "2023-03-05 10:11:12.000000001", want: time.Date(2023, 3, 5, 10, 11, 12, 1, time.UTC)},
		{name: "whole seconds", in: "2023-03-05 10:11:12", want: time.Date(2023, 3, 5, 10, 11, 12, 0, time.UTC)},
		{name: "garbage", in: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseTimestamp(tt.in, time.UTC)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

func TestSplitRow(t *testing.T) {
	t.Parallel()

	fields, cols := splitRow(`"Hund","dog"`)
	assert.Equal(t, 2, cols)
	assert.Equal(t, "Hund", fields[colForeign])
	assert.Equal(t, "dog", fields[colNative])
	assert.Empty(t, fields[colCountIncorrect])

	fields, cols = splitRow(`"a","b","c","d","","1","2","extra"`)
	assert.Equal(t, 8, cols)
	assert.Equal(t, "2", fields[colCountIncorrect])
}

func TestParseRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fields  [columnCount]string
		want    models.Record
		wantErr error
	}{
		{
			name:   "empty counts default to zero",
			fields: [columnCount]string{"Hund", "dog", "Noun", "dog", "", "", ""},
			want:   models.Record{ForeignTerm: "Hund", NativeTerm: "dog", Grammar: "Noun", Answer: "dog"},
		},
		{
			name:   "incorrect may exceed seen",
			fields: [columnCount]string{"Katze", "cat", "", "", "", "1", "3"},
			want:   models.Record{ForeignTerm: "Katze", NativeTerm: "cat", CountSeen: 1, CountIncorrect: 3},
		},
		{
			name:    "bad count",
			fields:  [columnCount]string{"Hund", "dog", "", "", "", "two", "0"},
			wantErr: models.ErrMalformedRow,
		},
		{
			name:    "bad timestamp",
			fields:  [columnCount]string{"Hund", "dog", "", "", "soon", "0", "0"},
			wantErr: models.ErrMalformedRow,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseRow(tt.fields, time.UTC)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
