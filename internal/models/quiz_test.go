package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuizType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    QuizType
		wantErr bool
	}{
		{in: "random", want: QuizRandom},
		{in: "Least-Recent", want: QuizLeastRecentlySeen},
		{in: " most-incorrect ", want: QuizMostIncorrect},
		{in: "hardest", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseQuizType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustQuizType(t, got.String()))
		})
	}
}

func mustQuizType(t *testing.T, s string) QuizType {
	t.Helper()
	q, err := ParseQuizType(s)
	require.NoError(t, err)
	return q
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	got, err := ParseDirection("NATIVE")
	require.NoError(t, err)
	assert.Equal(t, NativeToForeign, got)
	assert.Equal(t, "Native > Foreign", got.Title())

	_, err = ParseDirection("both")
	require.ErrorIs(t, err, ErrUnknownOption)
}

func TestScoreReport_Percent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100.00", ScoreReport{Score: 100}.Percent())
	assert.Equal(t, "66.67", ScoreReport{Score: 66.67}.Percent())
	assert.Equal(t, "0.00", ScoreReport{}.Percent())
}
