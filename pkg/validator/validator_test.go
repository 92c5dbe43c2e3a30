package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required,excludesall=0x2C"`
	Count int    `validate:"min=1"`
	Mode  string `validate:"oneof=a b"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      interface{}
		wantErr bool
		contain []string
	}{
		{name: "valid", in: sample{Name: "Hund", Count: 1, Mode: "a"}},
		{
			name:    "missing and out of range",
			in:      sample{Count: 0, Mode: "a"},
			wantErr: true,
			contain: []string{"sample.Name", "required", "sample.Count", "Param: 1"},
		},
		{
			name:    "comma rejected",
			in:      sample{Name: "der, die", Count: 1, Mode: "b"},
			wantErr: true,
			contain: []string{"excludesall"},
		},
		{
			name:    "not a struct",
			in:      42,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			for _, c := range tt.contain {
				assert.Contains(t, err.Error(), c)
			}
		})
	}
}
