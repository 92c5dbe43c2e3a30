package models

import (
	"strings"
	"time"
)

// Record is a single word bank entry.
type Record struct {
	ForeignTerm    string    `yaml:"foreign" validate:"required,excludesall=0x2C"`
	NativeTerm     string    `yaml:"native" validate:"required,excludesall=0x2C"`
	Grammar        string    `yaml:"grammar" validate:"excludesall=0x2C"`
	Answer         string    `yaml:"answer" validate:"excludesall=0x2C"`
	LastSeen       time.Time `yaml:"last_seen"`
	CountSeen      int       `yaml:"count_seen" validate:"min=0"`
	CountIncorrect int       `yaml:"count_incorrect" validate:"min=0"`
}

// SameKey reports whether r and other share the (foreign, native) update key.
func (r *Record) SameKey(other Record) bool {
	return r.ForeignTerm == other.ForeignTerm && r.NativeTerm == other.NativeTerm
}

func (r *Record) IncrementSeen() {
	r.CountSeen++
}

func (r *Record) IncrementIncorrect() {
	r.CountIncorrect++
}

// UpdateLastSeen moves LastSeen forward to now. It refuses to move time
// backwards and reports false in that case.
func (r *Record) UpdateLastSeen(now time.Time) bool {
	if !now.After(r.LastSeen) {
		return false
	}
	r.LastSeen = now
	return true
}

func (r *Record) Seen() bool {
	return !r.LastSeen.IsZero()
}

type SearchField int

const (
	FieldForeign SearchField = iota
	FieldNative
	FieldGrammar
)

var searchFieldNames = map[string]SearchField{
	"foreign": FieldForeign,
	"native":  FieldNative,
	"grammar": FieldGrammar,
}

func (f SearchField) String() string {
	for name, v := range searchFieldNames {
		if v == f {
			return name
		}
	}
	return "unknown"
}

func ParseSearchField(s string) (SearchField, error) {
	f, ok := searchFieldNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, ErrUnknownOption
	}
	return f, nil
}

type WordStats struct {
	TotalCount  int `yaml:"total"`
	SeenCount   int `yaml:"seen"`
	MissedCount int `yaml:"missed"`
	NeverSeen   int `yaml:"never_seen"`
}
