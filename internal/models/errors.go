package models

import "errors"

var (
	ErrFileNotFound      = errors.New("word bank file not found")
	ErrMalformedRow      = errors.New("malformed word bank row")
	ErrIntegrityMismatch = errors.New("word bank size differs after write")
	ErrNotEnoughRecords  = errors.New("not enough words in word bank")
	ErrEmptyWordBank     = errors.New("word bank is empty")
	ErrDuplicateKey      = errors.New("entry already exists")
	ErrUpdateNotFound    = errors.New("entry not found")
	ErrInvalidCount      = errors.New("word count must be at least 1")
	ErrSessionState      = errors.New("quiz is not in the required state")
	ErrUnknownOption     = errors.New("unknown option")
)
