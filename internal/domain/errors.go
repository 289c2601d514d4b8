package domain

import (
	"errors"
	"fmt"
)

var (
	ErrActivationNotFound = errors.New("activation not found")
	ErrUnexpectedStatus   = errors.New("unexpected provider status")
	ErrInvalidBid         = errors.New("invalid bid")
)

type ErrorKind string

const (
	KindNetwork ErrorKind = "network"
	KindDecode  ErrorKind = "decode"
	KindParse   ErrorKind = "parse"
)

// FetchError is the single failure type an activation can settle with.
type FetchError struct {
	Kind ErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return string(e.Kind) + " error"
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func NewFetchError(kind ErrorKind, err error) *FetchError {
	return &FetchError{Kind: kind, Err: err}
}

// KindOf reports the kind of a FetchError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}
