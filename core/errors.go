package core

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRequest = errors.New("webspark: malformed request")
	ErrTemplate         = errors.New("webspark: invalid template")
	ErrDispatch         = errors.New("webspark: dispatch failed")
	ErrRelay            = errors.New("webspark: relay error")
)

// MalformedRequestError is returned when a relay blob has fewer than four lines.
type MalformedRequestError struct {
	Lines int
}

func (e *MalformedRequestError) Error() string {
	return fmt.Sprintf("incorrect WebSpark request: got %d lines, want at least %d", e.Lines, requestMinLines)
}

func (e *MalformedRequestError) Unwrap() error { return ErrMalformedRequest }

type TemplateError struct {
	Name   string
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %s", e.Name, e.Reason)
}

func (e *TemplateError) Unwrap() error { return ErrTemplate }

// RelayError reports a non-success status from one of the relay endpoints.
type RelayError struct {
	Endpoint string
	Status   int
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("relay %s: unexpected status %d", e.Endpoint, e.Status)
}

func (e *RelayError) Unwrap() error { return ErrRelay }

type Stage string

const (
	StagePoll    Stage = "poll"
	StageParse   Stage = "parse"
	StageHandle  Stage = "handle"
	StageRespond Stage = "respond"
)

// StageError tags a loop failure with the step of the cycle it came from.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func IsMalformedRequest(err error) bool {
	return errors.Is(err, ErrMalformedRequest)
}

// StageOf returns the cycle stage recorded on err, or "unknown".
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return "unknown"
}
