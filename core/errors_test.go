package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMalformedRequest_WithTypedError(t *testing.T) {
	err := &MalformedRequestError{Lines: 2}
	if !IsMalformedRequest(err) {
		t.Error("expected true for MalformedRequestError")
	}
}

func TestIsMalformedRequest_WithWrappedError(t *testing.T) {
	err := &StageError{Stage: StageParse, Err: &MalformedRequestError{Lines: 1}}
	if !IsMalformedRequest(err) {
		t.Error("expected true for wrapped MalformedRequestError")
	}
}

func TestIsMalformedRequest_WithDifferentError(t *testing.T) {
	if IsMalformedRequest(errors.New("some other error")) {
		t.Error("expected false for unrelated error")
	}
}

func TestIsMalformedRequest_WithNil(t *testing.T) {
	if IsMalformedRequest(nil) {
		t.Error("expected false for nil error")
	}
}

func TestStageOf(t *testing.T) {
	err := fmt.Errorf("cycle: %w", &StageError{Stage: StageRespond, Err: &RelayError{Endpoint: "respond", Status: 502}})
	if got := StageOf(err); got != StageRespond {
		t.Errorf("expected stage %q, got %q", StageRespond, got)
	}
	if !errors.Is(err, ErrRelay) {
		t.Error("expected relay sentinel through the stage wrapper")
	}
	if got := StageOf(errors.New("plain")); got != "unknown" {
		t.Errorf("expected unknown stage, got %q", got)
	}
}

func TestErrorMessages(t *testing.T) {
	cases := map[string]error{
		"incorrect WebSpark request: got 2 lines, want at least 4": &MalformedRequestError{Lines: 2},
		"template page.html: no %s placeholder":                   &TemplateError{Name: "page.html", Reason: "no %s placeholder"},
		"relay addapi: unexpected status 500":                      &RelayError{Endpoint: "addapi", Status: 500},
		"poll: boom":                                               &StageError{Stage: StagePoll, Err: errors.New("boom")},
	}
	for want, err := range cases {
		if err.Error() != want {
			t.Errorf("got %q, want %q", err.Error(), want)
		}
	}
}
