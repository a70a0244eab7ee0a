package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidPack, "pack name too long")
	want := "INVALID_PACK: pack name too long"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(ErrCodeNetwork, fmt.Errorf("connection refused"), "fetch %s", "John 3:16")
	want = "NETWORK_ERROR: fetch John 3:16: connection refused"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodePackNotFound, "no pack %q", "psalms")

	if !Is(err, ErrCodePackNotFound) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeVerseNotFound) {
		t.Error("Is() = true for non-matching code")
	}
	if got := GetCode(err); got != ErrCodePackNotFound {
		t.Errorf("GetCode() = %q, want PACK_NOT_FOUND", got)
	}

	plain := fmt.Errorf("plain error")
	if Is(plain, ErrCodeInternal) {
		t.Error("Is() = true for non-structured error")
	}
	if got := GetCode(plain); got != "" {
		t.Errorf("GetCode() = %q for non-structured error, want empty", got)
	}
}

func TestUnwrapChain(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeInternal, cause, "save pack")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
	if got := UserMessage(err); got != "save pack" {
		t.Errorf("UserMessage() = %q, want %q", got, "save pack")
	}
	if got := UserMessage(cause); got != "disk full" {
		t.Errorf("UserMessage() = %q, want %q", got, "disk full")
	}
}
