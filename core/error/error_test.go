// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code matching and
//              serialization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-08-14 v0.2.0: Tests for Is matching and the textx codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	frames := err.StackTrace()
	if len(frames) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(frames[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", frames[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("unknown character class %q", "vowels")

	if err.Error() != `unknown character class "vowels"` {
		t.Errorf("Error() = %q", err.Error())
	}
	frames := err.StackTrace()
	if len(frames) == 0 || !strings.Contains(frames[0].Function, "TestNewf") {
		t.Errorf("first frame should be the caller of Newf, got %+v", frames)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap textx error keeps code",
			err:      New("marker missing").WithCode(CodeMarkerNotFound),
			message:  "cli",
			wantMsg:  "cli: marker missing",
			wantCode: CodeMarkerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is(wrapped, original) = false, want true")
			}
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New("marker not found").WithCode(CodeMarkerNotFound)
	other := New("negative").WithCode(CodeNegativeLength)

	err := New(`endString "end" not found`).WithCode(CodeMarkerNotFound)
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() should match on equal codes")
	}
	if errors.Is(err, other) {
		t.Error("errors.Is() should not match different codes")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is() should see through fmt wrapping")
	}

	unknownA := New("a")
	unknownB := New("b")
	if errors.Is(unknownA, unknownB) {
		t.Error("errors without a code should only match themselves")
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeNullInput, SeverityLow},
		{CodeLengthOutOfRange, SeverityLow},
		{CodeMarkerNotFound, SeverityMedium},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		argument bool
	}{
		{CodeNullInput, "argument", true},
		{CodeInvalidEnumValue, "argument", true},
		{CodeMarkerNotFound, "lookup", false},
		{CodeEndMarkerNotFoundAfterStart, "lookup", false},
		{CodeNegativeLength, "range", true},
		{CodeMissingConfig, "configuration", false},
		{Code("SOMETHING_ELSE"), "generic", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.IsArgumentError(); got != tt.argument {
				t.Errorf("IsArgumentError() = %v, want %v", got, tt.argument)
			}
		})
	}

	if Code("SOMETHING_ELSE").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("parameter", "endString")
	details := err.Details()
	details["parameter"] = "changed"

	if v, _ := err.Detail("parameter"); v != "endString" {
		t.Errorf("Detail() = %v, want endString", v)
	}
}

func TestStringIsDeterministic(t *testing.T) {
	err := New("failed").
		WithCode(CodeLengthOutOfRange).
		WithOperation("stringx.SubstringLength").
		WithDetails(map[string]interface{}{"requested": 9, "available": 8, "overflow": 1})

	want := "Error: failed\nCode: LENGTH_OUT_OF_RANGE\nSeverity: low\n" +
		"Operation: stringx.SubstringLength\nDetails: {available=8, overflow=1, requested=9}"
	if got := err.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("failed").WithCode(CodeMarkerNotFound).WithOperation("op").WithDetail("parameter", "startString")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "MARKER_NOT_FOUND" {
		t.Errorf("code = %v, want MARKER_NOT_FOUND", decoded["code"])
	}
	if decoded["operation"] != "op" {
		t.Errorf("operation = %v, want op", decoded["operation"])
	}
	if decoded["severity"] != "medium" {
		t.Errorf("severity = %v, want medium", decoded["severity"])
	}
}

func TestGetters(t *testing.T) {
	plain := errors.New("plain")
	if GetCode(plain) != CodeUnknown {
		t.Error("GetCode() on plain error should be CodeUnknown")
	}
	if GetSeverity(plain) != SeverityMedium {
		t.Error("GetSeverity() on plain error should be SeverityMedium")
	}
	if HasCode(plain, CodeUnknown) {
		t.Error("HasCode() on plain error should be false")
	}

	err := fmt.Errorf("ctx: %w", New("x").WithCode(CodeNegativeLength))
	if GetCode(err) != CodeNegativeLength {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeNegativeLength)
	}
	if !HasCode(err, CodeNegativeLength) {
		t.Error("HasCode() should see through wrapping")
	}
}
