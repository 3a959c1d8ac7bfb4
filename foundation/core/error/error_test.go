// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code matching, severity
//              derivation and serialization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-08-02 v0.2.0: Tests for code based Is matching

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
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("operation %s failed with %d", "div", 3)
	if err.Error() != "operation div failed with 3" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{"wrap nil error", nil, "context", true, ""},
		{"wrap standard error", errors.New("boom"), "context", false, "context: boom"},
		{"wrap structured error", New("inner"), "outer", false, "outer: inner"},
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
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause")
			}
		})
	}
}

func TestWrap_InheritsCodeAndDetails(t *testing.T) {
	inner := New("division by zero").
		WithCode(CodeDivisionByZero).
		WithOperation("div").
		WithDetail("module", "cmplxx")

	wrapped := Wrap(inner, "evaluation failed")

	if wrapped.Code() != CodeDivisionByZero {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeDivisionByZero)
	}
	if wrapped.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", wrapped.Severity(), SeverityHigh)
	}
	if wrapped.Operation() != "div" {
		t.Errorf("Operation() = %q, want div", wrapped.Operation())
	}
	if wrapped.Details()["module"] != "cmplxx" {
		t.Errorf("Details()[module] = %v, want cmplxx", wrapped.Details()["module"])
	}
	if wrapped.RootCause() != inner {
		t.Error("RootCause() should return the innermost error")
	}
}

func TestWrap_TruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeDomainError)
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	mdwErr := err.(*Error)
	if mdwErr.Details()["truncated"] != true {
		t.Error("deep chain should be truncated")
	}
	if mdwErr.Code() != CodeDomainError {
		t.Errorf("truncated chain lost code: %v", mdwErr.Code())
	}
}

func TestError_Is(t *testing.T) {
	sentinel := New("division by zero").WithCode(CodeDivisionByZero)
	other := New("another division").WithCode(CodeDivisionByZero)
	domain := New("domain").WithCode(CodeDomainError)
	plain := New("plain")

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same code", other, sentinel, true},
		{"wrapped same code", Wrap(other, "outer"), sentinel, true},
		{"std wrapped", fmt.Errorf("ctx: %w", other), sentinel, true},
		{"different code", domain, sentinel, false},
		{"uncoded target matches itself", plain, plain, true},
		{"uncoded target", New("plain"), plain, false},
		{"foreign target", other, errors.New("division by zero"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", New("inner").WithCode(CodeInvalidInput))

	var mdwErr *Error
	if !errors.As(err, &mdwErr) {
		t.Fatal("errors.As should find *Error")
	}
	if mdwErr.Code() != CodeInvalidInput {
		t.Errorf("Code() = %v, want %v", mdwErr.Code(), CodeInvalidInput)
	}
}

func TestWithCode_DerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeDivisionByZero, SeverityHigh},
		{CodeDomainError, SeverityHigh},
		{CodeInvalidInput, SeverityLow},
		{CodeNotFound, SeverityLow},
		{CodeServiceUnavailable, SeverityCritical},
		{CodeInternal, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("severity = %v, want %v", got, tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityLow).WithCode(CodeDivisionByZero)
	if explicit.Severity() != SeverityLow {
		t.Error("explicit severity should not be overridden by WithCode")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("inner").WithCode(CodeDomainError)
	outer := Wrap(inner, "outer").WithCode(CodeInternal)

	if !HasCode(outer, CodeDomainError) {
		t.Error("HasCode should search the chain")
	}
	if HasCode(errors.New("std"), CodeDomainError) {
		t.Error("HasCode on standard error should be false")
	}
	if GetCode(outer) != CodeInternal {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeInternal)
	}
	if GetCode(errors.New("std")) != CodeUnknown {
		t.Error("GetCode on standard error should be CodeUnknown")
	}
	if GetSeverity(errors.New("std")) != SeverityMedium {
		t.Error("GetSeverity on standard error should be SeverityMedium")
	}
}

func TestDetails_ReturnsCopy(t *testing.T) {
	err := New("x").WithDetail("a", 1)
	details := err.Details()
	details["a"] = 2

	if err.Details()["a"] != 1 {
		t.Error("Details() should return a copy")
	}
}

func TestString(t *testing.T) {
	err := New("division by zero").
		WithCode(CodeDivisionByZero).
		WithOperation("inverse").
		WithRequestID("req-1").
		WithDetails(map[string]interface{}{"b": 2, "a": 1})

	s := err.String()
	for _, want := range []string{
		"Error: division by zero",
		"Code: DIVISION_BY_ZERO",
		"Severity: high",
		"Operation: inverse",
		"RequestID: req-1",
		"Details: {a=1, b=2}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "message").
		WithCode(CodeDomainError).
		WithOperation("arg")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "DOMAIN_ERROR" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "arg" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeDivisionByZero, "arithmetic"},
		{CodeDomainError, "arithmetic"},
		{CodeDatabaseError, "database"},
		{CodeInvalidConfig, "configuration"},
		{CodeInvalidFormat, "validation"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
	if !CodeDivisionByZero.IsValid() {
		t.Error("CodeDivisionByZero should be valid")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}

	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert threshold should be SeverityHigh")
	}
}
