// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package validation

import (
	"strings"
	"testing"
)

type rangeRequest struct {
	From string `validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	To   string `validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type profileRequest struct {
	Profile string `validate:"required,oneof=block trend"`
}

func TestValidateStructPasses(t *testing.T) {
	t.Parallel()

	req := rangeRequest{From: "2026-08-01T00:00:00Z", To: "2026-08-02T00:00:00Z"}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}
}

func TestValidateStructRequired(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&rangeRequest{To: "2026-08-02T00:00:00Z"})
	if err == nil {
		t.Fatal("missing From should fail")
	}
	if !strings.Contains(err.Error(), "From is required") {
		t.Errorf("message = %q, want mention of From is required", err.Error())
	}
}

func TestValidateStructDatetime(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&rangeRequest{From: "2026-08-01", To: "2026-08-02T00:00:00Z"})
	if err == nil {
		t.Fatal("non-RFC3339 From should fail")
	}
	if !strings.Contains(err.Error(), "RFC3339") {
		t.Errorf("message = %q, want mention of RFC3339", err.Error())
	}
}

func TestValidateStructOneof(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&profileRequest{Profile: "instant"})
	if err == nil {
		t.Fatal("unknown profile should fail")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("message = %q, want oneof translation", err.Error())
	}

	fields := err.Fields()
	if len(fields) != 1 || fields[0].Field != "Profile" || fields[0].Tag != "oneof" {
		t.Errorf("fields = %+v", fields)
	}
}

func TestValidateStructCombinesMessages(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&rangeRequest{})
	if err == nil {
		t.Fatal("empty struct should fail")
	}
	if len(err.Fields()) != 2 {
		t.Errorf("got %d field errors, want 2", len(err.Fields()))
	}
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("combined message = %q, want semicolon-joined messages", err.Error())
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}
