// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestNewMeasurandKeyCanonicalizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain integer", "2", "2"},
		{"leading zero", "02", "2"},
		{"multiple leading zeros", "0042", "42"},
		{"negative integer", "-7", "-7"},
		{"non-numeric stays as is", "voltage_l1", "voltage_l1"},
		{"mixed alphanumeric stays", "2a", "2a"},
		{"whitespace trimmed", " 3 ", "3"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NewMeasurandKey(tt.raw).String(); got != tt.want {
				t.Errorf("NewMeasurandKey(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMeasurandKeyFromInt(t *testing.T) {
	t.Parallel()

	if got := MeasurandKeyFromInt(17).String(); got != "17" {
		t.Errorf("MeasurandKeyFromInt(17) = %q, want %q", got, "17")
	}
}

func TestMeasurandKeyMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		other string
		want  bool
	}{
		{"identical", "2", "2", true},
		{"coerced forms match", "02", "2", true},
		{"reverse coercion", "2", "002", true},
		{"different numbers", "2", "3", false},
		{"string keys exact", "freq", "freq", true},
		{"string keys differ", "freq", "volt", false},
		{"zero key matches number", "", "42", true},
		{"zero key matches string", "", "anything", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NewMeasurandKey(tt.key).Matches(tt.other); got != tt.want {
				t.Errorf("NewMeasurandKey(%q).Matches(%q) = %v, want %v", tt.key, tt.other, got, tt.want)
			}
		})
	}
}

func TestMeasurandKeyIsZero(t *testing.T) {
	t.Parallel()

	if !NewMeasurandKey("").IsZero() {
		t.Error("empty key should be zero")
	}
	if NewMeasurandKey("0").IsZero() {
		t.Error("key \"0\" is a real measurand id, not the zero key")
	}
}

func TestMeasurandKeyUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{"json string", `"02"`, "2", false},
		{"json number", `7`, "7", false},
		{"json string word", `"frequency"`, "frequency", false},
		{"null becomes zero key", `null`, "", false},
		{"object rejected", `{"a":1}`, "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var key MeasurandKey
			err := json.Unmarshal([]byte(tt.payload), &key)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) expected error, got key %q", tt.payload, key)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.payload, err)
			}
			if key.String() != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.payload, key, tt.want)
			}
		})
	}
}

func TestMeasurandKeyMarshalJSON(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(NewMeasurandKey("03"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(payload) != `"3"` {
		t.Errorf("Marshal = %s, want %q", payload, `"3"`)
	}
}
