// GridPulse - Energy Telemetry Dashboard Backend
// Copyright 2026 GridPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gridpulse/gridpulse

package relay

import (
	"testing"
)

func TestDecodeSubscribeRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     string
		wantErr     bool
		wantType    string
		wantTermID  TerminalID
		wantMeasKey string
	}{
		{
			name:        "terminalId as number",
			payload:     `{"type":"liveValue","terminalId":4,"measurandId":"2"}`,
			wantType:    ModeLiveValue,
			wantTermID:  4,
			wantMeasKey: "2",
		},
		{
			name:        "terminalId as numeric string",
			payload:     `{"type":"liveValue","terminalId":"4","measurandId":"2"}`,
			wantType:    ModeLiveValue,
			wantTermID:  4,
			wantMeasKey: "2",
		},
		{
			name:        "measurandId as number with leading-zero string equivalent",
			payload:     `{"type":"liveValue","terminalId":4,"measurandId":"02"}`,
			wantType:    ModeLiveValue,
			wantTermID:  4,
			wantMeasKey: "2",
		},
		{
			name:        "measurandId as number",
			payload:     `{"type":"liveValue","terminalId":4,"measurandId":7}`,
			wantType:    ModeLiveValue,
			wantTermID:  4,
			wantMeasKey: "7",
		},
		{
			name:       "history without measurandId",
			payload:    `{"type":"history","terminalId":9}`,
			wantType:   ModeHistory,
			wantTermID: 9,
		},
		{
			name:    "malformed json",
			payload: `{"type":"liveValue",`,
			wantErr: true,
		},
		{
			name:    "non-numeric terminalId",
			payload: `{"type":"liveValue","terminalId":"abc","measurandId":"2"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req, err := decodeSubscribeRequest([]byte(tt.payload))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected decode error, got %+v", req)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if req.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", req.Type, tt.wantType)
			}
			if req.TerminalID != tt.wantTermID {
				t.Errorf("TerminalID = %d, want %d", req.TerminalID, tt.wantTermID)
			}
			if req.MeasurandID.String() != tt.wantMeasKey {
				t.Errorf("MeasurandID = %q, want %q", req.MeasurandID, tt.wantMeasKey)
			}
		})
	}
}

func TestSubscribeRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     SubscribeRequest
		wantErr bool
	}{
		{"valid liveValue", SubscribeRequest{Type: ModeLiveValue, TerminalID: 4, MeasurandID: "2"}, false},
		{"valid history with measurand", SubscribeRequest{Type: ModeHistory, TerminalID: 4, MeasurandID: "2"}, false},
		{"valid history without measurand", SubscribeRequest{Type: ModeHistory, TerminalID: 4}, false},
		{"unknown type", SubscribeRequest{Type: "stream", TerminalID: 4, MeasurandID: "2"}, true},
		{"missing terminalId", SubscribeRequest{Type: ModeLiveValue, MeasurandID: "2"}, true},
		{"negative terminalId", SubscribeRequest{Type: ModeLiveValue, TerminalID: -1, MeasurandID: "2"}, true},
		{"liveValue without measurandId", SubscribeRequest{Type: ModeLiveValue, TerminalID: 4}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
