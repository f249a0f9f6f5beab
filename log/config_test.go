package log

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_WithLevel_SetsLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected Level
	}{
		{"trace", LevelTrace, LevelTrace},
		{"debug", LevelDebug, LevelDebug},
		{"info", LevelInfo, LevelInfo},
		{"warn", LevelWarn, LevelWarn},
		{"error", LevelError, LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config{}
			opt := WithLevel(tt.level)
			result := opt(c)

			if result.level != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, result.level)
			}
		})
	}
}

func TestConfig_WithCaller_SetsCaller(t *testing.T) {
	tests := []struct {
		name     string
		enable   bool
		expected bool
	}{
		{"enabled", true, true},
		{"disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config{}
			opt := WithCaller(tt.enable)
			result := opt(c)

			if result.caller != tt.expected {
				t.Errorf(
					"expected caller %v, got %v",
					tt.expected,
					result.caller,
				)
			}
		})
	}
}

func TestConfig_WithFormat_SetsFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		expected Format
	}{
		{"json", FormatJSON, FormatJSON},
		{"text", FormatText, FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config{}
			opt := WithFormat(tt.format)
			result := opt(c)

			if result.format != tt.expected {
				t.Errorf("expected format %v, got %v", tt.expected, result.format)
			}
		})
	}
}

func TestConfig_FormatTime_FormatsTimestamp(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name        string
		layout      string
		contains    []string
		notContains []string
	}{
		{
			name:        "rfc3339 named layout",
			layout:      "RFC3339",
			contains:    []string{"2023-10-15T14:30:45Z"},
			notContains: []string{".123"},
		},
		{
			name:     "rfc3339 nano named layout",
			layout:   "RFC3339Nano",
			contains: []string{"2023-10-15T14:30:45.123456789Z"},
		},
		{
			name:     "kitchen named layout",
			layout:   "Kitchen",
			contains: []string{"2:30PM"},
		},
		{
			name:     "custom layout verbatim",
			layout:   "2006/01/02",
			contains: []string{"2023/10/15"},
		},
		{
			name:        "none disables timestamps",
			layout:      "none",
			notContains: []string{"2023"},
		},
		{
			name:        "empty disables timestamps",
			layout:      "   ",
			notContains: []string{"2023"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := makeFormatTimeFunc(tt.layout)
			result := format(now)

			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("expected %q in %q", want, result)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(result, unwanted) {
					t.Errorf("unexpected %q in %q", unwanted, result)
				}
			}
		})
	}
}

func TestConfig_ParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
	}{
		{"trace", "trace", LevelTrace},
		{"trace uppercase", "TRACE", LevelTrace},
		{"debug", "debug", LevelDebug},
		{"info", "info", LevelInfo},
		{"warn", "warn", LevelWarn},
		{"error", "error", LevelError},
		{"offset", "warn+2", LevelWarn + 2},
		{"invalid falls back to default", "bogus", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v",
					tt.input, got, tt.expected)
			}
		})
	}
}

func TestConfig_ParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
	}{
		{"json", "json", FormatJSON},
		{"text", "text", FormatText},
		{"mixed case", " Text ", FormatText},
		{"invalid falls back to default", "yaml", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v",
					tt.input, got, tt.expected)
			}
		})
	}
}

func TestConfig_LevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q",
				tt.level, got, tt.expected)
		}
	}
}

func TestConfig_LevelsIteratesAll(t *testing.T) {
	var names []string
	for name := range Levels() {
		names = append(names, name)
	}

	want := []string{"trace", "debug", "info", "warn", "error"}
	if len(names) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("level %d: expected %q, got %q", i, name, names[i])
		}
	}
}
