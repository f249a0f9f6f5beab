package cmd

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ardnew/cio/input"
)

func askReader(feed string) *input.Reader {
	return input.New(
		strings.NewReader(feed),
		input.WithOutput(io.Discard),
		input.WithDiag(io.Discard),
	)
}

func TestAsk_Read(t *testing.T) {
	tests := []struct {
		name string
		as   string
		feed string
		want any
	}{
		{"int", "int", "42\n", int64(42)},
		{"int after rejection", "int", "nope\n42\n", int64(42)},
		{"float", "float", "2.5\n", 2.5},
		{"bool", "bool", "true\n", true},
		{"char", "char", "q\n", 'q'},
		{"text", "text", "hello world\n", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Ask{As: tt.as, Prompt: "? "}

			got, err := a.read(askReader(tt.feed))
			if err != nil {
				t.Fatalf("read error: %v", err)
			}

			if got != tt.want {
				t.Errorf("read = %v (%T), want %v (%T)",
					got, got, tt.want, tt.want)
			}
		})
	}
}

func TestAsk_Read_UnknownType(t *testing.T) {
	a := Ask{As: "complex"}

	_, err := a.read(askReader("1\n"))
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestAsk_Read_ClosedStream(t *testing.T) {
	a := Ask{As: "int", Prompt: "? "}

	_, err := a.read(askReader(""))
	if !errors.Is(err, input.ErrInputClosed) {
		t.Errorf("expected ErrInputClosed, got %v", err)
	}
}
