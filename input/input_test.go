package input

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func makeReader(t *testing.T, feed string) (*Reader, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, diag bytes.Buffer

	r := New(
		strings.NewReader(feed),
		WithOutput(&out),
		WithDiag(&diag),
	)

	return r, &out, &diag
}

func TestRead_RetriesUntilParse(t *testing.T) {
	r, out, diag := makeReader(t, "abc\n42\n")

	n, err := r.Int("age: ")
	if err != nil {
		t.Fatal(err)
	}

	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}

	if got := out.String(); got != "age: age: " {
		t.Errorf("expected prompt per attempt, got %q", got)
	}

	want := "Error: cannot parse \"abc\" as integer.\n"
	if got := diag.String(); got != want {
		t.Errorf("diagnostic = %q, want %q", got, want)
	}
}

func TestRead_RejectsEmptyInput(t *testing.T) {
	r, _, diag := makeReader(t, "\n   \n7\n")

	n, err := r.Int("> ")
	if err != nil {
		t.Fatal(err)
	}

	if n != 7 {
		t.Errorf("expected 7, got %d", n)
	}

	want := "Error: Unauthorized empty input.\n" +
		"Error: Unauthorized empty input.\n"
	if got := diag.String(); got != want {
		t.Errorf("diagnostic = %q, want %q", got, want)
	}
}

func TestRead_PromptHasNoLineBreak(t *testing.T) {
	r, out, _ := makeReader(t, "ok\n")

	if _, err := r.Text("name: "); err != nil {
		t.Fatal(err)
	}

	if got := out.String(); got != "name: " {
		t.Errorf("prompt = %q, want %q", got, "name: ")
	}
}

func TestRead_TypedParsing(t *testing.T) {
	t.Run("int ignores surrounding space", func(t *testing.T) {
		r, _, diag := makeReader(t, "  -30 \n")

		n, err := r.Int("")
		if err != nil {
			t.Fatal(err)
		}

		if n != -30 {
			t.Errorf("expected -30, got %d", n)
		}

		if diag.Len() != 0 {
			t.Errorf("unexpected diagnostic: %q", diag.String())
		}
	})

	t.Run("float accepts exponent", func(t *testing.T) {
		r, _, _ := makeReader(t, "1.5e-3\n")

		f, err := r.Float("")
		if err != nil {
			t.Fatal(err)
		}

		if f != 0.0015 {
			t.Errorf("expected 0.0015, got %v", f)
		}
	})

	t.Run("int rejects float literal", func(t *testing.T) {
		r, _, diag := makeReader(t, "3.14\n3\n")

		n, err := r.Int("")
		if err != nil {
			t.Fatal(err)
		}

		if n != 3 {
			t.Errorf("expected 3, got %d", n)
		}

		if !strings.Contains(diag.String(), "as integer") {
			t.Errorf("diagnostic = %q", diag.String())
		}
	})

	t.Run("bool is case sensitive", func(t *testing.T) {
		r, _, diag := makeReader(t, "True\n1\ntrue\n")

		b, err := r.Bool("")
		if err != nil {
			t.Fatal(err)
		}

		if !b {
			t.Error("expected true")
		}

		if n := strings.Count(diag.String(), "as boolean"); n != 2 {
			t.Errorf("expected 2 rejections, got %d: %q", n, diag.String())
		}
	})

	t.Run("char requires exactly one rune", func(t *testing.T) {
		r, _, diag := makeReader(t, "ab\nÿ\n")

		c, err := r.Char("")
		if err != nil {
			t.Fatal(err)
		}

		if c != 'ÿ' {
			t.Errorf("expected 'ÿ', got %q", c)
		}

		if !strings.Contains(diag.String(), "as character") {
			t.Errorf("diagnostic = %q", diag.String())
		}
	})

	t.Run("text keeps interior content verbatim", func(t *testing.T) {
		r, _, _ := makeReader(t, "  hello  world  \n")

		s, err := r.Text("")
		if err != nil {
			t.Fatal(err)
		}

		if s != "  hello  world  " {
			t.Errorf("expected raw line, got %q", s)
		}
	})
}

func TestRead_CRLFTerminator(t *testing.T) {
	r, _, _ := makeReader(t, "42\r\n")

	n, err := r.Int("")
	if err != nil {
		t.Fatal(err)
	}

	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
}

func TestRead_FinalUnterminatedLine(t *testing.T) {
	r, _, _ := makeReader(t, "42")

	n, err := r.Int("")
	if err != nil {
		t.Fatal(err)
	}

	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
}

func TestRead_StreamClosed(t *testing.T) {
	r, _, _ := makeReader(t, "")

	_, err := r.Int("> ")
	if err == nil {
		t.Fatal("expected error on exhausted stream")
	}

	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("expected ErrInputClosed, got %v", err)
	}
}

func TestRead_StreamClosedAfterRejection(t *testing.T) {
	r, _, diag := makeReader(t, "nope\n")

	_, err := r.Int("> ")
	if err == nil {
		t.Fatal("expected error once stream is exhausted")
	}

	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("expected ErrInputClosed, got %v", err)
	}

	if !strings.Contains(diag.String(), "cannot parse") {
		t.Errorf("expected rejection before stream end, got %q", diag.String())
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		got  string
	}{
		{"integer", typeName[int64]()},
		{"float", typeName[float64]()},
		{"boolean", typeName[bool]()},
		{"character", typeName[rune]()},
		{"text", typeName[string]()},
	}

	for _, tt := range tests {
		if tt.got != tt.name {
			t.Errorf("typeName = %q, want %q", tt.got, tt.name)
		}
	}
}
