package tmpl

import "testing"

func mustSpec(t *testing.T, text string) Spec {
	t.Helper()

	spec, err := ParseSpec(text)
	if err != nil {
		t.Fatalf("ParseSpec(%q) error: %v", text, err)
	}

	return spec
}

func TestFormat_Integers(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		spec string
		want string
	}{
		{"plain", 30, "", "30"},
		{"negative", -7, "", "-7"},
		{"zero pad", 30, "04", "0030"},
		{"zero pad negative", -30, "05", "-0030"},
		{"pad narrower than value", 12345, "03", "12345"},
		{"hex", 30, "x", "1e"},
		{"hex zero", 0, "x", "0"},
		{"binary", 5, "b", "101"},
		{"hex padded", 255, "04x", "00ff"},
		{"negative hex two's complement", -1, "x", "ffffffffffffffff"},
		{"negative binary two's complement", -2, "b",
			"1111111111111111111111111111111111111111111111111111111111111110"},
		{"exponential", 30, "e", "3e1"},
		{"exponential zero", 0, "e", "0e0"},
		{"precision ignored", 30, ".2", "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(Int(tt.n), mustSpec(t, tt.spec))
			if got != tt.want {
				t.Errorf("Format(%d, %q) = %q, want %q",
					tt.n, tt.spec, got, tt.want)
			}
		})
	}
}

func TestFormat_Floats(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		spec string
		want string
	}{
		{"plain", 3.14, "", "3.14"},
		{"integral drops fraction", 30.0, "", "30"},
		{"precision", 3.14159, ".2", "3.14"},
		{"precision extends", 2.5, ".3", "2.500"},
		{"precision rounds half to even", 0.125, ".2", "0.12"},
		{"precision zero", 2.718, ".0", "3"},
		{"zero pad", 3.5, "06", "0003.5"},
		{"negative zero pad", -3.5, "06", "-003.5"},
		{"exponential", 3.14, "e", "3.14e0"},
		{"exponential large", 314.0, "e", "3.14e2"},
		{"exponential small", 0.0015, "e", "1.5e-3"},
		{"exponential with precision", 2.71828, ".2e", "2.72e0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(Float(tt.f), mustSpec(t, tt.spec))
			if got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q",
					tt.f, tt.spec, got, tt.want)
			}
		})
	}
}

func TestFormat_Scalars(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		spec string
		want string
	}{
		{"bool true", Bool(true), "", "true"},
		{"bool false", Bool(false), "", "false"},
		{"char", Char('q'), "", "q"},
		{"text raw", Text("paris"), "", "paris"},
		{"unit", Unit(), "", "()"},

		// Numeric specs on non-numeric values are a no-op
		{"text ignores precision", Text("abc"), ".2", "abc"},
		{"bool ignores pad", Bool(true), "04", "true"},
		{"char ignores hex", Char('f'), "x", "f"},

		// Container modes on scalars render the plain scalar
		{"text ignores mode", Text("abc"), "c", "abc"},
		{"int ignores mode", Int(5), "j", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.v, mustSpec(t, tt.spec))
			if got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q",
					tt.v, tt.spec, got, tt.want)
			}
		})
	}
}
