package input

import (
	"errors"
	"strings"
	"testing"
)

// TestValidate_Success tests accepted values and their classification
func TestValidate_Success(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Kind
	}{
		{"IPv4", "8.8.8.8", IP},
		{"abbreviated IPv6 prefix", "::ffff", Domain},
		{"domain", "example.com", Domain},
		{"minimum length", "a.io", Domain},
		{"maximum length", strings.Repeat("a", MaxLength), Domain},
		{"abbreviated IPv6", "2001:db8::1", Domain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := Validate(tt.value)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != tt.want {
				t.Errorf("expected %s, got %s", tt.want, kind)
			}
		})
	}
}

// TestValidate_Failures tests the rules and their order
func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
		wantMsg string
	}{
		{"empty", "", ErrEmpty, "Please enter something"},
		{"single space", " ", ErrSpaces, "Remove any spaces"},
		{"inner space", "exa mple.com", ErrSpaces, "Remove any spaces"},
		{"space wins over short", "a b", ErrSpaces, "Remove any spaces"},
		{"space wins over long", strings.Repeat("a", 300) + " ", ErrSpaces, "Remove any spaces"},
		{"too short", "abc", ErrLength, "Input seems too short or too long"},
		{"too long", strings.Repeat("a", MaxLength+1), ErrLength, "Input seems too short or too long"},
		{"short loopback", "::1", ErrLength, "Input seems too short or too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.value)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("expected message '%s', got '%s'", tt.wantMsg, err.Error())
			}
			if !IsValidationError(err) {
				t.Error("expected IsValidationError to be true")
			}
		})
	}
}

// TestValidate_AnySpaceFails checks the space rule regardless of other content
func TestValidate_AnySpaceFails(t *testing.T) {
	values := []string{
		"8.8.8.8 ", " example.com", "a b c d e f", "192.168. 1.1", "x y",
		"exa\tmple.com", "exa\nmple.com", "exa\u00a0mple.com", "exa\rmple.com", "example.com\u2003",
	}

	for _, v := range values {
		if _, err := Validate(v); !errors.Is(err, ErrSpaces) {
			t.Errorf("Validate(%q): expected ErrSpaces, got %v", v, err)
		}
	}
}

// TestValidate_LengthInCodeUnits tests that astral characters count as two
func TestValidate_LengthInCodeUnits(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"two emoji reach the minimum", "\U0001F600\U0001F600", nil},
		{"one emoji is too short", "\U0001F600", ErrLength},
		{"accented letters count once", "caf\u00e9", nil},
		{"BMP at maximum", strings.Repeat("\u00e9", MaxLength), nil},
		{"emoji over maximum", strings.Repeat("\U0001F600", MaxLength/2+1), ErrLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestValidate_NonIPInRangeIsDomain checks that in-range non-IP values are domains
func TestValidate_NonIPInRangeIsDomain(t *testing.T) {
	for n := MinLength; n <= MaxLength; n += 17 {
		value := strings.Repeat("x", n)
		kind, err := Validate(value)
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", n, err)
		}
		if kind != Domain {
			t.Errorf("length %d: expected domain, got %s", n, kind)
		}
	}
}

// TestIsValidationError_OtherErrors tests that unrelated errors are not validation errors
func TestIsValidationError_OtherErrors(t *testing.T) {
	if IsValidationError(errors.New("boom")) {
		t.Error("expected false for unrelated error")
	}
	if IsValidationError(nil) {
		t.Error("expected false for nil")
	}
}
