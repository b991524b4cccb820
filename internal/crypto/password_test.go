package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestPasswordPolicy_BoundaryValid(t *testing.T) {
	// Exactly the minimum length with one uppercase, one lowercase, one digit.
	if v := DefaultPasswordPolicy.Validate("Abcdefg1"); len(v) != 0 {
		t.Fatalf("expected boundary password to be valid, got violations: %v", v)
	}
}

func TestPasswordPolicy_EachViolationReported(t *testing.T) {
	cases := map[string]struct {
		password string
		want     string
	}{
		"too short":    {"Ab1", "at least 8 characters"},
		"no uppercase": {"abcdefg1", "uppercase"},
		"no lowercase": {"ABCDEFG1", "lowercase"},
		"no digit":     {"Abcdefgh", "digit"},
	}

	for name, tc := range cases {
		violations := DefaultPasswordPolicy.Validate(tc.password)
		if len(violations) == 0 {
			t.Errorf("%s: expected violations for %q", name, tc.password)
			continue
		}
		if !strings.Contains(strings.Join(violations, "; "), tc.want) {
			t.Errorf("%s: violations %v do not name %q", name, violations, tc.want)
		}
	}
}

func TestPasswordPolicy_StrictRequiresSymbol(t *testing.T) {
	violations := StrictPasswordPolicy.Validate("Abcdefghijk1")
	if len(violations) != 1 || !strings.Contains(violations[0], "symbol") {
		t.Fatalf("expected single symbol violation, got %v", violations)
	}

	if v := StrictPasswordPolicy.Validate("Abcdefghijk1!"); len(v) != 0 {
		t.Fatalf("expected strict password to be valid, got %v", v)
	}
}

func TestPasswordPolicy_Check(t *testing.T) {
	if err := DefaultPasswordPolicy.Check("Abcdefg1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := DefaultPasswordPolicy.Check("short")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestGeneratePassword_LengthAndCharset(t *testing.T) {
	pw, err := GeneratePassword(24)
	if err != nil {
		t.Fatalf("GeneratePassword error: %v", err)
	}
	if len(pw) != 24 {
		t.Fatalf("password length = %d, want 24", len(pw))
	}
	for _, c := range pw {
		if !strings.ContainsRune(passwordCharset, c) {
			t.Fatalf("character %q not in charset", c)
		}
	}
}

func TestGeneratePassword_DefaultLengthAndRandomness(t *testing.T) {
	p1, err := GeneratePassword(0)
	if err != nil {
		t.Fatalf("GeneratePassword error: %v", err)
	}
	if len(p1) != DefaultPasswordLength {
		t.Fatalf("password length = %d, want %d", len(p1), DefaultPasswordLength)
	}

	p2, err := GeneratePassword(0)
	if err != nil {
		t.Fatalf("GeneratePassword error: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("expected generated passwords to differ")
	}
}
