package validation

import "testing"

func TestAlphanumericSymbol(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"Plain Alphanumeric", "user123", true},
		{"Symbols", "ab!cd", true},
		{"All Listed Symbols", "a!@#$%^&*()_+-=z", true},
		{"Space Rejected", "user name", false},
		{"Japanese Rejected", "ユーザー", false},
		{"Empty Rejected", "", false},
		{"Question Mark Rejected", "user?", false},

		// The +-= run in the pattern is a character range (U+002B..U+003D).
		// These pass only because of that artifact; pinned on purpose so a
		// future pattern change is a deliberate decision.
		{"Range Artifact Comma", "a,b", true},
		{"Range Artifact Slash", "a/b", true},
		{"Range Artifact Semicolon", "a;b", true},
		{"Range Artifact Less-Than", "a<b", true},
		{"Above Range Rejected", "a>b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlphanumericSymbol(tt.value); got != tt.want {
				t.Errorf("AlphanumericSymbol(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestEmailFormat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"Simple", "jane@example.com", true},
		{"Plus Tag", "jane+admin@example.co.jp", true},
		{"Missing At", "jane.example.com", false},
		{"Missing TLD", "jane@example", false},
		{"Single Letter TLD", "jane@example.c", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmailFormat(tt.value); got != tt.want {
				t.Errorf("EmailFormat(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestErrorsFirst(t *testing.T) {
	errs := Errors{}
	errs.add("password", "パスワードは必須です。")
	errs.add("username", "ユーザー名は必須です。")

	// username comes first in field order regardless of insertion order
	if got := errs.First(); got != "ユーザー名は必須です。" {
		t.Errorf("First() = %q, want username message", got)
	}

	if got := (Errors{}).First(); got != "" {
		t.Errorf("First() on empty set = %q, want empty string", got)
	}
}
