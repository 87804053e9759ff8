package util

import (
	"encoding/base64"
	"testing"
	"time"
)

func TestGenerateOpaqueToken(t *testing.T) {
	t.Parallel()

	token, err := GenerateOpaqueToken()
	if err != nil {
		t.Fatalf("GenerateOpaqueToken() error = %v", err)
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("token is not base64url: %v", err)
	}
	if len(raw) != OpaqueTokenBytes {
		t.Fatalf("decoded token has %d bytes, want %d", len(raw), OpaqueTokenBytes)
	}

	other, err := GenerateOpaqueToken()
	if err != nil {
		t.Fatalf("GenerateOpaqueToken() error = %v", err)
	}
	if token == other {
		t.Fatal("two tokens are equal")
	}
}

func TestHashOpaqueToken(t *testing.T) {
	t.Parallel()

	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashOpaqueToken("abc"); got != want {
		t.Fatalf("HashOpaqueToken(abc) = %s, want %s", got, want)
	}
}

func TestAppendQueryParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		expected string
	}{
		{name: "no query", base: "https://app.example.com/reset", expected: "https://app.example.com/reset?token=a-b_c"},
		{name: "existing query", base: "https://app.example.com/reset?lang=en", expected: "https://app.example.com/reset?lang=en&token=a-b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := AppendQueryParam(tt.base, "token", "a-b_c")
			if err != nil {
				t.Fatalf("AppendQueryParam() error = %v", err)
			}
			if got != tt.expected {
				t.Fatalf("AppendQueryParam() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email    string
		expected string
	}{
		{email: "jane@example.com", expected: "j***@example.com"},
		{email: "not-an-email", expected: "***"},
		{email: "@example.com", expected: "***"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()

			if got := MaskEmail(tt.email); got != tt.expected {
				t.Fatalf("MaskEmail(%s) = %s, want %s", tt.email, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
