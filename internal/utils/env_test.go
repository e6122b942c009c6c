package utils

import (
	"os"
	"testing"
)

func TestSafeEnv(t *testing.T) {
	const key = "_TRYON_TEST_SAFEENV"
	os.Unsetenv(key)
	if got := SafeEnv(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	os.Setenv(key, "value")
	defer os.Unsetenv(key)
	if got := SafeEnv(key, "fallback"); got != "value" {
		t.Fatalf("expected 'value', got %q", got)
	}
}

func TestSafeEnvInt(t *testing.T) {
	const key = "_TRYON_TEST_SAFEENVINT"
	os.Unsetenv(key)
	if got := SafeEnvInt(key, 1000); got != 1000 {
		t.Fatalf("expected fallback 1000, got %d", got)
	}
	os.Setenv(key, "250")
	defer os.Unsetenv(key)
	if got := SafeEnvInt(key, 1000); got != 250 {
		t.Fatalf("expected 250, got %d", got)
	}
	os.Setenv(key, "not-a-number")
	if got := SafeEnvInt(key, 1000); got != 1000 {
		t.Fatalf("expected fallback on parse failure, got %d", got)
	}
}

func TestSafeEnvFloat(t *testing.T) {
	const key = "_TRYON_TEST_SAFEENVFLOAT"
	os.Unsetenv(key)
	if got := SafeEnvFloat(key, 0.03); got != 0.03 {
		t.Fatalf("expected fallback 0.03, got %v", got)
	}
	os.Setenv(key, "0.05")
	defer os.Unsetenv(key)
	if got := SafeEnvFloat(key, 0.03); got != 0.05 {
		t.Fatalf("expected 0.05, got %v", got)
	}
	os.Setenv(key, "nope")
	if got := SafeEnvFloat(key, 0.03); got != 0.03 {
		t.Fatalf("expected fallback on parse failure, got %v", got)
	}
}
