package utils

import "testing"

func TestEnvStringDefault(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", "")
	if got := EnvString("TEST_ENV_STRING", "fallback"); got != "fallback" {
		t.Fatalf("EnvString: want=%q got=%q", "fallback", got)
	}
}

func TestEnvStringSet(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", "  value  ")
	if got := EnvString("TEST_ENV_STRING", "fallback"); got != "value" {
		t.Fatalf("EnvString: want=%q got=%q", "value", got)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "9000")
	if got := EnvInt("TEST_ENV_INT", 1); got != 9000 {
		t.Fatalf("EnvInt: want=%d got=%d", 9000, got)
	}
}

func TestEnvIntInvalid(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "not-a-number")
	if got := EnvInt("TEST_ENV_INT", 7); got != 7 {
		t.Fatalf("EnvInt: want=%d got=%d", 7, got)
	}
}
