package main

import (
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("SCRYFALL_TEST_VAR", "custom")
	defer os.Unsetenv("SCRYFALL_TEST_VAR")

	if got := getEnv("SCRYFALL_TEST_VAR", "default"); got != "custom" {
		t.Errorf("getEnv = %q, want custom", got)
	}
	if got := getEnv("SCRYFALL_TEST_UNSET", "default"); got != "default" {
		t.Errorf("getEnv = %q, want default", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	os.Setenv("SCRYFALL_TEST_INT", "500")
	defer os.Unsetenv("SCRYFALL_TEST_INT")

	if got := getEnvInt("SCRYFALL_TEST_INT", 100); got != 500 {
		t.Errorf("getEnvInt = %d, want 500", got)
	}
	if got := getEnvInt("SCRYFALL_TEST_INT_UNSET", 100); got != 100 {
		t.Errorf("getEnvInt = %d, want default 100", got)
	}

	os.Setenv("SCRYFALL_TEST_INT", "not-a-number")
	if got := getEnvInt("SCRYFALL_TEST_INT", 100); got != 100 {
		t.Errorf("getEnvInt = %d, want default on parse failure", got)
	}

	os.Setenv("SCRYFALL_TEST_INT", "-3")
	if got := getEnvInt("SCRYFALL_TEST_INT", 100); got != 100 {
		t.Errorf("getEnvInt = %d, want default on non-positive value", got)
	}
}
