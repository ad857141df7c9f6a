package testing

import (
	"os"
	"testing"
)

// Unit returns true if running in unit test mode.
// Unit tests should be fast and must not depend on cross-process file
// locking behavior. This is determined by checking if the -short flag is set
// or if LOGSWAP_UNIT_TESTS_ONLY environment variable is set.
func Unit() bool {
	if os.Getenv("LOGSWAP_UNIT_TESTS_ONLY") == "true" {
		return true
	}
	if os.Getenv("LOGSWAP_RUN_INTEGRATION_TESTS") == "true" {
		return false
	}
	if os.Getenv("LOGSWAP_RUN_INTEGRATION_TESTS") == "false" {
		return true
	}
	if testing.Short() {
		return true
	}
	return true
}

// Integration returns true if running in integration test mode.
func Integration() bool {
	return !Unit()
}

// SkipIfUnit skips the test if running in unit test mode.
func SkipIfUnit(t *testing.T, message ...string) {
	if Unit() {
		msg := "Skipping integration test in unit mode"
		if len(message) > 0 {
			msg = message[0]
		}
		t.Skip(msg)
	}
}

// SkipIfIntegration skips the test if running in integration test mode.
func SkipIfIntegration(t *testing.T, message ...string) {
	if Integration() {
		msg := "Skipping unit-only test in integration mode"
		if len(message) > 0 {
			msg = message[0]
		}
		t.Skip(msg)
	}
}
