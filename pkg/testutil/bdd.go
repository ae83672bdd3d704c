package testutil

import "testing"

// Given, When, Then and And nest scenario steps as subtests so `go test -v`
// prints them as a readable scenario.
func Given(t *testing.T, precondition string, step func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+precondition, step)
}

func When(t *testing.T, action string, step func(t *testing.T)) {
	t.Helper()
	t.Run("When "+action, step)
}

func Then(t *testing.T, outcome string, step func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+outcome, step)
}

// And continues the preceding Then.
func And(t *testing.T, outcome string, step func(t *testing.T)) {
	t.Helper()
	t.Run("And "+outcome, step)
}
