package core

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Getwd tries to find the project root (the directory holding go.mod).
// go-test changes the working directory to the test package being run during tests,
// so walking up is the only reliable way to locate config assets.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	currDir := wd
	for {
		if _, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}

// SimulateQueryDelay pauses for the configured read latency. No-op in test mode.
func SimulateQueryDelay() {
	simulateDelay(Conf.GetDuration("queryDelay"))
}

// SimulateMutationDelay pauses for the configured write latency. No-op in test mode.
func SimulateMutationDelay() {
	simulateDelay(Conf.GetDuration("mutationDelay"))
}

func simulateDelay(max time.Duration) {
	if max <= 0 || Conf.GetBool("testMode") {
		return
	}
	// anywhere between half the budget and the full budget, like a real network
	min := max / 2
	time.Sleep(min + time.Duration(rand.Int63n(int64(max-min)+1)))
}
