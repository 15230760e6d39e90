package test

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// getProjectRoot returns the project root directory based on this test file's location.
func getProjectRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	// Go up one level from test/ to project root
	return filepath.Dir(filepath.Dir(filename))
}

// collectTestFiles walks the repo for _test.go files, skipping the
// directories the Go toolchain skips.
func collectTestFiles(t *testing.T) []string {
	t.Helper()
	testFiles := []string{}

	err := filepath.Walk(getProjectRoot(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, "_test.go") {
			testFiles = append(testFiles, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk directory: %v", err)
	}
	return testFiles
}

// TestNoSkippedTests ensures no test files contain t.Skip() calls.
// Skipped tests hide failures - tests should either pass or fail, never skip.
func TestNoSkippedTests(t *testing.T) {
	forbiddenPatterns := []string{
		"t.Skip(",
		"t.SkipNow(",
		"testing.Short()",
	}

	violations := []string{}

	for _, testFile := range collectTestFiles(t) {
		// Skip this quality test file itself
		if strings.Contains(testFile, "quality_test.go") {
			continue
		}
		// Skip integration tests - they legitimately use t.Skip for optional external services
		if strings.Contains(testFile, "integration_test.go") {
			continue
		}

		f, err := os.Open(testFile)
		if err != nil {
			t.Fatalf("Failed to open %s: %v", testFile, err)
		}

		scanner := bufio.NewScanner(f)
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := scanner.Text()

			// Skip comments
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "//") {
				continue
			}

			for _, pattern := range forbiddenPatterns {
				if strings.Contains(line, pattern) {
					violations = append(violations,
						fmt.Sprintf("%s:%d: contains forbidden pattern %q", testFile, lineNum, pattern))
				}
			}
		}
		f.Close()

		if err := scanner.Err(); err != nil {
			t.Fatalf("Error scanning %s: %v", testFile, err)
		}
	}

	if len(violations) > 0 {
		t.Errorf("Found %d test skip violation(s):\n", len(violations))
		for _, v := range violations {
			t.Errorf("  %s", v)
		}
		t.Error("\nTests should not be skipped. Either:")
		t.Error("  1. Fix the issue causing the skip")
		t.Error("  2. Use t.Fatalf() if a required resource is missing")
		t.Error("  3. Remove the test if it's no longer relevant")
	}
}

// TestTestDiscovery ensures the walk actually finds the package tests, so a
// broken exclusion list cannot silently turn the other checks into no-ops.
func TestTestDiscovery(t *testing.T) {
	testFiles := collectTestFiles(t)

	if len(testFiles) == 0 {
		t.Fatal("No test files found - something is wrong with test discovery")
	}

	// Every package with behavior should show up.
	wantDirs := []string{"dateparse", "hebcal", "config", "query", "output", "commands"}
	for _, dir := range wantDirs {
		found := false
		for _, f := range testFiles {
			if strings.Contains(f, string(filepath.Separator)+dir+string(filepath.Separator)) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("No test files found under a %q directory", dir)
		}
	}

	t.Logf("Found %d test files", len(testFiles))
}
