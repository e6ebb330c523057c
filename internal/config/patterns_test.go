package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/repotree/repotree/internal/utils"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// TestLoadIgnorePatternsMissingFile verifies that a missing ignore file yields only the built-in pattern.
func TestLoadIgnorePatternsMissingFile(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()

	patternList := LoadIgnorePatterns(rootDirectory, zap.NewNop())

	expectedPatterns := []string{utils.GitDirectoryName}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}

// TestLoadIgnorePatternsFileOrder verifies that the built-in pattern comes first and
// file-derived patterns keep their file order, including duplicates.
func TestLoadIgnorePatternsFileOrder(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	ignoreFileContent := "*.log\nbuild/\n*.log\n"
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.GitIgnoreFileName), ignoreFileContent)

	patternList := LoadIgnorePatterns(rootDirectory, zap.NewNop())

	expectedPatterns := []string{utils.GitDirectoryName, "*.log", "build/", "*.log"}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}

// TestLoadIgnorePatternsSkipsCommentsAndBlankLines verifies comment and blank-line handling.
func TestLoadIgnorePatternsSkipsCommentsAndBlankLines(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	ignoreFileContent := "# generated artifacts\n\n   \nnode_modules\n  dist/  \n# trailing comment\n"
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.GitIgnoreFileName), ignoreFileContent)

	patternList := LoadIgnorePatterns(rootDirectory, zap.NewNop())

	expectedPatterns := []string{utils.GitDirectoryName, "node_modules", "dist/"}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}

// TestLoadIgnorePatternsNilLogger verifies that the loader tolerates a nil logger.
func TestLoadIgnorePatternsNilLogger(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.GitIgnoreFileName), "vendor\n")

	patternList := LoadIgnorePatterns(rootDirectory, nil)

	expectedPatterns := []string{utils.GitDirectoryName, "vendor"}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}

// TestLoadIgnorePatternsUnreadableFile verifies degradation to the built-in pattern
// when the ignore file cannot be opened.
func TestLoadIgnorePatternsUnreadableFile(testingHandle *testing.T) {
	if os.Geteuid() == 0 {
		testingHandle.Skip("permission bits are not enforced for root")
	}

	rootDirectory := testingHandle.TempDir()
	ignoreFilePath := filepath.Join(rootDirectory, utils.GitIgnoreFileName)
	writeTestFile(testingHandle, ignoreFilePath, "secret\n")
	if chmodError := os.Chmod(ignoreFilePath, 0o000); chmodError != nil {
		testingHandle.Fatalf("failed to chmod ignore file: %v", chmodError)
	}
	defer func() {
		_ = os.Chmod(ignoreFilePath, 0o644)
	}()

	patternList := LoadIgnorePatterns(rootDirectory, zap.NewNop())

	expectedPatterns := []string{utils.GitDirectoryName}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}
