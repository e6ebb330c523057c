// Package config loads ignore patterns and the optional application configuration.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/repotree/repotree/internal/utils"
)

const (
	commentLinePrefix       = "#"
	warningIgnoreFileFormat = "Could not read %s: %v"
)

// LoadIgnorePatterns returns the ignore patterns for rootDirectory: the built-in
// Git metadata pattern followed by the non-comment, non-blank lines of the
// project's ignore file in file order. Duplicate lines are kept verbatim. A
// missing ignore file yields only the built-in pattern. A read failure is logged
// as a warning and degrades to the patterns parsed before the failure; the
// loader never returns an error.
//
// #nosec G304
func LoadIgnorePatterns(rootDirectory string, logger *zap.Logger) []string {
	ignorePatterns := []string{utils.GitDirectoryName}

	ignoreFilePath := filepath.Join(rootDirectory, utils.GitIgnoreFileName)
	fileHandle, openError := os.Open(ignoreFilePath)
	if openError != nil {
		if !os.IsNotExist(openError) {
			warnIgnoreFile(logger, openError)
		}
		return ignorePatterns
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil {
			warnIgnoreFile(logger, closeError)
		}
	}()

	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentLinePrefix) {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		warnIgnoreFile(logger, scanError)
	}

	return ignorePatterns
}

// warnIgnoreFile reports a recoverable ignore-file failure without aborting the run.
func warnIgnoreFile(logger *zap.Logger, failure error) {
	if logger == nil {
		return
	}
	logger.Warn(fmt.Sprintf(warningIgnoreFileFormat, utils.GitIgnoreFileName, failure))
}
