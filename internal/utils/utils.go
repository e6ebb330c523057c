// Package utils contains shared constants and helper functions used across the repotree tool.
package utils

import (
	"path/filepath"
	"strings"
)

// File and directory names the tool relies on.
const (
	// GitIgnoreFileName is the name of the ignore-pattern file read from the project root.
	GitIgnoreFileName = ".gitignore"
	// GitDirectoryName is the name of the Git metadata directory, always excluded from rendering.
	GitDirectoryName = ".git"
	// DefaultOutputRelativePath is where the rendered document is written, relative to the project root.
	DefaultOutputRelativePath = "Docs/Project_Structure/repository_tree.md"
	// ConfigFileName is the name of the optional application configuration file.
	ConfigFileName = ".repotree.yaml"
	// GlobalConfigDirectoryName is the directory under the user home that holds the global configuration file.
	GlobalConfigDirectoryName = ".repotree"
)

const patternDirectorySuffix = "/"

// ShouldIgnoreName reports whether a bare entry name matches any ignore pattern.
// One trailing path separator is stripped from each pattern before matching, so a
// pattern written as "build/" excludes entries named "build" exactly like the bare
// form. Matching uses shell-glob semantics against the leaf name only; a matching
// pattern excludes the name at every depth of the tree.
func ShouldIgnoreName(entryName string, ignorePatterns []string) bool {
	for _, patternValue := range ignorePatterns {
		trimmedPattern := strings.TrimSuffix(patternValue, patternDirectorySuffix)
		isMatched, matchError := filepath.Match(trimmedPattern, entryName)
		if matchError == nil && isMatched {
			return true
		}
	}
	return false
}
