// Package tree renders a directory hierarchy as a connector-drawn text tree.
package tree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/repotree/repotree/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
	treeSeparatorMarker = "│"
	directorySuffix     = "/"
	lineBreak           = "\n"
)

// Render produces the tree body for rootDirectory. Entries whose leaf name
// matches an ignore pattern are omitted at every depth; the root itself is never
// filtered. A directory that cannot be listed renders as empty. The walk follows
// symlinked directories without a cycle guard.
func Render(rootDirectory string, ignorePatterns []string) string {
	return renderDirectory(rootDirectory, ignorePatterns, "")
}

// renderDirectory returns the rendered block for one directory: its filtered,
// sorted children in pre-order, with a separator line after every non-last
// directory child whose block is non-empty.
func renderDirectory(directoryPath string, ignorePatterns []string, prefix string) string {
	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		return ""
	}

	filteredNames := make([]string, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if utils.ShouldIgnoreName(directoryEntry.Name(), ignorePatterns) {
			continue
		}
		filteredNames = append(filteredNames, directoryEntry.Name())
	}
	sortNamesCaseInsensitive(filteredNames)

	var builder strings.Builder
	for entryIndex, entryName := range filteredNames {
		isLastEntry := entryIndex == len(filteredNames)-1
		entryPath := filepath.Join(directoryPath, entryName)
		entryIsDirectory := isDirectory(entryPath)

		connector := treeBranchConnector
		if isLastEntry {
			connector = treeLastConnector
		}
		displayName := entryName
		if entryIsDirectory {
			displayName += directorySuffix
		}
		builder.WriteString(prefix + connector + displayName + lineBreak)

		if entryIsDirectory {
			childPrefix := prefix + treeBranchPadding
			if isLastEntry {
				childPrefix = prefix + treeLastPadding
			}
			childBlock := renderDirectory(entryPath, ignorePatterns, childPrefix)
			builder.WriteString(childBlock)
			if !isLastEntry && childBlock != "" {
				builder.WriteString(prefix + treeSeparatorMarker + lineBreak)
			}
		}
	}

	return builder.String()
}

// isDirectory follows symlinks, so a link to a directory renders as a directory.
func isDirectory(entryPath string) bool {
	fileInformation, statError := os.Stat(entryPath)
	return statError == nil && fileInformation.IsDir()
}

// sortNamesCaseInsensitive orders names case-insensitively and locale-independently.
// Byte order breaks ties so repeated runs over an unchanged tree render identically.
func sortNamesCaseInsensitive(names []string) {
	sort.Slice(names, func(firstIndex, secondIndex int) bool {
		firstLowered := strings.ToLower(names[firstIndex])
		secondLowered := strings.ToLower(names[secondIndex])
		if firstLowered == secondLowered {
			return names[firstIndex] < names[secondIndex]
		}
		return firstLowered < secondLowered
	})
}
