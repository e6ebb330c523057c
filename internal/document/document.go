// Package document assembles the fenced Markdown document and writes it to disk.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	codeFenceLine   = "```"
	directorySuffix = "/"
	lineBreak       = "\n"

	outputFileMode      os.FileMode = 0o644
	outputDirectoryMode os.FileMode = 0o755
)

// Assemble wraps the rendered tree body in a fenced code block headed by the
// root directory's name with a trailing separator.
func Assemble(rootName string, treeBody string) string {
	var builder strings.Builder
	builder.WriteString(codeFenceLine + lineBreak)
	builder.WriteString(rootName + directorySuffix + lineBreak)
	builder.WriteString(treeBody)
	builder.WriteString(codeFenceLine + lineBreak)
	return builder.String()
}

// Write stores the assembled document at outputPath, creating missing parent
// directories. Any prior content at outputPath is replaced.
func Write(outputPath string, content string) error {
	if mkdirError := os.MkdirAll(filepath.Dir(outputPath), outputDirectoryMode); mkdirError != nil {
		return fmt.Errorf("creating output directory for %s: %w", outputPath, mkdirError)
	}
	if writeError := os.WriteFile(outputPath, []byte(content), outputFileMode); writeError != nil {
		return fmt.Errorf("writing %s: %w", outputPath, writeError)
	}
	return nil
}
