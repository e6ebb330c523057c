package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestAssemble verifies the fenced document shape.
func TestAssemble(testingHandle *testing.T) {
	assembled := Assemble("project", "└── main.go\n")

	expected := "```\nproject/\n└── main.go\n```\n"
	if assembled != expected {
		testingHandle.Fatalf("unexpected document:\ngot:\n%q\nwant:\n%q", assembled, expected)
	}
}

// TestAssembleEmptyBody verifies that an empty tree body still yields a complete document.
func TestAssembleEmptyBody(testingHandle *testing.T) {
	assembled := Assemble("empty", "")

	expected := "```\nempty/\n```\n"
	if assembled != expected {
		testingHandle.Fatalf("unexpected document:\ngot:\n%q\nwant:\n%q", assembled, expected)
	}
}

// TestWriteCreatesParentDirectories verifies that missing intermediate directories are created.
func TestWriteCreatesParentDirectories(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	outputPath := filepath.Join(rootDirectory, "Docs", "Project_Structure", "repository_tree.md")

	if writeError := Write(outputPath, "document body\n"); writeError != nil {
		testingHandle.Fatalf("Write failed: %v", writeError)
	}

	written, readError := os.ReadFile(outputPath)
	if readError != nil {
		testingHandle.Fatalf("failed to read written document: %v", readError)
	}
	if string(written) != "document body\n" {
		testingHandle.Fatalf("unexpected written content: %q", string(written))
	}
}

// TestWriteOverwritesExistingContent verifies that prior content is fully replaced.
func TestWriteOverwritesExistingContent(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	outputPath := filepath.Join(rootDirectory, "tree.md")

	if writeError := Write(outputPath, strings.Repeat("long prior content\n", 10)); writeError != nil {
		testingHandle.Fatalf("first Write failed: %v", writeError)
	}
	if writeError := Write(outputPath, "short\n"); writeError != nil {
		testingHandle.Fatalf("second Write failed: %v", writeError)
	}

	written, readError := os.ReadFile(outputPath)
	if readError != nil {
		testingHandle.Fatalf("failed to read written document: %v", readError)
	}
	if string(written) != "short\n" {
		testingHandle.Fatalf("unexpected written content: %q", string(written))
	}
}

// TestWriteFailsWhenParentIsFile verifies that an impossible output path is a reported error.
func TestWriteFailsWhenParentIsFile(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	blockingFilePath := filepath.Join(rootDirectory, "blocked")
	if writeError := os.WriteFile(blockingFilePath, []byte("file\n"), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write blocking file: %v", writeError)
	}

	writeError := Write(filepath.Join(blockingFilePath, "tree.md"), "document\n")
	if writeError == nil {
		testingHandle.Fatalf("expected error when parent path is a file")
	}
}
