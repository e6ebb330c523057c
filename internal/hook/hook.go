// Package hook installs the Git pre-commit hook that regenerates the tree document.
package hook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/repotree/repotree/internal/utils"
)

const (
	hooksDirectoryName = "hooks"
	preCommitHookName  = "pre-commit"

	// hookScriptFormat expands to the generator command and the output path to stage.
	hookScriptFormat = "#!/bin/sh\n" +
		"echo '[HOOK] Automatically updating project structure...'\n" +
		"\n" +
		"# Regenerate the tree document\n" +
		"%s generate --root .\n" +
		"\n" +
		"# Stage the generated file so it joins the commit\n" +
		"git add %s\n"

	// defaultGeneratorCommand is used when the running executable cannot be resolved.
	defaultGeneratorCommand = "repotree"

	executableFileMode os.FileMode = 0o755

	errorHooksDirectoryMissingFormat = "could not find %s folder in %s: make sure it is an initialized Git repository"
	errorWriteHookFormat             = "writing hook %s: %w"
	errorChmodHookFormat             = "marking hook %s executable: %w"
)

// Install writes an executable pre-commit hook into the hooks directory of the
// repository rooted at rootDirectory. The hook re-invokes the generator and
// stages outputRelativePath on every commit. Install returns the hook file path,
// or an error without side effects when the hooks directory is absent.
func Install(rootDirectory string, outputRelativePath string) (string, error) {
	hooksDirectoryPath := filepath.Join(rootDirectory, utils.GitDirectoryName, hooksDirectoryName)
	directoryInformation, statError := os.Stat(hooksDirectoryPath)
	if statError != nil || !directoryInformation.IsDir() {
		return "", fmt.Errorf(errorHooksDirectoryMissingFormat, utils.GitDirectoryName, rootDirectory)
	}

	hookFilePath := filepath.Join(hooksDirectoryPath, preCommitHookName)
	hookScript := fmt.Sprintf(hookScriptFormat, generatorCommand(), filepath.ToSlash(outputRelativePath))
	if writeError := os.WriteFile(hookFilePath, []byte(hookScript), executableFileMode); writeError != nil {
		return "", fmt.Errorf(errorWriteHookFormat, hookFilePath, writeError)
	}
	if chmodError := os.Chmod(hookFilePath, executableFileMode); chmodError != nil {
		return "", fmt.Errorf(errorChmodHookFormat, hookFilePath, chmodError)
	}

	return hookFilePath, nil
}

// generatorCommand resolves the command the hook uses to re-run the generator,
// preferring the installer's own executable path.
func generatorCommand() string {
	executablePath, executableError := os.Executable()
	if executableError != nil {
		return defaultGeneratorCommand
	}
	return executablePath
}
