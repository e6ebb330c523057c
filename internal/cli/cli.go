// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/repotree/repotree/internal/config"
	"github.com/repotree/repotree/internal/document"
	"github.com/repotree/repotree/internal/hook"
	"github.com/repotree/repotree/internal/services/clipboard"
	"github.com/repotree/repotree/internal/tree"
	"github.com/repotree/repotree/internal/utils"
)

const (
	rootUse              = "repotree"
	rootShortDescription = "repotree command line interface"
	rootLongDescription  = `repotree documents a project's directory layout.
It renders the file tree into a fenced Markdown document, honoring the project's
ignore patterns, and can install a Git pre-commit hook that keeps the document
current on every commit.`

	versionFlagName        = "version"
	versionFlagDescription = "display application version"
	versionTemplate        = "repotree version: %s\n"

	rootFlagName        = "root"
	rootFlagDescription = "project root directory (default: two levels above the executable)"

	generateUse              = "generate"
	generateAlias            = "g"
	generateShortDescription = "generate the tree document (" + generateAlias + ")"
	generateLongDescription  = `Render the project's directory tree and write it as a fenced Markdown document.
The project's ignore patterns are honored; the Git metadata directory is always excluded.`
	generateUsageExample = `  # Generate using automatic root detection
  repotree generate

  # Generate for an explicit root and copy the document to the clipboard
  repotree generate --root /path/to/project --copy`

	outputFlagName        = "output"
	outputFlagDescription = "output path relative to the project root"
	copyFlagName          = "copy"
	copyFlagDescription   = "copy the generated document to the system clipboard"

	installHookUse              = "install-hook"
	installHookAlias            = "ih"
	installHookShortDescription = "install the Git pre-commit hook (" + installHookAlias + ")"
	installHookLongDescription  = `Write an executable pre-commit hook into the repository's hooks directory.
The hook regenerates the tree document and stages it on every commit.`
	installHookUsageExample = `  # Install the hook for the detected project root
  repotree install-hook

  # Install the hook for an explicit root
  repotree install-hook --root /path/to/project`

	infoProjectRootFormat  = "Project root detected at: %s"
	infoPatternCountFormat = "Loaded %d ignore patterns from %s (including defaults)"
	successGenerateFormat  = "Tree generated successfully at: %s"
	successHookFormat      = "Hook installed at: %s"
	infoHookFollowup       = "The tree document will now refresh on every commit"
	warningClipboardFormat = "Failed to copy document to clipboard: %v"

	errorResolveExecutableFormat = "resolve executable location: %w"
	errorResolveRootFormat       = "resolve project root %s: %w"
	errorRootNotDirectoryFormat  = "project root %s is not a directory"
	errorWriteDocumentFormat     = "Failed to write file: %w"
)

// generateOptions stores flag values for the generate command.
type generateOptions struct {
	rootOverride    string
	outputOverride  string
	copyToClipboard bool
}

// installHookOptions stores flag values for the install-hook command.
type installHookOptions struct {
	rootOverride string
}

// Execute runs the repotree application.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(logger)
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(logger *zap.Logger) *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(
		createGenerateCommand(logger),
		createInstallHookCommand(logger),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createGenerateCommand returns the generate subcommand.
func createGenerateCommand(logger *zap.Logger) *cobra.Command {
	var options generateOptions

	generateCommand := &cobra.Command{
		Use:     generateUse,
		Aliases: []string{generateAlias},
		Short:   generateShortDescription,
		Long:    generateLongDescription,
		Example: generateUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runGenerate(logger, options, clipboard.NewSystemClipboard())
		},
	}

	generateCommand.Flags().StringVar(&options.rootOverride, rootFlagName, "", rootFlagDescription)
	generateCommand.Flags().StringVar(&options.outputOverride, outputFlagName, "", outputFlagDescription)
	generateCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	return generateCommand
}

// createInstallHookCommand returns the install-hook subcommand.
func createInstallHookCommand(logger *zap.Logger) *cobra.Command {
	var options installHookOptions

	installHookCommand := &cobra.Command{
		Use:     installHookUse,
		Aliases: []string{installHookAlias},
		Short:   installHookShortDescription,
		Long:    installHookLongDescription,
		Example: installHookUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runInstallHook(logger, options)
		},
	}

	installHookCommand.Flags().StringVar(&options.rootOverride, rootFlagName, "", rootFlagDescription)
	return installHookCommand
}

// runGenerate executes the generation pipeline: resolve the root, load ignore
// patterns, render the tree, assemble the fenced document, and write it out.
func runGenerate(logger *zap.Logger, options generateOptions, copier clipboard.Copier) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
	if configurationError != nil {
		return configurationError
	}

	rootDirectory, rootError := resolveProjectRoot(options.rootOverride, applicationConfiguration.Generate.Root)
	if rootError != nil {
		return rootError
	}
	logger.Info(fmt.Sprintf(infoProjectRootFormat, rootDirectory))

	ignorePatterns := config.LoadIgnorePatterns(rootDirectory, logger)
	logger.Info(fmt.Sprintf(infoPatternCountFormat, len(ignorePatterns), utils.GitIgnoreFileName))

	treeBody := tree.Render(rootDirectory, ignorePatterns)
	renderedDocument := document.Assemble(filepath.Base(rootDirectory), treeBody)

	outputRelativePath := firstNonEmpty(options.outputOverride, applicationConfiguration.Generate.Output, utils.DefaultOutputRelativePath)
	outputPath := filepath.Join(rootDirectory, outputRelativePath)
	if writeError := document.Write(outputPath, renderedDocument); writeError != nil {
		return fmt.Errorf(errorWriteDocumentFormat, writeError)
	}

	copyRequested := options.copyToClipboard ||
		(applicationConfiguration.Generate.Clipboard != nil && *applicationConfiguration.Generate.Clipboard)
	if copyRequested && copier != nil {
		if copyError := copier.Copy(renderedDocument); copyError != nil {
			logger.Warn(fmt.Sprintf(warningClipboardFormat, copyError))
		}
	}

	logger.Info(fmt.Sprintf(successGenerateFormat, outputPath))
	return nil
}

// runInstallHook installs the pre-commit hook for the resolved project root.
func runInstallHook(logger *zap.Logger, options installHookOptions) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
	if configurationError != nil {
		return configurationError
	}

	rootDirectory, rootError := resolveProjectRoot(options.rootOverride, applicationConfiguration.Hook.Root)
	if rootError != nil {
		return rootError
	}

	outputRelativePath := firstNonEmpty(applicationConfiguration.Generate.Output, utils.DefaultOutputRelativePath)
	hookFilePath, installError := hook.Install(rootDirectory, outputRelativePath)
	if installError != nil {
		return installError
	}

	logger.Info(fmt.Sprintf(successHookFormat, hookFilePath))
	logger.Info(infoHookFollowup)
	return nil
}

// resolveProjectRoot picks the project root from the flag override, then the
// configured value, then two directory levels above the running executable.
func resolveProjectRoot(flagValue string, configuredValue string) (string, error) {
	candidate := firstNonEmpty(flagValue, configuredValue)
	if candidate != "" {
		absolutePath, absoluteError := filepath.Abs(candidate)
		if absoluteError != nil {
			return "", fmt.Errorf(errorResolveRootFormat, candidate, absoluteError)
		}
		directoryInformation, statError := os.Stat(absolutePath)
		if statError != nil {
			return "", fmt.Errorf(errorResolveRootFormat, absolutePath, statError)
		}
		if !directoryInformation.IsDir() {
			return "", fmt.Errorf(errorRootNotDirectoryFormat, absolutePath)
		}
		return absolutePath, nil
	}

	executablePath, executableError := os.Executable()
	if executableError != nil {
		return "", fmt.Errorf(errorResolveExecutableFormat, executableError)
	}
	resolvedExecutablePath, symlinkError := filepath.EvalSymlinks(executablePath)
	if symlinkError != nil {
		resolvedExecutablePath = executablePath
	}
	return filepath.Dir(filepath.Dir(resolvedExecutablePath)), nil
}

// firstNonEmpty returns the first non-empty value, or the empty string.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
