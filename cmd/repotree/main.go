package main

import (
	"fmt"

	"github.com/repotree/repotree/internal/cli"
	"github.com/repotree/repotree/internal/utils"
)

// main is the entry point for the repotree command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal("repotree failed: " + applicationExecutionError.Error())
	}
}
