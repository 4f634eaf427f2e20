package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ithinkicancode/golem-todo-list/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "golem-todo-list",
		Short: "Golem todo list API server",
		Long:  `An in-memory todo collection with validated inputs, combined filtering, ranking, and bounded top-N search, exposed over HTTP.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
