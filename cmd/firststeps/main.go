package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firststeps/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "firststeps",
		Short:   "A starter web API backed by MongoDB",
		Long:    "first-steps is a starter web API with users, GridFS file storage, and interactive docs.",
		Version: fmt.Sprintf("%s (commit %s, branch %s)", build.Version, build.Commit, build.Branch),
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newEnsureIndexesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
