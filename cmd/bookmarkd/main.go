package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adwaithaSV/bookmark-backend/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "bookmarkd",
		Short:   "A personal bookmark management backend",
		Long:    "Bookmarkd — token-authenticated, per-user bookmark storage with search and pagination.",
		Version: build.Version,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
