package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtarnawa/keyack/internal/clipboard"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the clipboard is available",
	Long: `Probes the system clipboard so operators can tell ahead of time whether
the copy shortcut will work. The gate itself treats a missing clipboard as
non-fatal; the displayed key stays selectable either way.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := clipboard.System().WriteText("keyack clipboard check"); err != nil {
			fmt.Fprintf(os.Stderr, "clipboard unavailable: %v\n", err)
			fmt.Println("Copy shortcut will be a no-op; manual selection still works.")
			os.Exit(1)
		}
		fmt.Println("Clipboard OK.")
	},
}
