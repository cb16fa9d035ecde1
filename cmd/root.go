package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mtarnawa/keyack/internal/app"
	"github.com/mtarnawa/keyack/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "keyack [recovery-key]",
	Short: "Acknowledgment gate for one-time recovery keys",
	Long: `keyack presents a recovery key that will never be shown again and makes
sure the user cannot dismiss it without either confirming they saved it or
taking an explicit, clearly destructive override.

The key is passed as the single argument or piped on stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		key, err := resolveKey(args)
		if err != nil {
			log.Fatalf("%v", err)
		}

		application := app.NewApplication(cfg, key)
		outcome, err := application.Run()
		if err != nil {
			log.Fatalf("Application error: %v", err)
		}

		if outcome.Released && !outcome.Confirmed {
			fmt.Fprintln(os.Stderr, "recovery key was discarded without confirmation")
		}
	},
}

// resolveKey takes the key from the argument or, when stdin is a pipe, from
// stdin. Generation happens upstream; keyack only presents.
func resolveKey(args []string) (string, error) {
	if len(args) == 1 {
		if args[0] == "" {
			return "", errors.New("recovery key must not be empty")
		}
		return args[0], nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no recovery key: pass it as an argument or pipe it on stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read recovery key from stdin: %w", err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", errors.New("recovery key on stdin is empty")
	}
	return key, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(checkCmd)
}
