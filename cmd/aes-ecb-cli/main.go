// Package main is the entry point for the aes-ecb-cli application.
// It registers the key generation, ECB encryption and self test commands and executes the CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/aes-ecb/cmd/aes-ecb-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "aes-ecb-cli",
		Short: "AES-128/AES-256 ECB encryption CLI tool",
		Long: `aes-ecb-cli encrypts block aligned files with AES in ECB mode.

The block backend and driver strategy are chosen once per invocation, from the
build defaults, a YAML file (--config or CONFIG_PATH) or the flags below.
Backends: software, cpu, external, hardware.
Strategies: single-block, parallel (software, cpu, external), chunked, stream (hardware).`,
		SilenceUsage: true,
	}

	commands.RegisterDispatchFlags(rootCmd)

	if err := commands.InitECBCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize ECB commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
