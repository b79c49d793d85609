// ABOUTME: Normalize command for feed text that was fetched elsewhere
// ABOUTME: Reads a file or stdin and prints the same JSON as the root command

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdichev/forest/internal/config"
	"github.com/jdichev/forest/internal/fetchfeed"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize feed XML from a file or stdin",
	Long: `Normalize an RSS or Atom document that is already on disk.

Reads the file argument, or stdin when the argument is "-" or omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := "-"
		if len(args) == 1 {
			source = args[0]
		}

		raw, err := readSource(cmd, source)
		if err != nil {
			return err
		}

		out, err := fetchfeed.FromText(raw)
		if err != nil {
			return reportFailure(cmd, err, "source", source)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func readSource(cmd *cobra.Command, source string) ([]byte, error) {
	var r io.Reader = cmd.InOrStdin()
	if source != "-" {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", source, err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, config.MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	if int64(len(data)) > config.MaxResponseSize {
		return nil, fmt.Errorf("input too large (exceeds %d bytes)", config.MaxResponseSize)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
