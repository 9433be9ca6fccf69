// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-secretshare.
//
// go-secretshare is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-secretshare/pkg/secretsharing"
)

var (
	splitThreshold int
	splitShares    int
	splitIn        string
	splitOutDir    string
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a secret into threshold shares",
	Long: `Split reads a secret from a file or standard input, divides it into
N shares requiring M to reconstruct, and writes one JSON share file
per share into the output directory.

Examples:
  # 3-of-5 split of a key file
  secretshare split --threshold 3 --shares 5 --in master.key --out-dir ./shares

  # Split from stdin with defaults
  echo -n "hunter2" | secretshare split`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()

		threshold := cfg.Threshold
		if cmd.Flags().Changed("threshold") {
			threshold = splitThreshold
		}
		total := cfg.Shares
		if cmd.Flags().Changed("shares") {
			total = splitShares
		}
		outDir := cfg.OutDir
		if cmd.Flags().Changed("out-dir") {
			outDir = splitOutDir
		}

		secret, err := readSecret(splitIn)
		if err != nil {
			handleError(err)
		}
		printVerbose("read %d byte secret", len(secret))

		shamir, err := secretsharing.NewShamir(&secretsharing.ShareConfig{
			Threshold:   threshold,
			TotalShares: total,
		})
		if err != nil {
			handleError(err)
		}

		shares, err := shamir.Split(secret)
		if err != nil {
			handleError(err)
		}

		files, err := writeShareFiles(shares, outDir)
		if err != nil {
			handleError(err)
		}

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		if err := printer.PrintSplitResult(shares, files); err != nil {
			handleError(err)
		}
	},
}

func init() {
	splitCmd.Flags().IntVarP(&splitThreshold, "threshold", "t", 3,
		"minimum number of shares needed to reconstruct")
	splitCmd.Flags().IntVarP(&splitShares, "shares", "n", 5,
		"total number of shares to create")
	splitCmd.Flags().StringVar(&splitIn, "in", "",
		"file containing the secret (default is stdin)")
	splitCmd.Flags().StringVar(&splitOutDir, "out-dir", ".",
		"directory to write share files to")
}

// readSecret reads the secret from the given file, or stdin when no file
// was requested.
func readSecret(path string) ([]byte, error) {
	if path == "" {
		secret, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read secret from stdin: %w", err)
		}
		return secret, nil
	}
	secret, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret file: %w", err)
	}
	return secret, nil
}

// writeShareFiles writes one JSON file per share and returns the paths.
// Share files are created with owner-only permissions.
func writeShareFiles(shares []*secretsharing.Share, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files := make([]string, len(shares))
	for i, share := range shares {
		data, err := json.MarshalIndent(share, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode share %d: %w", share.Index, err)
		}

		path := filepath.Join(outDir, fmt.Sprintf("share-%d.json", share.Index))
		if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
			return nil, fmt.Errorf("failed to write share file %s: %w", path, err)
		}
		files[i] = path
		printVerbose("wrote %s", path)
	}
	return files, nil
}
