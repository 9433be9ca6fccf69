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
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-secretshare/pkg/secretsharing"
)

var combineOut string

// combineCmd represents the combine command
var combineCmd = &cobra.Command{
	Use:   "combine <share-file>...",
	Short: "Reconstruct a secret from share files",
	Long: `Combine reads share files produced by split and reconstructs the
original secret. At least the threshold number of shares from the
same split must be provided.

Examples:
  # Reconstruct from three shares to a file
  secretshare combine shares/share-1.json shares/share-3.json shares/share-5.json --out master.key

  # Reconstruct to stdout
  secretshare combine shares/share-*.json`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()

		shares := make([]*secretsharing.Share, len(args))
		for i, path := range args {
			share, err := readShareFile(path)
			if err != nil {
				handleError(err)
			}
			shares[i] = share
			printVerbose("read share %d from %s", share.Index, path)
		}

		shamir, err := secretsharing.NewShamir(&secretsharing.ShareConfig{
			Threshold:   shares[0].Threshold,
			TotalShares: shares[0].Total,
		})
		if err != nil {
			handleError(err)
		}

		secret, err := shamir.Combine(shares)
		if err != nil {
			handleError(err)
		}

		if combineOut == "" {
			if _, err := os.Stdout.Write(secret); err != nil {
				handleError(err)
			}
			return
		}

		if err := os.WriteFile(combineOut, secret, 0600); err != nil {
			handleError(fmt.Errorf("failed to write secret: %w", err))
		}
		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		if err := printer.PrintCombineResult(len(secret), combineOut); err != nil {
			handleError(err)
		}
	},
}

func init() {
	combineCmd.Flags().StringVar(&combineOut, "out", "",
		"file to write the reconstructed secret to (default is stdout)")
}

// readShareFile loads and validates one JSON share file.
func readShareFile(path string) (*secretsharing.Share, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read share file: %w", err)
	}
	var share secretsharing.Share
	if err := json.Unmarshal(data, &share); err != nil {
		return nil, fmt.Errorf("failed to parse share file %s: %w", path, err)
	}
	if err := share.Validate(); err != nil {
		return nil, fmt.Errorf("invalid share in %s: %w", path, err)
	}
	return &share, nil
}
