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

	"github.com/jeremyhahn/go-secretshare/pkg/secretsharing"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintSplitResult prints the outcome of a split: the share group and the
// files the shares were written to.
func (p *Printer) PrintSplitResult(shares []*secretsharing.Share, files []string) error {
	switch p.format {
	case OutputFormatJSON:
		entries := make([]map[string]interface{}, len(shares))
		for i, share := range shares {
			entries[i] = map[string]interface{}{
				"index": share.Index,
				"file":  files[i],
			}
		}
		return p.printJSON(map[string]interface{}{
			"group_id":  shares[0].GroupID,
			"threshold": shares[0].Threshold,
			"total":     shares[0].Total,
			"shares":    entries,
		})
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Split secret into %d shares (threshold %d), group %s\n",
			shares[0].Total, shares[0].Threshold, shares[0].GroupID)
		for i, file := range files {
			fmt.Fprintf(p.writer, "  share %d: %s\n", shares[i].Index, file)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintCombineResult prints where the reconstructed secret went.
func (p *Printer) PrintCombineResult(size int, dest string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"size":        size,
			"destination": dest,
		})
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Reconstructed %d byte secret to %s\n", size, dest)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"error": err.Error(),
		})
	default:
		fmt.Fprintf(p.writer, "Error: %v\n", err)
		return nil
	}
}

// printJSON prints data as indented JSON
func (p *Printer) printJSON(data interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
