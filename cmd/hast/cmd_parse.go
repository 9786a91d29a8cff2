package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/hast/format"
	"github.com/dhamidi/hast/html"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an HTML file and dump the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if ext := filepath.Ext(filename); ext != ".html" && ext != ".htm" {
				return fmt.Errorf("unsupported file extension: %s (expected .html or .htm)", ext)
			}

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read html file: %w", err)
			}

			doc, err := html.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse %s: %w", filename, err)
			}

			switch outputFormat {
			case "tree":
				fmt.Print(doc.String())
			case "json":
				enc := format.NewJSONEncoder(os.Stdout)
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "html":
				enc := format.NewHTMLEncoder(os.Stdout)
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("encode html: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json, html)")

	return cmd
}
