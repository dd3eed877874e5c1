// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/zotero-helper/internal/doi"
	"github.com/pdiddy/zotero-helper/internal/ris"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import items via the connector endpoint",
}

var importRISCmd = &cobra.Command{
	Use:   "ris FILE",
	Short: "Import a RIS file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading RIS file: %w", err)
		}
		return importRIS(cmd.Context(), string(data))
	},
}

var importDOICmd = &cobra.Command{
	Use:   "doi DOI",
	Short: "Fetch citation data for a DOI and import it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := doi.Normalize(args[0])
		if !doi.Valid(d) {
			return fmt.Errorf("not a DOI: %q", args[0])
		}

		risText, err := doi.FetchRIS(cmd.Context(), httpClient(), d, cfg.Zotero.UserAgent)
		if err != nil {
			return err
		}
		fmt.Printf("Fetched RIS for DOI %s\n", d)
		return importRIS(cmd.Context(), risText)
	},
}

var importMetaCmd = &cobra.Command{
	Use:   "meta --title TITLE",
	Short: "Generate a RIS record from metadata flags and import it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		title, _ := flags.GetString("title")
		authors, _ := flags.GetString("authors")
		year, _ := flags.GetString("year")
		journal, _ := flags.GetString("journal")
		d, _ := flags.GetString("doi")
		itemType, _ := flags.GetString("type")

		r := ris.Record{
			Type:    itemType,
			Title:   title,
			Authors: ris.SplitAuthors(authors),
			Journal: journal,
			Year:    year,
			DOI:     d,
		}
		if err := r.Validate(); err != nil {
			return err
		}

		risText := r.Render()
		fmt.Printf("Generated RIS:\n%s\n\n", risText)
		return importRIS(cmd.Context(), risText)
	},
}

// importRIS posts RIS text to the connector and reports its response.
func importRIS(ctx context.Context, risText string) error {
	status, body, err := newAPIClient().ImportRIS(ctx, risText)
	if err != nil {
		return err
	}
	fmt.Printf("Status: %d\n", status)
	if strings.TrimSpace(body) != "" {
		fmt.Println(body)
	}
	return nil
}

func init() {
	importMetaCmd.Flags().String("title", "", "work title (required)")
	importMetaCmd.Flags().String("authors", "", "semicolon-separated author names")
	importMetaCmd.Flags().String("year", "", "publication year")
	importMetaCmd.Flags().String("journal", "", "journal name")
	importMetaCmd.Flags().String("doi", "", "digital object identifier")
	importMetaCmd.Flags().String("type", ris.DefaultType, "RIS reference type (JOUR, BOOK, CONF, ...)")
	importMetaCmd.MarkFlagRequired("title")

	importCmd.AddCommand(importRISCmd)
	importCmd.AddCommand(importDOICmd)
	importCmd.AddCommand(importMetaCmd)
	rootCmd.AddCommand(importCmd)
}
