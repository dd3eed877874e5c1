// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/zotero-helper/internal/bridge"
	"github.com/pdiddy/zotero-helper/internal/zotero"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Search, inspect, and modify items",
}

var itemsSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Quick-search items in the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := newAPIClient().SearchItems(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return zotero.FormatItemsJSON(items, os.Stdout)
		}
		zotero.FormatItems(items, os.Stdout)
		return nil
	},
}

var itemsGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one item's full data object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := newAPIClient().Item(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			return zotero.FormatRawJSON(raw, os.Stdout)
		case "yaml":
			return zotero.FormatRawYAML(raw, os.Stdout)
		default:
			return fmt.Errorf("unknown format %q (want json or yaml)", format)
		}
	},
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the items of a collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("collection")
		items, err := newAPIClient().CollectionItems(cmd.Context(), key)
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return zotero.FormatItemsJSON(items, os.Stdout)
		}
		zotero.FormatItems(items, os.Stdout)
		return nil
	},
}

var itemsTrashCmd = &cobra.Command{
	Use:   "trash KEY...",
	Short: "Move items to the trash",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBridgeClient()
		if err != nil {
			return err
		}

		statuses, err := b.RunStatuses(cmd.Context(), bridge.TrashItemsScript(b.Library, args))
		if err != nil {
			return err
		}
		printKeyStatuses(statuses)
		return nil
	},
}

var itemsSetFieldCmd = &cobra.Command{
	Use:   "set-field KEY FIELD VALUE",
	Short: "Set one field on an item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBridgeClient()
		if err != nil {
			return err
		}

		key, field, value := args[0], args[1], args[2]
		var info struct {
			Key    string `json:"key"`
			Status string `json:"status"`
		}
		if err := b.RunObject(cmd.Context(), bridge.SetFieldScript(b.Library, key, field, value), &info); err != nil {
			return err
		}
		fmt.Printf("Updated %s = %s on [%s]\n", field, value, key)
		return nil
	},
}

var itemsTagCmd = &cobra.Command{
	Use:   "tag KEY TAG...",
	Short: "Add tags to an item",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBridgeClient()
		if err != nil {
			return err
		}

		key, tags := args[0], args[1:]
		var info struct {
			Key       string   `json:"key"`
			TagsAdded []string `json:"tags_added"`
		}
		if err := b.RunObject(cmd.Context(), bridge.AddTagsScript(b.Library, key, tags), &info); err != nil {
			return err
		}
		fmt.Printf("Added tags %s to [%s]\n", strings.Join(tags, ", "), key)
		return nil
	},
}

func init() {
	itemsSearchCmd.Flags().Bool("json", false, "output items as JSON")
	itemsGetCmd.Flags().String("format", "json", "output format: json or yaml")
	itemsListCmd.Flags().String("collection", "", "collection key to list")
	itemsListCmd.Flags().Bool("json", false, "output items as JSON")
	itemsListCmd.MarkFlagRequired("collection")

	itemsCmd.AddCommand(itemsSearchCmd)
	itemsCmd.AddCommand(itemsGetCmd)
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsTrashCmd)
	itemsCmd.AddCommand(itemsSetFieldCmd)
	itemsCmd.AddCommand(itemsTagCmd)
	rootCmd.AddCommand(itemsCmd)
}
