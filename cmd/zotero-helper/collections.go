// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/zotero-helper/internal/bridge"
	"github.com/pdiddy/zotero-helper/internal/zotero"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List and manage collections",
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every collection in the library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cols, err := newAPIClient().Collections(cmd.Context())
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return zotero.FormatCollectionsJSON(cols, os.Stdout)
		}
		zotero.FormatCollections(cols, os.Stdout)
		return nil
	},
}

var collectionsCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a collection, optionally nested under --parent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBridgeClient()
		if err != nil {
			return err
		}

		parent, _ := cmd.Flags().GetString("parent")
		var info struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		}
		if err := b.RunObject(cmd.Context(), bridge.CreateCollectionScript(args[0], parent), &info); err != nil {
			return err
		}
		fmt.Printf("Created collection: %s [%s]\n", info.Name, info.Key)
		return nil
	},
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete KEY",
	Short: "Erase a collection (items stay in the library)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBridgeClient()
		if err != nil {
			return err
		}

		var info struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		}
		if err := b.RunObject(cmd.Context(), bridge.DeleteCollectionScript(b.Library, args[0]), &info); err != nil {
			return err
		}
		fmt.Printf("Deleted collection: %s [%s]\n", info.Name, info.Key)
		return nil
	},
}

var collectionsAddCmd = &cobra.Command{
	Use:   "add COLLECTION_KEY ITEM_KEY...",
	Short: "Add items to a collection",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBridgeClient()
		if err != nil {
			return err
		}

		statuses, err := b.RunStatuses(cmd.Context(), bridge.AddToCollectionScript(b.Library, args[0], args[1:]))
		if err != nil {
			return err
		}
		printKeyStatuses(statuses)
		return nil
	},
}

var collectionsRemoveCmd = &cobra.Command{
	Use:   "remove COLLECTION_KEY ITEM_KEY...",
	Short: "Remove items from a collection",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBridgeClient()
		if err != nil {
			return err
		}

		statuses, err := b.RunStatuses(cmd.Context(), bridge.RemoveFromCollectionScript(b.Library, args[0], args[1:]))
		if err != nil {
			return err
		}
		printKeyStatuses(statuses)
		return nil
	},
}

func init() {
	collectionsListCmd.Flags().Bool("json", false, "output collections as JSON")
	collectionsCreateCmd.Flags().String("parent", "", "parent collection key")

	collectionsCmd.AddCommand(collectionsListCmd)
	collectionsCmd.AddCommand(collectionsCreateCmd)
	collectionsCmd.AddCommand(collectionsDeleteCmd)
	collectionsCmd.AddCommand(collectionsAddCmd)
	collectionsCmd.AddCommand(collectionsRemoveCmd)
	rootCmd.AddCommand(collectionsCmd)
}
