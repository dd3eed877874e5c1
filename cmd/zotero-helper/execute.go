// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var executeCmd = &cobra.Command{
	Use:   "execute SCRIPT",
	Short: "Run arbitrary JavaScript inside Zotero",
	Long: `Execute forwards a JavaScript program to the debug-bridge plugin and
prints its return value. Pass "-" to read the script from stdin.

This is the escape hatch: anything the canned commands cannot do can be
scripted directly against the Zotero API, e.g.

  zotero-helper execute "return Zotero.Libraries.getAll().length"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script := args[0]
		if script == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading script from stdin: %w", err)
			}
			script = string(data)
		}

		b, err := newBridgeClient()
		if err != nil {
			return err
		}

		result, err := b.Execute(cmd.Context(), script)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(executeCmd)
}
