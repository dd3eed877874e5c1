// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zotero

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/zotero-helper/pkg/types"
)

// FormatCollections writes collections as indented key/name lines, with
// the parent key appended when the collection is nested.
func FormatCollections(cols []types.Collection, w io.Writer) {
	for _, c := range cols {
		d := c.Data
		parent := ""
		if d.ParentCollection != "" {
			parent = fmt.Sprintf(" (parent: %s)", d.ParentCollection)
		}
		fmt.Fprintf(w, "  %s  %s%s\n", d.Key, d.Name, parent)
	}
}

// FormatItems writes items as "[KEY] TITLE" with an indented author/year
// line. Attachment items are skipped.
func FormatItems(items []types.Item, w io.Writer) {
	for _, item := range items {
		d := item.Data
		if d.IsAttachment() {
			continue
		}
		title := d.Title
		if title == "" {
			title = "(no title)"
		}
		key := d.Key
		if key == "" {
			key = "?"
		}
		fmt.Fprintf(w, "  [%s] %s\n", key, title)

		if authors := types.AuthorLine(d.Creators); authors != "" {
			fmt.Fprintf(w, "         %s (%s)\n", authors, d.Year())
		}
	}
}

// FormatJSON writes v as indented JSON to w, without HTML escaping.
func FormatJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// FormatItemsJSON emits the items' raw data objects, preserving every
// field the API sent.
func FormatItemsJSON(items []types.Item, w io.Writer) error {
	raws := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raws = append(raws, item.RawData)
	}
	return FormatJSON(raws, w)
}

// FormatCollectionsJSON emits the collections' raw data objects.
func FormatCollectionsJSON(cols []types.Collection, w io.Writer) error {
	raws := make([]json.RawMessage, 0, len(cols))
	for _, col := range cols {
		raws = append(raws, col.RawData)
	}
	return FormatJSON(raws, w)
}

// FormatRawYAML re-renders a raw JSON document as YAML. Used by
// "items get --format yaml".
func FormatRawYAML(raw json.RawMessage, w io.Writer) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("parsing item data: %w", err)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling item data: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// FormatRawJSON re-indents a raw JSON document in place, keeping the
// API's key order.
func FormatRawJSON(raw json.RawMessage, w io.Writer) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("parsing item data: %w", err)
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
