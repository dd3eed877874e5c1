// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Collection is one element of the local API's /collections response.
type Collection struct {
	Key  string         `json:"key"`
	Data CollectionData `json:"data"`

	// RawData is the data object exactly as the API sent it.
	RawData json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the envelope, keeping the raw data object
// alongside the typed fields.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var wire struct {
		Key  string          `json:"key"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	c.Key = wire.Key
	c.RawData = wire.Data
	if len(wire.Data) > 0 {
		if err := json.Unmarshal(wire.Data, &c.Data); err != nil {
			return err
		}
	}
	return nil
}

// CollectionData is the data object of a collection.
type CollectionData struct {
	Key  string `json:"key"`
	Name string `json:"name"`

	// ParentCollection is empty for top-level collections. The API
	// encodes "no parent" as the JSON literal false, not null.
	ParentCollection ParentKey `json:"parentCollection"`
}

// ParentKey is a collection key that unmarshals from either a string
// or the literal false.
type ParentKey string

// UnmarshalJSON accepts "KEY", false, and null.
func (p *ParentKey) UnmarshalJSON(data []byte) error {
	switch {
	case string(data) == "false" || string(data) == "null":
		*p = ""
		return nil
	default:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("parentCollection: %w", err)
		}
		*p = ParentKey(s)
		return nil
	}
}

// Item is one element of the local API's /items responses.
type Item struct {
	Key  string   `json:"key"`
	Data ItemData `json:"data"`

	// RawData is the data object exactly as the API sent it, with every
	// field. JSON output emits this; the typed Data keeps only what the
	// table rendering needs.
	RawData json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the envelope, keeping the raw data object
// alongside the typed fields.
func (i *Item) UnmarshalJSON(data []byte) error {
	var wire struct {
		Key  string          `json:"key"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	i.Key = wire.Key
	i.RawData = wire.Data
	if len(wire.Data) > 0 {
		if err := json.Unmarshal(wire.Data, &i.Data); err != nil {
			return err
		}
	}
	return nil
}

// ItemData holds the item fields the CLI displays. The API returns many
// more; items get preserves them by printing the raw data object.
type ItemData struct {
	Key      string    `json:"key"`
	ItemType string    `json:"itemType"`
	Title    string    `json:"title"`
	Creators []Creator `json:"creators"`
	Date     string    `json:"date"`
	Tags     []Tag     `json:"tags,omitempty"`
}

// IsAttachment reports whether the item is a file attachment. Listings
// skip attachments.
func (d ItemData) IsAttachment() bool { return d.ItemType == "attachment" }

// Year returns the first four characters of the item date; shorter
// dates come back whole.
func (d ItemData) Year() string {
	if len(d.Date) < 4 {
		return d.Date
	}
	return d.Date[:4]
}

// Creator is an author, editor, or other contributor. Two-field creators
// use FirstName/LastName; single-field creators (institutions) use Name.
type Creator struct {
	CreatorType string `json:"creatorType,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Name        string `json:"name,omitempty"`
}

// DisplayName returns the last name, the single-field name, or "?".
func (c Creator) DisplayName() string {
	if c.LastName != "" {
		return c.LastName
	}
	if c.Name != "" {
		return c.Name
	}
	return "?"
}

// Tag is an item tag.
type Tag struct {
	Tag  string `json:"tag"`
	Type int    `json:"type,omitempty"`
}

// AuthorLine formats up to three creator display names, comma-separated,
// with "et al." appended when more creators exist.
func AuthorLine(creators []Creator) string {
	if len(creators) == 0 {
		return ""
	}
	n := len(creators)
	if n > 3 {
		n = 3
	}
	names := make([]string, 0, n)
	for _, c := range creators[:n] {
		names = append(names, c.DisplayName())
	}
	line := strings.Join(names, ", ")
	if len(creators) > 3 {
		line += " et al."
	}
	return line
}
