// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bridge

import (
	"encoding/json"
	"fmt"
)

// The canned scripts mirror the Zotero JavaScript API: collections and
// items are looked up by library and key, mutated, and saved in a
// transaction. Every user-supplied value is embedded through jsValue so
// quoting and escaping are always JSON-safe. Scripts return JSON strings;
// lookups that find nothing return {"error": "..."}.

// jsValue renders v as a JavaScript literal via JSON encoding.
func jsValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Only unmarshalable types (channels, funcs) fail; the builders
		// pass strings and string slices.
		panic(fmt.Sprintf("bridge: encoding script value: %v", err))
	}
	return string(data)
}

// CreateCollectionScript builds a script creating a collection, optionally
// nested under parentKey. The script returns {key, name}.
func CreateCollectionScript(name, parentKey string) string {
	parent := "false"
	if parentKey != "" {
		parent = jsValue(parentKey)
	}
	return fmt.Sprintf(`
var col = new Zotero.Collection();
col.name = %s;
col.parentKey = %s;
await col.saveTx();
return JSON.stringify({key: col.key, name: col.name});
`, jsValue(name), parent)
}

// DeleteCollectionScript builds a script erasing a collection. The script
// returns {key, name, status: "deleted"}.
func DeleteCollectionScript(library int, key string) string {
	return fmt.Sprintf(`
var col = await Zotero.Collections.getByLibraryAndKeyAsync(%d, %s);
if (!col) return JSON.stringify({error: "Collection not found"});
var name = col.name;
await col.eraseTx();
return JSON.stringify({key: %s, name: name, status: "deleted"});
`, library, jsValue(key), jsValue(key))
}

// TrashItemsScript builds a script moving items to the trash. Items are
// trashed (deleted = true), never erased. Per-item status is trashed or
// not_found.
func TrashItemsScript(library int, keys []string) string {
	return fmt.Sprintf(`
var keys = %s;
var results = [];
for (var k of keys) {
    var item = await Zotero.Items.getByLibraryAndKeyAsync(%d, k);
    if (item) {
        item.deleted = true;
        await item.saveTx();
        results.push({key: k, status: "trashed"});
    } else {
        results.push({key: k, status: "not_found"});
    }
}
return JSON.stringify(results);
`, jsValue(keys), library)
}

// AddToCollectionScript builds a script adding items to a collection with
// a single save at the end. Per-item status is added or not_found.
func AddToCollectionScript(library int, collectionKey string, itemKeys []string) string {
	return fmt.Sprintf(`
var col = await Zotero.Collections.getByLibraryAndKeyAsync(%d, %s);
if (!col) return JSON.stringify({error: "Collection not found"});
var keys = %s;
var results = [];
for (var k of keys) {
    var item = await Zotero.Items.getByLibraryAndKeyAsync(%d, k);
    if (item) {
        col.addItem(item.id);
        results.push({key: k, status: "added"});
    } else {
        results.push({key: k, status: "not_found"});
    }
}
await col.saveTx();
return JSON.stringify(results);
`, library, jsValue(collectionKey), jsValue(itemKeys), library)
}

// RemoveFromCollectionScript builds a script removing items from a
// collection. Per-item status is removed or not_found.
func RemoveFromCollectionScript(library int, collectionKey string, itemKeys []string) string {
	return fmt.Sprintf(`
var col = await Zotero.Collections.getByLibraryAndKeyAsync(%d, %s);
if (!col) return JSON.stringify({error: "Collection not found"});
var keys = %s;
var results = [];
for (var k of keys) {
    var item = await Zotero.Items.getByLibraryAndKeyAsync(%d, k);
    if (item) {
        col.removeItem(item.id);
        results.push({key: k, status: "removed"});
    } else {
        results.push({key: k, status: "not_found"});
    }
}
await col.saveTx();
return JSON.stringify(results);
`, library, jsValue(collectionKey), jsValue(itemKeys), library)
}

// SetFieldScript builds a script setting one field on an item. The script
// returns {key, field, value, status: "updated"}.
func SetFieldScript(library int, itemKey, field, value string) string {
	return fmt.Sprintf(`
var item = await Zotero.Items.getByLibraryAndKeyAsync(%d, %s);
if (!item) return JSON.stringify({error: "Item not found"});
item.setField(%s, %s);
await item.saveTx();
return JSON.stringify({key: %s, field: %s, value: %s, status: "updated"});
`, library, jsValue(itemKey), jsValue(field), jsValue(value), jsValue(itemKey), jsValue(field), jsValue(value))
}

// AddTagsScript builds a script adding tags to an item with one save.
// The script returns {key, tags_added, status: "updated"}.
func AddTagsScript(library int, itemKey string, tags []string) string {
	return fmt.Sprintf(`
var item = await Zotero.Items.getByLibraryAndKeyAsync(%d, %s);
if (!item) return JSON.stringify({error: "Item not found"});
var tags = %s;
for (var t of tags) {
    item.addTag(t);
}
await item.saveTx();
return JSON.stringify({key: %s, tags_added: tags, status: "updated"});
`, library, jsValue(itemKey), jsValue(tags), jsValue(itemKey))
}
