// Package keymap holds the binding table: an ordered mapping from hotkey
// strings to action identifiers, file loaders for JSON/TOML/YAML keymap
// files, a change watcher, and the static conflict analyzer.
//
// Table order is significant: when several bindings match the same input the
// matcher uses the first one, so hosts that care about tie-breaking control
// it through binding order. The table is never mutated in place; every
// change produces a freshly parsed table and a fresh conflict report.
package keymap
