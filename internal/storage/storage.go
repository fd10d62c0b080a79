package storage

import (
	"path/filepath"
	"strings"
)

// NewProvider selects a backend from the config path: .json files get the
// JSON blob store, anything else the SQLite store.
func NewProvider(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
