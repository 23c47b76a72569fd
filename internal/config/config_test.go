package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gostonefire/recordtable/crt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("default configuration is valid", func(t *testing.T) {
		// Execute
		cfg := Default()

		// Check
		assert.NoError(t, cfg.Validate(), "valid defaults")
		assert.Equal(t, int64(20), cfg.Table.Capacity, "reference capacity")
		crtType, err := cfg.Table.CRT()
		assert.NoError(t, err, "technique known")
		assert.Equal(t, crt.OpenAddressing, crtType, "open addressing by default")
	})
}

func TestParse(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		// Prepare
		doc := `
[table]
technique = "chained"
capacity = 5
hash = "xxhash"
max-nodes = 100

[log]
level = "debug"
format = "json"
`

		// Execute
		cfg, err := Parse(doc)

		// Check
		assert.NoError(t, err, "parse config")
		assert.Equal(t, TableConfig{Technique: "chained", Capacity: 5, Hash: "xxhash", MaxNodes: 100}, cfg.Table, "table section")
		assert.Equal(t, "debug", cfg.Log.Level, "log level")
		assert.Equal(t, "json", cfg.Log.Format, "log format")
	})

	t.Run("keeps defaults for missing keys", func(t *testing.T) {
		// Execute
		cfg, err := Parse("[table]\ncapacity = 7\n")

		// Check
		assert.NoError(t, err, "parse config")
		assert.Equal(t, int64(7), cfg.Table.Capacity, "capacity set")
		assert.Equal(t, TechniqueOpen, cfg.Table.Technique, "technique defaulted")
		assert.Equal(t, HashModulo, cfg.Table.Hash, "hash defaulted")
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		tests := map[string]string{
			"bad syntax":        "[table\ncapacity = 7",
			"unknown key":       "[table]\nsize = 7\n",
			"zero capacity":     "[table]\ncapacity = 0\n",
			"negative nodes":    "[table]\nmax-nodes = -1\n",
			"unknown technique": "[table]\ntechnique = \"cuckoo\"\n",
			"unknown hash":      "[table]\nhash = \"md5\"\n",
		}
		for name, doc := range tests {
			t.Run(name, func(t *testing.T) {
				// Execute
				_, err := Parse(doc)

				// Check
				assert.Error(t, err, "invalid config rejected")
			})
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "recordtable.toml")
		require.NoError(t, os.WriteFile(fileName, []byte("[table]\ntechnique = \"chained\"\n"), 0644), "write config")

		// Execute
		cfg, err := LoadFile(fileName)

		// Check
		assert.NoError(t, err, "load config")
		crtType, _ := cfg.Table.CRT()
		assert.Equal(t, crt.SeparateChaining, crtType, "chained technique")
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		// Execute
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))

		// Check
		assert.Error(t, err, "missing file")
	})
}
