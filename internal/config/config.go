package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/internal/conf"
	"github.com/gostonefire/recordtable/internal/logutil"
)

// Hash algorithm names accepted in configuration
const (
	HashModulo  = "modulo"
	HashMurmur3 = "murmur3"
	HashXXHash  = "xxhash"
)

// Technique names accepted in configuration
const (
	TechniqueOpen    = "open"
	TechniqueChained = "chained"
)

// Config - Configuration of the record table program, read from a TOML file
type Config struct {
	Table TableConfig       `toml:"table"`
	Log   logutil.LogConfig `toml:"log"`
}

// TableConfig - The [table] section
//   - Technique is open (open addressing with linear probing) or chained (separate chaining)
//   - Capacity is the fixed number of slots or buckets
//   - Hash is modulo, murmur3 or xxhash
//   - MaxNodes caps the number of live chain nodes for chained tables, zero means no limit
type TableConfig struct {
	Technique string `toml:"technique"`
	Capacity  int64  `toml:"capacity"`
	Hash      string `toml:"hash"`
	MaxNodes  int64  `toml:"max-nodes"`
}

// Default - Returns the configuration used when no file is given
func Default() Config {
	return Config{
		Table: TableConfig{
			Technique: TechniqueOpen,
			Capacity:  conf.DefaultCapacity,
			Hash:      HashModulo,
		},
		Log: logutil.LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFile - Reads the TOML file at path on top of the defaults and validates the result.
// Unknown keys are reported as errors.
func LoadFile(path string) (cfg Config, err error) {
	cfg = Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		err = fmt.Errorf("error while reading config file %s: %s", path, err)
		return
	}

	err = checkUndecoded(md)
	if err != nil {
		return
	}

	err = cfg.Validate()

	return
}

// Parse - Same as LoadFile but reads the TOML document from data
func Parse(data string) (cfg Config, err error) {
	cfg = Default()

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		err = fmt.Errorf("error while parsing config: %s", err)
		return
	}

	err = checkUndecoded(md)
	if err != nil {
		return
	}

	err = cfg.Validate()

	return
}

// Validate - Checks that all table settings are usable
func (C Config) Validate() (err error) {
	if C.Table.Capacity <= 0 {
		err = fmt.Errorf("table capacity must be a positive value higher than 0 (zero)")
		return
	}
	if C.Table.MaxNodes < 0 {
		err = fmt.Errorf("table max-nodes can not be negative")
		return
	}

	_, err = C.Table.CRT()
	if err != nil {
		return
	}

	switch strings.ToLower(C.Table.Hash) {
	case HashModulo, HashMurmur3, HashXXHash:
	default:
		err = fmt.Errorf("unknown hash algorithm %q, must be one of %s, %s, %s", C.Table.Hash, HashModulo, HashMurmur3, HashXXHash)
	}

	return
}

// CRT - Returns the collision resolution technique constant for the configured technique
func (T TableConfig) CRT() (crtType int, err error) {
	switch strings.ToLower(T.Technique) {
	case TechniqueOpen:
		crtType = crt.OpenAddressing
	case TechniqueChained:
		crtType = crt.SeparateChaining
	default:
		err = fmt.Errorf("unknown technique %q, must be %s or %s", T.Technique, TechniqueOpen, TechniqueChained)
	}

	return
}

// checkUndecoded - Fails if the document held keys that do not map to any setting
func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}

	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}

	return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
}
