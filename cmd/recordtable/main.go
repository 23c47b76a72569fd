package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gostonefire/recordtable"
	"github.com/gostonefire/recordtable/internal/cli"
	"github.com/gostonefire/recordtable/internal/config"
	"github.com/gostonefire/recordtable/internal/logutil"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "", "path to a TOML configuration file")
	technique  = flag.String("crt", config.TechniqueOpen, "collision resolution technique, open or chained")
	capacity   = flag.Int64("capacity", 0, "number of slots or buckets")
	hashName   = flag.String("hash", config.HashModulo, "hash algorithm, modulo, murmur3 or xxhash")
	logLevel   = flag.String("log-level", "", "log level, debug, info, warn or error")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "recordtable: %s\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return
	}

	logger, err := logutil.NewLogger(cfg.Log)
	if err != nil {
		return
	}
	defer func() { _ = logger.Sync() }()

	crtType, err := cfg.Table.CRT()
	if err != nil {
		return
	}

	hashAlgorithm, err := recordtable.NewHashAlgorithm(cfg.Table.Hash, cfg.Table.Capacity)
	if err != nil {
		return
	}

	opts := []recordtable.Option{
		recordtable.WithHashAlgorithm(hashAlgorithm),
		recordtable.WithLogger(logger),
	}
	if cfg.Table.MaxNodes > 0 {
		opts = append(opts, recordtable.WithMaxNodes(cfg.Table.MaxNodes))
	}

	table, info, err := recordtable.NewRecordTable(crtType, cfg.Table.Capacity, opts...)
	if err != nil {
		return
	}
	logger.Info("record table ready",
		zap.String("technique", cfg.Table.Technique),
		zap.Int64("buckets", info.NumberOfBuckets),
		zap.String("hash", cfg.Table.Hash),
	)

	err = cli.NewHarness(table, os.Stdin, os.Stdout, logger).Run()

	if tdErr := table.Teardown(); tdErr != nil {
		logger.Error("teardown failed", zap.Error(tdErr))
	}

	return
}

// loadConfig - Reads the config file if given and applies flags set on the command line on top of it
func loadConfig() (cfg config.Config, err error) {
	cfg = config.Default()
	if *configFile != "" {
		cfg, err = config.LoadFile(*configFile)
		if err != nil {
			return
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "crt":
			cfg.Table.Technique = *technique
		case "capacity":
			cfg.Table.Capacity = *capacity
		case "hash":
			cfg.Table.Hash = *hashName
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	err = cfg.Validate()

	return
}
