package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
	"github.com/spf13/viper"
)

// Adapter is the persistence contract the store depends on: the last saved
// snapshot as raw bytes, or (nil, nil) when none exists.
type Adapter interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Config resolves the base path for on-disk persistence.
type Config interface {
	BasePath() string
}

// LoadConfig reads the tracker config via viper: a .tracker file in the
// working directory, TRACKER_* environment overrides, defaulting the data
// path to ~/.tracker.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.tracker.db")
	viper.SetConfigName(".tracker") // .yaml is implicit
	viper.SetEnvPrefix("TRACKER")
	viper.AutomaticEnv()

	if override := os.Getenv("TRACKER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand data path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

const snapshotKey = "snapshot"

// DiskvAdapter persists the snapshot under a single key in a diskv store.
type DiskvAdapter struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskvAdapter opens (or creates) the diskv store rooted at the configured
// base path. A nil config falls back to LoadConfig.
func NewDiskvAdapter(cfg Config) (*DiskvAdapter, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &DiskvAdapter{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

func (a *DiskvAdapter) Load() ([]byte, error) {
	if !a.d.Has(snapshotKey) {
		return nil, nil
	}
	data, err := a.d.Read(snapshotKey)
	if err != nil {
		return nil, fmt.Errorf("store: read snapshot: %w", err)
	}
	return data, nil
}

func (a *DiskvAdapter) Save(data []byte) error {
	if err := a.d.Write(snapshotKey, data); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	return nil
}

// SnapshotPath is the on-disk location of the snapshot file, for callers
// that watch the backing storage for external changes.
func (a *DiskvAdapter) SnapshotPath() string {
	return filepath.Join(a.basePath, snapshotKey)
}

// BasePath is the directory backing the diskv store.
func (a *DiskvAdapter) BasePath() string {
	return a.basePath
}
