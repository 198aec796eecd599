// Package config loads meetingbank settings from .env files, the environment
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jwulff/meetingbank/internal/catalog"
	"github.com/jwulff/meetingbank/internal/db"
	"github.com/jwulff/meetingbank/internal/docstore"
	"github.com/jwulff/meetingbank/internal/ingest"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Backends.
const (
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// Environment keys.
const (
	EnvBackend    = "MEETINGBANK_BACKEND"
	EnvDB         = "MEETINGBANK_DB"
	EnvLogLevel   = "MEETINGBANK_LOG_LEVEL"
	EnvConfigFile = "MEETINGBANK_CONFIG"
	EnvMongoURI   = "MONGO_URI"
	EnvMongoDB    = "MONGO_DB_NAME"
	EnvMongoColl  = "MONGO_COLLECTION_NAME"
)

// ErrUnknownBackend is returned for a backend other than sqlite or mongo.
var ErrUnknownBackend = errors.New("unknown backend")

// Mongo holds the document store connection settings.
type Mongo struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// Config is the resolved configuration.
type Config struct {
	Backend  string          `yaml:"backend"`
	DBPath   string          `yaml:"db_path"`
	LogLevel string          `yaml:"log_level"`
	Mongo    Mongo           `yaml:"mongo"`
	Report   catalog.Options `yaml:"report"`
	Ingest   ingest.Options  `yaml:"ingest"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend:  BackendSQLite,
		DBPath:   db.DefaultDBPath(),
		LogLevel: "info",
		Mongo: Mongo{
			Database:   docstore.DefaultDatabase,
			Collection: docstore.DefaultCollection,
		},
		Report: catalog.DefaultOptions(),
	}
}

// Load loads envFiles (missing files are skipped), then the YAML file named
// by MEETINGBANK_CONFIG, then the environment. Later sources win. The result
// is not validated so callers can apply flag overrides first.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	cfg.Report = cfg.Report.Normalize()

	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.Backend, EnvBackend)
	set(&c.DBPath, EnvDB)
	set(&c.LogLevel, EnvLogLevel)
	set(&c.Mongo.URI, EnvMongoURI)
	set(&c.Mongo.Database, EnvMongoDB)
	set(&c.Mongo.Collection, EnvMongoColl)
	c.Backend = strings.ToLower(c.Backend)
}

// Validate checks the backend settings and log level.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.DBPath == "" {
			return errors.New("sqlite backend needs a database path")
		}
	case BackendMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("mongo backend needs %s", EnvMongoURI)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the configured log level, defaulting to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
