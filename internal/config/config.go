package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/goserg/cricketscore/internal/domain"
)

const DefaultPath = "configs/server.toml"

const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

type Server struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Debug    bool   `toml:"debug_mode"`
	LogLevel string `toml:"log_level"`
}

type Storage struct {
	Driver       string `toml:"driver"`
	SqliteFile   string `toml:"sqlite_file"`
	SnapshotFile string `toml:"snapshot_file"`
}

type Match struct {
	MinPlayers            int          `toml:"min_players"`
	ShareOddPlayer        bool         `toml:"share_odd_player"`
	DefaultOvers          domain.Overs `toml:"default_overs"`
	DefaultInningsPerTeam int          `toml:"default_innings_per_team"`
}

type Config struct {
	Server  Server
	Storage Storage
	Match   Match
}

func Default() Config {
	return Config{
		Server: Server{
			Host:     "0.0.0.0",
			Port:     3000,
			LogLevel: "info",
		},
		Storage: Storage{
			Driver:       DriverSQLite,
			SqliteFile:   "cricket.sqlite",
			SnapshotFile: "store.json",
		},
		Match: Match{
			MinPlayers:            4,
			ShareOddPlayer:        true,
			DefaultOvers:          domain.Unlimited,
			DefaultInningsPerTeam: 1,
		},
	}
}

// New reads the TOML file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func New(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if driver := os.Getenv("CRICKETSCORE_STORAGE_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if file := os.Getenv("CRICKETSCORE_SQLITE_FILE"); file != "" {
		cfg.Storage.SqliteFile = file
	}
	if port := os.Getenv("CRICKETSCORE_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("env CRICKETSCORE_PORT: %w", err)
		}
		cfg.Server.Port = p
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var err error
	switch c.Storage.Driver {
	case DriverSQLite, DriverFile, DriverMemory:
	default:
		err = errors.Join(err, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}
	if c.Match.MinPlayers < 2 {
		err = errors.Join(err, errors.New("min_players must be at least 2"))
	}
	if !c.Match.DefaultOvers.Valid() {
		err = errors.Join(err, domain.ErrInvalidOvers)
	}
	if c.Match.DefaultInningsPerTeam != 1 && c.Match.DefaultInningsPerTeam != 2 {
		err = errors.Join(err, domain.ErrInvalidInningsPerTeam)
	}
	return err
}
