package game

import (
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Grid sizes the trainer accepts. Anything outside this range falls back
// to DefaultGridSize.
const (
	MinGridSize     = 3
	MaxGridSize     = 9
	DefaultGridSize = 5
)

const minCellSize = 32

// Config holds game configuration
type Config struct {
	// GridSize is the board dimension N for an NxN table
	GridSize int `env:"SCHULTE_GRID_SIZE" envDefault:"5"`

	// CellSize is the size of each board cell in pixels
	CellSize int `env:"SCHULTE_CELL_SIZE" envDefault:"72"`

	// DBPath is the SQLite file holding best times
	DBPath string `env:"SCHULTE_DB_PATH"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	cfg := Config{
		GridSize: DefaultGridSize,
		CellSize: 72,
	}
	cfg.normalize()
	return cfg
}

// LoadConfig builds the configuration from the environment. Unusable
// values never stop the game from starting: a broken environment falls
// back to the defaults, out-of-range values to the default per field.
func LoadConfig() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Printf("parse env: %v (using defaults)", err)
		return DefaultConfig()
	}
	cfg.normalize()
	return cfg
}

func (c *Config) normalize() {
	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		log.Printf("grid size %d out of range [%d, %d], using %d", c.GridSize, MinGridSize, MaxGridSize, DefaultGridSize)
		c.GridSize = DefaultGridSize
	}
	if c.CellSize < minCellSize {
		c.CellSize = 72
	}
	if c.DBPath == "" {
		c.DBPath = defaultDBPath()
	}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "schulte_best_times.db"
	}
	base := filepath.Join(dir, "schulte")
	_ = os.MkdirAll(base, 0o755)
	return filepath.Join(base, "best_times.db")
}
