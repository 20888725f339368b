package simulation

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultScreenWidth    = 1280
	DefaultScreenHeight   = 720
	DefaultCellSize       = 40
	DefaultStepDelay      = 150 * time.Millisecond
	DefaultRandomAgents   = 10
	DefaultRandomAttempts = 1000
)

// Config is read once at startup. Grid dimensions never change afterwards.
type Config struct {
	ScreenWidth    int
	ScreenHeight   int
	CellSize       int
	StepDelay      time.Duration
	RandomAgents   int
	RandomAttempts int
	Seed           int64
	LogLevel       log.Level
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:    DefaultScreenWidth,
		ScreenHeight:   DefaultScreenHeight,
		CellSize:       DefaultCellSize,
		StepDelay:      DefaultStepDelay,
		RandomAgents:   DefaultRandomAgents,
		RandomAttempts: DefaultRandomAttempts,
		LogLevel:       log.InfoLevel,
	}
}

func (c Config) Cols() int { return c.ScreenWidth / c.CellSize }
func (c Config) Rows() int { return c.ScreenHeight / c.CellSize }

// LoadConfig reads PATHGRID_* variables, loading .env first when present.
// Missing or malformed values keep their defaults.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("LoadConfig .env not loaded: %v", err)
	}

	c := DefaultConfig()
	c.ScreenWidth = positiveInt("PATHGRID_SCREEN_W", c.ScreenWidth)
	c.ScreenHeight = positiveInt("PATHGRID_SCREEN_H", c.ScreenHeight)
	c.CellSize = positiveInt("PATHGRID_CELL_SIZE", c.CellSize)
	c.RandomAgents = positiveInt("PATHGRID_RANDOM_AGENTS", c.RandomAgents)
	c.RandomAttempts = positiveInt("PATHGRID_RANDOM_ATTEMPTS", c.RandomAttempts)

	if v, ok := os.LookupEnv("PATHGRID_STEP_DELAY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Warnf("PATHGRID_STEP_DELAY %q invalid, using %v", v, c.StepDelay)
		} else {
			c.StepDelay = d
		}
	}
	if v, ok := os.LookupEnv("PATHGRID_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Warnf("PATHGRID_SEED %q invalid, using time seed", v)
		} else {
			c.Seed = seed
		}
	}
	if v, ok := os.LookupEnv("PATHGRID_LOG_LEVEL"); ok {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			log.Warnf("PATHGRID_LOG_LEVEL %q invalid, using %v", v, c.LogLevel)
		} else {
			c.LogLevel = lvl
		}
	}

	if c.CellSize > c.ScreenWidth || c.CellSize > c.ScreenHeight {
		log.Warnf("cell size %d larger than screen %dx%d, using defaults", c.CellSize, c.ScreenWidth, c.ScreenHeight)
		c.ScreenWidth, c.ScreenHeight, c.CellSize = DefaultScreenWidth, DefaultScreenHeight, DefaultCellSize
	}
	return c
}

func positiveInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warnf("%s %q invalid, using %d", key, v, def)
		return def
	}
	return n
}
