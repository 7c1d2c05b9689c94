// Package config holds the tunable numbers that shape a generated maze.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// MaxPaletteSize is the number of distinct block/gateway colours the game can draw
const MaxPaletteSize = 6

// ErrInvalidConfig is returned for dimensions or tuning values that cannot produce a maze
var ErrInvalidConfig = errors.New("invalid maze configuration")

// Config holds the probabilities and counts used while populating a maze.
type Config struct {
	BlocksStartProportion    float64 // Fraction of the path skipped before the first block
	BlocksDistanceProportion float64 // Average gap between blocks, as a fraction of path length
	GatewayJitter            float64 // Upper bound of the random extra gap, in path nodes
	GatewaySkipThreshold     float64 // A gateway is placed when a uniform draw exceeds this
	BranchStopThreshold      float64 // Chance a branch walk stops after each expansion
	KeyCount                 int     // Keys scattered over free tiles
	CheckpointCount          int     // Checkpoints scattered over free tiles
	EnemyCount               int     // Enemies scattered over free tiles
	PaletteSize              int     // Colours available to blocks and gateways
	MaxPlacementAttempts     int     // Random draws per entity before falling back to a free-tile scan
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		BlocksStartProportion:    0.2,
		BlocksDistanceProportion: 0.15,
		GatewayJitter:            2.0,
		GatewaySkipThreshold:     0.3,
		BranchStopThreshold:      0.1,
		KeyCount:                 3,
		CheckpointCount:          2,
		EnemyCount:               4,
		PaletteSize:              MaxPaletteSize,
		MaxPlacementAttempts:     10000,
	}
}

// Validate reports the first value that is out of range
func (c Config) Validate() error {
	probabilities := []struct {
		name  string
		value float64
	}{
		{"BlocksStartProportion", c.BlocksStartProportion},
		{"GatewaySkipThreshold", c.GatewaySkipThreshold},
		{"BranchStopThreshold", c.BranchStopThreshold},
	}
	for _, p := range probabilities {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%w: %s = %v, want a value in [0,1]", ErrInvalidConfig, p.name, p.value)
		}
	}
	if c.BlocksDistanceProportion <= 0 {
		return fmt.Errorf("%w: BlocksDistanceProportion = %v, want > 0", ErrInvalidConfig, c.BlocksDistanceProportion)
	}
	if c.GatewayJitter < 0 {
		return fmt.Errorf("%w: GatewayJitter = %v, want >= 0", ErrInvalidConfig, c.GatewayJitter)
	}

	counts := []struct {
		name  string
		value int
	}{
		{"KeyCount", c.KeyCount},
		{"CheckpointCount", c.CheckpointCount},
		{"EnemyCount", c.EnemyCount},
	}
	for _, n := range counts {
		if n.value < 0 {
			return fmt.Errorf("%w: %s = %d, want >= 0", ErrInvalidConfig, n.name, n.value)
		}
	}
	if c.PaletteSize < 1 || c.PaletteSize > MaxPaletteSize {
		return fmt.Errorf("%w: PaletteSize = %d, want 1..%d", ErrInvalidConfig, c.PaletteSize, MaxPaletteSize)
	}
	if c.MaxPlacementAttempts < 1 {
		return fmt.Errorf("%w: MaxPlacementAttempts = %d, want >= 1", ErrInvalidConfig, c.MaxPlacementAttempts)
	}
	return nil
}

// ValidateDimensions rejects cell grids that cannot hold a maze
func ValidateDimensions(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: grid %dx%d, want both dimensions > 0", ErrInvalidConfig, cols, rows)
	}
	return nil
}

// FromEnv starts from Default and overrides every field whose MAZE_* variable is set.
// A .env file in the working directory is loaded first when present.
func FromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}

	c := Default()
	floats := []struct {
		key string
		dst *float64
	}{
		{"MAZE_BLOCKS_START_PROPORTION", &c.BlocksStartProportion},
		{"MAZE_BLOCKS_DISTANCE_PROPORTION", &c.BlocksDistanceProportion},
		{"MAZE_GATEWAY_JITTER", &c.GatewayJitter},
		{"MAZE_GATEWAY_SKIP_THRESHOLD", &c.GatewaySkipThreshold},
		{"MAZE_BRANCH_STOP_THRESHOLD", &c.BranchStopThreshold},
	}
	for _, f := range floats {
		if err := getEnvAsFloat(f.key, f.dst); err != nil {
			return Config{}, err
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"MAZE_KEY_COUNT", &c.KeyCount},
		{"MAZE_CHECKPOINT_COUNT", &c.CheckpointCount},
		{"MAZE_ENEMY_COUNT", &c.EnemyCount},
		{"MAZE_PALETTE_SIZE", &c.PaletteSize},
		{"MAZE_MAX_PLACEMENT_ATTEMPTS", &c.MaxPlacementAttempts},
	}
	for _, i := range ints {
		if err := getEnvAsInt(i.key, i.dst); err != nil {
			return Config{}, err
		}
	}

	return c, c.Validate()
}

// getEnvAsFloat overwrites dst when key is set
func getEnvAsFloat(key string, dst *float64) error {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: %s must be a number: %v", ErrInvalidConfig, key, err)
	}
	*dst = value
	return nil
}

// getEnvAsInt overwrites dst when key is set
func getEnvAsInt(key string, dst *int) error {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	*dst = value
	return nil
}
