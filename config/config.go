package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	MinimaxAlgorithm    = "minimax"
	AlphaBetaAlgorithm  = "alphabeta"
	ExpectimaxAlgorithm = "expectimax"
	BestAlgorithm       = "best"
	RandomAlgorithm     = "random"
)

const (
	DefaultDepth      = 2
	DefaultEvaluation = "score"
	DefaultLogLevel   = "info"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string        `yaml:"log_level"`
	Agents     []AgentConfig `yaml:"agents"`
	Tournament Tournament    `yaml:"tournament"`
}

// AgentConfig describes one player. Depth and Evaluation only apply to the search
// algorithms; Seed feeds the agent's random source.
type AgentConfig struct {
	ID         int    `yaml:"id"`
	Algorithm  string `yaml:"algorithm"`
	Depth      int    `yaml:"depth"`
	Evaluation string `yaml:"evaluation"`
	Seed       uint64 `yaml:"seed"`
}

type Tournament struct {
	Name     string    `yaml:"name"`
	Games    int       `yaml:"games"` // Per match up
	Parallel int       `yaml:"parallel"`
	OutDir   string    `yaml:"out_dir"`
	MatchUps []MatchUp `yaml:"match_ups"`
}

// MatchUp pairs two agents by ID: X plays MaxPlayer and O plays MinPlayer. X
// moves first in even games, O in odd ones.
type MatchUp struct {
	X int `yaml:"x"`
	O int `yaml:"o"`
}

func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Agents: []AgentConfig{
			{ID: 1, Algorithm: ExpectimaxAlgorithm, Depth: DefaultDepth, Evaluation: DefaultEvaluation, Seed: 1},
			{ID: 2, Algorithm: AlphaBetaAlgorithm, Depth: DefaultDepth, Evaluation: DefaultEvaluation, Seed: 2},
		},
		Tournament: Tournament{
			Name:     "default",
			Games:    10,
			Parallel: 4,
			OutDir:   "experiments",
			MatchUps: []MatchUp{{X: 1, O: 2}},
		},
	}
}

// Load reads a YAML file, fills unset fields with defaults and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var c Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Write stores c as YAML, creating the parent directory.
func Write(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	for i := range c.Agents {
		a := &c.Agents[i]
		if !a.Searches() {
			continue
		}
		if a.Depth == 0 {
			a.Depth = DefaultDepth
		}
		if a.Evaluation == "" {
			a.Evaluation = DefaultEvaluation
		}
	}
	t := &c.Tournament
	if t.Name == "" {
		t.Name = defaults.Tournament.Name
	}
	if t.Games == 0 {
		t.Games = defaults.Tournament.Games
	}
	if t.Parallel == 0 {
		t.Parallel = 1
	}
	if t.OutDir == "" {
		t.OutDir = defaults.Tournament.OutDir
	}
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("%w: no agents", ErrInvalidConfig)
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		ids[a.ID] = true
		if err := a.Validate(); err != nil {
			return err
		}
	}

	t := c.Tournament
	if t.Games < 1 {
		return fmt.Errorf("%w: tournament %q has %d games", ErrInvalidConfig, t.Name, t.Games)
	}
	if t.Parallel < 1 {
		return fmt.Errorf("%w: tournament %q runs %d games in parallel", ErrInvalidConfig, t.Name, t.Parallel)
	}
	for i, m := range t.MatchUps {
		if !ids[m.X] || !ids[m.O] {
			return fmt.Errorf("%w: match up %d references unknown agent (x=%d, o=%d)", ErrInvalidConfig, i, m.X, m.O)
		}
		if o, _ := c.Agent(m.O); !o.CanPlayO() {
			return fmt.Errorf("%w: match up %d seats %s agent %d as O", ErrInvalidConfig, i, o.Algorithm, o.ID)
		}
	}
	return nil
}

// Validate checks the fields that do not depend on the evaluation registry.
func (a AgentConfig) Validate() error {
	switch a.Algorithm {
	case MinimaxAlgorithm, AlphaBetaAlgorithm, ExpectimaxAlgorithm:
		if a.Depth < 1 {
			return fmt.Errorf("%w: agent %d searches to depth %d", ErrInvalidConfig, a.ID, a.Depth)
		}
	case BestAlgorithm, RandomAlgorithm:
	default:
		return fmt.Errorf("%w: agent %d has unknown algorithm %q", ErrInvalidConfig, a.ID, a.Algorithm)
	}
	return nil
}

// Searches reports whether the agent runs one of the tree search engines.
func (a AgentConfig) Searches() bool {
	switch a.Algorithm {
	case MinimaxAlgorithm, AlphaBetaAlgorithm, ExpectimaxAlgorithm:
		return true
	}
	return false
}

// CanPlayO reports whether the agent can move for MinPlayer. Expectimax models
// MinPlayer as the random mover, so it only plays X.
func (a AgentConfig) CanPlayO() bool {
	return a.Algorithm != ExpectimaxAlgorithm
}

// Agent looks up an agent by ID.
func (c Config) Agent(id int) (AgentConfig, bool) {
	for _, a := range c.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return AgentConfig{}, false
}
