package experiments

import (
	"context"
	"fmt"

	"connect4/config"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/game/connect4"
	"connect4/searcher"
	"connect4/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const maxOpeningPlies = 12

// Throughput searches the same random openings with every search agent of cfg and
// records the cost of each search. Searches run one at a time so that durations
// are comparable. Openings have MaxPlayer to move, the only root expectimax
// accepts.
func Throughput(ctx context.Context, cfg config.Config, registry *searcher.Registry, positions int, seed uint64) ([]metrics.ThroughputRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if positions < 1 {
		return nil, fmt.Errorf("%w: %d throughput positions", config.ErrInvalidConfig, positions)
	}

	openings := Openings(rand.New(rand.NewSource(seed)), positions)

	var records []metrics.ThroughputRecord
	for _, agentConfig := range cfg.Agents {
		if !agentConfig.Searches() {
			continue
		}
		a, err := agent.New(agentConfig, registry)
		if err != nil {
			return nil, err
		}

		log.Info().Msgf("measuring agent %d (%s at depth %d)...", agentConfig.ID, agentConfig.Algorithm, agentConfig.Depth)

		for i, opening := range openings {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			_, searchMetric, err := a.FindMove(opening)
			if err != nil {
				return nil, fmt.Errorf("agent %d at position %d: %w", agentConfig.ID, i, err)
			}
			records = append(records, metrics.ThroughputRecord{
				Agent:        agentConfig.ID,
				Position:     i,
				SearchMetric: searchMetric,
			})
		}
	}
	return records, nil
}

// RunThroughput runs Throughput and stores the agent configs and the records
// under <OutDir>/<Name>/<timestamp>. It returns that directory.
func RunThroughput(ctx context.Context, cfg config.Config, registry *searcher.Registry, positions int, seed uint64) (string, error) {
	records, err := Throughput(ctx, cfg, registry, positions, seed)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(cfg.Tournament.OutDir, cfg.Tournament.Name+"_throughput")
	if err != nil {
		return "", err
	}
	err = writer.WriteAgentConfigs(cfg.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteThroughputRecords(records)
	if err != nil {
		return "", fmt.Errorf("failed to write throughput records: %w", err)
	}
	log.Info().Msg("stored throughput records")
	return writer.Dir(), nil
}

// Openings plays an even number of random plies from the empty board, retrying
// any game that ends early, so MaxPlayer is to move in every opening.
func Openings(rng *rand.Rand, n int) []game.State {
	openings := make([]game.State, 0, n)
	for len(openings) < n {
		var s game.State = connect4.New(game.MaxPlayer)
		plies := 2 * rng.Intn(maxOpeningPlies/2+1)
		for i := 0; i < plies && !s.IsTerminal(); i++ {
			actions := s.LegalActions(s.Turn())
			s = s.Successor(s.Turn(), actions[rng.Intn(len(actions))])
		}
		if !s.IsTerminal() {
			openings = append(openings, s)
		}
	}
	return openings
}
