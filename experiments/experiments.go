package experiments

import (
	"context"
	"fmt"

	"connect4/config"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/game/connect4"
	"connect4/searcher"
	"connect4/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Report summarizes a finished tournament.
type Report struct {
	Dir       string
	Standings []Standing
}

// Standing counts the results of one match up, from the point of view of its
// X agent (MaxPlayer) and O agent (MinPlayer).
type Standing struct {
	X          int
	O          int
	XWins      int
	OWins      int
	Draws      int
	Unfinished int
}

type job struct {
	id      int // GameRecord.ID
	matchUp config.MatchUp
	round   int // game index within the match up
}

// Run plays every match up of cfg.Tournament for Games games, X starting the
// even rounds and O the odd ones. At most Parallel games are in flight, and
// every game owns its agents. Results are written as CSV under
// <OutDir>/<Name>/<timestamp>.
func Run(ctx context.Context, cfg config.Config, registry *searcher.Registry) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	t := cfg.Tournament

	var jobs []job
	for _, m := range t.MatchUps {
		for round := 0; round < t.Games; round++ {
			jobs = append(jobs, job{id: len(jobs) + 1, matchUp: m, round: round})
		}
	}

	log.Info().Msgf("starting %s tournament: %d match ups, %d games, %d in parallel", t.Name, len(t.MatchUps), len(jobs), t.Parallel)

	gameRecords := make([]metrics.GameRecord, len(jobs))
	moveRecords := make([][]metrics.MoveRecord, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.Parallel)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gameMetric, moveMetrics, err := runGame(cfg, registry, j)
			if err != nil {
				return fmt.Errorf("game %d (agent %d vs agent %d): %w", j.id, j.matchUp.X, j.matchUp.O, err)
			}

			gameRecords[i] = metrics.GameRecord{
				ID:         j.id,
				Agent1:     j.matchUp.X,
				Agent2:     j.matchUp.O,
				GameMetric: gameMetric,
			}
			for _, mm := range moveMetrics {
				moveRecords[i] = append(moveRecords[i], metrics.MoveRecord{
					Game:       j.id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed game %d of %d with winner: %s", j.id, len(jobs), gameMetric.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	log.Info().Msgf("completed %s tournament", t.Name)

	writer, err := metrics.NewWriter(t.OutDir, t.Name)
	if err != nil {
		return Report{}, err
	}
	if err := writeRecords(writer, cfg.Agents, gameRecords, moveRecords); err != nil {
		return Report{}, err
	}

	return Report{Dir: writer.Dir(), Standings: standings(t.MatchUps, gameRecords)}, nil
}

// runGame gives every game its own seeds so that random agents do not replay
// the same game.
func runGame(cfg config.Config, registry *searcher.Registry, j job) (metrics.GameMetric, []metrics.MoveMetric, error) {
	var agents [2]agent.Agent
	for i, id := range []int{j.matchUp.X, j.matchUp.O} {
		agentConfig, _ := cfg.Agent(id)
		agentConfig.Seed += uint64(j.id)

		a, err := agent.New(agentConfig, registry)
		if err != nil {
			return metrics.GameMetric{}, nil, err
		}
		agents[i] = a
	}

	first := game.MaxPlayer
	if j.round%2 == 1 {
		first = game.MinPlayer
	}
	return engine.NewLocal(agents, connect4.New(first)).Run()
}

func writeRecords(writer *metrics.Writer, configs []config.AgentConfig, games []metrics.GameRecord, moves [][]metrics.MoveRecord) error {
	err := writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	var flat []metrics.MoveRecord
	for _, m := range moves {
		flat = append(flat, m...)
	}
	err = writer.WriteMoveRecords(flat)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}

func standings(matchUps []config.MatchUp, records []metrics.GameRecord) []Standing {
	result := make([]Standing, len(matchUps))
	index := make(map[config.MatchUp]int, len(matchUps))
	for i, m := range matchUps {
		result[i] = Standing{X: m.X, O: m.O}
		if _, ok := index[m]; !ok {
			index[m] = i
		}
	}

	for _, r := range records {
		s := &result[index[config.MatchUp{X: r.Agent1, O: r.Agent2}]]
		switch r.Winner {
		case metrics.MaxWins:
			s.XWins++
		case metrics.MinWins:
			s.OWins++
		case metrics.Draw:
			s.Draws++
		default:
			s.Unfinished++
		}
	}
	return result
}

// DepthSweep pits base searching at depth d against itself at depth d+1, for
// every d below maxDepth. Agent IDs equal their depth.
func DepthSweep(base config.AgentConfig, maxDepth int) ([]config.AgentConfig, []config.MatchUp, error) {
	if !base.Searches() {
		return nil, nil, fmt.Errorf("%w: %q does not search", config.ErrInvalidConfig, base.Algorithm)
	}
	if !base.CanPlayO() {
		return nil, nil, fmt.Errorf("%w: %s cannot take the deeper O seat", config.ErrInvalidConfig, base.Algorithm)
	}
	if maxDepth < 2 {
		return nil, nil, fmt.Errorf("%w: sweep needs a max depth of at least 2, got %d", config.ErrInvalidConfig, maxDepth)
	}

	agents := make([]config.AgentConfig, 0, maxDepth)
	matchUps := make([]config.MatchUp, 0, maxDepth-1)
	for depth := 1; depth <= maxDepth; depth++ {
		a := base
		a.ID, a.Depth = depth, depth
		agents = append(agents, a)
		if depth < maxDepth {
			matchUps = append(matchUps, config.MatchUp{X: depth, O: depth + 1})
		}
	}
	return agents, matchUps, nil
}
