package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"connect4/config"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of the agent playing MaxPlayer
	Agent2 int // AgentConfig.ID of the agent playing MinPlayer
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// ThroughputRecord is the cost of one search from a benchmark position.
type ThroughputRecord struct {
	Agent    int // AgentConfig.ID
	Position int
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <outDir>/<name>/<timestamp> to hold the files of one run.
func NewWriter(outDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(outDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []config.AgentConfig) error {
	header := []string{"id", "algorithm", "depth", "evaluation", "seed"}
	rows := make([][]string, len(configs))
	for i, c := range configs {
		rows[i] = []string{
			strconv.Itoa(c.ID),
			c.Algorithm,
			strconv.Itoa(c.Depth),
			c.Evaluation,
			strconv.FormatUint(c.Seed, 10),
		}
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			r.StartingPlayer.String(),
			r.Winner,
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
			strconv.Itoa(r.TotalMoves),
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "action", "algorithm", "depth", "duration", "nodes", "leaves", "cutoffs"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = append([]string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player.String(),
			fmt.Sprint(r.Action),
		}, searchColumns(r.SearchMetric)...)
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteThroughputRecords(records []ThroughputRecord) error {
	header := []string{"agent", "position", "algorithm", "depth", "duration", "nodes", "leaves", "cutoffs"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = append([]string{
			strconv.Itoa(r.Agent),
			strconv.Itoa(r.Position),
		}, searchColumns(r.SearchMetric)...)
	}
	return w.write("throughput_records.csv", header, rows)
}

func searchColumns(m SearchMetric) []string {
	return []string{
		m.Algorithm,
		strconv.Itoa(m.Depth),
		m.Duration.String(),
		strconv.Itoa(m.Nodes),
		strconv.Itoa(m.Leaves),
		strconv.Itoa(m.Cutoffs),
	}
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
