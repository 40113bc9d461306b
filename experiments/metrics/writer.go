package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SweepRecord is one exploration in a horizon sweep.
type SweepRecord struct {
	ID int
	ExploreMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
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

func (w *Writer) WriteScores(samples []ScoreSample) error {
	path := filepath.Join(w.baseDir, "scores.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create scores file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	err = writer.Write([]string{"depth", "score"})
	if err != nil {
		return fmt.Errorf("failed to write scores header: %w", err)
	}

	for _, sample := range samples {
		row := []string{
			strconv.Itoa(sample.Depth),
			strconv.FormatFloat(sample.Score, 'f', -1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write score row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSweep(records []SweepRecord) error {
	path := filepath.Join(w.baseDir, "sweep.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sweep file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "horizon", "mode", "nodes", "expanded", "pass_throughs", "terminals", "illegal", "transpositions", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write sweep header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Horizon),
			record.Mode,
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Expanded),
			strconv.Itoa(record.PassThroughs),
			strconv.Itoa(record.Terminals),
			strconv.Itoa(record.Illegal),
			strconv.Itoa(record.Transpositions),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write sweep row: %w", err)
		}
	}

	return nil
}
