package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"supergame/game"
)

// Fit counts how often a strategy's prediction matched the subject's own
// play over the rounds where both were observed.
type Fit struct {
	Observed int
	Agreed   int
}

// Rate is the share of observed rounds that agreed, or 0 with no observations.
func (f Fit) Rate() float64 {
	if f.Observed == 0 {
		return 0
	}
	return float64(f.Agreed) / float64(f.Observed)
}

// PredictionRow is one step of one subject with every strategy's prediction,
// in the order of the strategy names passed to WritePredictions.
type PredictionRow struct {
	Subject   string
	Period    int
	Action    game.Action
	Own       game.Action
	Predicted []game.Action
}

type FitRecord struct {
	Subject  string
	Strategy string
	Fit
}

type Setup struct {
	Name       string    `json:"name"`
	Strategies []string  `json:"strategies"`
	Skipped    []string  `json:"skipped"`
	Run        RunMetric `json:"run"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold one run's records.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WritePredictions(strategies []string, rows []PredictionRow) error {
	path := filepath.Join(w.baseDir, "predictions.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create predictions file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := append([]string{"subject", "period", "action", "own"}, strategies...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write predictions header: %w", err)
	}

	for _, row := range rows {
		if len(row.Predicted) != len(strategies) {
			return fmt.Errorf("subject %s period %d has %d predictions for %d strategies",
				row.Subject, row.Period, len(row.Predicted), len(strategies))
		}
		record := []string{
			row.Subject,
			strconv.Itoa(row.Period),
			row.Action.String(),
			row.Own.String(),
		}
		for _, a := range row.Predicted {
			record = append(record, a.String())
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write prediction row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush predictions: %w", err)
	}
	return nil
}

func (w *Writer) WriteFits(records []FitRecord) error {
	path := filepath.Join(w.baseDir, "fits.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create fits file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"subject", "strategy", "observed", "agreed", "rate"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write fits header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Subject,
			record.Strategy,
			strconv.Itoa(record.Observed),
			strconv.Itoa(record.Agreed),
			strconv.FormatFloat(record.Rate(), 'f', 4, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write fit row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush fits: %w", err)
	}
	return nil
}
