package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/okian/gradecast/internal/domain/model"
	"github.com/okian/gradecast/pkg/logger"
)

// File permission constants.
const (
	resultFilePermission = 0600
)

// SaveResults writes predictions as an indented UTF-8 JSON array. An empty
// path selects the timestamped default filename. Returns the filename
// written.
func SaveResults(ctx context.Context, results []model.Prediction, path string) (string, error) {
	if path == "" {
		timestamp := time.Now().Format("20060102_150405")
		path = "student_predictions_" + timestamp + ".json"
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}

	if err := os.WriteFile(path, data, resultFilePermission); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenFile, err)
	}

	logger.Get().Named("store").Info(ctx, "results saved",
		logger.String("file", path),
		logger.Int("count", len(results)),
	)
	return path, nil
}

// LoadResults reads back a JSON results file written by SaveResults.
func LoadResults(path string) ([]model.Prediction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFile, err)
	}

	var results []model.Prediction
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	return results, nil
}
