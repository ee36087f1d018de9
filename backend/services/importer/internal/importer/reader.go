package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// sourceDocument is the top-level shape of one export file. Some exporter
// versions wrap the document in a one-element array; both forms are accepted.
type sourceDocument struct {
	Activities []RawActivityRecord `json:"activities"`
}

// readSources loads every configured export file in order and returns the
// concatenated records, preserving file order and in-file order. A missing
// file is logged as a warning and contributes nothing; a file that exists
// but fails to parse aborts the read, because a malformed export cannot be
// trusted.
func readSources(paths []string, logger *zap.Logger) ([]RawActivityRecord, int, error) {
	var merged []RawActivityRecord
	filesRead := 0

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Warn("source file missing, treating as empty", zap.String("path", path))
				continue
			}
			return nil, filesRead, fmt.Errorf("read source %s: %w", path, err)
		}

		records, err := decodeSource(data)
		if err != nil {
			return nil, filesRead, fmt.Errorf("parse source %s: %w", path, err)
		}

		logger.Info("source file read",
			zap.String("path", path),
			zap.Int("records", len(records)))
		merged = append(merged, records...)
		filesRead++
	}

	return merged, filesRead, nil
}

func decodeSource(data []byte) ([]RawActivityRecord, error) {
	var doc sourceDocument
	objErr := json.Unmarshal(data, &doc)
	if objErr == nil {
		return doc.Activities, nil
	}

	var wrapped []sourceDocument
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, objErr
	}
	if len(wrapped) != 1 {
		return nil, fmt.Errorf("expected a single wrapped document, got %d", len(wrapped))
	}
	return wrapped[0].Activities, nil
}
