package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/switchboard-io/switchboard/internal/domain"
	"github.com/switchboard-io/switchboard/internal/logger"
)

// File is the on-disk seed format: a flat list of destination urls.
//
//	domains:
//	  - example.com
//	  - https://a.example.com
type File struct {
	Domains []string `yaml:"domains"`
}

// Loader reads a seed file and inserts its domains at startup.
type Loader struct {
	filePath string
	store    domain.Store
	logger   logger.Logger
}

// NewLoader creates a new seed loader
func NewLoader(filePath string, store domain.Store, log logger.Logger) *Loader {
	return &Loader{
		filePath: filePath,
		store:    store,
		logger:   log,
	}
}

// Load parses the seed file and inserts every url best-effort: entries
// already present in the store are skipped silently, matching the batch
// insert semantics. Returns how many records were inserted.
func (l *Loader) Load(ctx context.Context) (int, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	inserted := 0
	for _, raw := range file.Domains {
		url := domain.NormalizeURL(raw)
		if url == "" {
			continue
		}

		_, err := l.store.Insert(ctx, url)
		switch {
		case err == nil:
			inserted++
		case domain.IsDuplicate(err):
			l.logger.Debug("seed domain already present",
				logger.String("url", url))
		default:
			return inserted, fmt.Errorf("failed to seed domain %s: %w", url, err)
		}
	}

	l.logger.Info("seed file loaded",
		logger.String("file", l.filePath),
		logger.Int("inserted", inserted),
		logger.Int("total", len(file.Domains)))
	return inserted, nil
}
