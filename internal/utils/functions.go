package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadDownloadList loads a YAML sequence of download entries. Every entry
// needs a link, an output path and an output name.
func ReadDownloadList(filePath string) ([]DownloadEntry, error) {
	log := GetLogger("config")
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML file: %w", err)
	}
	var entries []DownloadEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing YAML file: %w", err)
	}
	for i, entry := range entries {
		switch {
		case entry.URL == "":
			return nil, fmt.Errorf("missing link for entry %d", i+1)
		case entry.OutputPath == "":
			return nil, fmt.Errorf("missing path for entry %d", i+1)
		case entry.OutputName == "":
			return nil, fmt.Errorf("missing name for entry %d", i+1)
		}
	}
	log.Debug().Int("count", len(entries)).Msg("Entries loaded from YAML")
	return entries, nil
}
