package utils

import (
	"context"
	"io"
	"path/filepath"
)

// ChunkSize is the number of bytes read from a stream per progress update.
const ChunkSize = 8192

const ToolUserAgent = "grabfile"

// Source opens a remote resource for one URL scheme.
type Source interface {
	Open(ctx context.Context, rawURL string) (*Stream, error)
}

type Stream struct {
	Body   io.ReadCloser
	Length int64 // -1 when the server did not say
}

type DownloadEntry struct {
	URL        string `yaml:"link"`
	OutputPath string `yaml:"path"`
	OutputName string `yaml:"name"`
}

// Destination is the file the entry is written to.
func (e DownloadEntry) Destination() string {
	return filepath.Join(e.OutputPath, e.OutputName)
}
