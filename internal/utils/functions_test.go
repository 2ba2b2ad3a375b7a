package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadDownloadList(t *testing.T) {
	path := writeList(t, `
- link: https://example.test/a.bin
  path: out
  name: a.bin
- link: s3://bucket/b.tar
  path: /tmp/data
  name: b.tar
`)
	entries, err := ReadDownloadList(path)
	require.NoError(t, err)
	require.Equal(t, []DownloadEntry{
		{URL: "https://example.test/a.bin", OutputPath: "out", OutputName: "a.bin"},
		{URL: "s3://bucket/b.tar", OutputPath: "/tmp/data", OutputName: "b.tar"},
	}, entries)
	require.Equal(t, filepath.Join("/tmp/data", "b.tar"), entries[1].Destination())
}

func TestReadDownloadListRejectsIncompleteEntries(t *testing.T) {
	tests := map[string]string{
		"missing link": "- path: out\n  name: a\n",
		"missing path": "- link: http://x/a\n  name: a\n",
		"missing name": "- link: http://x/a\n  path: out\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadDownloadList(writeList(t, content))
			require.ErrorContains(t, err, name+" for entry 1")
		})
	}
}

func TestReadDownloadListBadInput(t *testing.T) {
	_, err := ReadDownloadList(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "error reading YAML file")

	_, err = ReadDownloadList(writeList(t, "link: [unterminated"))
	require.ErrorContains(t, err, "error parsing YAML file")
}
