package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous, level := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(level)
	})
	return &buf
}

func isolateAWSEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := parseS3URL("s3://public-data/dir/file.bin")
	require.NoError(t, err)
	require.Equal(t, "public-data", bucket)
	require.Equal(t, "dir/file.bin", key)

	for _, bad := range []string{"s3://bucket-only", "s3:///key", "https://bucket/key", "s3://bucket/"} {
		_, _, err := parseS3URL(bad)
		require.Error(t, err, bad)
	}
}

func TestOpenReadsObject(t *testing.T) {
	isolateAWSEnv(t)
	logs := captureLogs(t)
	requests := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- r.Clone(context.Background())
		w.Header().Set("Content-Length", "11")
		w.Write([]byte("hello world"))
	}))
	defer srv.Close()

	source := NewSource(Config{Endpoint: srv.URL})
	stream, err := source.Open(context.Background(), "s3://public-data/dir/file.bin")
	require.NoError(t, err)
	defer stream.Body.Close()

	require.Equal(t, int64(11), stream.Length)
	data, err := io.ReadAll(stream.Body)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(data))
	got := <-requests
	require.Equal(t, "/public-data/dir/file.bin", got.URL.Path)
	require.Empty(t, got.Header.Get("Authorization"))
	require.Contains(t, logs.String(), `"component":"s3"`)
}

func TestOpenMissingObject(t *testing.T) {
	isolateAWSEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`))
	}))
	defer srv.Close()

	source := NewSource(Config{Endpoint: srv.URL})
	_, err := source.Open(context.Background(), "s3://public-data/nope")
	require.ErrorContains(t, err, "error getting S3 object")
}
