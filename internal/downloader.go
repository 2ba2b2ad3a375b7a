package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	grabhttp "github.com/tanq16/grabfile/internal/downloaders/http"
	"github.com/tanq16/grabfile/internal/downloaders/s3"
	"github.com/tanq16/grabfile/internal/output"
	"github.com/tanq16/grabfile/internal/utils"
)

type DownloadConfig struct {
	HTTPClientConfig utils.HTTPClientConfig
	S3Config         s3.Config
}

// Downloader fetches one resource at a time into a local file and reports
// progress on its output stream.
type Downloader struct {
	sources map[string]utils.Source
	printer *output.Printer
}

func NewDownloader(cfg DownloadConfig, out io.Writer) *Downloader {
	httpSource := grabhttp.NewSource(utils.NewHTTPClient(cfg.HTTPClientConfig))
	return &Downloader{
		sources: map[string]utils.Source{
			"http":  httpSource,
			"https": httpSource,
			"s3":    s3.NewSource(cfg.S3Config),
		},
		printer: output.NewPrinter(out),
	}
}

// Download writes the resource at rawURL to outputPath/outputFilename,
// creating outputPath if needed and replacing any existing file. With a
// known length the body is streamed in utils.ChunkSize pieces with a
// progress redraw after each one; otherwise it is read whole and written once.
func (d *Downloader) Download(ctx context.Context, rawURL, outputPath, outputFilename string) error {
	log := utils.GetLogger("downloader").With().Str("run", uuid.NewString()).Logger()
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	localFile := filepath.Join(outputPath, outputFilename)

	source, err := d.sourceFor(rawURL)
	if err != nil {
		return err
	}
	log.Debug().Str("op", "downloader").Str("url", rawURL).Str("file", localFile).Msg("Opening stream")
	stream, err := source.Open(ctx, rawURL)
	if err != nil {
		return err
	}
	defer stream.Body.Close()

	var written int64
	if stream.Length < 0 {
		d.printer.Notice(output.MsgNoContentLength)
		written, err = writeWhole(stream.Body, localFile)
	} else {
		log.Debug().Str("op", "downloader").Int64("length", stream.Length).Msg("Streaming with progress")
		written, err = d.writeChunks(stream, localFile)
	}
	if err != nil {
		return err
	}
	log.Debug().Str("op", "downloader").Int64("bytes", written).Msgf("Download finished for %s", localFile)
	d.printer.Complete()
	return nil
}

func (d *Downloader) sourceFor(rawURL string) (utils.Source, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	source, ok := d.sources[parsed.Scheme]
	if !ok {
		return nil, fmt.Errorf("unsupported scheme: %q", parsed.Scheme)
	}
	return source, nil
}

func writeWhole(body io.Reader, localFile string) (int64, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return 0, fmt.Errorf("error reading response body: %w", err)
	}
	if err := os.WriteFile(localFile, data, 0644); err != nil {
		return 0, fmt.Errorf("error writing output file: %w", err)
	}
	return int64(len(data)), nil
}

func (d *Downloader) writeChunks(stream *utils.Stream, localFile string) (downloaded int64, err error) {
	outFile, err := os.Create(localFile)
	if err != nil {
		return 0, fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing output file: %w", closeErr)
		}
	}()

	buffer := make([]byte, utils.ChunkSize)
	for {
		bytesRead, readErr := readChunk(stream.Body, buffer)
		if bytesRead > 0 {
			if _, writeErr := outFile.Write(buffer[:bytesRead]); writeErr != nil {
				return downloaded, fmt.Errorf("error writing to output file: %w", writeErr)
			}
			downloaded += int64(bytesRead)
			d.printer.Progress(downloaded, stream.Length)
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return downloaded, nil
			}
			return downloaded, fmt.Errorf("error reading response body: %w", readErr)
		}
	}
}

// readChunk fills buf unless the stream ends or fails first. Unlike
// io.ReadFull it passes io.ErrUnexpectedEOF from the body through, so a
// truncated response is not mistaken for a short final chunk.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
