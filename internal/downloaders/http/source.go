package grabhttp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tanq16/grabfile/internal/utils"
)

type HTTPSource struct {
	client *utils.HTTPClient
}

func NewSource(client *utils.HTTPClient) *HTTPSource {
	return &HTTPSource{client: client}
}

// Open sends a GET and hands back the live body. Any status outside 2xx is
// an error and the body is closed before returning.
func (s *HTTPSource) Open(ctx context.Context, rawURL string) (*utils.Stream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating GET request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing GET request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return &utils.Stream{Body: resp.Body, Length: resp.ContentLength}, nil
}
