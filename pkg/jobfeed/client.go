package jobfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// ErrInvalidFeed is returned when the payload is not a {"jobs": [...]} document
var ErrInvalidFeed = errors.New("jobfeed: invalid feed")

const maxFeedSize = 8 << 20

// NewClient instantiates a feed client
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("jobfeed: url is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		url:        strings.TrimSpace(cfg.URL),
		httpClient: httpClient,
	}, nil
}

// FetchJobs downloads and decodes the whole feed
func (c *Client) FetchJobs(ctx context.Context) ([]Job, error) {
	if c == nil {
		return nil, fmt.Errorf("jobfeed: client is nil")
	}

	body, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = body.Close()
	}()

	return decode(io.LimitReader(body, maxFeedSize))
}

func (c *Client) open(ctx context.Context) (io.ReadCloser, error) {
	u, err := url.Parse(c.url)
	if err != nil || u.Scheme == "" || u.Scheme == "file" {
		path := c.url
		if err == nil && u.Scheme == "file" {
			path = u.Path
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("jobfeed: open %s: %w", path, err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("jobfeed: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jobfeed: request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer func() {
			_ = resp.Body.Close()
		}()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("jobfeed: unexpected status (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return resp.Body, nil
}

func decode(r io.Reader) ([]Job, error) {
	var payload feedResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidFeed, err)
	}
	if payload.Jobs == nil {
		return nil, fmt.Errorf("%w: missing jobs field", ErrInvalidFeed)
	}

	seen := make(map[int]struct{}, len(*payload.Jobs))
	jobs := make([]Job, 0, len(*payload.Jobs))
	for i, posting := range *payload.Jobs {
		if posting.ID == nil {
			return nil, fmt.Errorf("%w: job at index %d has no id", ErrInvalidFeed, i)
		}
		if _, dup := seen[*posting.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate job id %d", ErrInvalidFeed, *posting.ID)
		}
		seen[*posting.ID] = struct{}{}
		jobs = append(jobs, mapPosting(posting))
	}

	return jobs, nil
}

func mapPosting(posting jobPosting) Job {
	return Job{
		ID:           *posting.ID,
		Title:        strings.TrimSpace(posting.Title),
		Company:      strings.TrimSpace(posting.Company),
		Location:     strings.TrimSpace(posting.Location),
		Description:  posting.Description,
		Technologies: []string(posting.Technologies),
		Contract:     strings.TrimSpace(posting.Contract),
		Experience:   strings.TrimSpace(posting.Experience),
	}
}
