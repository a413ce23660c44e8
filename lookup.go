package main

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/juju/ratelimit"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TrackResult is one candidate returned by the music catalog.
type TrackResult struct {
	TrackTitle string
	ArtistName string
	PreviewURL string
	ArtworkURL string
}

func (r TrackResult) Label() string {
	return joinTitle(r.TrackTitle, r.ArtistName)
}

// Searcher looks tracks up in a remote catalog. Failures come back as an
// empty result, never as an error.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) []TrackResult
}

type catalogResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		TrackName     string `json:"trackName"`
		ArtistName    string `json:"artistName"`
		PreviewURL    string `json:"previewUrl"`
		ArtworkURL100 string `json:"artworkUrl100"`
		ArtworkURL60  string `json:"artworkUrl60"`
	} `json:"results"`
}

// CatalogClient talks to the iTunes Search API.
type CatalogClient struct {
	baseURL      string
	country      string
	defaultLimit int
	httpClient   *http.Client
	limiter      *ratelimit.Bucket
	logger       *zap.Logger
}

func NewCatalogClient(cfg LookupConfig, logger *zap.Logger) *CatalogClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &CatalogClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		country:      cfg.Country,
		defaultLimit: cfg.Limit,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		logger:       logger,
	}
	if cfg.RatePerMinute > 0 {
		interval := time.Minute / time.Duration(cfg.RatePerMinute)
		c.limiter = ratelimit.NewBucket(interval, int64(cfg.RatePerMinute))
	}
	return c
}

func (c *CatalogClient) Search(ctx context.Context, query string, limit int) []TrackResult {
	results, err := c.search(ctx, query, limit)
	if err != nil {
		c.logger.Warn("catalog lookup failed", zap.String("query", query), zap.Error(err))
		return []TrackResult{}
	}
	return results
}

func (c *CatalogClient) search(ctx context.Context, query string, limit int) ([]TrackResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []TrackResult{}, nil
	}
	if limit <= 0 {
		limit = c.defaultLimit
	}
	if c.limiter != nil && c.limiter.TakeAvailable(1) == 0 {
		return nil, errors.New("lookup rate limit reached")
	}

	params := url.Values{}
	params.Set("term", query)
	params.Set("entity", "song")
	params.Set("limit", strconv.Itoa(limit))
	if c.country != "" {
		params.Set("country", c.country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build lookup request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "lookup request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read lookup response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("lookup returned status %d", resp.StatusCode)
	}

	var parsed catalogResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "decode lookup response")
	}

	results := make([]TrackResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		artwork := r.ArtworkURL100
		if artwork == "" {
			artwork = r.ArtworkURL60
		}
		results = append(results, TrackResult{
			TrackTitle: r.TrackName,
			ArtistName: r.ArtistName,
			PreviewURL: r.PreviewURL,
			ArtworkURL: artwork,
		})
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

type searchResultsMsg struct {
	seq     int
	query   string
	results []TrackResult
}

func searchCmd(s Searcher, seq int, query string, limit int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return searchResultsMsg{seq: seq, query: query, results: s.Search(ctx, query, limit)}
	}
}
