package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rally-results-service/internal/content"
	"rally-results-service/internal/domain/rally"
)

// Config controls how the client reaches the content store's query API.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client runs GROQ queries against the hosted content store and maps the
// documents onto domain types.
type Client struct {
	baseURL    string
	dataset    string
	apiVersion string
	token      string
	httpClient httpDoer
	now        func() time.Time
}

var _ content.Store = (*Client)(nil)

// NewClient constructs a client from an explicit configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    resolveBaseURL(cfg.BaseURL, cfg.ProjectID, cfg.UseCDN),
		dataset:    resolveDataset(cfg.Dataset),
		apiVersion: resolveAPIVersion(cfg.APIVersion),
		token:      cfg.Token,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchRallyBySlug returns the rally with its stages dereferenced in order.
func (c *Client) FetchRallyBySlug(ctx context.Context, slug string) (rally.Rally, error) {
	var doc *rallyDoc
	if err := c.query(ctx, rallyBySlugQuery, map[string]string{"slug": slug}, &doc); err != nil {
		return rally.Rally{}, fmt.Errorf("fetch rally %q: %w", slug, err)
	}
	if doc == nil || doc.ID == "" {
		return rally.Rally{}, fmt.Errorf("rally %q: %w", slug, content.ErrNotFound)
	}
	return mapRally(*doc), nil
}

// FetchLiveResults returns every live result document referencing the rally.
func (c *Client) FetchLiveResults(ctx context.Context, rallyID string) ([]rally.LiveResult, error) {
	var docs []liveResultDoc
	if err := c.query(ctx, liveResultsQuery, map[string]string{"rallyId": rallyID}, &docs); err != nil {
		return nil, fmt.Errorf("fetch live results for %q: %w", rallyID, err)
	}
	return mapLiveResults(docs), nil
}

// FetchStandings returns the standings of every rally.
func (c *Client) FetchStandings(ctx context.Context) ([]rally.StandingsEntry, error) {
	var docs []standingsDoc
	if err := c.query(ctx, standingsQuery, nil, &docs); err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	return mapStandings(docs), nil
}

// FetchStageResult returns the classification of a stage, empty when none is published.
func (c *Client) FetchStageResult(ctx context.Context, stageID string) (rally.StageResult, error) {
	var doc *stageResultDoc
	if err := c.query(ctx, stageResultQuery, map[string]string{"stageId": stageID}, &doc); err != nil {
		return rally.StageResult{}, fmt.Errorf("fetch stage result %q: %w", stageID, err)
	}
	return mapStageResult(stageID, doc), nil
}

// FetchChampionships returns all championships, most recent season first.
func (c *Client) FetchChampionships(ctx context.Context) ([]rally.Championship, error) {
	var docs []championshipDoc
	if err := c.query(ctx, championshipsQuery, nil, &docs); err != nil {
		return nil, fmt.Errorf("fetch championships: %w", err)
	}
	return mapChampionships(docs), nil
}

func (c *Client) query(ctx context.Context, groq string, params map[string]string, dest any) error {
	req, err := c.buildRequest(ctx, groq, params)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &content.RateLimitError{
			Store:      storeName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &content.StatusError{
			Store:      storeName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	payload := queryResponse[json.RawMessage]{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("%s: decode response: %w", storeName, err)
	}
	if len(payload.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload.Result, dest); err != nil {
		return fmt.Errorf("%s: decode result: %w", storeName, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, groq string, params map[string]string) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s/v%s/data/query/%s", c.baseURL, c.apiVersion, url.PathEscape(c.dataset))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		q.Set("$"+name, string(encoded))
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}
