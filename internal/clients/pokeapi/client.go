// Package pokeapi is the creature data provider backed by pokeapi.co
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/creature-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/creature-api/internal/entities/creature"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

const (
	// DefaultBaseURL is the public pokeapi endpoint
	DefaultBaseURL = "https://pokeapi.co/api/v2/"
	// DefaultHTTPTimeout bounds every provider request
	DefaultHTTPTimeout = 30 * time.Second
	// SearchLimit is how many listed names a search scans
	SearchLimit = 2000
)

// Client looks up creature records by name or id
type Client interface {
	// GetCreature fetches a record by name. Names are case-insensitive.
	GetCreature(ctx context.Context, name string) (*creature.Record, error)

	// GetCreatureByID fetches a record by provider id
	GetCreatureByID(ctx context.Context, id int) (*creature.Record, error)

	// ListCreatures returns one page of creature references
	ListCreatures(ctx context.Context, limit, offset int) (*creature.Page, error)

	// SearchCreatures returns the listed creatures whose name contains query
	SearchCreatures(ctx context.Context, query string) ([]*creature.Reference, error)
}

// Config contains configuration options for the HTTP client
type Config struct {
	// BaseURL of the provider (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for provider requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient replaces the default http.Client (optional)
	HTTPClient *http.Client
}

// Validate checks the optional fields that were set
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			vb.InvalidField("BaseURL", "must be an absolute URL")
		}
	}
	if c.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must not be negative")
	}

	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates the HTTP provider client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.HTTPTimeout
		if timeout == 0 {
			timeout = DefaultHTTPTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// pokemonResponse is the subset of /pokemon/{name} this service reads
type pokemonResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Stats []struct {
		BaseStat json.Number `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
}

type listResponse struct {
	Count   int `json:"count"`
	Results []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

// NormalizeName trims and lower-cases a creature name the way the provider
// indexes it
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *client) GetCreature(ctx context.Context, name string) (*creature.Record, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	record, err := c.getPokemon(ctx, url.PathEscape(normalized))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %q", normalized)
	}
	return record, nil
}

func (c *client) GetCreatureByID(ctx context.Context, id int) (*creature.Record, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("creature id must be positive, got %d", id)
	}

	record, err := c.getPokemon(ctx, strconv.Itoa(id))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %d", id)
	}
	return record, nil
}

func (c *client) ListCreatures(ctx context.Context, limit, offset int) (*creature.Page, error) {
	if limit <= 0 {
		return nil, errors.InvalidArgumentf("limit must be positive, got %d", limit)
	}
	if offset < 0 {
		return nil, errors.InvalidArgumentf("offset must not be negative, got %d", offset)
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var resp listResponse
	if err := c.getJSON(ctx, "pokemon?"+query.Encode(), &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}

	page := &creature.Page{
		Count:   resp.Count,
		Results: make([]*creature.Reference, 0, len(resp.Results)),
	}
	for _, result := range resp.Results {
		page.Results = append(page.Results, &creature.Reference{Name: result.Name, URL: result.URL})
	}
	return page, nil
}

func (c *client) SearchCreatures(ctx context.Context, query string) ([]*creature.Reference, error) {
	return searchPage(ctx, c, query)
}

// searchPage scans the first SearchLimit listed creatures for a
// case-insensitive substring match
func searchPage(ctx context.Context, c Client, query string) ([]*creature.Reference, error) {
	needle := NormalizeName(query)
	if needle == "" {
		return nil, errors.InvalidArgument("search query is required")
	}

	page, err := c.ListCreatures(ctx, SearchLimit, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search creatures for %q", needle)
	}

	matches := make([]*creature.Reference, 0)
	for _, ref := range page.Results {
		if strings.Contains(strings.ToLower(ref.Name), needle) {
			matches = append(matches, ref)
		}
	}
	return matches, nil
}

func (c *client) getPokemon(ctx context.Context, key string) (*creature.Record, error) {
	var resp pokemonResponse
	if err := c.getJSON(ctx, "pokemon/"+key, &resp); err != nil {
		return nil, err
	}

	record := &creature.Record{
		ID:    resp.ID,
		Name:  resp.Name,
		Stats: make([]creature.StatEntry, 0, len(resp.Stats)),
	}
	for _, s := range resp.Stats {
		record.Stats = append(record.Stats, creature.StatEntry{Name: s.Stat.Name, BaseStat: s.BaseStat})
	}
	return record, nil
}

// getJSON issues a GET against the provider and decodes the body into out.
// 404 is NotFound, any other failure status is Unavailable and an
// undecodable body is DataFormat.
func (c *client) getJSON(ctx context.Context, path string, out interface{}) error {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build provider request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "provider request failed", "url", endpoint, "error", err)
		return errors.WrapWithCode(err, errors.CodeUnavailable, "creature provider is unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	slog.DebugContext(ctx, "provider request",
		"url", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFoundf("creature provider has no resource %q", path).WithMeta("path", path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errors.Unavailablef("creature provider returned %s", resp.Status).
			WithMeta("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeDataFormat, "malformed provider response for %q", path)
	}
	return nil
}
