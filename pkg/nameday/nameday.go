// Package nameday fetches the day's celebrated names from the public
// name-day API and caches the answers in process. Lookups never fail hard:
// when the upstream is unreachable the result carries source "fallback" and
// a placeholder list, and the caller decides how prominently to render it.
package nameday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fkventa/clubsite/pkg/config"
)

// Source markers distinguishing a real upstream answer from a degraded one.
const (
	SourceAPI      = "api"
	SourceFallback = "fallback"
)

// Result is the payload served by the name-day endpoints.
type Result struct {
	Date   string   `json:"date"`
	Names  []string `json:"names"`
	Source string   `json:"source"`
	Error  string   `json:"error,omitempty"`
}

// latvianMonths holds month names in the genitive-free nominative form used
// for "31. augusts" style dates.
var latvianMonths = [...]string{
	"janvāris", "februāris", "marts", "aprīlis", "maijs", "jūnijs",
	"jūlijs", "augusts", "septembris", "oktobris", "novembris", "decembris",
}

// FormatDate renders a date the way the site displays it, e.g. "31. augusts".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d. %s", t.Day(), latvianMonths[t.Month()-1])
}

type cacheEntry struct {
	result    *Result
	expiresAt time.Time
}

// Client queries the upstream name-day API with per-date caching.
type Client struct {
	baseURL    string
	country    string
	todayTTL   time.Duration
	dateTTL    time.Duration
	httpClient *http.Client

	mu    sync.RWMutex
	cache map[string]cacheEntry

	now func() time.Time
}

// NewClient builds a Client from configuration.
func NewClient(cfg config.NamedayConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		country:    cfg.Country,
		todayTTL:   cfg.TodayTTL,
		dateTTL:    cfg.DateTTL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      make(map[string]cacheEntry),
		now:        time.Now,
	}
}

// Today returns the names celebrated today, cached for the configured
// today TTL (one hour by default).
func (c *Client) Today(ctx context.Context) *Result {
	return c.lookup(ctx, c.now(), c.todayTTL)
}

// ForDate returns the names celebrated on an arbitrary date, cached for the
// configured date TTL (24 hours by default).
func (c *Client) ForDate(ctx context.Context, date time.Time) *Result {
	return c.lookup(ctx, date, c.dateTTL)
}

// Refresh drops all cached entries so the next lookup hits the upstream.
func (c *Client) Refresh() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry)
	c.mu.Unlock()
}

func (c *Client) lookup(ctx context.Context, date time.Time, ttl time.Duration) *Result {
	key := fmt.Sprintf("%02d-%02d", date.Month(), date.Day())

	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.result
	}

	result := c.fetch(ctx, date)
	if result.Source == SourceAPI {
		c.mu.Lock()
		c.cache[key] = cacheEntry{result: result, expiresAt: c.now().Add(ttl)}
		c.mu.Unlock()
	}
	return result
}

// upstreamResponse mirrors the relevant part of the API answer:
// {"nameday": {"lv": "Aigars, Vilhelmīne"}}
type upstreamResponse struct {
	Nameday map[string]string `json:"nameday"`
}

func (c *Client) fetch(ctx context.Context, date time.Time) *Result {
	endpoint := fmt.Sprintf("%s/api/V1/getdate?%s", c.baseURL, url.Values{
		"day":     {fmt.Sprintf("%d", date.Day())},
		"month":   {fmt.Sprintf("%d", int(date.Month()))},
		"country": {c.country},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return c.fallback(date, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fallback(date, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.fallback(date, fmt.Errorf("upstream status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return c.fallback(date, err)
	}

	var parsed upstreamResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return c.fallback(date, err)
	}

	names := splitNames(parsed.Nameday[c.country])
	if len(names) == 0 {
		return c.fallback(date, fmt.Errorf("no names for country %s", c.country))
	}

	return &Result{
		Date:   FormatDate(date),
		Names:  names,
		Source: SourceAPI,
	}
}

func (c *Client) fallback(date time.Time, cause error) *Result {
	return &Result{
		Date:   FormatDate(date),
		Names:  []string{"Vārda dienu saraksts šobrīd nav pieejams"},
		Source: SourceFallback,
		Error:  cause.Error(),
	}
}

func splitNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}
