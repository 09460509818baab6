// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package hebcal fetches Shabbat candle-lighting times from the Hebcal
// public API and extracts the fields the site displays.
package hebcal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Hebcal API host.
	DefaultBaseURL = "https://www.hebcal.com"

	requestTimeout = 10 * time.Second
)

// geonameIDs maps supported city slugs to GeoNames identifiers.
// Unknown cities fall back to Minsk.
var geonameIDs = map[string]int{
	"minsk":    625144,
	"brest":    629634,
	"gomel":    627904,
	"bobruysk": 629803,
	"mogilev":  625665,
}

// timeRegex extracts the HH:MM substring from item titles such as
// "Candle lighting: 17:28".
var timeRegex = regexp.MustCompile(`(\d{2}:\d{2})`)

// Item is one entry of the Hebcal shabbat feed.
type Item struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Hebrew   string `json:"hebrew,omitempty"`
	Memo     string `json:"memo,omitempty"`
}

// feed is the raw Hebcal response shape.
type feed struct {
	Title    string `json:"title"`
	Location struct {
		Title string `json:"title"`
		City  string `json:"city"`
		Tzid  string `json:"tzid"`
	} `json:"location"`
	Items []Item `json:"items"`
}

// TimedEvent is a moment with its extracted wall-clock time.
type TimedEvent struct {
	Time string `json:"time"` // "HH:MM"
	Date string `json:"date"` // ISO timestamp from the feed
}

// Times is the parsed candle-lighting data for one city and week.
type Times struct {
	CandleLighting *TimedEvent `json:"candleLighting"`
	Havdalah       *TimedEvent `json:"havdalah"`
	Parashat       string      `json:"parashat,omitempty"`
	HebrewDate     string      `json:"hebrewDate,omitempty"`
	ShabbatName    string      `json:"shabbatName,omitempty"`
	City           string      `json:"city"`
}

// Client fetches Shabbat times.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Hebcal client. An empty baseURL selects the public API.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// GeonameID resolves a city slug to its GeoNames id, defaulting to Minsk.
func GeonameID(city string) int {
	if id, ok := geonameIDs[strings.ToLower(city)]; ok {
		return id
	}
	return geonameIDs["minsk"]
}

// KnownCity reports whether the city slug has a geoname mapping.
func KnownCity(city string) bool {
	_, ok := geonameIDs[strings.ToLower(city)]
	return ok
}

// FetchShabbat retrieves and parses candle-lighting data for a city.
func (c *Client) FetchShabbat(ctx context.Context, city string) (*Times, error) {
	u := c.baseURL + "/shabbat?cfg=json&geonameid=" + strconv.Itoa(GeonameID(city)) + "&M=on&b=18"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching shabbat times: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hebcal API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var f feed
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding hebcal response: %w", err)
	}

	return parse(&f), nil
}

// parse extracts the displayed fields from the raw feed.
func parse(f *feed) *Times {
	times := &Times{City: f.Location.City}

	for i := range f.Items {
		item := &f.Items[i]
		switch item.Category {
		case "candles":
			if times.CandleLighting == nil {
				times.CandleLighting = timedEvent(item)
			}
		case "havdalah":
			if times.Havdalah == nil {
				times.Havdalah = timedEvent(item)
			}
		case "parashat":
			if times.Parashat == "" {
				times.Parashat = strings.TrimPrefix(item.Title, "Parashat ")
				times.HebrewDate = item.Hebrew
			}
		case "holiday":
			if times.ShabbatName == "" && item.Memo != "" {
				times.ShabbatName = item.Title
			}
		}
	}

	return times
}

// timedEvent builds a TimedEvent from an item title, or nil when the
// title carries no HH:MM time.
func timedEvent(item *Item) *TimedEvent {
	m := timeRegex.FindString(item.Title)
	if m == "" {
		return nil
	}
	return &TimedEvent{Time: m, Date: item.Date}
}
