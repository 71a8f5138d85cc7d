// Package dataset loads the tabular data the gallery examples display.
// Sources are local files or HTTP URLs; parsing failures are reported
// to the caller, which treats them as fatal during startup.
package dataset

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// fetchClient bounds remote fetches so a dead host fails startup
// instead of hanging it.
var fetchClient = &http.Client{Timeout: 30 * time.Second}

// Fetch reads the contents of a local file or an http(s) URL.
func Fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := fetchClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: unexpected status %s", source, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

// Table holds CSV data with its header row split off.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ParseTable reads CSV input whose first record is the header row.
func ParseTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse csv: empty input")
	}
	return &Table{Headers: records[0], Rows: records[1:]}, nil
}

// Column returns the index of the named header, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Headers {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

// Records converts rows to maps keyed by header name, the shape the
// table widget's items binding expects.
func (t *Table) Records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

// Pickup is one taxi pickup event.
type Pickup struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
}

// ParsePickups reads pickup rows from CSV. Required columns are lat
// and lon; the hour comes from an hour column when present, otherwise
// from the hour of a pickup_datetime column. Rows that fail to parse
// are skipped.
func ParsePickups(r io.Reader) ([]Pickup, error) {
	table, err := ParseTable(r)
	if err != nil {
		return nil, err
	}
	latCol := table.Column("lat")
	lonCol := table.Column("lon")
	if lonCol < 0 {
		lonCol = table.Column("lng")
	}
	if latCol < 0 || lonCol < 0 {
		return nil, fmt.Errorf("parse pickups: missing lat/lon columns in %v", table.Headers)
	}
	hourCol := table.Column("hour")
	timeCol := table.Column("pickup_datetime")
	if hourCol < 0 && timeCol < 0 {
		return nil, fmt.Errorf("parse pickups: no hour or pickup_datetime column in %v", table.Headers)
	}

	pickups := make([]Pickup, 0, len(table.Rows))
	for _, row := range table.Rows {
		lat, err1 := strconv.ParseFloat(row[latCol], 64)
		lon, err2 := strconv.ParseFloat(row[lonCol], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		hour, minute := -1, 0
		if hourCol >= 0 {
			if h, err := strconv.Atoi(row[hourCol]); err == nil {
				hour = h
			}
		} else if ts := parseTimestamp(row[timeCol]); !ts.IsZero() {
			hour, minute = ts.Hour(), ts.Minute()
		}
		if hour < 0 || hour > 23 {
			continue
		}
		pickups = append(pickups, Pickup{Lat: lat, Lon: lon, Hour: hour, Minute: minute})
	}
	return pickups, nil
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ByHour filters pickups to a single hour of the day.
func ByHour(pickups []Pickup, hour int) []Pickup {
	out := make([]Pickup, 0, len(pickups))
	for _, p := range pickups {
		if p.Hour == hour {
			out = append(out, p)
		}
	}
	return out
}

// HourHistogram buckets pickups by hour of day.
func HourHistogram(pickups []Pickup) [24]int {
	var counts [24]int
	for _, p := range pickups {
		counts[p.Hour]++
	}
	return counts
}

// MinuteHistogram buckets pickups within one hour by minute.
func MinuteHistogram(pickups []Pickup, hour int) [60]int {
	var counts [60]int
	for _, p := range pickups {
		if p.Hour == hour {
			counts[p.Minute]++
		}
	}
	return counts
}

// ParseJSONRows decodes a JSON array of objects, the format remote
// chart datasets ship in.
func ParseJSONRows(data []byte) ([]map[string]any, error) {
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse json rows: %w", err)
	}
	return rows, nil
}
