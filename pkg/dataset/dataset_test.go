package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const fruitCSV = `name, calories, fat, carbs
Frozen Yogurt, 159, 6.0, 24
Jelly bean, 375, 0.0, 94
KitKat, 518, 26.0, 65
`

func TestParseTable(t *testing.T) {
	table, err := ParseTable(strings.NewReader(fruitCSV))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	wantHeaders := []string{"name", "calories", "fat", "carbs"}
	if diff := cmp.Diff(wantHeaders, table.Headers); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(table.Rows))
	}
	if got := table.Column("FAT"); got != 2 {
		t.Errorf("Column(FAT) = %d, want 2", got)
	}
	if got := table.Column("missing"); got != -1 {
		t.Errorf("Column(missing) = %d, want -1", got)
	}
}

func TestTableRecords(t *testing.T) {
	table, err := ParseTable(strings.NewReader(fruitCSV))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	recs := table.Records()
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	if recs[1]["name"] != "Jelly bean" || recs[1]["calories"] != "375" {
		t.Errorf("unexpected record: %v", recs[1])
	}
}

func TestParseTableEmpty(t *testing.T) {
	if _, err := ParseTable(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParsePickups(t *testing.T) {
	src := `lat,lng,hour
40.71,-74.00,9
40.72,-73.99,9
bad,-73.99,9
40.73,-73.98,17
40.74,-73.97,99
`
	pickups, err := ParsePickups(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParsePickups: %v", err)
	}
	if len(pickups) != 3 {
		t.Fatalf("got %d pickups, want 3 (bad rows skipped)", len(pickups))
	}
	if got := ByHour(pickups, 9); len(got) != 2 {
		t.Errorf("ByHour(9) = %d pickups, want 2", len(got))
	}
	hist := HourHistogram(pickups)
	if hist[9] != 2 || hist[17] != 1 {
		t.Errorf("histogram = %v", hist)
	}
}

func TestParsePickupsFromTimestamp(t *testing.T) {
	src := `pickup_datetime,lat,lon
2014-04-01 07:15:00,40.71,-74.00
2014-04-01 19:40:00,40.72,-73.99
`
	pickups, err := ParsePickups(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParsePickups: %v", err)
	}
	if len(pickups) != 2 {
		t.Fatalf("got %d pickups, want 2", len(pickups))
	}
	if pickups[0].Hour != 7 || pickups[1].Hour != 19 {
		t.Errorf("hours = %d, %d; want 7, 19", pickups[0].Hour, pickups[1].Hour)
	}
	if pickups[0].Minute != 15 || pickups[1].Minute != 40 {
		t.Errorf("minutes = %d, %d; want 15, 40", pickups[0].Minute, pickups[1].Minute)
	}
	hist := MinuteHistogram(pickups, 7)
	if hist[15] != 1 || hist[40] != 0 {
		t.Errorf("minute histogram = %v", hist)
	}
}

func TestParsePickupsMissingColumns(t *testing.T) {
	if _, err := ParsePickups(strings.NewReader("a,b\n1,2\n")); err == nil {
		t.Error("expected error for missing lat/lon")
	}
}

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(fruitCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != fruitCSV {
		t.Error("file content mismatch")
	}
}

func TestFetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote payload"))
	}))
	defer srv.Close()

	data, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "remote payload" {
		t.Errorf("got %q", data)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected error on 404")
	}
}

func TestFuzzyFilter(t *testing.T) {
	rows := [][]string{
		{"Frozen Yogurt", "159"},
		{"Jelly bean", "375"},
		{"KitKat", "518"},
	}

	if got := FuzzyFilter(rows, "", 2); len(got) != 3 {
		t.Errorf("empty query kept %d rows, want all", len(got))
	}
	if got := FuzzyFilter(rows, "jelly", 0); len(got) != 1 || got[0][0] != "Jelly bean" {
		t.Errorf("substring match = %v", got)
	}
	// One edit away: "yogurt" vs "yogrt".
	if got := FuzzyFilter(rows, "yogrt", 2); len(got) != 1 || got[0][0] != "Frozen Yogurt" {
		t.Errorf("fuzzy match = %v", got)
	}
	if got := FuzzyFilter(rows, "yogrt", 0); len(got) != 0 {
		t.Errorf("maxDist 0 should not fuzzy match, got %v", got)
	}
}

func TestFilterRecords(t *testing.T) {
	recs := []map[string]string{
		{"name": "Frozen Yogurt"},
		{"name": "KitKat"},
	}
	got := FilterRecords(recs, "kitkat", 0)
	if len(got) != 1 || got[0]["name"] != "KitKat" {
		t.Errorf("FilterRecords = %v", got)
	}
}

func TestParseJSONRows(t *testing.T) {
	rows, err := ParseJSONRows([]byte(`[{"x":1,"y":"a"},{"x":2,"y":"b"}]`))
	if err != nil {
		t.Fatalf("ParseJSONRows: %v", err)
	}
	if len(rows) != 2 || rows[0]["y"] != "a" {
		t.Errorf("rows = %v", rows)
	}
	if _, err := ParseJSONRows([]byte(`{"not":"array"}`)); err == nil {
		t.Error("expected error for non-array input")
	}
}
