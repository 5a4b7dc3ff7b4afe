package raindrop

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"testing"
)

func TestGetRaindrop(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/raindrop/17" {
			t.Errorf("path = %s, want /raindrop/17", r.URL.Path)
		}
		writeEnvelope(w, map[string]any{"item": testDrop(17, "go", "http")})
	})

	drop, err := client.GetRaindrop(context.Background(), 17)
	if err != nil {
		t.Fatalf("GetRaindrop() error = %v", err)
	}
	if drop.ID != 17 {
		t.Errorf("ID = %d, want 17", drop.ID)
	}
	if len(drop.Tags) != 2 || drop.Tags[0] != "go" || drop.Tags[1] != "http" {
		t.Errorf("Tags = %v, want server order preserved", drop.Tags)
	}
}

func TestCreateRaindrop_RequiresLink(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for invalid input")
	})

	_, err := client.CreateRaindrop(context.Background(), RaindropCreate{Title: "no link"})

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("CreateRaindrop() error = %v, want *ValidationError", err)
	}
}

func TestCreateRaindrop(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		var body RaindropCreate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body.Link != "https://go.dev" {
			t.Errorf("body link = %q", body.Link)
		}
		writeEnvelope(w, map[string]any{"item": testDrop(1, "go")})
	})

	drop, err := client.CreateRaindrop(context.Background(), RaindropCreate{Link: "https://go.dev"})
	if err != nil {
		t.Fatalf("CreateRaindrop() error = %v", err)
	}
	if drop.ID != 1 {
		t.Errorf("ID = %d, want 1", drop.ID)
	}
}

func TestSearchRaindrops_RejectsNonPositiveLimit(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for invalid input")
	})

	for _, limit := range []int{0, -5} {
		_, err := client.SearchRaindrops(context.Background(), CollectionAll, "go", limit)
		var valErr *ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("SearchRaindrops(limit=%d) error = %v, want *ValidationError", limit, err)
		}
	}
}

func TestSearchRaindrops_SinglePage(t *testing.T) {
	var requests int
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/raindrops/-1" {
			t.Errorf("path = %s, want /raindrops/-1", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("search") != "python" {
			t.Errorf("search = %q, want python", q.Get("search"))
		}
		if q.Get("page") != "0" || q.Get("perpage") != "50" {
			t.Errorf("paging = page %s perpage %s", q.Get("page"), q.Get("perpage"))
		}

		items := make([]any, 12)
		for i := range items {
			items[i] = testDrop(i+1, "python")
		}
		writeEnvelope(w, map[string]any{"items": items})
	})

	results, err := client.SearchRaindrops(context.Background(), CollectionAll, "python", 100)
	if err != nil {
		t.Fatalf("SearchRaindrops() error = %v", err)
	}
	if len(results) != 12 {
		t.Errorf("len(results) = %d, want 12", len(results))
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1 (short page ends pagination)", requests)
	}
	if results[0].ID != 1 || results[11].ID != 12 {
		t.Errorf("result order not preserved: first %d last %d", results[0].ID, results[11].ID)
	}
}

func TestSearchRaindrops_TruncatesToLimit(t *testing.T) {
	var requests int
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		items := make([]any, 50)
		for i := range items {
			items[i] = testDrop(i + 1)
		}
		writeEnvelope(w, map[string]any{"items": items})
	})

	results, err := client.SearchRaindrops(context.Background(), CollectionUnsorted, "", 5)
	if err != nil {
		t.Fatalf("SearchRaindrops() error = %v", err)
	}
	if len(results) != 5 {
		t.Errorf("len(results) = %d, want exactly the limit", len(results))
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1 (limit satisfied by the first page)", requests)
	}
}

func TestSearchRaindrops_MultiplePages(t *testing.T) {
	var requests int
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		size := 50
		if page == 1 {
			size = 20
		}
		items := make([]any, size)
		for i := range items {
			items[i] = testDrop(page*50 + i + 1)
		}
		writeEnvelope(w, map[string]any{"items": items})
	})

	results, err := client.SearchRaindrops(context.Background(), 7, "go", 60)
	if err != nil {
		t.Fatalf("SearchRaindrops() error = %v", err)
	}
	if len(results) != 60 {
		t.Errorf("len(results) = %d, want 60 (overshoot truncated)", len(results))
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
	if results[50].ID != 51 {
		t.Errorf("results[50].ID = %d, want pages concatenated in order", results[50].ID)
	}
}

func TestSearchRaindrops_EmptyFirstPage(t *testing.T) {
	var requests int
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeEnvelope(w, map[string]any{"items": []any{}})
	})

	results, err := client.SearchRaindrops(context.Background(), CollectionAll, "nothing matches", 10)
	if err != nil {
		t.Fatalf("SearchRaindrops() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
}

func TestSearchRaindrops_EndToEnd(t *testing.T) {
	var requests int
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/raindrops/0" {
			t.Errorf("path = %s, want the unsorted collection", r.URL.Path)
		}
		if got := r.URL.Query().Get("search"); got != "python" {
			t.Errorf("search = %q, want python", got)
		}

		items := make([]any, 10)
		for i := range items {
			items[i] = testDrop(i+1, "python", "scripting")
		}
		writeEnvelope(w, map[string]any{"items": items})
	})

	results, err := client.SearchRaindrops(context.Background(), CollectionUnsorted, "python", 10)
	if err != nil {
		t.Fatalf("SearchRaindrops() error = %v", err)
	}
	if len(results) != 10 {
		t.Fatalf("len(results) = %d, want 10", len(results))
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1 (limit met by the first page)", requests)
	}
	for i, drop := range results {
		if drop.ID != int64(i+1) {
			t.Fatalf("results[%d].ID = %d, want server order preserved", i, drop.ID)
		}
		if len(drop.Tags) != 2 || drop.Tags[0] != "python" || drop.Tags[1] != "scripting" {
			t.Fatalf("results[%d].Tags = %v, want tag order preserved", i, drop.Tags)
		}
	}
}

func TestSearchRaindrops_InvalidItemFailsValidation(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]any{"items": []any{
			testDrop(1),
			map[string]any{"_id": 2, "title": "no link or tags", "type": "link"},
		}})
	})

	_, err := client.SearchRaindrops(context.Background(), CollectionAll, "go", 10)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("SearchRaindrops() error = %v, want ErrInvalidResponse", err)
	}
}

func TestBatchUpdateRaindrops(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/raindrops/7" {
			t.Errorf("%s %s, want PUT /raindrops/7", r.Method, r.URL.Path)
		}
		var body struct {
			IDs  []int64  `json:"ids"`
			Tags []string `json:"tags"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if len(body.IDs) != 3 || len(body.Tags) != 1 {
			t.Errorf("body = %+v, want 3 ids and 1 tag", body)
		}
		writeEnvelope(w, map[string]any{"modified": 3})
	})

	modified, err := client.BatchUpdateRaindrops(context.Background(), 7,
		[]int64{1, 2, 3}, RaindropUpdate{Tags: []string{"archived"}})
	if err != nil {
		t.Fatalf("BatchUpdateRaindrops() error = %v", err)
	}
	if modified != 3 {
		t.Errorf("modified = %d, want 3", modified)
	}
}

func TestBatchUpdateRaindrops_RequiresIDs(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for invalid input")
	})

	_, err := client.BatchUpdateRaindrops(context.Background(), 7, nil, RaindropUpdate{})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("BatchUpdateRaindrops() error = %v, want *ValidationError", err)
	}
}

func TestBatchDeleteRaindrops(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		writeEnvelope(w, map[string]any{"modified": 2})
	})

	removed, err := client.BatchDeleteRaindrops(context.Background(), CollectionTrash, []int64{4, 5})
	if err != nil {
		t.Fatalf("BatchDeleteRaindrops() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
}

func TestSuggestTags(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/raindrop/suggest" {
			t.Errorf("%s %s, want POST /raindrop/suggest", r.Method, r.URL.Path)
		}
		writeEnvelope(w, map[string]any{
			"item": map[string]any{"tags": []any{"go", "programming"}},
		})
	})

	tags, err := client.SuggestTags(context.Background(), "https://go.dev")
	if err != nil {
		t.Fatalf("SuggestTags() error = %v", err)
	}
	if len(tags) != 2 || tags[0] != "go" {
		t.Errorf("tags = %v, want [go programming]", tags)
	}
}

func TestDeleteRaindrop(t *testing.T) {
	var method, path string
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		writeEnvelope(w, nil)
	})

	if err := client.DeleteRaindrop(context.Background(), 9); err != nil {
		t.Fatalf("DeleteRaindrop() error = %v", err)
	}
	if method != http.MethodDelete || path != "/raindrop/9" {
		t.Errorf("%s %s, want DELETE /raindrop/9", method, path)
	}
}
