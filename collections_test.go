package raindrop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func testCollection(id int, title string) map[string]any {
	return map[string]any{"_id": id, "title": title, "count": 0}
}

func TestListCollections(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections" {
			t.Errorf("path = %s, want /collections", r.URL.Path)
		}
		writeEnvelope(w, map[string]any{"items": []any{
			testCollection(1, "reading"),
			testCollection(2, "later"),
		}})
	})

	collections, err := client.ListCollections(context.Background())
	if err != nil {
		t.Fatalf("ListCollections() error = %v", err)
	}
	if len(collections) != 2 {
		t.Fatalf("len(collections) = %d, want 2", len(collections))
	}
	if collections[0].Title != "reading" {
		t.Errorf("Title = %q, want reading", collections[0].Title)
	}
}

func TestListChildCollections(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/childrens" {
			t.Errorf("path = %s, want /collections/childrens", r.URL.Path)
		}
		child := testCollection(3, "nested")
		child["parent"] = map[string]any{"$id": 1}
		writeEnvelope(w, map[string]any{"items": []any{child}})
	})

	collections, err := client.ListChildCollections(context.Background())
	if err != nil {
		t.Fatalf("ListChildCollections() error = %v", err)
	}
	if len(collections) != 1 {
		t.Fatalf("len(collections) = %d, want 1", len(collections))
	}
	if collections[0].Parent == nil || collections[0].Parent.ID != 1 {
		t.Errorf("Parent = %+v, want weak reference to collection 1", collections[0].Parent)
	}
}

func TestGetCollection(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]any{"item": testCollection(5, "articles")})
	})

	collection, err := client.GetCollection(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetCollection() error = %v", err)
	}
	if collection.ID != 5 || collection.Title != "articles" {
		t.Errorf("collection = %+v", collection)
	}
}

func TestCreateCollection_RequiresTitle(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for invalid input")
	})

	_, err := client.CreateCollection(context.Background(), CollectionCreate{})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("CreateCollection() error = %v, want *ValidationError", err)
	}
}

func TestCreateCollection(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/collection" {
			t.Errorf("%s %s, want POST /collection", r.Method, r.URL.Path)
		}
		var body CollectionCreate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		writeEnvelope(w, map[string]any{"item": testCollection(9, body.Title)})
	})

	collection, err := client.CreateCollection(context.Background(), CollectionCreate{Title: "papers"})
	if err != nil {
		t.Fatalf("CreateCollection() error = %v", err)
	}
	if collection.ID != 9 || collection.Title != "papers" {
		t.Errorf("collection = %+v", collection)
	}
}

func TestUpdateCollection(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/collection/9" {
			t.Errorf("%s %s, want PUT /collection/9", r.Method, r.URL.Path)
		}
		writeEnvelope(w, map[string]any{"item": testCollection(9, "renamed")})
	})

	title := "renamed"
	collection, err := client.UpdateCollection(context.Background(), 9, CollectionUpdate{Title: &title})
	if err != nil {
		t.Fatalf("UpdateCollection() error = %v", err)
	}
	if collection.Title != "renamed" {
		t.Errorf("Title = %q, want renamed", collection.Title)
	}
}

func TestDeleteCollection(t *testing.T) {
	var method, path string
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		writeEnvelope(w, nil)
	})

	if err := client.DeleteCollection(context.Background(), 9); err != nil {
		t.Fatalf("DeleteCollection() error = %v", err)
	}
	if method != http.MethodDelete || path != "/collection/9" {
		t.Errorf("%s %s, want DELETE /collection/9", method, path)
	}
}

func TestUploadCover(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/collection/9/cover" {
			t.Errorf("%s %s, want PUT /collection/9/cover", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("cover")
		if err != nil {
			t.Fatalf("missing cover form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "cover.png" {
			t.Errorf("filename = %q, want cover.png", header.Filename)
		}
		item := testCollection(9, "with cover")
		item["cover"] = []any{"https://example.com/cover.png"}
		writeEnvelope(w, map[string]any{"item": item})
	})

	collection, err := client.UploadCover(context.Background(), 9, "cover.png",
		bytes.NewReader([]byte{0x89, 0x50, 0x4e, 0x47}))
	if err != nil {
		t.Fatalf("UploadCover() error = %v", err)
	}
	if len(collection.Cover) != 1 {
		t.Errorf("Cover = %v, want one entry", collection.Cover)
	}
}

func TestUploadCover_RequiresContent(t *testing.T) {
	client, _ := newTestPair(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for invalid input")
	})

	_, err := client.UploadCover(context.Background(), 9, "cover.png", nil)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("UploadCover() error = %v, want *ValidationError", err)
	}
}
