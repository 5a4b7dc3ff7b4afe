package raindrop

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/raindropctl/raindropctl/internal/schema"
)

// ListCollections fetches the user's root-level collections.
func (c *Client) ListCollections(ctx context.Context) ([]Collection, error) {
	var collections []Collection
	if err := c.fetchItems(ctx, http.MethodGet, "/collections", nil, nil, schema.Collection, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// ListChildCollections fetches all nested collections. Their parent fields
// are weak references; the client never reconstructs the collection tree.
func (c *Client) ListChildCollections(ctx context.Context) ([]Collection, error) {
	var collections []Collection
	if err := c.fetchItems(ctx, http.MethodGet, "/collections/childrens", nil, nil, schema.Collection, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// GetCollection fetches a single collection by id.
func (c *Client) GetCollection(ctx context.Context, id int64) (*Collection, error) {
	var collection Collection
	path := fmt.Sprintf("/collection/%d", id)
	if err := c.fetchItem(ctx, http.MethodGet, path, nil, nil, schema.Collection, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// CreateCollection creates a new collection.
func (c *Client) CreateCollection(ctx context.Context, create CollectionCreate) (*Collection, error) {
	if create.Title == "" {
		return nil, &ValidationError{Message: "collection title is required"}
	}
	var collection Collection
	if err := c.fetchItem(ctx, http.MethodPost, "/collection", nil, create, schema.Collection, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// UpdateCollection updates an existing collection.
func (c *Client) UpdateCollection(ctx context.Context, id int64, update CollectionUpdate) (*Collection, error) {
	var collection Collection
	path := fmt.Sprintf("/collection/%d", id)
	if err := c.fetchItem(ctx, http.MethodPut, path, nil, update, schema.Collection, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// DeleteCollection removes a collection. Its raindrops move to the trash.
func (c *Client) DeleteCollection(ctx context.Context, id int64) error {
	return c.exec(ctx, http.MethodDelete, fmt.Sprintf("/collection/%d", id), nil)
}

// UploadCover uploads a cover image for a collection. This is a binary
// multipart upload outside the JSON pipeline; dry-run interception still
// applies.
func (c *Client) UploadCover(ctx context.Context, id int64, filename string, content io.Reader) (*Collection, error) {
	if content == nil {
		return nil, &ValidationError{Message: "cover content is required"}
	}

	path := fmt.Sprintf("/collection/%d/cover", id)
	env, err := c.api.Upload(ctx, path, "cover", filename, content)
	if err != nil {
		return nil, wrapError(err)
	}
	if env.Item == nil {
		return nil, &SchemaError{Endpoint: schema.Collection.Name, Violations: []string{"item: required field missing"}}
	}
	if err := schema.Collection.Validate(env.Item); err != nil {
		return nil, wrapError(err)
	}
	var collection Collection
	if err := unmarshalPayload(env.Item, &collection, schema.Collection.Name); err != nil {
		return nil, err
	}
	return &collection, nil
}
