package raindrop

import (
	"context"
	"fmt"
	"net/http"

	"github.com/raindropctl/raindropctl/internal/schema"
)

// ListTags fetches the tags used inside a collection, with usage counts.
// Collection id 0 lists tags across the whole account.
func (c *Client) ListTags(ctx context.Context, collectionID int64) ([]Tag, error) {
	var tags []Tag
	path := fmt.Sprintf("/tags/%d", collectionID)
	if err := c.fetchItems(ctx, http.MethodGet, path, nil, nil, schema.Tag, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// tagsBody is the request body for tag mutations. Replace, when set, is the
// name the listed tags collapse into.
type tagsBody struct {
	Tags    []string `json:"tags"`
	Replace string   `json:"replace,omitempty"`
}

// RenameTag renames a tag within a collection.
func (c *Client) RenameTag(ctx context.Context, collectionID int64, oldName, newName string) error {
	if oldName == "" || newName == "" {
		return &ValidationError{Message: "both the current and the new tag name are required"}
	}
	return c.MergeTags(ctx, collectionID, []string{oldName}, newName)
}

// MergeTags collapses several tags into one within a collection.
func (c *Client) MergeTags(ctx context.Context, collectionID int64, tags []string, into string) error {
	if len(tags) == 0 {
		return &ValidationError{Message: "at least one tag is required"}
	}
	if into == "" {
		return &ValidationError{Message: "target tag name is required"}
	}
	path := fmt.Sprintf("/tags/%d", collectionID)
	return c.exec(ctx, http.MethodPut, path, tagsBody{Tags: tags, Replace: into})
}

// DeleteTags removes tags from every raindrop in a collection.
func (c *Client) DeleteTags(ctx context.Context, collectionID int64, tags []string) error {
	if len(tags) == 0 {
		return &ValidationError{Message: "at least one tag is required"}
	}
	path := fmt.Sprintf("/tags/%d", collectionID)
	return c.exec(ctx, http.MethodDelete, path, tagsBody{Tags: tags})
}
