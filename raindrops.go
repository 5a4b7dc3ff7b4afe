package raindrop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/raindropctl/raindropctl/internal/schema"
)

// searchPageSize is the fixed page size used by search pagination.
const searchPageSize = 50

// GetRaindrop fetches a single raindrop by id.
func (c *Client) GetRaindrop(ctx context.Context, id int64) (*Raindrop, error) {
	var drop Raindrop
	path := fmt.Sprintf("/raindrop/%d", id)
	if err := c.fetchItem(ctx, http.MethodGet, path, nil, nil, schema.Raindrop, &drop); err != nil {
		return nil, err
	}
	return &drop, nil
}

// CreateRaindrop creates a new raindrop.
func (c *Client) CreateRaindrop(ctx context.Context, create RaindropCreate) (*Raindrop, error) {
	if create.Link == "" {
		return nil, &ValidationError{Message: "raindrop link is required"}
	}
	var drop Raindrop
	if err := c.fetchItem(ctx, http.MethodPost, "/raindrop", nil, create, schema.Raindrop, &drop); err != nil {
		return nil, err
	}
	return &drop, nil
}

// UpdateRaindrop updates an existing raindrop.
func (c *Client) UpdateRaindrop(ctx context.Context, id int64, update RaindropUpdate) (*Raindrop, error) {
	var drop Raindrop
	path := fmt.Sprintf("/raindrop/%d", id)
	if err := c.fetchItem(ctx, http.MethodPut, path, nil, update, schema.Raindrop, &drop); err != nil {
		return nil, err
	}
	return &drop, nil
}

// DeleteRaindrop moves a raindrop to the trash (or removes it permanently
// when it is already there).
func (c *Client) DeleteRaindrop(ctx context.Context, id int64) error {
	return c.exec(ctx, http.MethodDelete, fmt.Sprintf("/raindrop/%d", id), nil)
}

// SearchRaindrops searches a collection, accumulating results page by page
// until the limit is satisfied, a page comes back empty, or a short page
// signals the end of the results. Results are truncated to exactly limit
// even when the last page overshoots it. Use CollectionAll to search across
// every collection.
func (c *Client) SearchRaindrops(ctx context.Context, collectionID int64, query string, limit int) ([]Raindrop, error) {
	if limit <= 0 {
		return nil, &ValidationError{Message: "search limit must be positive"}
	}

	path := fmt.Sprintf("/raindrops/%d", collectionID)
	var results []Raindrop

	for page := 0; ; page++ {
		params := url.Values{}
		if query != "" {
			params.Set("search", query)
		}
		params.Set("page", strconv.Itoa(page))
		params.Set("perpage", strconv.Itoa(searchPageSize))

		var batch []Raindrop
		if err := c.fetchItems(ctx, http.MethodGet, path, params, nil, schema.Raindrop, &batch); err != nil {
			return nil, err
		}

		if len(batch) == 0 {
			break
		}
		results = append(results, batch...)
		if len(results) >= limit {
			results = results[:limit]
			break
		}
		if len(batch) < searchPageSize {
			// Short page: last page of results.
			break
		}
	}

	return results, nil
}

// batchBody combines the target ids with the fields to change for batch
// mutations.
type batchBody struct {
	IDs []int64 `json:"ids"`
	RaindropUpdate
}

// BatchUpdateRaindrops applies the same update to several raindrops in one
// call and returns the number of modified raindrops.
func (c *Client) BatchUpdateRaindrops(ctx context.Context, collectionID int64, ids []int64, update RaindropUpdate) (int, error) {
	if len(ids) == 0 {
		return 0, &ValidationError{Message: "at least one raindrop id is required"}
	}
	path := fmt.Sprintf("/raindrops/%d", collectionID)
	return c.fetchModified(ctx, http.MethodPut, path, batchBody{IDs: ids, RaindropUpdate: update})
}

// BatchDeleteRaindrops moves several raindrops to the trash in one call and
// returns the number of removed raindrops.
func (c *Client) BatchDeleteRaindrops(ctx context.Context, collectionID int64, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, &ValidationError{Message: "at least one raindrop id is required"}
	}
	path := fmt.Sprintf("/raindrops/%d", collectionID)
	return c.fetchModified(ctx, http.MethodDelete, path, batchBody{IDs: ids})
}

// SuggestTags asks the server to suggest tags for a link.
func (c *Client) SuggestTags(ctx context.Context, link string) ([]string, error) {
	if link == "" {
		return nil, &ValidationError{Message: "link is required"}
	}
	var suggestion struct {
		Tags []string `json:"tags"`
	}
	body := map[string]string{"link": link}
	if err := c.fetchItem(ctx, http.MethodPost, "/raindrop/suggest", nil, body, schema.Suggestions, &suggestion); err != nil {
		return nil, err
	}
	return suggestion.Tags, nil
}
