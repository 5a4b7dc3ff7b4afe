package raindrop

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/raindropctl/raindropctl/internal/schema"
)

// GetUser fetches the authenticated user's profile. The user payload lives
// in the envelope's dedicated user field rather than item.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	env, err := c.api.Do(ctx, http.MethodGet, "/user", nil, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	if env.User == nil {
		return nil, &SchemaError{Endpoint: schema.User.Name, Violations: []string{"user: required field missing"}}
	}
	if err := schema.User.Validate(env.User); err != nil {
		return nil, wrapError(err)
	}
	var user User
	if err := json.Unmarshal(env.User, &user); err != nil {
		return nil, &SchemaError{Endpoint: schema.User.Name, Violations: []string{err.Error()}}
	}
	return &user, nil
}

// GetUserStats fetches per-collection bookmark counts. The entry with
// collection id 0 is the synthetic account total.
func (c *Client) GetUserStats(ctx context.Context) ([]UserStat, error) {
	var stats []UserStat
	if err := c.fetchItems(ctx, http.MethodGet, "/user/stats", nil, nil, schema.UserStat, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
