package raindrop

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// ArchiveSnapshot describes the closest Wayback Machine snapshot of a link.
type ArchiveSnapshot struct {
	URL       string `json:"url"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// availabilityResponse is the wire shape of the Wayback availability API.
type availabilityResponse struct {
	ArchivedSnapshots struct {
		Closest struct {
			Available bool   `json:"available"`
			URL       string `json:"url"`
			Timestamp string `json:"timestamp"`
			Status    string `json:"status"`
		} `json:"closest"`
	} `json:"archived_snapshots"`
}

// CheckArchive reports whether the Wayback Machine holds a snapshot of the
// given link. The check is best-effort: it targets a third-party service
// with no auth and no retry schedule, and any failure yields "no snapshot"
// rather than an error.
func (c *Client) CheckArchive(ctx context.Context, link string) (*ArchiveSnapshot, bool) {
	endpoint := c.archiveURL + "?url=" + url.QueryEscape(link)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("link", link).Msg("archive availability check failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug().Int("status", resp.StatusCode).Str("link", link).
			Msg("archive availability check failed")
		return nil, false
	}

	var avail availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&avail); err != nil {
		c.logger.Debug().Err(err).Str("link", link).Msg("archive availability check failed")
		return nil, false
	}

	closest := avail.ArchivedSnapshots.Closest
	if !closest.Available {
		return nil, false
	}
	return &ArchiveSnapshot{
		URL:       closest.URL,
		Timestamp: closest.Timestamp,
		Status:    closest.Status,
	}, true
}
