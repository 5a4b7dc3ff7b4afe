// Package raindrop is a resilient client for the Raindrop.io bookmark API.
//
// A Client exposes one method per resource operation: user profile and
// stats, collections, raindrops (bookmarks) with paginated search and batch
// mutations, tags, cover uploads, tag suggestions, and a best-effort
// Wayback Machine availability check.
//
// Every call goes through a shared request pipeline that authenticates with
// a bearer token, enforces a per-attempt timeout, retries rate-limited and
// 5xx responses with bounded exponential backoff plus jitter (honoring
// Retry-After), validates responses against per-endpoint structural
// contracts, and maps every failure into a uniform error taxonomy carrying
// a remediation hint. See [StatusOf] and [HintOf].
//
// In dry-run mode ([WithDryRun]) mutating operations are simulated with
// synthetic responses and an audit log line; read-only operations still hit
// the real API.
//
//	client, err := raindrop.New(token, raindrop.WithDryRun(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	drops, err := client.SearchRaindrops(ctx, raindrop.CollectionAll, "golang", 25)
package raindrop
