package raindrop

import "time"

// Reserved collection identifiers. These are the only identifiers the client
// ever supplies itself; everything else is server-assigned.
const (
	// CollectionUnsorted is the built-in unsorted bucket.
	CollectionUnsorted int64 = 0
	// CollectionAll addresses all bookmarks; valid as a search scope only.
	CollectionAll int64 = -1
	// CollectionTrash is the built-in trash.
	CollectionTrash int64 = -99
)

// View is a collection's display mode.
type View string

// Collection view modes.
const (
	ViewList    View = "list"
	ViewSimple  View = "simple"
	ViewGrid    View = "grid"
	ViewMasonry View = "masonry"
)

// Type is a raindrop's content type.
type Type string

// Raindrop content types.
const (
	TypeLink     Type = "link"
	TypeArticle  Type = "article"
	TypeImage    Type = "image"
	TypeVideo    Type = "video"
	TypeDocument Type = "document"
	TypeAudio    Type = "audio"
)

// CollectionRef is a weak reference to another collection: it carries the
// identifier without loading or owning the referent.
type CollectionRef struct {
	ID int64 `json:"$id"`
}

// User is an immutable snapshot of the authenticated account, fetched on
// demand and never cached.
type User struct {
	ID       int64   `json:"_id"`
	FullName string  `json:"fullName"`
	Email    *string `json:"email,omitempty"`
	Pro      *bool   `json:"pro,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Collection is a bookmark collection. Optional fields are pointers so an
// absent value and an explicit null decode identically.
type Collection struct {
	ID         int64          `json:"_id"`
	Title      string         `json:"title"`
	Count      int            `json:"count"`
	Parent     *CollectionRef `json:"parent,omitempty"`
	Cover      []string       `json:"cover,omitempty"`
	Color      *string        `json:"color,omitempty"`
	View       View           `json:"view,omitempty"`
	Public     *bool          `json:"public,omitempty"`
	Expanded   *bool          `json:"expanded,omitempty"`
	Created    *time.Time     `json:"created,omitempty"`
	LastUpdate *time.Time     `json:"lastUpdate,omitempty"`
	Sort       *int           `json:"sort,omitempty"`
}

// Highlight is a text highlight nested inside a raindrop; it is never
// addressed independently.
type Highlight struct {
	ID      string     `json:"_id"`
	Text    string     `json:"text"`
	Note    *string    `json:"note,omitempty"`
	Color   *string    `json:"color,omitempty"`
	Created *time.Time `json:"created,omitempty"`
}

// Media is an attached media entry on a raindrop.
type Media struct {
	Link string `json:"link"`
}

// Raindrop is a bookmark. Tags may be empty but are never nil after
// validation; their order is preserved from the server.
type Raindrop struct {
	ID         int64          `json:"_id"`
	Title      string         `json:"title"`
	Link       string         `json:"link"`
	Excerpt    *string        `json:"excerpt,omitempty"`
	Note       *string        `json:"note,omitempty"`
	Type       Type           `json:"type"`
	Tags       []string       `json:"tags"`
	Cover      *string        `json:"cover,omitempty"`
	Domain     *string        `json:"domain,omitempty"`
	Created    *time.Time     `json:"created,omitempty"`
	LastUpdate *time.Time     `json:"lastUpdate,omitempty"`
	Collection *CollectionRef `json:"collection,omitempty"`
	Highlights []Highlight    `json:"highlights,omitempty"`
	Important  *bool          `json:"important,omitempty"`
	Removed    *bool          `json:"removed,omitempty"`
	Media      []Media        `json:"media,omitempty"`
}

// Tag is a tag scoped to a collection; its name is its identity.
type Tag struct {
	Name  string `json:"_id"`
	Count *int   `json:"count,omitempty"`
}

// UserStat is a per-collection bookmark count. CollectionID 0 is the
// synthetic account total.
type UserStat struct {
	CollectionID int64 `json:"_id"`
	Count        int   `json:"count"`
}

// CollectionCreate is the request body for creating a collection.
type CollectionCreate struct {
	Title  string         `json:"title"`
	Parent *CollectionRef `json:"parent,omitempty"`
	View   View           `json:"view,omitempty"`
	Public *bool          `json:"public,omitempty"`
}

// CollectionUpdate is the request body for updating a collection. Nil fields
// are left untouched on the server.
type CollectionUpdate struct {
	Title    *string        `json:"title,omitempty"`
	Parent   *CollectionRef `json:"parent,omitempty"`
	View     View           `json:"view,omitempty"`
	Public   *bool          `json:"public,omitempty"`
	Expanded *bool          `json:"expanded,omitempty"`
	Sort     *int           `json:"sort,omitempty"`
}

// RaindropCreate is the request body for creating a raindrop.
type RaindropCreate struct {
	Link       string         `json:"link"`
	Title      string         `json:"title,omitempty"`
	Excerpt    string         `json:"excerpt,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Collection *CollectionRef `json:"collection,omitempty"`
	Important  *bool          `json:"important,omitempty"`
}

// RaindropUpdate is the request body for updating one raindrop or, combined
// with a list of ids, a batch of raindrops. Nil fields are left untouched.
type RaindropUpdate struct {
	Title      *string        `json:"title,omitempty"`
	Excerpt    *string        `json:"excerpt,omitempty"`
	Note       *string        `json:"note,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Collection *CollectionRef `json:"collection,omitempty"`
	Important  *bool          `json:"important,omitempty"`
}
