package schema

// Structural contracts for the Raindrop API payload shapes. Field lists
// mirror what the service actually sends; fields the client never reads are
// not declared and pass through unchecked.

// CollectionRef is the weak reference shape ({"$id": n}) used for parent
// collections on both collections and raindrops.
var CollectionRef = &ObjectDef{
	Name: "collectionRef",
	Fields: []Field{
		{Name: "$id", Kind: Number, Required: true},
	},
}

// User is the contract for the authenticated user payload.
var User = &ObjectDef{
	Name: "user",
	Fields: []Field{
		{Name: "_id", Kind: Number, Required: true},
		{Name: "fullName", Kind: String, Required: true},
		{Name: "email", Kind: String},
		{Name: "pro", Kind: Bool},
		{Name: "avatar", Kind: String},
	},
}

// Collection is the contract for collection payloads.
var Collection = &ObjectDef{
	Name: "collection",
	Fields: []Field{
		{Name: "_id", Kind: Number, Required: true},
		{Name: "title", Kind: String, Required: true},
		{Name: "count", Kind: Number, Required: true},
		{Name: "parent", Kind: Object, Schema: CollectionRef},
		{Name: "cover", Kind: Array, Elem: String},
		{Name: "color", Kind: String},
		{Name: "view", Kind: String, Enum: []string{"list", "simple", "grid", "masonry"}},
		{Name: "public", Kind: Bool},
		{Name: "expanded", Kind: Bool},
		{Name: "created", Kind: String},
		{Name: "lastUpdate", Kind: String},
		{Name: "sort", Kind: Number},
	},
}

// Highlight is the contract for highlights nested inside a raindrop.
var Highlight = &ObjectDef{
	Name: "highlight",
	Fields: []Field{
		{Name: "_id", Kind: String, Required: true},
		{Name: "text", Kind: String, Required: true},
		{Name: "note", Kind: String},
		{Name: "color", Kind: String},
		{Name: "created", Kind: String},
	},
}

// Media is the contract for media entries on a raindrop.
var Media = &ObjectDef{
	Name: "media",
	Fields: []Field{
		{Name: "link", Kind: String, Required: true},
	},
}

// Raindrop is the contract for bookmark payloads. Tags may be empty but are
// never absent.
var Raindrop = &ObjectDef{
	Name: "raindrop",
	Fields: []Field{
		{Name: "_id", Kind: Number, Required: true},
		{Name: "title", Kind: String, Required: true},
		{Name: "link", Kind: String, Required: true},
		{Name: "excerpt", Kind: String},
		{Name: "note", Kind: String},
		{Name: "type", Kind: String, Required: true,
			Enum: []string{"link", "article", "image", "video", "document", "audio"}},
		{Name: "tags", Kind: Array, Elem: String, Required: true},
		{Name: "cover", Kind: String},
		{Name: "domain", Kind: String},
		{Name: "created", Kind: String},
		{Name: "lastUpdate", Kind: String},
		{Name: "collection", Kind: Object, Schema: CollectionRef},
		{Name: "highlights", Kind: Array, Elem: Object, Schema: Highlight},
		{Name: "important", Kind: Bool},
		{Name: "removed", Kind: Bool},
		{Name: "media", Kind: Array, Elem: Object, Schema: Media},
	},
}

// Tag is the contract for tag listing payloads; _id is the tag text itself.
var Tag = &ObjectDef{
	Name: "tag",
	Fields: []Field{
		{Name: "_id", Kind: String, Required: true},
		{Name: "count", Kind: Number},
	},
}

// UserStat is the contract for per-collection bookmark counts; id 0 is the
// synthetic account total.
var UserStat = &ObjectDef{
	Name: "userStat",
	Fields: []Field{
		{Name: "_id", Kind: Number, Required: true},
		{Name: "count", Kind: Number, Required: true},
	},
}

// Suggestions is the contract for the tag suggestion payload.
var Suggestions = &ObjectDef{
	Name: "suggestions",
	Fields: []Field{
		{Name: "tags", Kind: Array, Elem: String, Required: true},
	},
}
