package main

import (
	"fmt"
	"os"

	raindrop "github.com/raindropctl/raindropctl"
	"github.com/raindropctl/raindropctl/internal/creds"
	"github.com/urfave/cli/v2"
)

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the stored access token",
		Subcommands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Validate and persist an access token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "with-token", Usage: "token to store", Required: true},
				},
				Action: func(c *cli.Context) error {
					token := c.String("with-token")
					client, err := raindrop.New(token, raindrop.WithLogger(newLogger(c.Bool("verbose"))))
					if err != nil {
						return err
					}
					// Validate before persisting.
					if _, err := client.GetUser(c.Context); err != nil {
						return err
					}
					store, err := creds.NewStore()
					if err != nil {
						return err
					}
					if err := store.Save(token); err != nil {
						return err
					}
					fmt.Fprintln(os.Stderr, "token saved")
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "Remove the persisted access token",
				Action: func(c *cli.Context) error {
					store, err := creds.NewStore()
					if err != nil {
						return err
					}
					return store.Delete()
				},
			},
		},
	}
}

func userCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Show the authenticated user",
		Action: func(c *cli.Context) error {
			client, err := buildClient(c)
			if err != nil {
				return err
			}
			user, err := client.GetUser(c.Context)
			if err != nil {
				return err
			}
			return output(c, user)
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show per-collection bookmark counts",
		Action: func(c *cli.Context) error {
			client, err := buildClient(c)
			if err != nil {
				return err
			}
			stats, err := client.GetUserStats(c.Context)
			if err != nil {
				return err
			}
			return output(c, stats)
		},
	}
}

func collectionCommand() *cli.Command {
	return &cli.Command{
		Name:  "collection",
		Usage: "Manage collections",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List collections",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "children", Usage: "list nested collections instead of roots"},
				},
				Action: func(c *cli.Context) error {
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					var collections []raindrop.Collection
					if c.Bool("children") {
						collections, err = client.ListChildCollections(c.Context)
					} else {
						collections, err = client.ListCollections(c.Context)
					}
					if err != nil {
						return err
					}
					return output(c, collections)
				},
			},
			{
				Name:      "get",
				Usage:     "Show one collection",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, "ID"); err != nil {
						return err
					}
					id, err := parseID(c.Args().Get(0))
					if err != nil {
						return err
					}
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					collection, err := client.GetCollection(c.Context, id)
					if err != nil {
						return err
					}
					return output(c, collection)
				},
			},
			{
				Name:  "create",
				Usage: "Create a collection",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.Int64Flag{Name: "parent", Usage: "parent collection id"},
					&cli.StringFlag{Name: "view", Usage: "list, simple, grid, or masonry"},
					&cli.BoolFlag{Name: "public"},
				},
				Action: func(c *cli.Context) error {
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					create := raindrop.CollectionCreate{
						Title: c.String("title"),
						View:  raindrop.View(c.String("view")),
					}
					if c.IsSet("parent") {
						create.Parent = &raindrop.CollectionRef{ID: c.Int64("parent")}
					}
					if c.IsSet("public") {
						public := c.Bool("public")
						create.Public = &public
					}
					collection, err := client.CreateCollection(c.Context, create)
					if err != nil {
						return err
					}
					return output(c, collection)
				},
			},
			{
				Name:      "update",
				Usage:     "Update a collection",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title"},
					&cli.Int64Flag{Name: "parent"},
					&cli.StringFlag{Name: "view"},
					&cli.BoolFlag{Name: "public"},
				},
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, "ID"); err != nil {
						return err
					}
					id, err := parseID(c.Args().Get(0))
					if err != nil {
						return err
					}
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					var update raindrop.CollectionUpdate
					if c.IsSet("title") {
						title := c.String("title")
						update.Title = &title
					}
					if c.IsSet("parent") {
						update.Parent = &raindrop.CollectionRef{ID: c.Int64("parent")}
					}
					if c.IsSet("view") {
						update.View = raindrop.View(c.String("view"))
					}
					if c.IsSet("public") {
						public := c.Bool("public")
						update.Public = &public
					}
					collection, err := client.UpdateCollection(c.Context, id, update)
					if err != nil {
						return err
					}
					return output(c, collection)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a collection (raindrops move to trash)",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, "ID"); err != nil {
						return err
					}
					id, err := parseID(c.Args().Get(0))
					if err != nil {
						return err
					}
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					return client.DeleteCollection(c.Context, id)
				},
			},
			{
				Name:      "cover",
				Usage:     "Upload a cover image",
				ArgsUsage: "ID FILE",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, "ID", "FILE"); err != nil {
						return err
					}
					id, err := parseID(c.Args().Get(0))
					if err != nil {
						return err
					}
					file, err := os.Open(c.Args().Get(1))
					if err != nil {
						return err
					}
					defer file.Close()
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					collection, err := client.UploadCover(c.Context, id, file.Name(), file)
					if err != nil {
						return err
					}
					return output(c, collection)
				},
			},
		},
	}
}

func dropCommand() *cli.Command {
	return &cli.Command{
		Name:  "drop",
		Usage: "Manage raindrops (bookmarks)",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Show one raindrop",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, "ID"); err != nil {
						return err
					}
					id, err := parseID(c.Args().Get(0))
					if err != nil {
						return err
					}
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					drop, err := client.GetRaindrop(c.Context, id)
					if err != nil {
						return err
					}
					return output(c, drop)
				},
			},
			{
				Name:      "search",
				Usage:     "Search raindrops",
				ArgsUsage: "[QUERY]",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "collection", Value: raindrop.CollectionAll, Usage: "collection scope (-1 = all)"},
					&cli.IntFlag{Name: "limit", Value: 25, Usage: "maximum results"},
				},
				Action: func(c *cli.Context) error {
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					drops, err := client.SearchRaindrops(c.Context,
						c.Int64("collection"), c.Args().First(), c.Int("limit"))
					if err != nil {
						return err
					}
					return output(c, drops)
				},
			},
			{
				Name:  "create",
				Usage: "Create a raindrop",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "link", Required: true},
					&cli.StringFlag{Name: "title"},
					&cli.StringSliceFlag{Name: "tag", Usage: "repeatable"},
					&cli.Int64Flag{Name: "collection"},
					&cli.BoolFlag{Name: "important"},
				},
				Action: func(c *cli.Context) error {
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					create := raindrop.RaindropCreate{
						Link:  c.String("link"),
						Title: c.String("title"),
						Tags:  c.StringSlice("tag"),
					}
					if c.IsSet("collection") {
						create.Collection = &raindrop.CollectionRef{ID: c.Int64("collection")}
					}
					if c.IsSet("important") {
						important := c.Bool("important")
						create.Important = &important
					}
					drop, err := client.CreateRaindrop(c.Context, create)
					if err != nil {
						return err
					}
					return output(c, drop)
				},
			},
			{
				Name:      "update",
				Usage:     "Update a raindrop",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title"},
					&cli.StringFlag{Name: "excerpt"},
					&cli.StringSliceFlag{Name: "tag", Usage: "repeatable; replaces the tag set"},
					&cli.Int64Flag{Name: "collection", Usage: "move to collection"},
					&cli.BoolFlag{Name: "important"},
				},
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, "ID"); err != nil {
						return err
					}
					id, err := parseID(c.Args().Get(0))
					if err != nil {
						return err
					}
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					drop, err := client.UpdateRaindrop(c.Context, id, raindropUpdateFromFlags(c))
					if err != nil {
						return err
					}
					return output(c, drop)
				},
			},
			{
				Name:      "delete",
				Usage:     "Move a raindrop to trash",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, "ID"); err != nil {
						return err
					}
					id, err := parseID(c.Args().Get(0))
					if err != nil {
						return err
					}
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					return client.DeleteRaindrop(c.Context, id)
				},
			},
			{
				Name:  "batch-update",
				Usage: "Update several raindrops in one call",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "collection", Value: raindrop.CollectionUnsorted},
					&cli.Int64SliceFlag{Name: "id", Usage: "repeatable", Required: true},
					&cli.StringSliceFlag{Name: "tag", Usage: "repeatable; replaces the tag set"},
					&cli.Int64Flag{Name: "move", Usage: "move to collection"},
					&cli.BoolFlag{Name: "important"},
				},
				Action: func(c *cli.Context) error {
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					var update raindrop.RaindropUpdate
					if c.IsSet("tag") {
						update.Tags = c.StringSlice("tag")
					}
					if c.IsSet("move") {
						update.Collection = &raindrop.CollectionRef{ID: c.Int64("move")}
					}
					if c.IsSet("important") {
						important := c.Bool("important")
						update.Important = &important
					}
					modified, err := client.BatchUpdateRaindrops(c.Context,
						c.Int64("collection"), c.Int64Slice("id"), update)
					if err != nil {
						return err
					}
					return output(c, map[string]int{"modified": modified})
				},
			},
			{
				Name:  "batch-delete",
				Usage: "Move several raindrops to trash in one call",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "collection", Value: raindrop.CollectionUnsorted},
					&cli.Int64SliceFlag{Name: "id", Usage: "repeatable", Required: true},
				},
				Action: func(c *cli.Context) error {
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					modified, err := client.BatchDeleteRaindrops(c.Context,
						c.Int64("collection"), c.Int64Slice("id"))
					if err != nil {
						return err
					}
					return output(c, map[string]int{"modified": modified})
				},
			},
			{
				Name:      "suggest",
				Usage:     "Suggest tags for a link",
				ArgsUsage: "LINK",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, "LINK"); err != nil {
						return err
					}
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					tags, err := client.SuggestTags(c.Context, c.Args().Get(0))
					if err != nil {
						return err
					}
					return output(c, tags)
				},
			},
		},
	}
}

func raindropUpdateFromFlags(c *cli.Context) raindrop.RaindropUpdate {
	var update raindrop.RaindropUpdate
	if c.IsSet("title") {
		title := c.String("title")
		update.Title = &title
	}
	if c.IsSet("excerpt") {
		excerpt := c.String("excerpt")
		update.Excerpt = &excerpt
	}
	if c.IsSet("tag") {
		update.Tags = c.StringSlice("tag")
	}
	if c.IsSet("collection") {
		update.Collection = &raindrop.CollectionRef{ID: c.Int64("collection")}
	}
	if c.IsSet("important") {
		important := c.Bool("important")
		update.Important = &important
	}
	return update
}

func tagCommand() *cli.Command {
	return &cli.Command{
		Name:  "tag",
		Usage: "Manage tags",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "collection", Value: raindrop.CollectionUnsorted, Usage: "collection scope (0 = whole account)"},
		},
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List tags with usage counts",
				Action: func(c *cli.Context) error {
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					tags, err := client.ListTags(c.Context, c.Int64("collection"))
					if err != nil {
						return err
					}
					return output(c, tags)
				},
			},
			{
				Name:      "rename",
				Usage:     "Rename a tag",
				ArgsUsage: "OLD NEW",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, "OLD", "NEW"); err != nil {
						return err
					}
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					return client.RenameTag(c.Context, c.Int64("collection"),
						c.Args().Get(0), c.Args().Get(1))
				},
			},
			{
				Name:      "merge",
				Usage:     "Merge tags into one",
				ArgsUsage: "TAG...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "into", Required: true, Usage: "target tag name"},
				},
				Action: func(c *cli.Context) error {
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					return client.MergeTags(c.Context, c.Int64("collection"),
						c.Args().Slice(), c.String("into"))
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete tags from every raindrop in scope",
				ArgsUsage: "TAG...",
				Action: func(c *cli.Context) error {
					client, err := buildClient(c)
					if err != nil {
						return err
					}
					return client.DeleteTags(c.Context, c.Int64("collection"), c.Args().Slice())
				},
			},
		},
	}
}

func archiveCommand() *cli.Command {
	return &cli.Command{
		Name:      "archive",
		Usage:     "Check Wayback Machine snapshot availability",
		ArgsUsage: "LINK",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, "LINK"); err != nil {
				return err
			}
			client, err := buildClient(c)
			if err != nil {
				return err
			}
			snapshot, ok := client.CheckArchive(c.Context, c.Args().Get(0))
			if !ok {
				return output(c, map[string]bool{"available": false})
			}
			return output(c, map[string]any{"available": true, "snapshot": snapshot})
		},
	}
}
