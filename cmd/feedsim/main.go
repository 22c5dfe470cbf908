// Tool to exercise the feed engine from the command line: scan draft text
// for advisories, browse the seeded feed, and submit posts through the
// moderation gate.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/provsupport/feedcore/app"
	"github.com/provsupport/feedcore/config"
	"github.com/provsupport/feedcore/model"
	"github.com/provsupport/feedcore/moderation"
	"github.com/provsupport/feedcore/store"
	"github.com/provsupport/feedcore/util"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cliApp := &cli.App{
		Name:  "feedsim",
		Usage: "anonymous community-feed engine simulator",
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Usage:     "scan draft text for crisis and moderation advisories",
				ArgsUsage: "TEXT",
				Action:    runScan,
			},
			{
				Name:   "view",
				Usage:  "print the seeded feed, optionally filtered",
				Action: runView,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "tag",
						Usage: "exact tag filter, e.g. #Stress",
					},
					&cli.StringFlag{
						Name:  "query",
						Usage: "case-insensitive free-text search",
					},
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "posts per page",
						Value: app.DefaultPageSize,
					},
				},
			},
			{
				Name:      "post",
				Usage:     "submit a post to the seeded feed and print the result",
				ArgsUsage: "TEXT",
				Action:    runPost,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "tag",
						Usage: "optional tag from the configured set",
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "location from the configured set (defaults to the first)",
					},
				},
			},
		},
	}
	return cliApp.Run(args)
}

func setup() (*config.Config, *moderation.Scanner, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(log)

	scanner := moderation.NewScanner(cfg, log)
	st := store.New(cfg, scanner, &store.Opts{Logger: log})
	st.Seed(store.SeedPosts(time.Now()))
	return cfg, scanner, st, nil
}

func runScan(c *cli.Context) error {
	_, scanner, _, err := setup()
	if err != nil {
		return err
	}
	text := strings.Join(c.Args().Slice(), " ")
	res := scanner.Scan(text)
	if res.Crisis != "" {
		fmt.Println("crisis advisory:", res.Crisis)
	}
	if res.Moderation != "" {
		fmt.Println("moderation warning (blocks submission):", res.Moderation)
	}
	if res.Crisis == "" && res.Moderation == "" {
		fmt.Println("no advisories")
	}
	return nil
}

func runView(c *cli.Context) error {
	_, _, st, err := setup()
	if err != nil {
		return err
	}
	cursor := app.NewFeedCursor(st.Snapshot(), app.ViewQuery{
		Tag:   c.String("tag"),
		Query: c.String("query"),
	}, c.Int("page-size"))
	for page := cursor.Next(); page != nil; page = cursor.Next() {
		printPosts(page)
	}
	return nil
}

func runPost(c *cli.Context) error {
	cfg, scanner, st, err := setup()
	if err != nil {
		return err
	}
	loc := c.String("location")
	if loc == "" {
		loc = cfg.Locations[0]
	}
	draft := model.Draft{
		Text:     strings.Join(c.Args().Slice(), " "),
		Tag:      c.String("tag"),
		Location: loc,
	}
	draft = draft.WithScan(scanner.Scan(draft.Text))
	if draft.CrisisFlag != "" {
		fmt.Println("crisis advisory:", draft.CrisisFlag)
	}

	snap, err := st.CreatePost(draft, util.GenerateHandle())
	if err != nil {
		return err
	}
	printPosts(app.View(snap, app.ViewQuery{}))
	return nil
}

func printPosts(posts []model.Post) {
	for _, p := range posts {
		tag := p.Tag
		if tag == "" {
			tag = "-"
		}
		fmt.Printf("[%v] %v %v (%v votes, %v comments)\n  %v\n",
			p.CreatedAt.Format(time.RFC3339), p.Handle, tag, p.Votes, len(p.Comments), p.Text)
		for _, cm := range p.Comments {
			fmt.Printf("    > %v\n", cm.Text)
		}
	}
}
