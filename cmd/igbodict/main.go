// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/poiesic/igbodict"
	"github.com/poiesic/igbodict/api"
	"github.com/poiesic/igbodict/core"
	"github.com/poiesic/igbodict/ingestion"
	"github.com/poiesic/igbodict/search"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "igbodict",
		Usage: "Igbo-English dictionary search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search the dictionary for a keyword",
				ArgsUsage: "<keyword>",
				Action:    searchCommand,
				Flags: append(databaseFlags(),
					&cli.BoolFlag{
						Name:    "english",
						Aliases: []string{"e"},
						Usage:   "Match the keyword against English definitions only",
					},
					&cli.StringFlag{
						Name:  "page",
						Usage: "Page of results, starting at 1",
					},
					&cli.StringFlag{
						Name:  "range",
						Usage: "Result positions to return, as [start, end]",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: `Sort order, as ["field", "asc"|"desc"]`,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print results as JSON",
					},
				),
			},
			{
				Name:   "import",
				Usage:  "Import a JSON word list, or the built-in sample when no file is given",
				Action: importCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Path to a JSON word list",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of entries written in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N entries",
						Value: 500,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts for a failed batch write",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 100 * time.Millisecond,
					},
				),
			},
			{
				Name:   "serve",
				Usage:  "Serve dictionary search over HTTP",
				Action: serveCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Address to listen on",
						Value: "localhost:8080",
					},
					&cli.IntFlag{
						Name:  "cache-size",
						Usage: "Number of result pages to cache, 0 disables the cache",
						Value: 1024,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Workers scanning large dictionaries, 0 scans sequentially",
						Value: 4,
					},
				),
			},
		},
	}
}

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to the dictionary database",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Storage engine (badger, sqlite)",
			Value: string(igbodict.BackendBadger),
		},
	}
}

func openDatabase(c *cli.Context) (*igbodict.Database, error) {
	db, err := igbodict.NewDatabase(c.String("db"),
		igbodict.WithBackend(igbodict.BackendKind(strings.ToLower(c.String("backend")))),
		igbodict.WithDatabaseLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	results, err := searcher.Search(ctx, search.Request{
		Keyword:   strings.Join(c.Args().Slice(), " "),
		IsEnglish: c.Bool("english"),
		Page:      c.String("page"),
		Range:     c.String("range"),
		Sort:      c.String("sort"),
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(c.App.Writer, "No matches")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(c.App.Writer, "%d\t%s (%s)\t%s\n", r.Id, r.Word, r.WordClass, strings.Join(r.Definitions, " | "))
	}
	return nil
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	config := &ingestion.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if err := config.Validate(); err != nil {
		return err
	}

	var (
		entries []*core.Entry
		err     error
	)
	if path := c.String("file"); path != "" {
		entries, err = ingestion.LoadWordList(path)
		if err != nil {
			return fmt.Errorf("failed to load word list: %w", err)
		}
	} else {
		entries = ingestion.SampleEntries()
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	importer, err := db.NewImporter(config, ingestion.WithProgress(c.App.ErrWriter))
	if err != nil {
		return fmt.Errorf("failed to create importer: %w", err)
	}

	fmt.Fprintf(c.App.ErrWriter, "Database: %s (%s)\n", c.String("db"), c.String("backend"))
	fmt.Fprintf(c.App.ErrWriter, "Entries: %d\n", len(entries))

	summary, err := importer.Import(ctx, entries)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "added %d, duplicates %d, rejected %d in %s\n",
		summary.Added, summary.Duplicates, summary.Rejected, summary.Elapsed.Round(time.Millisecond))
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := []search.Option{search.WithPoolSize(c.Int("pool-size"))}
	if size := c.Int("cache-size"); size > 0 {
		opts = append(opts, search.WithCache(size))
	}
	searcher, err := db.NewSearcher(opts...)
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	server, err := api.NewServer(c.String("addr"), searcher, db.EntryRepository())
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Close(shutdownCtx); err != nil {
			slog.Error("shutdown error", "err", err)
		}
	}()

	slog.Info("listening", "addr", c.String("addr"))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("closed")
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
