package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/igbodict"
	"github.com/poiesic/igbodict/core"
	"github.com/poiesic/igbodict/ingestion"
)

var (
	dbPath       = flag.String("db", "./dictionary_db", "path to the dictionary database directory")
	wordListFile = flag.String("file", "", "JSON word list to seed instead of the built-in sample")
)

func main() {
	flag.Parse()

	db, err := igbodict.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	importer, err := db.NewImporter(nil, ingestion.WithProgress(os.Stderr))
	if err != nil {
		panic(err)
	}

	// Determine source of seed data
	var entries []*core.Entry
	if *wordListFile != "" {
		entries, err = ingestion.LoadWordList(*wordListFile)
		if err != nil {
			panic(err)
		}
	} else {
		entries = ingestion.SampleEntries()
	}

	summary, err := importer.Import(context.Background(), entries)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded dictionary",
		"db", *dbPath,
		"added", summary.Added,
		"duplicates", summary.Duplicates,
		"rejected", summary.Rejected)
}
