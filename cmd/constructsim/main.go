package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/expki/go-constructsim/ai"
	"github.com/expki/go-constructsim/ai/aicomms"
	"github.com/expki/go-constructsim/cache"
	"github.com/expki/go-constructsim/config"
	"github.com/expki/go-constructsim/database"
	"github.com/expki/go-constructsim/dataset"
	_ "github.com/expki/go-constructsim/env"
	"github.com/expki/go-constructsim/logger"
	"github.com/expki/go-constructsim/noop"
	"github.com/expki/go-constructsim/pipeline"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type cliOptions struct {
	configPath       string
	itemsPath        string
	referencePath    string
	itemColumns      dataset.ItemColumns
	referenceColumns dataset.ReferenceColumns
	sampleConfig     string
	dryRun           bool
	generate         string
}

func main() {
	_ = godotenv.Load()

	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("constructsim: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("constructsim: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "config.json", "Path to the JSON config file")
	flag.StringVar(&opts.itemsPath, "items", "", "CSV/TSV file of survey items")
	flag.StringVar(&opts.referencePath, "reference", "", "CSV/TSV file of reference correlations")
	flag.StringVar(&opts.itemColumns.Construct, "construct-column", "", "Items column name or #index holding construct labels")
	flag.StringVar(&opts.itemColumns.Text, "text-column", "", "Items column name or #index holding item text")
	flag.StringVar(&opts.referenceColumns.ConstructA, "construct-a-column", "", "Reference column name or #index for the first construct")
	flag.StringVar(&opts.referenceColumns.ConstructB, "construct-b-column", "", "Reference column name or #index for the second construct")
	flag.StringVar(&opts.referenceColumns.Correlation, "correlation-column", "", "Reference column name or #index for the correlation value")
	flag.StringVar(&opts.sampleConfig, "sample-config", "", "Write a starter config to this path and exit")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "Use the no-op provider instead of a model server")
	flag.StringVar(&opts.generate, "generate", "", "Send one prompt to the generation provider and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -items FILE -reference FILE [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.itemsPath = strings.TrimSpace(opts.itemsPath)
	opts.referencePath = strings.TrimSpace(opts.referencePath)
	opts.sampleConfig = strings.TrimSpace(opts.sampleConfig)

	// Utility modes need no input files.
	if opts.sampleConfig != "" || opts.generate != "" {
		return opts, nil
	}
	if opts.itemsPath == "" {
		flag.Usage()
		return opts, errors.New("missing required -items file")
	}
	if opts.referencePath == "" {
		flag.Usage()
		return opts, errors.New("missing required -reference file")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	// Write a starter config and exit
	if opts.sampleConfig != "" {
		if err := config.CreateSample(opts.sampleConfig); err != nil {
			return err
		}
		fmt.Printf("sample config written to %s\n", opts.sampleConfig)
		return nil
	}

	// Load config; a dry run tolerates a missing file
	cfg, err := config.LoadFile(opts.configPath)
	if err == nil {
	} else if opts.dryRun && errors.Is(err, os.ErrNotExist) {
		cfg = config.Config{}
	} else {
		return err
	}
	logger.Initialize(cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Select provider
	var client ai.AI
	if opts.dryRun {
		client = noop.NoAI()
	} else {
		client, err = ai.New(cfg.Ollama, cfg.OpenAI)
		if err != nil {
			return err
		}
	}

	// One-shot generation utility
	if opts.generate != "" {
		response, err := client.Generate(ctx, aicomms.GenerateRequest{
			Model:  client.GenerateModel(),
			Prompt: opts.generate,
		})
		if err != nil {
			return errors.Join(errors.New("generation failed"), err)
		}
		fmt.Println(response.Response)
		return nil
	}

	// Optional run archive
	var store *gorm.DB
	if cfg.Database.Enabled() {
		store, err = database.New(cfg.Database)
		if err != nil {
			return err
		}
	}

	// Optional embedding memoization
	var memo *cache.Cache
	if cfg.Pipeline.EmbedCache {
		memo = cache.NewCache(ctx)
		defer memo.Close()
	}

	result, err := pipeline.New(cfg, client, store, memo).Run(ctx, pipeline.Input{
		ItemsPath:        opts.itemsPath,
		ReferencePath:    opts.referencePath,
		ItemColumns:      opts.itemColumns,
		ReferenceColumns: opts.referenceColumns,
	})
	if err != nil {
		return err
	}

	fmt.Printf("constructs aligned: %d (%d pairs)\n", result.AlignedCount, result.PairCount)
	if len(result.DroppedLabels) > 0 {
		fmt.Printf("dropped constructs: %s\n", strings.Join(result.DroppedLabels, ", "))
	}
	fmt.Printf("raw correlation:      %+.4f\n", result.Raw)
	fmt.Printf("absolute correlation: %+.4f\n", result.Absolute)
	return nil
}
