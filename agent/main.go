package main

import (
	"context"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"holdem-scribe/agent/config"
	"holdem-scribe/agent/detect"
	"holdem-scribe/agent/llm"
	"holdem-scribe/agent/store"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Debug   bool             `help:"Enable debug logging."`
	Config  string           `help:"Path to the HCL config file." default:"scribe.hcl"`
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Process  ProcessCmd  `cmd:"" help:"Run text through the extraction pipeline."`
	Analyze  AnalyzeCmd  `cmd:"" help:"Show per-term relevance scores for a text."`
	Validate ValidateCmd `cmd:"" help:"Validate a raw candidate JSON document without calling the model."`
	History  HistoryCmd  `cmd:"" help:"List recent extraction attempts from the database."`
}

type appEnv struct {
	cfg    *config.Config
	logger *log.Logger
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-scribe"),
		kong.Description("Turns natural-language poker hands into validated structured game state"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(cli.Config)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&appEnv{cfg: cfg, logger: logger})
	ctx.FatalIfErrorf(err)
}

func buildDetector(app *appEnv) *detect.Detector {
	opts := []detect.Option{detect.WithThreshold(app.cfg.Detector.Threshold)}
	if len(app.cfg.Detector.ExtraTerms) > 0 {
		opts = append(opts, detect.WithTerms(app.cfg.Detector.ExtraTerms...))
	}
	if app.cfg.Detector.Segmenter == "gse" {
		seg, err := detect.NewGseSegmenter()
		if err != nil {
			app.logger.Warn("gse dictionaries unavailable, using builtin segmenter", "err", err)
		} else {
			opts = append(opts, detect.WithSegmenter(seg))
		}
	}
	return detect.New(opts...)
}

// newExtractor wires the chat client: env wins over the config file, the
// config file wins over the built-in defaults.
func newExtractor(app *appEnv) (*llm.Extractor, error) {
	client, err := llm.NewClientFromEnv()
	if err != nil {
		return nil, err
	}
	if app.cfg.LLM.BaseURL != "" && os.Getenv("OPENAI_API_BASE") == "" && os.Getenv("OPENAI_BASE_URL") == "" {
		client.BaseURL = strings.TrimRight(app.cfg.LLM.BaseURL, "/")
	}
	if os.Getenv("OPENAI_MODEL") == "" {
		client.Model = app.cfg.LLM.Model
	}
	client.MaxTokens = app.cfg.LLM.MaxTokens
	client.Temperature = app.cfg.LLM.Temperature
	return llm.NewExtractor(client, app.logger), nil
}

// openStore returns nil when no DSN is configured or the database is down;
// processing continues either way, attempts just go unrecorded.
func openStore(app *appEnv) *store.DB {
	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		dsn = strings.TrimSpace(app.cfg.Database.URL)
	}
	if dsn == "" {
		return nil
	}
	db, err := store.Open(dsn)
	if err != nil {
		app.logger.Warn("database unavailable, attempts will not be recorded", "err", err)
		return nil
	}
	if err := store.Migrate(context.Background(), db); err != nil {
		app.logger.Warn("migration failed, attempts will not be recorded", "err", err)
		db.Close(context.Background())
		return nil
	}
	return db
}
