package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"holdem-scribe/agent/game"
	"holdem-scribe/agent/judge"
	"holdem-scribe/agent/pipeline"
	"holdem-scribe/agent/store"
)

type ProcessCmd struct {
	Text        []string `arg:"" optional:"" help:"Hand description. Reads stdin (one hand per line) when omitted."`
	Jobs        int      `default:"4" help:"Parallel attempts in batch mode."`
	Equity      bool     `help:"Report the made hand and equity for valid states."`
	EquityIters int      `name:"equity-iters" default:"10000" help:"Monte-Carlo iterations for --equity."`
	Seed        int64    `help:"Seed for the equity sampler (0 picks one)."`
}

// outcome is what one processed input prints: the result kind plus whatever
// the downstream presenter needs (state JSON and the one-line status).
type outcome struct {
	Text   string      `json:"text,omitempty"`
	Result string      `json:"result"`
	Status string      `json:"status,omitempty"`
	State  *game.State `json:"state,omitempty"`
	Error  string      `json:"error,omitempty"`
	Hand   string      `json:"hand,omitempty"`
	Equity *float64    `json:"equity,omitempty"`
}

func (c *ProcessCmd) Run(app *appEnv) error {
	extractor, err := newExtractor(app)
	if err != nil {
		return err
	}
	p := pipeline.New(buildDetector(app), extractor)
	db := openStore(app)
	if db != nil {
		defer db.Close(context.Background())
	}

	ctx := context.Background()

	if len(c.Text) > 0 {
		out := c.processOne(ctx, app, p, db, strings.Join(c.Text, " "), false)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	// Batch mode: one hand per line, attempts run in parallel since the
	// pipeline holds no mutable state across calls.
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Jobs, 1))
	var mu sync.Mutex
	enc := json.NewEncoder(os.Stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g.Go(func() error {
			out := c.processOne(gctx, app, p, db, line, true)
			mu.Lock()
			defer mu.Unlock()
			return enc.Encode(out)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return scanner.Err()
}

func (c *ProcessCmd) processOne(ctx context.Context, app *appEnv, p *pipeline.Pipeline, db *store.DB, text string, batch bool) outcome {
	res := p.Process(ctx, text)
	out := outcome{Result: string(res.Kind)}
	if batch {
		out.Text = text
	}
	switch res.Kind {
	case pipeline.NotRelevant:
		out.Status = "请输入与德州扑克有关的信息！"
	case pipeline.ExtractionFailed:
		out.Error = res.Err.Error()
	default:
		out.Status = res.Status.Message()
		state := res.State
		out.State = &state
		if res.Kind == pipeline.Valid && c.Equity {
			if desc, err := judge.Describe(res.State); err == nil {
				out.Hand = desc
			}
			if eq, err := judge.EquityVsRandom(res.State, c.EquityIters, c.Seed); err == nil {
				out.Equity = &eq
			}
		}
	}

	if db != nil {
		attempt := store.Attempt{
			InputText: text,
			Relevant:  res.Kind != pipeline.NotRelevant,
			Status:    out.Status,
			OK:        res.Kind == pipeline.Valid,
		}
		if attempt.Status == "" {
			attempt.Status = out.Error
		}
		if out.State != nil {
			attempt.State, _ = json.Marshal(out.State)
		}
		if _, err := db.SaveAttempt(ctx, attempt); err != nil {
			app.logger.Warn("failed to record attempt", "err", err)
		}
	}
	return out
}

type AnalyzeCmd struct {
	Text []string `arg:"" help:"Text to analyze."`
}

func (c *AnalyzeCmd) Run(app *appEnv) error {
	d := buildDetector(app)
	text := strings.Join(c.Text, " ")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TERM\tTF\tIDF\tTFIDF\tLEXICON")
	for _, row := range d.Analyze(text) {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%v\n", row.Term, row.TF, row.IDF, row.TFIDF, row.InLexicon)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nscore=%.4f relevant=%v\n", d.Score(text), d.IsRelevant(text))
	return nil
}

type ValidateCmd struct {
	File string `arg:"" optional:"" help:"Path to a raw candidate JSON file; stdin when omitted."`
}

func (c *ValidateCmd) Run(app *appEnv) error {
	var data []byte
	var err error
	if c.File != "" {
		data, err = os.ReadFile(c.File)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	var cand game.RawCandidate
	if err := json.Unmarshal(data, &cand); err != nil {
		return fmt.Errorf("decode candidate: %w", err)
	}
	state, status := game.Validate(cand)

	out := struct {
		Status   string         `json:"status"`
		Problems []game.Problem `json:"problems,omitempty"`
		State    game.State     `json:"state"`
	}{Status: status.Message(), Problems: status.Problems, State: state}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type HistoryCmd struct {
	Limit int `default:"20" help:"Number of attempts to show."`
}

func (c *HistoryCmd) Run(app *appEnv) error {
	db := openStore(app)
	if db == nil {
		return errors.New("no database configured: set DATABASE_URL or the database block in the config file")
	}
	defer db.Close(context.Background())

	attempts, err := db.Recent(context.Background(), c.Limit)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tOK\tSTATUS\tTEXT")
	for _, a := range attempts {
		fmt.Fprintf(w, "%d\t%s\t%v\t%s\t%s\n",
			a.ID, a.CreatedAt.Format(time.RFC3339), a.OK, a.Status, clip(a.InputText, 60))
	}
	return w.Flush()
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
