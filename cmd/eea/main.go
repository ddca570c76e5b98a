// Command eea prints the Extended Euclidean Algorithm trace for two positive
// integers, followed by their GCD and, when it exists, the modular inverse of
// the first modulo the second.
//
//	eea [-config file] [-format table|json] [-delay 100ms] [-group] A B
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kbolino/eea"
	"github.com/kbolino/eea/internal/config"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type jsonStep struct {
	Q  int64 `json:"q"`
	A  int64 `json:"a"`
	B  int64 `json:"b"`
	R  int64 `json:"r"`
	T1 int64 `json:"t1"`
	T2 int64 `json:"t2"`
	T  int64 `json:"t"`
}

type jsonResult struct {
	A       int64      `json:"a"`
	B       int64      `json:"b"`
	GCD     int64      `json:"gcd"`
	Inverse *int64     `json:"inverse,omitempty"`
	Steps   []jsonStep `json:"steps"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("eea", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: eea [flags] A B")
		fs.PrintDefaults()
	}
	def := config.Default()
	configPath := fs.String("config", "", "TOML configuration file")
	format := fs.String("format", def.Format, "output format: table or json")
	delay := fs.Duration("delay", def.Delay.Duration, "pause between table rows")
	group := fs.Bool("group", def.Group, "group digits in table output")
	logLevel := fs.String("log-level", def.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return exitUsage
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "delay":
			cfg.Delay.Duration = *delay
		case "group":
			cfg.Group = *group
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	lvl, _ := cfg.Level()
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Str("component", "eea").
		Logger()

	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	a, b, err := eea.Parse(fs.Arg(0), fs.Arg(1))
	if err != nil {
		log.Debug().Err(err).Strs("args", fs.Args()).Msg("rejected input")
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}

	res := eea.Compute(a, b)
	log.Debug().
		Int64("a", a).
		Int64("b", b).
		Int64("gcd", res.GCD).
		Int("steps", len(res.Steps)).
		Msg("computed")

	switch cfg.Format {
	case config.FormatJSON:
		err = writeJSON(stdout, res)
	default:
		err = writeTable(ctx, stdout, res, cfg)
	}
	if err != nil {
		log.Error().Err(err).Msg("writing output")
		return exitError
	}
	return exitOK
}

func writeJSON(w io.Writer, res eea.Result) error {
	out := jsonResult{A: res.A, B: res.B, GCD: res.GCD, Steps: make([]jsonStep, len(res.Steps))}
	if res.HasInverse {
		inv := res.Inverse
		out.Inverse = &inv
	}
	for i, s := range res.Steps {
		out.Steps[i] = jsonStep(s)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encoding result")
}

// writeTable renders the whole table first, then reveals it one line at a
// time with cfg.Delay between rows.
func writeTable(ctx context.Context, w io.Writer, res eea.Result, cfg config.Config) error {
	format := func(v int64) string { return strconv.FormatInt(v, 10) }
	if cfg.Group {
		p := message.NewPrinter(language.English)
		format = func(v int64) string { return p.Sprintf("%d", v) }
	}
	var buf bytes.Buffer
	if err := res.WriteTable(&buf, format); err != nil {
		return errors.Wrap(err, "rendering table")
	}
	sc := bufio.NewScanner(&buf)
	for first := true; sc.Scan(); first = false {
		if !first && cfg.Delay.Duration > 0 {
			if err := sleep(ctx, cfg.Delay.Duration); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, sc.Text()); err != nil {
			return errors.Wrap(err, "writing table")
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "reading table")
	}
	fmt.Fprintln(w)
	for _, line := range summary(res, format) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "writing summary")
		}
	}
	return nil
}

// summary is Result.Summary with numbers rendered by format.
func summary(res eea.Result, format func(int64) string) []string {
	lines := []string{"GCD: " + format(res.GCD)}
	if res.HasInverse {
		lines = append(lines, fmt.Sprintf("Modular inverse of %s mod %s: %s",
			format(res.A), format(res.B), format(res.Inverse)))
	} else {
		lines = append(lines, res.Summary()[1])
	}
	return lines
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "revealing table")
	case <-t.C:
		return nil
	}
}
