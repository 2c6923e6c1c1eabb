/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command uriparts splits URIs into their components, rebuilds them and reports
// whether the rebuilt URI parses back to the same components.
//
// Usage:
//
//	uriparts [-json] [-form] [-ascii] [-v] [-dev] URI...
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jplu/uriparts/internal/log"
	"github.com/jplu/uriparts/query"
	"github.com/jplu/uriparts/uri"
)

var (
	errNoArgs      = errors.New("no URI given")
	errParseFailed = errors.New("some URIs could not be parsed")
)

type config struct {
	json    bool
	form    bool
	ascii   bool
	verbose bool
	dev     bool
	uris    []string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errNoArgs) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("uriparts", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := &config{}
	fs.BoolVar(&cfg.json, "json", false, "Print components as JSON.")
	fs.BoolVar(&cfg.form, "form", false, "Decode and encode the query with form encoding instead of verbatim.")
	fs.BoolVar(&cfg.ascii, "ascii", false, "Also print the IDNA ASCII form of the host.")
	fs.BoolVar(&cfg.verbose, "v", false, "Log parser transitions.")
	fs.BoolVar(&cfg.dev, "dev", false, "Use the developer log format.")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: uriparts [flags] URI...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.uris = fs.Args()
	if len(cfg.uris) == 0 {
		fs.Usage()
		return nil, errNoArgs
	}
	return cfg, nil
}

func newLogger(cfg *config, stderr io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	if cfg.dev {
		return log.NewDev(stderr, level)
	}
	return log.NewConsole(stderr, level)
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, stderr)
	opts := []uri.Option{uri.WithLogger(logger)}
	if cfg.form {
		opts = append(opts, uri.WithQueryCodec(query.FormCodec{}))
	}
	p := uri.NewParser(opts...)

	failed := false
	for _, s := range cfg.uris {
		if err := report(p, cfg, s, stdout); err != nil {
			logger.Error("failed to process URI", slog.String("uri", s), slog.Any("error", err))
			failed = true
		}
	}
	if failed {
		return errParseFailed
	}
	return nil
}

// report parses s, prints its components and checks that the rebuilt URI
// parses back to the same components.
func report(p *uri.Parser, cfg *config, s string, w io.Writer) error {
	c, err := p.Parse(s)
	if err != nil {
		return err
	}
	built, err := p.Build(c)
	if err != nil {
		return err
	}
	again, err := p.Parse(built)
	if err != nil {
		return fmt.Errorf("reparse %q: %w", built, err)
	}

	var asciiHost string
	if cfg.ascii && c.Authority != nil {
		if asciiHost, err = c.Authority.ASCIIHost(); err != nil {
			return err
		}
	}

	if cfg.json {
		out := struct {
			*uri.Components
			Input     string `json:"input"`
			Built     string `json:"built"`
			RoundTrip bool   `json:"round_trip"`
			ASCIIHost string `json:"ascii_host,omitempty"`
		}{c, s, built, c.Equal(again), asciiHost}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(w, "%s\n", s)
	fmt.Fprintf(w, "  scheme:    %s\n", c.Scheme)
	if a := c.Authority; a != nil {
		if ui := a.UserInfo; ui != nil {
			fmt.Fprintf(w, "  username:  %s\n", ui.Username)
			if ui.Password != nil {
				fmt.Fprintf(w, "  password:  %s\n", *ui.Password)
			}
		}
		fmt.Fprintf(w, "  host:      %s\n", a.Host)
		if cfg.ascii {
			fmt.Fprintf(w, "  ascii:     %s\n", asciiHost)
		}
		if a.Port != nil {
			fmt.Fprintf(w, "  port:      %d\n", *a.Port)
		}
	}
	fmt.Fprintf(w, "  path:      %s\n", c.Path)
	if c.Query != nil {
		fmt.Fprintf(w, "  query:     %s\n", c.Query.Encode())
	}
	if c.Fragment != nil {
		fmt.Fprintf(w, "  fragment:  %s\n", *c.Fragment)
	}
	fmt.Fprintf(w, "  built:     %s\n", built)
	fmt.Fprintf(w, "  roundtrip: %t\n", c.Equal(again))
	return nil
}
