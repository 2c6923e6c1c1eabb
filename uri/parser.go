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

package uri

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/jplu/uriparts/internal/log"
	"github.com/jplu/uriparts/query"
)

// QueryCodec converts a query body to and from its key/value form.
// query.Codec and query.FormCodec implement it.
type QueryCodec interface {
	Decode(body string) query.Values
	Encode(q query.Values) string
}

//go:generate mockgen -destination=urimock/codec.go -package=urimock . QueryCodec

// Option configures a Parser.
type Option func(p *Parser)

// WithQueryCodec sets the codec used to decode and encode the query component.
func WithQueryCodec(codec QueryCodec) Option {
	return func(p *Parser) {
		if codec != nil {
			p.codec = codec
		}
	}
}

// WithLogger sets the logger that receives the parser's debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.log = logger
		}
	}
}

// Parser parses and builds URIs with a given query codec. A Parser holds no
// mutable state and is safe for concurrent use.
type Parser struct {
	codec QueryCodec
	log   *slog.Logger
}

// NewParser returns a Parser using query.Codec and a no-op logger unless
// options say otherwise.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		codec: query.Codec{},
		log:   log.Noop,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse decomposes s with the default parser.
func Parse(s string) (*Components, error) {
	return errtrace.Wrap2(defaultParser.Parse(s))
}

// Parse decomposes s into its components. The first failing stage aborts the
// parse and no partial components are returned.
func (p *Parser) Parse(s string) (*Components, error) {
	r := &run{
		codec: p.codec,
		rest:  s,
		comps: &Components{},
	}
	for st := stateScheme; st != stateDone; {
		next, err := r.step(st)
		if err != nil {
			p.log.Debug("URI parse failed", slog.String("uri", s), slog.Any("state", st), slog.Any("error", err))
			return nil, errtrace.Wrap(err)
		}
		p.log.Debug("URI parser transition",
			slog.Any("from", st),
			slog.Any("to", next),
			slog.String("rest", r.rest),
		)
		st = next
	}
	return r.comps, nil
}

// state is a stage of the parse pipeline.
type state uint8

const (
	stateScheme state = iota
	stateAuthority
	statePath
	stateQuery
	stateFragment
	stateDone
)

func (s state) String() string {
	switch s {
	case stateScheme:
		return "scheme"
	case stateAuthority:
		return "authority"
	case statePath:
		return "path"
	case stateQuery:
		return "query"
	case stateFragment:
		return "fragment"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// run holds the state of a single parse: the unconsumed input and the
// components filled in so far.
type run struct {
	codec QueryCodec
	rest  string
	comps *Components
}

// step runs the stage st and returns the stage to run next.
func (r *run) step(st state) (state, error) {
	switch st {
	case stateScheme:
		return errtrace.Wrap2(r.parseScheme())
	case stateAuthority:
		return errtrace.Wrap2(r.parseAuthority())
	case statePath:
		return errtrace.Wrap2(r.parsePath())
	case stateQuery:
		return r.parseQuery(), nil
	case stateFragment:
		return errtrace.Wrap2(r.parseFragment())
	default:
		return stateDone, nil
	}
}

func (r *run) parseScheme() (state, error) {
	scheme, rest, err := extractScheme(r.rest)
	if err != nil {
		return stateDone, errtrace.Wrap(err)
	}
	r.comps.Scheme = scheme
	r.rest = rest
	return stateAuthority, nil
}

func (r *run) parseAuthority() (state, error) {
	authority, ok, rest, err := extractAuthority(r.rest)
	if err != nil {
		return stateDone, errtrace.Wrap(err)
	}
	if ok {
		a, err := ParseAuthority(authority)
		if err != nil {
			return stateDone, errtrace.Wrap(err)
		}
		r.comps.Authority = a
		if rest != "" && !startsWithAny(rest, authorityEnd) {
			return stateDone, errtrace.Wrap(newParseError(ErrUnexpectedRemainder, rest))
		}
	}
	return r.advance(rest, statePath), nil
}

func (r *run) parsePath() (state, error) {
	path, rest, err := extractPath(r.rest)
	if err != nil {
		return stateDone, errtrace.Wrap(err)
	}
	r.comps.Path = path
	if rest != "" && !startsWithAny(rest, pathEnd) {
		return stateDone, errtrace.Wrap(newParseError(ErrUnexpectedRemainder, rest))
	}
	return r.advance(rest, stateQuery), nil
}

func (r *run) parseQuery() state {
	body, rest := extractQuery(r.rest)
	if body != "" {
		r.comps.Query = r.codec.Decode(body)
	}
	return r.advance(rest, stateFragment)
}

func (r *run) parseFragment() (state, error) {
	fragment, err := extractFragment(r.rest)
	if err != nil {
		return stateDone, errtrace.Wrap(err)
	}
	r.comps.Fragment = &fragment
	r.rest = ""
	return stateDone, nil
}

// advance stores rest and moves to next, or ends the parse when nothing is left.
func (r *run) advance(rest string, next state) state {
	r.rest = rest
	if rest == "" {
		return stateDone
	}
	return next
}
