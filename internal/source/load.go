package source

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
	"golang.org/x/text/language"
)

// Origin identifies which input boundary a load attempt reads from.
type Origin int

const (
	OriginURL Origin = iota
	OriginFile
)

func (o Origin) String() string {
	if o == OriginFile {
		return "file"
	}

	return "url"
}

// Request describes a single load attempt.
type Request struct {
	Origin Origin
	// Location is the URL or file path to read.
	Location string
	// Generation orders overlapping attempts, see Generations.
	Generation uint64
	// Locale overrides the loader's collation locale when set.
	Locale language.Tag
}

// Label is the human readable name of the source shown in status messages.
func (r Request) Label() string {
	if r.Origin == OriginFile {
		return filepath.Base(r.Location)
	}

	return r.Location
}

// Result is the outcome of a successful load attempt.
type Result struct {
	Request  Request
	Players  []leaderboard.PlayerRecord
	LoadedAt time.Time
}

// Status returns the success status line for the result.
func (r Result) Status() Status {
	return StatusLoaded(len(r.Players), r.Request.Label())
}

// Generations hands out monotonically increasing load generations.
type Generations struct {
	counter atomic.Uint64
}

// Next returns a generation newer than every previously returned one.
func (g *Generations) Next() uint64 {
	return g.counter.Add(1)
}

// Loader runs load attempts: read, parse, normalize, rank.
type Loader struct {
	httpClient HTTPDoer
	ranker     leaderboard.Ranker
	opts       []leaderboard.NormalizeOption
	now        func() time.Time
}

func NewLoader(httpClient HTTPDoer, ranker leaderboard.Ranker, opts ...leaderboard.NormalizeOption) *Loader {
	return &Loader{
		httpClient: httpClient,
		ranker:     ranker,
		opts:       opts,
		now:        time.Now,
	}
}

// Load performs a full load attempt. A Result is only returned when every step
// succeeded, so callers never see a partially processed set of players.
func (l *Loader) Load(ctx context.Context, req Request) (Result, error) {
	var (
		body    []byte
		errRead error
	)

	switch req.Origin {
	case OriginFile:
		body, errRead = ReadFile(req.Location)
	case OriginURL:
		fallthrough
	default:
		body, errRead = FetchURL(ctx, l.httpClient, req.Location)
	}

	if errRead != nil {
		slog.Error("Failed to read source", slog.String("origin", req.Origin.String()),
			slog.String("location", req.Location), slog.String("error", errRead.Error()))

		return Result{}, errRead
	}

	players, errParse := leaderboard.Parse(body, l.opts...)
	if errParse != nil {
		slog.Error("Failed to parse source", slog.String("origin", req.Origin.String()),
			slog.String("location", req.Location), slog.String("error", errParse.Error()))

		return Result{}, errParse
	}

	ranker := l.ranker
	if req.Locale != language.Und {
		ranker = leaderboard.NewRanker(req.Locale)
	}

	ranked := ranker.Rank(players)
	slog.Debug("Loaded players", slog.String("origin", req.Origin.String()),
		slog.String("location", req.Location), slog.Int("count", len(ranked)),
		slog.Uint64("generation", req.Generation))

	return Result{Request: req, Players: ranked, LoadedAt: l.now()}, nil
}
