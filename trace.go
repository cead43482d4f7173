package sparse

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Tracer observes an AAT pass. It must not touch the arrays handed to AAT.
type Tracer interface {
	// Begin is called once with the result of Validate on the input.
	Begin(n int64, valid error)
	Column(k, p1, p2 int64)
	// Upper reports A(j,k) in the strictly upper part, counted with A(k,j).
	Upper(j, k int64)
	// Lower reports A(i,j) found only in the lower part.
	Lower(i, j int64)
	// Cleanup reports A(i,j) counted by the final sweep.
	Cleanup(i, j int64)
	End(info Info)
}

// LogTracer writes trace events to a zerolog logger. Annotate selects the
// volume: 0 logs only the summary and precondition violations, 1 adds column
// boundaries, 2 adds every counted entry.
type LogTracer struct {
	Logger   zerolog.Logger
	Annotate int
}

func NewLogTracer(logger zerolog.Logger, annotate int) *LogTracer {
	return &LogTracer{Logger: logger, Annotate: annotate}
}

func (t *LogTracer) Begin(n int64, valid error) {
	t.Logger.Debug().Int64("n", n).Msg("aat start")
	if valid != nil {
		t.Logger.Warn().Err(valid).Msg("aat input fails validation, results are undefined")
	}
}

func (t *LogTracer) Column(k, p1, p2 int64) {
	if t.Annotate < 1 {
		return
	}
	t.Logger.Trace().Int64("col", k).Int64("p1", p1).Int64("p2", p2).Msg("column")
}

func (t *LogTracer) Upper(j, k int64) {
	if t.Annotate < 2 {
		return
	}
	t.Logger.Trace().Int64("row", j).Int64("col", k).Msg("upper")
}

func (t *LogTracer) Lower(i, j int64) {
	if t.Annotate < 2 {
		return
	}
	t.Logger.Trace().Int64("row", i).Int64("col", j).Msg("lower")
}

func (t *LogTracer) Cleanup(i, j int64) {
	if t.Annotate < 2 {
		return
	}
	t.Logger.Trace().Int64("row", i).Int64("col", j).Msg("lower cleanup")
}

func (t *LogTracer) End(info Info) {
	t.Logger.Debug().
		Int64("nzaat", info.NZAPlusAT).
		Int64("nzboth", info.NZBoth).
		Int64("nz", info.NZ).
		Int64("nzdiag", info.NZDiag).
		Float64("symmetry", info.Symmetry).
		Msg("aat done")
}

// NewLogger creates a console logger at the given level, falling back to info
// for an unknown level. A nil writer means stderr.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if w == nil {
		w = os.Stderr
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(lvl).With().Timestamp().Str("component", "aat").Logger()
}
