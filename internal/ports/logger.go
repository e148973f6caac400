package ports

import "github.com/ryanthemcpherson/minecraft-audio-viz/pkg/log"

// Logger re-exports the logging abstraction so internal packages do not
// import pkg/log directly.
type Logger = log.Logger

// Field re-exports the structured log field type.
type Field = log.Field

// Field constructors re-exported for convenience.
var (
	String   = log.String
	Int      = log.Int
	Uint64   = log.Uint64
	Float64  = log.Float64
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
