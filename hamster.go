/*
Package hamster converts images to the Amiga HAM6 display mode and back
again so the result can be previewed on a modern machine.

A Converter loads an image, optionally resizes and adjusts it, dithers it,
encodes it to HAM6, decodes the result and writes it out in a regular image
format. Encoded images can be cached in a SQLite database keyed by the
source image and the conversion options.
*/
package hamster

import (
	"log"

	"github.com/bodgit/hamster/dither"
	"github.com/bodgit/hamster/ham"
)

// Converter performs HAM6 conversions using a fixed set of options.
type Converter struct {
	db     *CacheDB
	logger *log.Logger
	opts   Options
	filter dither.Func
}

// New returns a Converter. db may be nil in which case nothing is cached.
func New(db *CacheDB, logger *log.Logger, opts Options) (*Converter, error) {
	filter, err := dither.Lookup(opts.dither())
	if err != nil {
		return nil, err
	}

	return &Converter{
		db:     db,
		logger: logger,
		opts:   opts,
		filter: filter,
	}, nil
}

func (c *Converter) hamOptions() *ham.Options {
	return &ham.Options{
		ForcePaletteFirstColumn: c.opts.ForcePaletteFirstColumn,
	}
}
