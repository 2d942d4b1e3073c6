package hamster

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// cacheKey identifies the result of converting the source image b with the
// given options. The length of b is hashed first so the image and the
// options can't run into each other.
func cacheKey(b []byte, opts Options) string {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(b)))

	d := xxhash.New()
	_, _ = d.Write(n[:])
	_, _ = d.Write(b)
	_, _ = d.WriteString(opts.fingerprint())
	return fmt.Sprintf("%016X", d.Sum64())
}
