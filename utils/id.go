package utils

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const randomIDLength = 5

// idRandom and idNow are replaced in tests.
var (
	idRandom = func(n int64) int64 { return rand.Int64N(n) }
	idNow    = time.Now
)

// CreateID returns "{prefix}-{random base36}-{unix millis base36}", e.g. "gov-k3x9a-lx2m4q1c".
// Uniqueness is probabilistic only.
func CreateID(prefix string) string {
	space := int64(1)
	for i := 0; i < randomIDLength; i++ {
		space *= 36
	}
	random := strconv.FormatInt(idRandom(space), 36)
	if pad := randomIDLength - len(random); pad > 0 {
		random = strings.Repeat("0", pad) + random
	}
	stamp := strconv.FormatInt(idNow().UnixMilli(), 36)
	return prefix + "-" + random + "-" + stamp
}
