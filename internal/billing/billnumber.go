package billing

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const billPrefix = "MH"

// GenerateBillNumber produces a human-readable invoice id: prefix, current
// date as YYMMDD, and a zero-padded random 3-digit suffix. Not
// cryptographic and not strictly unique (roughly 1/1000 collision odds per
// day) — fine for a single-property front desk.
func GenerateBillNumber() string {
	return fmt.Sprintf("%s%s%03d", billPrefix, time.Now().Format("060102"), rand.IntN(1000))
}
