package custody

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Codes look like TD-LX2K3M9A-7H4KQ2: a millisecond timestamp in base36 plus a
// random suffix. Ambiguous characters (0/O, 1/I) are excluded because the code
// is read aloud at the counter when scanning fails.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeSuffixLen = 6

func generateCode(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := make([]byte, codeSuffixLen)
	for i := range suffix {
		suffix[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return fmt.Sprintf("TD-%s-%s", ts, string(suffix))
}
