package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
)

// buildKey derives a stable content hash from the category and the
// normalized key parts. Normalization folds case and whitespace so that
// trivially different spellings of the same query share one entry.
func buildKey(category domain.CacheCategory, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(category))
	for _, part := range parts {
		h.Write([]byte{0x1f})
		h.Write([]byte(normalizePart(part)))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func normalizePart(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
