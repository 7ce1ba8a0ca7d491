package identifier

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// New returns an opaque identifier tagged with a short category prefix,
// e.g. New("emp") -> "emp_1f8a9c...". Identifiers are collision-free and
// never reused; callers must not parse anything out of them.
func New(prefix string) string {
	id := uuid.New()
	return prefix + "_" + hex.EncodeToString(id[:])
}
