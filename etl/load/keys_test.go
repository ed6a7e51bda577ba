package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeysSetDifference(t *testing.T) {
	existing := map[string]bool{"a": true, "c": true}

	fresh := NewKeys([]string{"a", "b", "c", "d"}, existing)
	assert.Equal(t, []string{"b", "d"}, fresh)
}

func TestNewKeysPreservesInputOrder(t *testing.T) {
	fresh := NewKeys([]string{"z", "m", "a"}, map[string]bool{})
	assert.Equal(t, []string{"z", "m", "a"}, fresh)
}

// Feeding the same batch a second time against keys from the first run must
// yield nothing to append; this is what makes re-running the loader
// idempotent.
func TestNewKeysSecondRunAppendsNothing(t *testing.T) {
	incoming := []string{"KH000001", "KH000002", "KH000003"}

	existing := map[string]bool{}
	first := NewKeys(incoming, existing)
	assert.Len(t, first, 3)

	for _, key := range first {
		existing[key] = true
	}

	second := NewKeys(incoming, existing)
	assert.Empty(t, second)
}

func TestNewKeysEmptyIncoming(t *testing.T) {
	assert.Empty(t, NewKeys(nil, map[string]bool{"a": true}))
}
