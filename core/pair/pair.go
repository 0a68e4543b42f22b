// core/pair/pair.go
package pair

import (
	"fmt"
	"strings"
)

// FormatError reports a pair key that does not decompose into exactly two
// non-empty comma-separated taxon identifiers.
type FormatError struct {
	Key string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("taxa combo not in correct format: %s", e.Key)
}

// Canonical returns the order-independent key for a taxon pair:
// the two identifiers sorted lexicographically and joined with a comma.
func Canonical(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "," + b
}

// Join builds the ordered pair key exactly as stored in the HGT table.
func Join(i, j string) string { return i + "," + j }

// Split decomposes an ordered pair key into its two taxon identifiers.
func Split(key string) (string, string, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", &FormatError{Key: key}
	}
	return parts[0], parts[1], nil
}

// Reverse swaps the order of an ordered pair key.
func Reverse(key string) (string, error) {
	i, j, err := Split(key)
	if err != nil {
		return "", err
	}
	return Join(j, i), nil
}
