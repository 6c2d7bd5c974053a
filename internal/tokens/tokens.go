// Package tokens loads the static token library served by the oracle.
package tokens

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"augur/pkg/platform/sentinel"
)

// List is an ordered, index-addressable set of tokens. It is read-only after
// construction.
type List struct {
	items []string
}

// New builds a list from items, dropping blank entries.
func New(items ...string) *List {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			kept = append(kept, it)
		}
	}
	return &List{items: slices.Clip(kept)}
}

// Read loads one token per line. Blank lines and # comments are skipped;
// order is preserved and duplicates are kept.
func Read(r io.Reader) (*List, error) {
	var items []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	return New(items...), nil
}

// Load reads the token file at path. An empty path yields an empty list.
func Load(path string) (*List, error) {
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", sentinel.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

func (l *List) Len() int {
	return len(l.items)
}

// At returns the token at i. It panics if i is out of range.
func (l *List) At(i int) string {
	return l.items[i]
}
