package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Domenick1991/dentaltrip/internal/domain"
)

// maxWalkDepth bounds the fallback traversal on hostile or deeply nested
// payloads.
const maxWalkDepth = 64

var (
	// moneyPattern captures "digits(.digits)?" with optional comma
	// thousands separators. The number must start at a boundary so the
	// decimals of "$9.50" are never read on their own; small values are
	// left to the range filter.
	moneyPattern = regexp.MustCompile(`(?:^|[^\d.,])(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)`)
	priceKey     = regexp.MustCompile(`(?i)price`)
)

// ParseMoney pulls the first money-looking number out of a display string
// such as "$1,250" or "USD 480.50". Commas are treated as thousands
// separators.
func ParseMoney(s string) (float64, bool) {
	m := moneyPattern.FindStringSubmatch(s)
	if len(m) < 2 {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// WalkPrices is the schema-less fallback: it visits every object and array
// in the payload and collects in-range numbers found under any key whose
// name contains "price". It is never the primary path.
func WalkPrices(payload []byte, rng domain.PriceRange) ([]domain.PriceCandidate, error) {
	var root any
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	w := &walker{rng: rng}
	w.traverse(root, "$", 0)
	return w.hits, nil
}

type walker struct {
	rng  domain.PriceRange
	hits []domain.PriceCandidate
}

func (w *walker) traverse(node any, path string, depth int) {
	if depth > maxWalkDepth {
		return
	}
	switch v := node.(type) {
	case []any:
		for i, item := range v {
			w.traverse(item, fmt.Sprintf("%s[%d]", path, i), depth+1)
		}
	case map[string]any:
		for _, k := range sortedKeys(v) {
			child := path + "." + k
			if priceKey.MatchString(k) {
				w.collect(v[k], child, depth+1)
			}
			w.traverse(v[k], child, depth+1)
		}
	}
}

func (w *walker) collect(val any, path string, depth int) {
	if depth > maxWalkDepth {
		return
	}
	switch v := val.(type) {
	case float64:
		w.add(v, path)
	case string:
		if n, ok := ParseMoney(v); ok {
			w.add(n, path)
		}
	case []any:
		for i, item := range v {
			w.collect(item, fmt.Sprintf("%s[%d]", path, i), depth+1)
		}
	case map[string]any:
		for _, k := range sortedKeys(v) {
			w.collect(v[k], path+"."+k, depth+1)
		}
	}
}

func (w *walker) add(amount float64, path string) {
	if !w.rng.Contains(amount) {
		return
	}
	w.hits = append(w.hits, domain.PriceCandidate{
		Amount: amount,
		Source: string(domain.FlightSourceFallback),
		Path:   path,
	})
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
