package testutil

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// RanData generates random values inside an inclusive integer range.
type RanData struct {
	Min int
	Max int
}

// NewRanData returns a generator for [minVal, maxVal]. The bounds are
// swapped when given in the wrong order.
func NewRanData(minVal, maxVal int) *RanData {
	if minVal > maxVal {
		minVal, maxVal = maxVal, minVal
	}
	return &RanData{Min: minVal, Max: maxVal}
}

// Int returns a random int in [Min, Max].
func (r *RanData) Int() int {
	return r.Min + rand.IntN(r.Max-r.Min+1)
}

// Float returns a random float64 in [Min, Max).
func (r *RanData) Float() float64 {
	return float64(r.Min) + rand.Float64()*float64(r.Max-r.Min)
}

// String returns "str" followed by a random Int.
func (r *RanData) String() string {
	return "str" + strconv.Itoa(r.Int())
}

// Bool returns a random bool.
func (r *RanData) Bool() bool {
	return rand.IntN(2) == 1
}

// Slice returns one value of each scalar kind.
func (r *RanData) Slice() []any {
	return []any{r.Int(), r.Float(), r.String(), r.Bool()}
}

// Map returns a small map with random keys and values.
func (r *RanData) Map() map[string]any {
	return map[string]any{
		r.String():                  r.Int(),
		strconv.Itoa(r.Int()):       r.String(),
		strconv.Itoa(r.Int()) + "f": r.Float(),
	}
}

// Bytes returns Int() random bytes.
func (r *RanData) Bytes() []byte {
	b := make([]byte, max(r.Int(), 0))
	for i := range b {
		b[i] = byte(rand.IntN(256))
	}
	return b
}

// Kinds lists the names accepted by Get.
var Kinds = []string{"int", "float", "str", "bool", "list", "dict", "bytes"}

// Get returns a random value of the named kind. Unknown names are an error;
// names are matched against a fixed table, never evaluated.
func (r *RanData) Get(kind string) (any, error) {
	switch kind {
	case "int":
		return r.Int(), nil
	case "float":
		return r.Float(), nil
	case "str":
		return r.String(), nil
	case "bool":
		return r.Bool(), nil
	case "list":
		return r.Slice(), nil
	case "dict":
		return r.Map(), nil
	case "bytes":
		return r.Bytes(), nil
	default:
		return nil, fmt.Errorf("testutil: unknown data kind %q", kind)
	}
}
