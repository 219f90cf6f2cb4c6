package repr

import (
	"bytes"
	"reflect"
	"runtime"
	"strconv"
	"sync"
)

// activeKey identifies a value being rendered by one goroutine. The type is
// part of the key because a struct and its first field share an address.
type activeKey struct {
	goroutine uint64
	typ       reflect.Type
	addr      uintptr
}

// active holds the values whose rendering is in progress. A Repr method
// that calls Describe starts a fresh walker, so the depth bound alone does
// not stop a cycle that passes through it.
var active = struct {
	sync.Mutex
	set map[activeKey]struct{}
}{set: make(map[activeKey]struct{})}

func noLeave() {}

// enter marks v as being rendered by the calling goroutine. ok is false when
// v is already being rendered further up the same call stack. Values
// without an address cannot form a cycle on their own and always enter.
func enter(v any) (leave func(), ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
	default:
		return noLeave, true
	}
	addr := rv.Pointer()
	if addr == 0 {
		return noLeave, true
	}

	key := activeKey{goroutine: goroutineID(), typ: rv.Type(), addr: addr}

	active.Lock()
	defer active.Unlock()
	if _, busy := active.set[key]; busy {
		return noLeave, false
	}
	active.set[key] = struct{}{}
	return func() {
		active.Lock()
		delete(active.set, key)
		active.Unlock()
	}, true
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the current goroutine's number from its stack header,
// "goroutine 18 [running]:".
func goroutineID() uint64 {
	var buf [64]byte
	b := bytes.TrimPrefix(buf[:runtime.Stack(buf[:], false)], goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}
