// Package memsize estimates the in-memory footprint of arbitrary Go values.
//
// The estimate covers the value itself plus every heap object reachable from
// it: pointer targets, slice backing arrays (by capacity), string bytes, map
// entries, channel buffers and boxed interface values. Allocator and runtime
// overhead such as map bucket headers is not included.
//
// Traversal uses an explicit stack rather than recursion, and every reference
// is recorded in an identity set before it is followed, so cyclic structures
// always terminate. Pointer targets, backing arrays and string bytes are
// recorded as address ranges and summed as a union at the end, so memory
// reachable by several paths is counted once even when one path points into
// the middle of an object another path covers whole.
package memsize

import (
	"reflect"
	"sort"
	"unsafe"
)

// identity distinguishes referenced memory. The extent separates slices or
// strings that share a starting address but cover different lengths.
type identity struct {
	addr   uintptr
	typ    reflect.Type
	extent int
}

// span is the half-open address range [start, end) of a counted object.
type span struct {
	start, end uintptr
}

type walker struct {
	seen      map[identity]struct{}
	stack     []reflect.Value
	referents map[reflect.Type]bool
	spans     []span
}

// Estimate returns the approximate number of bytes held by v.
func Estimate(v any) int64 {
	if v == nil {
		return 0
	}
	root := reflect.ValueOf(v)
	w := &walker{
		seen:      make(map[identity]struct{}),
		referents: make(map[reflect.Type]bool),
	}

	total := int64(root.Type().Size())
	w.push(root)
	for len(w.stack) > 0 {
		n := len(w.stack) - 1
		cur := w.stack[n]
		w.stack = w.stack[:n]
		total += w.visit(cur)
	}
	return total + unionSize(w.spans)
}

// claim records size bytes at addr as reachable.
func (w *walker) claim(addr uintptr, size int64) {
	if size <= 0 {
		return
	}
	w.spans = append(w.spans, span{start: addr, end: addr + uintptr(size)})
}

// unionSize returns the number of bytes covered by at least one span.
func unionSize(spans []span) int64 {
	if len(spans) == 0 {
		return 0
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var total int64
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.start <= cur.end {
			if s.end > cur.end {
				cur.end = s.end
			}
			continue
		}
		total += int64(cur.end - cur.start)
		cur = s
	}
	return total + int64(cur.end-cur.start)
}

func (w *walker) push(v reflect.Value) {
	if w.hasReferents(v.Type()) {
		w.stack = append(w.stack, v)
	}
}

// mark records id and reports whether it was new.
func (w *walker) mark(id identity) bool {
	if _, ok := w.seen[id]; ok {
		return false
	}
	w.seen[id] = struct{}{}
	return true
}

// visit returns the bytes owned by v outside its own inline storage that are
// not tracked as spans, and schedules anything further reachable.
func (w *walker) visit(v reflect.Value) int64 {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return 0
		}
		elem := v.Type().Elem()
		if !w.mark(identity{addr: v.Pointer(), typ: elem}) {
			return 0
		}
		w.push(v.Elem())
		w.claim(v.Pointer(), int64(elem.Size()))
		return 0

	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		if !w.mark(identity{addr: v.Pointer(), typ: v.Type(), extent: v.Cap()}) {
			return 0
		}
		elem := v.Type().Elem()
		if w.hasReferents(elem) {
			for i := 0; i < v.Len(); i++ {
				w.stack = append(w.stack, v.Index(i))
			}
		}
		w.claim(v.Pointer(), int64(v.Cap())*int64(elem.Size()))
		return 0

	case reflect.String:
		n := v.Len()
		if n == 0 {
			return 0
		}
		s := v.String()
		addr := uintptr(unsafe.Pointer(unsafe.StringData(s)))
		if !w.mark(identity{addr: addr, extent: n}) {
			return 0
		}
		w.claim(addr, int64(n))
		return 0

	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		if !w.mark(identity{addr: v.Pointer(), typ: v.Type()}) {
			return 0
		}
		t := v.Type()
		iter := v.MapRange()
		for iter.Next() {
			w.push(iter.Key())
			w.push(iter.Value())
		}
		return int64(v.Len()) * int64(t.Key().Size()+t.Elem().Size())

	case reflect.Chan:
		if v.IsNil() {
			return 0
		}
		if !w.mark(identity{addr: v.Pointer(), typ: v.Type()}) {
			return 0
		}
		return int64(v.Cap()) * int64(v.Type().Elem().Size())

	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		elem := v.Elem()
		w.push(elem)
		switch elem.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			// stored directly in the interface word
			return 0
		default:
			return int64(elem.Type().Size())
		}

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			w.push(v.Field(i))
		}
		return 0

	case reflect.Array:
		if w.hasReferents(v.Type().Elem()) {
			for i := 0; i < v.Len(); i++ {
				w.stack = append(w.stack, v.Index(i))
			}
		}
		return 0
	}
	return 0
}

// hasReferents reports whether values of type t can reach memory outside
// their inline storage.
func (w *walker) hasReferents(t reflect.Type) bool {
	if known, ok := w.referents[t]; ok {
		return known
	}
	var result bool
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.String, reflect.Map, reflect.Chan, reflect.Interface:
		result = true
	case reflect.Array:
		result = t.Len() > 0 && w.hasReferents(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if w.hasReferents(t.Field(i).Type) {
				result = true
				break
			}
		}
	}
	w.referents[t] = result
	return result
}
