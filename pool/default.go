// File: pool/default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"reflect"
	"sync"
)

// defaultByType memoizes one SharedPool per element type so all queues
// of that type reuse the same free lists instead of fragmenting buffers.
var defaultByType sync.Map // reflect.Type -> *SharedPool[T]

// Default returns the process-wide shared pool for element type T.
// Reflection is used only here, at construction time, never on the
// rent/return path.
func Default[T any]() *SharedPool[T] {
	key := reflect.TypeFor[T]()
	if v, ok := defaultByType.Load(key); ok {
		return v.(*SharedPool[T])
	}
	v, _ := defaultByType.LoadOrStore(key, NewShared[T]())
	return v.(*SharedPool[T])
}
