package enum

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	mu          sync.RWMutex
	enumManager = map[reflect.Type]any{}
)

type enum[T comparable] struct {
	toEnum   map[string]T
	toString map[T]string
}

// New registers value under name and returns value, so it can be used in a
// const-like var block.
func New[T comparable](value T, name string) T {
	mu.Lock()
	defer mu.Unlock()

	t := reflect.TypeOf(value)
	if _, ok := enumManager[t]; !ok {
		enumManager[t] = enum[T]{toEnum: make(map[string]T), toString: make(map[T]string)}
	}

	e := enumManager[t].(enum[T])
	e.toEnum[name] = value
	e.toString[value] = name
	return value
}

func ToEnum[T comparable](s string) (T, error) {
	mu.RLock()
	defer mu.RUnlock()

	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT)]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.(enum[T]).toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// ToString returns the registered name of value, or "" if it is unknown.
func ToString[T comparable](value T) string {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := enumManager[reflect.TypeOf(value)]
	if !ok {
		return ""
	}

	return e.(enum[T]).toString[value]
}

// Names lists every registered name of T.
func Names[T comparable]() []string {
	mu.RLock()
	defer mu.RUnlock()

	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT)]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(e.(enum[T]).toEnum))
	for name := range e.(enum[T]).toEnum {
		names = append(names, name)
	}
	return names
}
