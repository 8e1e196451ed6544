// Package utils
package utils

import (
	"sync"
	"time"
)

// CachedValue lazily recomputes a value once it is older than cachedTime.
// A cachedTime of zero keeps the first value until Invalidate is called.
type CachedValue[T any] struct {
	generateTime time.Time
	cachedData   *T
	mu           sync.RWMutex
	cachedTime   time.Duration
	getter       func() *T
}

func NewCachedValue[T any](cachedTime time.Duration, getter func() *T) *CachedValue[T] {
	return &CachedValue[T]{generateTime: time.Now(), cachedTime: cachedTime, getter: getter}
}

func (cachedValue *CachedValue[T]) valid() bool {
	if cachedValue.cachedData == nil {
		return false
	}
	return cachedValue.cachedTime == 0 || time.Since(cachedValue.generateTime) <= cachedValue.cachedTime
}

func (cachedValue *CachedValue[T]) GetValue() *T {
	cachedValue.mu.RLock()
	if cachedValue.valid() {
		defer cachedValue.mu.RUnlock()
		return cachedValue.cachedData
	}
	cachedValue.mu.RUnlock()

	cachedValue.mu.Lock()
	defer cachedValue.mu.Unlock()

	if cachedValue.valid() {
		return cachedValue.cachedData
	}

	cachedValue.cachedData = cachedValue.getter()
	cachedValue.generateTime = time.Now()

	return cachedValue.cachedData
}

// Invalidate drops the cached value so the next GetValue calls the getter again
func (cachedValue *CachedValue[T]) Invalidate() {
	cachedValue.mu.Lock()
	defer cachedValue.mu.Unlock()
	cachedValue.cachedData = nil
}
