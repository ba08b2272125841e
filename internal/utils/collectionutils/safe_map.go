package collectionutils

import "sync"

type SafeMap[K comparable, V any] struct {
	data  map[K]V
	mutex sync.RWMutex
}

func New[K comparable, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{
		data: make(map[K]V),
	}
}

func (safeMap *SafeMap[K, V]) Store(newKey K, newValue V) {
	safeMap.mutex.Lock()
	defer safeMap.mutex.Unlock()
	safeMap.data[newKey] = newValue
}

func (safeMap *SafeMap[K, V]) Get(key K) (V, bool) {
	safeMap.mutex.RLock()
	defer safeMap.mutex.RUnlock()
	value, exists := safeMap.data[key]

	return value, exists
}

// Update applies fn to the value stored under key while holding the write lock.
// It reports false, and stores nothing, when the key is absent.
func (safeMap *SafeMap[K, V]) Update(key K, fn func(V) V) (V, bool) {
	safeMap.mutex.Lock()
	defer safeMap.mutex.Unlock()
	value, exists := safeMap.data[key]
	if !exists {
		return value, false
	}
	value = fn(value)
	safeMap.data[key] = value

	return value, true
}

func (safeMap *SafeMap[K, V]) Delete(key K) bool {
	safeMap.mutex.Lock()
	defer safeMap.mutex.Unlock()
	_, exists := safeMap.data[key]
	delete(safeMap.data, key)

	return exists
}

func (safeMap *SafeMap[K, V]) Values() []V {
	safeMap.mutex.RLock()
	defer safeMap.mutex.RUnlock()
	values := make([]V, 0, len(safeMap.data))
	for _, v := range safeMap.data {
		values = append(values, v)
	}

	return values
}

func (safeMap *SafeMap[K, V]) Len() int {
	safeMap.mutex.RLock()
	defer safeMap.mutex.RUnlock()

	return len(safeMap.data)
}
