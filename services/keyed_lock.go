package services

import "sync"

// keyedLock serializes work per key. Settlement holds the lock for the
// target staff id across all five steps; without it two concurrent
// settlements for the same staff member could both snapshot the balance and
// pay it out twice, since the stores offer no cross-collection transaction.
type keyedLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLock() *keyedLock {
	return &keyedLock{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedLock) Lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()
	l.Lock()
}

func (k *keyedLock) Unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	k.mu.Unlock()
	if l != nil {
		l.Unlock()
	}
}
