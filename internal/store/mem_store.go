package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore is an in-process Store used in tests and as a fallback when no
// durable backend is configured. Save never echoes to subscribers (the
// writer already knows); tests simulate an external writer with SetRaw
// followed by NotifyExternal.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
	subs map[string][]*memSub
}

type memSub struct {
	fn func(key string)
}

func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string][]byte),
		subs: make(map[string][]*memSub),
	}
}

func (s *MemStore) Load(_ context.Context, namespace, key string, dest any) error {
	s.mu.Lock()
	raw, ok := s.data[namespace+"/"+key]
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return ErrMalformed
	}
	return nil
}

func (s *MemStore) Save(_ context.Context, namespace, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[namespace+"/"+key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Erase(_ context.Context, namespace, key string) error {
	s.mu.Lock()
	delete(s.data, namespace+"/"+key)
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Subscribe(_ context.Context, namespace string, fn func(key string)) (func(), error) {
	sub := &memSub{fn: fn}
	s.mu.Lock()
	s.subs[namespace] = append(s.subs[namespace], sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := s.subs[namespace]
		for i, cur := range list {
			if cur == sub {
				s.subs[namespace] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}, nil
}

// SetRaw stores pre-serialized bytes, bypassing JSON marshaling. Tests use
// it to plant malformed values or simulate writes from another context.
func (s *MemStore) SetRaw(namespace, key string, raw []byte) {
	s.mu.Lock()
	s.data[namespace+"/"+key] = raw
	s.mu.Unlock()
}

// NotifyExternal fires the change signal for (namespace, key) as if an
// external writer had changed it.
func (s *MemStore) NotifyExternal(namespace, key string) {
	s.mu.Lock()
	subs := append([]*memSub(nil), s.subs[namespace]...)
	s.mu.Unlock()
	for _, sub := range subs {
		sub.fn(key)
	}
}

// Raw returns the stored bytes and whether the key exists.
func (s *MemStore) Raw(namespace, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[namespace+"/"+key]
	return raw, ok
}
