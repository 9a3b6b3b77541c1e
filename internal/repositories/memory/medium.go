package memory

import (
	"context"
	"fmt"
	"sync"

	portsrepo "github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
)

// Medium is an in-process key-value medium. It mirrors the capacity
// behaviour of browser local storage: a write that would push the total
// stored size over the quota is rejected and the old value is kept.
type Medium struct {
	mu         sync.Mutex
	data       map[string][]byte
	quotaBytes int64
	failWrites error
}

var _ portsrepo.KeyValueMedium = (*Medium)(nil)

// NewMedium creates an empty medium. A quota of 0 or less disables the limit.
func NewMedium(quotaBytes int64) *Medium {
	return &Medium{
		data:       make(map[string][]byte),
		quotaBytes: quotaBytes,
	}
}

// Get implements KeyValueMedium.
func (m *Medium) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set implements KeyValueMedium.
func (m *Medium) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites != nil {
		return m.failWrites
	}
	if m.quotaBytes > 0 {
		size := int64(len(key) + len(value))
		for k, v := range m.data {
			if k != key {
				size += int64(len(k) + len(v))
			}
		}
		if size > m.quotaBytes {
			return fmt.Errorf("%w: writing %q needs %d bytes, quota is %d", portsrepo.ErrQuotaExceeded, key, size, m.quotaBytes)
		}
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements KeyValueMedium.
func (m *Medium) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites != nil {
		return m.failWrites
	}
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

// Put stores raw bytes without any quota check. Used to seed fixtures,
// including deliberately corrupted documents.
func (m *Medium) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
}

// FailWrites makes every subsequent Set and Delete return err. Pass nil to recover.
func (m *Medium) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = err
}

// Keys returns the number of stored keys.
func (m *Medium) Keys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
