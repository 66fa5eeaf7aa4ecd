// Package worker - Khóa theo key để tuần tự hóa xử lý webhook của cùng một khách.
package worker

import (
	"sync"
)

// KeyedLock cấp mutex riêng cho từng key (pageId:senderId).
// Hai webhook chồng lấn của cùng một khách được xử lý tuần tự,
// khách khác nhau vẫn chạy song song. Entry được giải phóng khi
// không còn ai giữ để map không phình theo số khách đã từng nhắn.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int // Số goroutine đang giữ hoặc chờ khóa này
}

// NewKeyedLock tạo mới KeyedLock
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{
		locks: make(map[string]*lockEntry),
	}
}

// Lock giữ khóa của key, block đến khi giành được.
// Trả về:
//   - func(): hàm unlock, caller PHẢI gọi (thường bằng defer)
func (l *KeyedLock) Lock(key string) func() {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &lockEntry{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// Size trả về số key đang có người giữ hoặc chờ (phục vụ test và debug)
func (l *KeyedLock) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
