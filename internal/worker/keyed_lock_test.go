// Package worker - Test KeyedLock: tuần tự cùng key, song song khác key, giải phóng entry.
package worker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLock_SerializesSameKey(t *testing.T) {
	l := NewKeyedLock()
	var counter int

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("page-1:user-1")
			defer unlock()
			// Đọc-sửa-ghi không atomic: race sẽ làm sai kết quả nếu khóa không tuần tự
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyedLock_DifferentKeysDoNotBlock(t *testing.T) {
	l := NewKeyedLock()

	unlock1 := l.Lock("page-1:user-1")
	defer unlock1()

	done := make(chan struct{})
	go func() {
		unlock2 := l.Lock("page-1:user-2")
		unlock2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("khóa của key khác không được block nhau")
	}
}

func TestKeyedLock_ReleasesEntries(t *testing.T) {
	l := NewKeyedLock()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n%3))
			unlock := l.Lock(key)
			time.Sleep(time.Millisecond)
			unlock()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, l.Size(), "entry phải được giải phóng khi không còn ai giữ")
}
