package session

import "sync"

// Mailbox 单槽信箱：后台抓取协程投递 (行情,分时) 数据对，
// 消费侧只取最新一份，未消费前被新数据覆盖（last-write-wins），
// 被取代的刷新直接丢弃，不做合并
type Mailbox[T any] struct {
	mu     sync.Mutex
	val    T
	filled bool
	notify chan struct{}
}

func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{notify: make(chan struct{}, 1)}
}

// Put 投递一份数据，覆盖尚未被消费的旧数据
func (m *Mailbox[T]) Put(v T) {
	m.mu.Lock()
	m.val = v
	m.filled = true
	m.mu.Unlock()

	select {
	case m.notify <- struct{}{}:
	default: // 已有待处理通知，无需重复
	}
}

// Take 取走当前数据，没有则返回false
func (m *Mailbox[T]) Take() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if !m.filled {
		return zero, false
	}
	v := m.val
	m.val = zero
	m.filled = false
	return v, true
}

// Wait 返回有新数据时可读的通知通道
func (m *Mailbox[T]) Wait() <-chan struct{} {
	return m.notify
}
