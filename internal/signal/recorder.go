package signal

import (
	"daypulse/internal/consts"
	"daypulse/internal/model"
	"sync"
	"time"
)

// Recorder 信号日志：只追加，相邻去重，超长后从头部淘汰
type Recorder struct {
	mu      sync.RWMutex
	records []model.SignalRecord
	cap     int
}

func NewRecorder() *Recorder {
	return &Recorder{
		records: make([]model.SignalRecord, 0, consts.SignalLogCap),
		cap:     consts.SignalLogCap,
	}
}

// Append 追加一条信号。与末尾记录 (分钟,代码) 相同时视为重复直接丢弃；
// 超出容量后从最旧的开始淘汰
func (r *Recorder) Append(code, action string, price float64, sc int, at time.Time) bool {
	rec := model.SignalRecord{
		Date:   at.Format(consts.DateLayout),
		Time:   at.Format(consts.MinuteLayout),
		Code:   code,
		Action: action,
		Price:  price,
		Score:  sc,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if n := len(r.records); n > 0 {
		tail := r.records[n-1]
		if tail.Time == rec.Time && tail.Code == rec.Code {
			return false
		}
	}

	r.records = append(r.records, rec)
	if len(r.records) > r.cap {
		r.records = r.records[len(r.records)-r.cap:]
	}
	return true
}

// List 返回日志副本，最旧在前
func (r *Recorder) List() []model.SignalRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.SignalRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Latest 返回最近n条，最新在前，供列表页展示
func (r *Recorder) Latest(n int) []model.SignalRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n <= 0 || n > len(r.records) {
		n = len(r.records)
	}
	out := make([]model.SignalRecord, 0, n)
	for i := len(r.records) - 1; i >= len(r.records)-n; i-- {
		out = append(out, r.records[i])
	}
	return out
}

func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
