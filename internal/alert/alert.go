package alert

import (
	"daypulse/internal/model"
	"daypulse/pkg/logger"
	"gopkg.in/yaml.v3"
	"os"
	"sync"
)

// 价格预警：每只股票可配置上下限阈值，整体覆盖式更新，
// 配置持久化到yaml文件，与评分逻辑完全独立

type Store struct {
	mu      sync.RWMutex
	configs map[string]model.AlertConfig // code -> config
	path    string                       // 持久化文件，空则不落盘
}

func NewStore(path string) *Store {
	s := &Store{
		configs: make(map[string]model.AlertConfig),
		path:    path,
	}
	s.load()
	return s
}

// Set 设置某只股票的预警配置，旧配置整体覆盖
func (s *Store) Set(code string, cfg model.AlertConfig) {
	s.mu.Lock()
	s.configs[code] = cfg
	s.mu.Unlock()
	s.save()
}

// Get 读取某只股票的预警配置
func (s *Store) Get(code string) (model.AlertConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[code]
	return cfg, ok
}

// Remove 删除某只股票的预警配置
func (s *Store) Remove(code string) {
	s.mu.Lock()
	delete(s.configs, code)
	s.mu.Unlock()
	s.save()
}

// Check 用最新价检查预警。上限优先，单次只报一种突破
func (s *Store) Check(code string, price float64) model.AlertState {
	cfg, ok := s.Get(code)
	if !ok {
		return model.AlertNone
	}
	if cfg.High != nil && price >= *cfg.High {
		return model.AlertBreachedHigh
	}
	if cfg.Low != nil && price <= *cfg.Low {
		return model.AlertBreachedLow
	}
	return model.AlertNone
}

func (s *Store) load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return // 首次启动无文件属正常
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := yaml.Unmarshal(data, &s.configs); err != nil {
		logger.Warnf("load alert config failed: %v", err)
		s.configs = make(map[string]model.AlertConfig)
	}
}

func (s *Store) save() {
	if s.path == "" {
		return
	}
	s.mu.RLock()
	data, err := yaml.Marshal(s.configs)
	s.mu.RUnlock()
	if err != nil {
		logger.Warnf("marshal alert config failed: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		logger.Warnf("save alert config failed: %v", err)
	}
}
