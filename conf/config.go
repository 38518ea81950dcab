package conf

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

// 配置加载（服务、行情源、监控参数等）

type Db struct {
	DbName   string `yaml:"dbname"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MarketConfig 行情数据源配置
type MarketConfig struct {
	QuoteURL   string        `yaml:"quote-url"`   // 实时行情接口
	MinuteURL  string        `yaml:"minute-url"`  // 分时数据接口
	Timeout    time.Duration `yaml:"timeout"`     // 单次请求超时
	Watchlist  []string      `yaml:"watchlist"`   // 自选股列表
	ActiveCode string        `yaml:"active-code"` // 启动时的当前股票
}

// MonitorConfig 后台监控刷新配置
type MonitorConfig struct {
	Interval time.Duration `yaml:"interval"` // 刷新周期
	AutoRun  bool          `yaml:"auto-run"` // 启动时是否自动开启监控
}

type AlertFileConfig struct {
	Path string `yaml:"path"` // 预警配置的持久化文件
}

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

// RedisConfig is used to configure redis
type RedisConfig struct {
	Addr         string `yaml:"address"`
	Password     string `yaml:"password"`
	Db           int    `yaml:"db"`
	PoolSize     int    `yaml:"pool-size"`
	MinIdleConns int    `yaml:"min-idle-conns"`
	IdleTimeout  int    `yaml:"idle-timeout"`
}

type KafkaConfig struct {
	Broker      string `yaml:"broker"`
	SignalTopic string `yaml:"signal-topic"`
	Enabled     bool   `yaml:"enabled"`
}

type Apns struct {
	Topic       string `yaml:"topic"`
	KeyID       string `yaml:"key_id"`
	TeamID      string `yaml:"team_id"`
	KeyPath     string `yaml:"key_path"` // .p8 私钥文件路径
	DeviceToken string `yaml:"device_token"`
	IsProd      bool   `yaml:"is_prod"`
	Enabled     bool   `yaml:"enabled"`
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Listen       string `yaml:"listen"`
	Mode         string `yaml:"mode"`
	Language     string `yaml:"language"`
	MaxPingCount int    `yaml:"max-ping-count"`

	Db      `yaml:"database"`
	Market  MarketConfig    `yaml:"market"`
	Monitor MonitorConfig   `yaml:"monitor"`
	Alert   AlertFileConfig `yaml:"alert"`
	Log     LogConfig       `yaml:"log"`
	Redis   RedisConfig     `yaml:"redis"`
	Kafka   KafkaConfig     `yaml:"kafka"`
	Apns    Apns            `yaml:"apns"`
}

var AppConfig Config

func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Read config file error %w", err)
	}
	if err := yaml.Unmarshal(data, &AppConfig); err != nil {
		return fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	return nil
}
