package logger

import (
	"daypulse/conf"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"os"
)

// 基于zap的全局日志，支持lumberjack文件切割
// 未初始化时退化为控制台输出，保证测试环境可用

var lg *zap.Logger = zap.NewNop()
var sg *zap.SugaredLogger = lg.Sugar()

func init() {
	// 默认控制台logger，Init之前的日志也能看到
	core := zapcore.NewCore(consoleEncoder("2006-01-02 15:04:05.000"),
		zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
	replace(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
}

// Init 根据配置初始化全局logger
func Init(cfg conf.LogConfig) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = "2006-01-02 15:04:05.000"
	}

	cores := make([]zapcore.Core, 0, 2)
	if cfg.FileName != "" {
		w := &lumberjack.Logger{
			Filename:   cfg.FileName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		}
		cores = append(cores, zapcore.NewCore(jsonEncoder(timeFormat), zapcore.AddSync(w), level))
	}
	if cfg.Console || cfg.FileName == "" {
		cores = append(cores, zapcore.NewCore(consoleEncoder(timeFormat), zapcore.AddSync(os.Stdout), level))
	}

	replace(zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)))
}

func replace(l *zap.Logger) {
	lg = l
	sg = l.Sugar()
}

func encoderConfig(timeFormat string) zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeFormat)
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return ec
}

func jsonEncoder(timeFormat string) zapcore.Encoder {
	return zapcore.NewJSONEncoder(encoderConfig(timeFormat))
}

func consoleEncoder(timeFormat string) zapcore.Encoder {
	return zapcore.NewConsoleEncoder(encoderConfig(timeFormat))
}

// Pair 构造一个结构化字段
func Pair(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

func Sync() {
	_ = lg.Sync()
}

func Debug(msg string, fields ...zap.Field) { lg.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { lg.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { lg.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { lg.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { lg.Fatal(msg, fields...) }

func Debugf(format string, args ...interface{}) { sg.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { sg.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { sg.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { sg.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { sg.Fatalf(format, args...) }
