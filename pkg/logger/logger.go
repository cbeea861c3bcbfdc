// Package logger 基于zap的结构化日志
//
// 使用方式：
//
//	logger.Init(logger.Options{Level: "info", Format: "json", Output: "stdout"})
//	defer logger.Sync()
//	logger.L().Info("服务启动", zap.Int("port", 8080))
//
// 未调用Init时L()返回Nop日志器，单元测试无需初始化。
package logger

import (
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options 日志配置
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool

	// 文件输出时的滚动参数
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// L 返回全局日志器
func L() *zap.Logger {
	return global.Load()
}

// Init 按配置创建全局日志器
func Init(opts Options) *zap.Logger {
	l := New(opts)
	global.Store(l)
	return l
}

// Sync 刷新缓冲区（程序退出前调用）
func Sync() {
	_ = L().Sync()
}

// New 创建日志器（不替换全局日志器）
func New(opts Options) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if strings.ToLower(opts.Format) == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writerFor(opts), parseLevel(opts.Level))

	zapOpts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if opts.EnableCaller {
		zapOpts = append(zapOpts, zap.AddCaller())
	}
	return zap.New(core, zapOpts...)
}

// writerFor 根据Output选择输出目标
// 文件输出使用lumberjack按大小滚动
func writerFor(opts Options) zapcore.WriteSyncer {
	switch strings.ToLower(opts.Output) {
	case "", "stdout":
		return zapcore.AddSync(os.Stdout)
	case "stderr":
		return zapcore.AddSync(os.Stderr)
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 100
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Output,
		MaxSize:    maxSize, // megabytes
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays, // days
		Compress:   opts.Compress,
	})
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
