package xrotate

import (
	"fmt"
	"sync/atomic"

	"github.com/cholcombe973/ftlog/pkg/util/xfile"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Lumberjack 默认配置值
const (
	// DefaultMaxSizeMB 默认单个日志文件最大大小（MB）
	DefaultMaxSizeMB = 500

	// DefaultMaxBackups 默认保留的备份文件数量
	DefaultMaxBackups = 7

	// DefaultMaxAgeDays 默认保留备份的天数
	DefaultMaxAgeDays = 30

	// DefaultCompress 默认是否压缩备份
	DefaultCompress = true

	// DefaultLocalTime 默认是否使用本地时间（false 表示 UTC）
	DefaultLocalTime = false

	// maxSizeMB 单个日志文件大小上限（10 GB）
	maxSizeMB = 10240

	// maxBackups 备份文件数量上限
	maxBackups = 1024

	// maxAgeDays 备份保留天数上限（约 10 年）
	maxAgeDays = 3650
)

// lumberjackConfig lumberjack 轮转器配置
//
// 基于文件大小的轮转策略。按日历周期轮转请使用 [NewPeriodic]。
type lumberjackConfig struct {
	// MaxSizeMB 单个日志文件最大大小（MB），超过时触发轮转
	// 默认值 DefaultMaxSizeMB，必须 > 0
	MaxSizeMB int

	// MaxBackups 保留的备份文件数量，超过时删除最旧的备份
	// 默认值 DefaultMaxBackups，0 表示不限制数量（但仍受 MaxAgeDays 约束）
	MaxBackups int

	// MaxAgeDays 保留备份的天数，超过的备份会被删除
	// 默认值 DefaultMaxAgeDays，0 表示不按天数清理（但仍受 MaxBackups 约束）
	MaxAgeDays int

	// Compress 是否压缩备份文件（gzip）
	Compress bool

	// LocalTime 备份文件名是否使用本地时间，false 时使用 UTC
	LocalTime bool
}

// LumberjackOption lumberjack 配置选项函数
type LumberjackOption func(*lumberjackConfig)

// WithMaxSize 设置单个日志文件最大大小（MB）
func WithMaxSize(mb int) LumberjackOption {
	return func(c *lumberjackConfig) {
		c.MaxSizeMB = mb
	}
}

// WithMaxBackups 设置保留的备份文件数量
func WithMaxBackups(n int) LumberjackOption {
	return func(c *lumberjackConfig) {
		c.MaxBackups = n
	}
}

// WithMaxAge 设置保留备份的天数
func WithMaxAge(days int) LumberjackOption {
	return func(c *lumberjackConfig) {
		c.MaxAgeDays = days
	}
}

// WithCompress 设置是否压缩备份文件
func WithCompress(compress bool) LumberjackOption {
	return func(c *lumberjackConfig) {
		c.Compress = compress
	}
}

// WithLocalTime 设置备份文件名是否使用本地时间
func WithLocalTime(local bool) LumberjackOption {
	return func(c *lumberjackConfig) {
		c.LocalTime = local
	}
}

// lumberjackRotator 基于 lumberjack 的 Rotator 实现
//
// lumberjack 是一个成熟的日志轮转库，提供按大小自动轮转、
// 备份文件管理（数量和天数）、可选的 gzip 压缩和并发安全的写入。
type lumberjackRotator struct {
	logger *lumberjack.Logger

	closed atomic.Bool // 标记是否已关闭
}

// NewLumberjack 创建基于 lumberjack 的日志轮转器
//
// 参数:
//   - filename: 日志文件路径（必需）
//   - opts: 可选配置项
//
// 安全说明:
//   - 会对文件路径进行规范化和安全检查
//   - 自动创建不存在的父目录（权限 0750）
func NewLumberjack(filename string, opts ...LumberjackOption) (Rotator, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	cfg := lumberjackConfig{
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAgeDays: DefaultMaxAgeDays,
		Compress:   DefaultCompress,
		LocalTime:  DefaultLocalTime,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateLumberjackConfig(&cfg); err != nil {
		return nil, err
	}

	safePath, err := xfile.SanitizePath(filename)
	if err != nil {
		return nil, err
	}

	if err := xfile.EnsureDir(safePath); err != nil {
		return nil, err
	}

	return &lumberjackRotator{
		logger: &lumberjack.Logger{
			Filename:   safePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		},
	}, nil
}

// validateLumberjackConfig 验证 lumberjack 配置
func validateLumberjackConfig(cfg *lumberjackConfig) error {
	if cfg.MaxSizeMB <= 0 || cfg.MaxSizeMB > maxSizeMB {
		return fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, cfg.MaxSizeMB, maxSizeMB)
	}
	if cfg.MaxBackups < 0 || cfg.MaxBackups > maxBackups {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxBackups, cfg.MaxBackups, maxBackups)
	}
	if cfg.MaxAgeDays < 0 || cfg.MaxAgeDays > maxAgeDays {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxAge, cfg.MaxAgeDays, maxAgeDays)
	}
	if cfg.MaxBackups == 0 && cfg.MaxAgeDays == 0 {
		return fmt.Errorf("%w: MaxBackups and MaxAgeDays cannot both be 0", ErrNoCleanupPolicy)
	}
	return nil
}

// Write 实现 io.Writer 接口
func (r *lumberjackRotator) Write(p []byte) (n int, err error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}

	n, err = r.logger.Write(p)
	if err != nil {
		// 设计决策: Write 与 Close 存在 TOCTOU 窗口——Write 通过 closed 前置检查后，
		// Close 可能在 logger.Write 执行期间完成。此处后置检查确保调用者始终得到
		// ErrClosed（而非底层 I/O 错误），保持 ErrClosed 契约的可靠性。
		if r.closed.Load() {
			return n, ErrClosed
		}
		return n, err
	}
	return n, nil
}

// Flush 无缓冲实现，直接返回 nil
//
// lumberjack 不做用户态缓冲，每次 Write 直达文件。
func (r *lumberjackRotator) Flush() error {
	if r.closed.Load() {
		return ErrClosed
	}
	return nil
}

// Close 实现 io.Closer 接口
//
// 关闭后调用 Write、Flush 或 Rotate 将返回 [ErrClosed]。
// 重复调用 Close 也返回 [ErrClosed]。
func (r *lumberjackRotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}
	return r.logger.Close()
}

// Rotate 手动触发轮转
func (r *lumberjackRotator) Rotate() error {
	if r.closed.Load() {
		return ErrClosed
	}

	if err := r.logger.Rotate(); err != nil {
		// 设计决策: 与 Write 相同的 TOCTOU 后置检查（见 Write 注释）
		if r.closed.Load() {
			return ErrClosed
		}
		return err
	}
	return nil
}
