package xconf

import (
	"fmt"
	"time"

	"github.com/cholcombe973/ftlog/pkg/observability/xrotate"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// SinkConfig 文件输出端配置
//
// 与轮转器的构造面一一对应：path 必填；rotate 缺省表示单文件模式；
// expire 仅与 rotate 搭配有意义；timezone 缺省为本地时区。
type SinkConfig struct {
	// Path 基准文件路径（必填）
	Path string `koanf:"path"`

	// Rotate 轮转周期：minute|hour|day|month|year，空串表示不轮转
	Rotate string `koanf:"rotate"`

	// Expire 过期清理阈值，0 表示不清理
	Expire time.Duration `koanf:"expire"`

	// Timezone 边界计算与命名使用的时区：
	// "local"（默认）、"utc"、或固定偏移如 "+08:00"、"-05:30"
	Timezone string `koanf:"timezone"`
}

// Options 返回该配置对应的轮转器选项。
// rotate/timezone 字符串在此解析，错误支持 errors.Is 判断。
func (c *SinkConfig) Options() ([]xrotate.PeriodicOption, error) {
	var opts []xrotate.PeriodicOption

	if c.Rotate != "" {
		period, err := xrotate.ParsePeriod(c.Rotate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, xrotate.WithPeriod(period))
	}

	if c.Expire != 0 {
		opts = append(opts, xrotate.WithExpire(c.Expire))
	}

	if c.Timezone != "" {
		loc, err := ParseTimezone(c.Timezone)
		if err != nil {
			return nil, err
		}
		opts = append(opts, xrotate.WithLocation(loc))
	}

	return opts, nil
}

// Build 按配置构造轮转器。
//
// 三种组合（单文件 / 仅轮转 / 轮转加清理）由 xrotate 的构造函数
// 一次性解析，expire-without-rotate 这类约束错误也在那里报出。
func (c *SinkConfig) Build() (xrotate.Rotator, error) {
	if c.Path == "" {
		return nil, ErrMissingPath
	}

	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return xrotate.NewPeriodic(c.Path, opts...)
}

// ParseTimezone 解析时区字符串。
//
// 支持的取值：
//   - "" 或 "local": 本地时区（每次边界计算时解析主机当前偏移）
//   - "utc": 零偏移
//   - "+HH:MM" / "-HH:MM": 固定偏移，如 "+08:00"、"-05:30"
func ParseTimezone(s string) (*time.Location, error) {
	switch s {
	case "", "local", "Local":
		return time.Local, nil
	case "utc", "UTC":
		return time.UTC, nil
	}
	offset, err := parseFixedOffset(s)
	if err != nil {
		return nil, err
	}
	return time.FixedZone("UTC"+s, offset), nil
}

// parseFixedOffset 解析 "+HH:MM" / "-HH:MM" 形式的固定偏移，返回秒数。
func parseFixedOffset(s string) (int, error) {
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return 0, fmt.Errorf("%w: %q (want \"+HH:MM\" or \"-HH:MM\")", ErrInvalidTimezone, s)
	}
	hh, err := twoDigits(s[1], s[2])
	if err != nil || hh > 23 {
		return 0, fmt.Errorf("%w: %q: bad hour", ErrInvalidTimezone, s)
	}
	mm, err := twoDigits(s[4], s[5])
	if err != nil || mm > 59 {
		return 0, fmt.Errorf("%w: %q: bad minute", ErrInvalidTimezone, s)
	}
	offset := hh*3600 + mm*60
	if s[0] == '-' {
		offset = -offset
	}
	return offset, nil
}

func twoDigits(a, b byte) (int, error) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, ErrInvalidTimezone
	}
	return int(a-'0')*10 + int(b-'0'), nil
}
