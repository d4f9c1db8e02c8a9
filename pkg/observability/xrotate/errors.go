package xrotate

import "errors"

// 配置校验与运行时错误
var (
	// ErrEmptyFilename 文件名为空
	ErrEmptyFilename = errors.New("xrotate: filename is required")

	// ErrInvalidPeriod 轮转周期无效（必须是 Minute/Hour/Day/Month/Year 之一）
	ErrInvalidPeriod = errors.New("xrotate: invalid rotation period")

	// ErrInvalidExpire 过期时长无效（必须 > 0）
	ErrInvalidExpire = errors.New("xrotate: invalid expire duration")

	// ErrExpireWithoutPeriod 配置了过期清理但未配置轮转周期
	ErrExpireWithoutPeriod = errors.New("xrotate: expire requires a rotation period")

	// ErrOpenFile 日志文件无法创建或打开（构造时或轮转时）
	ErrOpenFile = errors.New("xrotate: cannot open log file")

	// ErrInvalidMaxSize MaxSizeMB 值无效（必须在 1~10240 范围内）
	ErrInvalidMaxSize = errors.New("xrotate: invalid MaxSizeMB")

	// ErrInvalidMaxBackups MaxBackups 值无效（必须在 0~1024 范围内）
	ErrInvalidMaxBackups = errors.New("xrotate: invalid MaxBackups")

	// ErrInvalidMaxAge MaxAgeDays 值无效（必须在 0~3650 范围内）
	ErrInvalidMaxAge = errors.New("xrotate: invalid MaxAgeDays")

	// ErrNoCleanupPolicy MaxBackups 和 MaxAgeDays 不能同时为 0
	ErrNoCleanupPolicy = errors.New("xrotate: no cleanup policy configured")

	// ErrClosed 轮转器已关闭
	ErrClosed = errors.New("xrotate: rotator is closed")
)
