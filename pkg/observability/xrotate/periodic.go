package xrotate

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cholcombe973/ftlog/pkg/util/xfile"
)

const (
	// defaultBufSize 写缓冲大小
	defaultBufSize = 8 * 1024

	// logFilePerm 日志文件创建权限
	logFilePerm = 0o644
)

// periodicConfig 周期轮转器配置
//
// 三种组合在构造时一次性解析为对应的初始化路径，
// 而不是在每次写入时检查可选字段：
//   - 未配置周期：单文件模式，直接打开基准路径
//   - 仅配置周期：按周期轮转
//   - 周期 + 过期时长：按周期轮转，构造时同步清理一次，之后每次轮转异步清理
type periodicConfig struct {
	// period 轮转周期，rotate 为 true 时有效
	period Period

	// rotate 是否启用周期轮转
	rotate bool

	// expire 过期清理阈值，0 表示不清理
	// 最后修改时间距今严格大于该时长的匹配文件会被删除
	expire time.Duration

	// loc 边界计算与文件命名使用的时区
	// 默认 time.Local；time.UTC 固定零偏移；time.FixedZone 固定显式偏移
	loc *time.Location

	// onError 可选的错误回调函数
	//
	// 轮转过程中被吞掉的非致命错误（如旧句柄关闭失败）经此上报。
	// 默认为 nil（静默忽略）。
	//
	// 安全约束：回调函数不得向同一 Rotator 写入数据，否则会导致递归死锁。
	// 推荐输出到 os.Stderr 或独立的日志通道。
	onError func(error)

	// onCleanup 可选的清理报告回调
	//
	// 轮转后的异步清理删除了文件时，携带被删文件名调用。
	// 回调在清理 goroutine 上执行，与 onError 有相同的安全约束。
	onCleanup func(removed []string)
}

// PeriodicOption 周期轮转器配置选项函数
type PeriodicOption func(*periodicConfig)

// WithPeriod 启用周期轮转并设置轮转周期
func WithPeriod(p Period) PeriodicOption {
	return func(c *periodicConfig) {
		c.period = p
		c.rotate = true
	}
}

// WithExpire 设置过期清理阈值
//
// 仅在配置了 [WithPeriod] 时有效。每次轮转后在独立 goroutine 中
// 扫描并删除最后修改时间距今严格大于 keep 的同模式文件；
// 构造时还会同步清理一次，删除结果写入新打开的日志文件。
func WithExpire(keep time.Duration) PeriodicOption {
	return func(c *periodicConfig) {
		c.expire = keep
	}
}

// WithLocation 设置边界计算与文件命名使用的时区
//
// nil 被忽略（保持默认 time.Local）。
func WithLocation(loc *time.Location) PeriodicOption {
	return func(c *periodicConfig) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithOnError 设置错误回调函数
//
// 设计决策: 不使用 slog 等日志库记录内部错误，避免 Rotator 作为日志输出目标时
// 产生递归写入（写失败 → 打日志 → 再写失败 → 栈溢出/死锁）。
// 回调函数不得向同一 Rotator 写入数据。
func WithOnError(fn func(error)) PeriodicOption {
	return func(c *periodicConfig) {
		c.onError = fn
	}
}

// WithOnCleanup 设置清理报告回调
//
// 异步清理删除了文件时，携带被删文件名列表调用。未设置时删除静默完成。
func WithOnCleanup(fn func(removed []string)) PeriodicOption {
	return func(c *periodicConfig) {
		c.onCleanup = fn
	}
}

// periodicRotator 按日历周期轮转的 Rotator 实现
//
// 写入走 bufio 缓冲。每次 Write 先做一次单调时钟的 elapsed>wait 比较，
// 未到边界时是纯粹的快路径；过了边界时在本次 Write 内同步完成
// flush → 重开新文件 → 重算边界，过期清理则派发到独立 goroutine，
// 不阻塞写路径。
//
// 文件句柄由轮转器独占：任一时刻只持有一个句柄，轮转时替换而非复制。
type periodicRotator struct {
	mu   sync.Mutex
	file *os.File
	w    *bufio.Writer

	// base 构造时提供的基准路径（已净化），每次轮转的命名模板
	base string
	cfg  periodicConfig

	// 轮转状态：start 携带单调时钟读数，wait 是到下一边界的间隔。
	// 仅在轮转发生时更新；单文件模式下不使用。
	start time.Time
	wait  time.Duration

	closed atomic.Bool

	// 可注入时钟，仅用于测试
	nowFn func() time.Time
}

// NewPeriodic 创建按日历周期轮转的日志轮转器
//
// 参数:
//   - filename: 基准文件路径（必需）。未配置轮转时直接打开该路径；
//     配置轮转后它只作为命名模板，实际文件名由 [RotatedPath] 派生
//   - opts: 可选配置项
//
// 构造失败（路径无效、目录无法创建、文件无法打开、清理报告写入失败）
// 返回错误，此时不持有任何文件句柄。
//
// 安全说明:
//   - 会对文件路径进行规范化和安全检查
//   - 自动创建不存在的父目录（权限 0750）
func NewPeriodic(filename string, opts ...PeriodicOption) (Rotator, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	cfg := periodicConfig{loc: time.Local}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validatePeriodicConfig(&cfg); err != nil {
		return nil, err
	}

	safePath, err := xfile.SanitizePath(filename)
	if err != nil {
		return nil, err
	}

	if err := xfile.EnsureDir(safePath); err != nil {
		return nil, err
	}

	r := &periodicRotator{base: safePath, cfg: cfg}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

// validatePeriodicConfig 验证周期轮转器配置
func validatePeriodicConfig(cfg *periodicConfig) error {
	if cfg.rotate && !cfg.period.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidPeriod, int(cfg.period))
	}
	if cfg.expire < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidExpire, cfg.expire)
	}
	if cfg.expire > 0 && !cfg.rotate {
		return ErrExpireWithoutPeriod
	}
	return nil
}

// init 按配置组合执行对应的初始化路径
func (r *periodicRotator) init() error {
	if !r.cfg.rotate {
		// 单文件模式
		return r.open(r.base)
	}

	wallNow := r.now().In(r.cfg.loc)
	r.start = r.now()
	r.wait = NextBoundary(wallNow, r.cfg.period).Sub(wallNow)

	path := RotatedPath(r.base, r.cfg.period, wallNow)
	if err := r.open(path); err != nil {
		return err
	}

	if r.cfg.expire > 0 {
		// 构造时同步清理一次，删除结果写进刚打开的文件。
		// 写入失败说明目标文件已经不可用，构造失败。
		removed := CleanExpired(r.base, r.cfg.period, r.cfg.expire)
		if len(removed) > 0 {
			if _, err := fmt.Fprintf(r.w, "Log file deleted: %s", strings.Join(removed, ", ")); err != nil {
				_ = r.file.Close()
				return fmt.Errorf("write cleanup note to %q: %w", path, err)
			}
		}
	}
	return nil
}

// open 打开日志文件（不存在则创建，追加模式）并挂上写缓冲
func (r *periodicRotator) open(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOpenFile, path, err)
	}
	r.file = f
	r.w = bufio.NewWriterSize(f, defaultBufSize)
	return nil
}

// now 返回当前时间，测试可通过 nowFn 注入
func (r *periodicRotator) now() time.Time {
	if r.nowFn != nil {
		return r.nowFn()
	}
	return time.Now()
}

// Write 实现 io.Writer 接口
//
// 轮转检查是一次廉价的单调时钟比较，未到边界时直接写入当前文件。
// 过了边界时先完成轮转再写入，本次写入落在新文件里。
// 轮转中新文件打开失败是致命错误，直接从 Write 返回。
func (r *periodicRotator) Write(p []byte) (n int, err error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Close 竞争的后置检查：确保关闭后的调用始终得到 ErrClosed
	if r.closed.Load() {
		return 0, ErrClosed
	}

	if r.cfg.rotate && r.elapsed() > r.wait {
		if err := r.rotateLocked(); err != nil {
			return 0, err
		}
	}
	return r.w.Write(p)
}

// elapsed 返回自上次轮转以来经过的时长（单调时钟）
func (r *periodicRotator) elapsed() time.Duration {
	return r.now().Sub(r.start)
}

// rotateLocked 执行一次轮转：flush 当前文件，按当下时间派生新路径，
// 需要时派发异步清理，打开新文件替换旧句柄，重算下一边界。
// 调用方必须持有 r.mu。
func (r *periodicRotator) rotateLocked() error {
	if err := r.w.Flush(); err != nil {
		return err
	}

	wallNow := r.now().In(r.cfg.loc)
	path := RotatedPath(r.base, r.cfg.period, wallNow)

	if r.cfg.expire > 0 {
		// 清理派发后不等待也不回收：目录扫描和删除的延迟不能
		// 阻塞写路径。两次轮转的清理可能并发执行，删除是幂等的。
		go r.cleanAsync()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
	if err != nil {
		// 旧句柄保持原状，调用方得到致命错误
		return fmt.Errorf("%w: %s: %v", ErrOpenFile, path, err)
	}
	if cerr := r.file.Close(); cerr != nil {
		r.reportError(cerr)
	}
	r.file = f
	r.w = bufio.NewWriterSize(f, defaultBufSize)

	r.start = r.now()
	r.wait = NextBoundary(wallNow, r.cfg.period).Sub(wallNow)
	return nil
}

// cleanAsync 在独立 goroutine 中执行过期清理并上报结果。
// 清理的任何失败都不回流到写路径。
func (r *periodicRotator) cleanAsync() {
	defer func() { _ = recover() }() //nolint:errcheck // recover 返回值无需检查

	removed := CleanExpired(r.base, r.cfg.period, r.cfg.expire)
	if len(removed) > 0 && r.cfg.onCleanup != nil {
		r.cfg.onCleanup(removed)
	}
}

// reportError 通过回调上报内部错误
//
// 设计决策: 不使用 slog 等日志库，避免 Rotator 作为日志输出目标时产生递归写入。
// 回调 panic 被 recover 隔离，防止错误通知反向中断写路径。
func (r *periodicRotator) reportError(err error) {
	if err != nil && r.cfg.onError != nil {
		defer func() { _ = recover() }() //nolint:errcheck // recover 返回值无需检查
		r.cfg.onError(err)
	}
}

// Flush 将缓冲数据刷入当前文件
func (r *periodicRotator) Flush() error {
	if r.closed.Load() {
		return ErrClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return ErrClosed
	}
	return r.w.Flush()
}

// Rotate 手动触发轮转
//
// 单文件模式下 flush 后按基准路径重开；轮转模式下等价于边界到达时的
// 轮转（同一周期内派生路径不变，追加模式保证已写内容不丢）。
func (r *periodicRotator) Rotate() error {
	if r.closed.Load() {
		return ErrClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return ErrClosed
	}

	if !r.cfg.rotate {
		if err := r.w.Flush(); err != nil {
			return err
		}
		f, err := os.OpenFile(r.base, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOpenFile, r.base, err)
		}
		if cerr := r.file.Close(); cerr != nil {
			r.reportError(cerr)
		}
		r.file = f
		r.w = bufio.NewWriterSize(f, defaultBufSize)
		return nil
	}
	return r.rotateLocked()
}

// Close 实现 io.Closer 接口
//
// 刷出缓冲并关闭当前文件。关闭后调用 Write、Flush 或 Rotate 将返回
// [ErrClosed]，重复调用 Close 也返回 [ErrClosed]。
//
// 设计决策: Close 使用 CAS 原语标记关闭状态，首次 Close 失败后不重置标记，
// 确保关闭后不会有新的写入到达底层文件。
func (r *periodicRotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ferr := r.w.Flush()
	cerr := r.file.Close()
	if ferr != nil {
		return ferr
	}
	return cerr
}
