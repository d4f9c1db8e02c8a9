package xrotate

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"
)

// =============================================================================
// 性能测试（Benchmark）
// =============================================================================

// BenchmarkPeriodicWrite 测试周期轮转器写入性能
//
// 测量快路径（未到边界）单次写入的性能，包括：
//   - 写入延迟
//   - 内存分配
func BenchmarkPeriodicWrite(b *testing.B) {
	tmpDir := b.TempDir()
	filename := filepath.Join(tmpDir, "bench.log")

	r, err := NewPeriodic(filename, WithPeriod(PeriodDay))
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	data := []byte("benchmark log line with some content\n")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r.Write(data)
	}
}

// BenchmarkPeriodicWriteParallel 测试并发写入性能
//
// 测量多个 goroutine 并发写入时的性能，验证互斥锁实现的开销
func BenchmarkPeriodicWriteParallel(b *testing.B) {
	tmpDir := b.TempDir()
	filename := filepath.Join(tmpDir, "bench_parallel.log")

	r, err := NewPeriodic(filename, WithPeriod(PeriodDay))
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	data := []byte("benchmark log line with some content\n")

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			r.Write(data)
		}
	})
}

// BenchmarkPeriodicWriteLarge 测试大数据块写入吞吐量
func BenchmarkPeriodicWriteLarge(b *testing.B) {
	tmpDir := b.TempDir()
	filename := filepath.Join(tmpDir, "bench_large.log")

	r, err := NewPeriodic(filename)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	// 64KB 数据块
	data := bytes.Repeat([]byte("x"), 64*1024)

	b.ResetTimer()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		r.Write(data)
	}
}

// BenchmarkLumberjackWrite 测试按大小轮转器写入性能
func BenchmarkLumberjackWrite(b *testing.B) {
	tmpDir := b.TempDir()
	filename := filepath.Join(tmpDir, "bench_lj.log")

	r, err := NewLumberjack(filename)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	data := []byte("benchmark log line with some content\n")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r.Write(data)
	}
}

// BenchmarkNewPeriodic 测试创建 Rotator 的性能
//
// 测量初始化开销，包括配置解析、路径检查、目录创建、首个文件打开
func BenchmarkNewPeriodic(b *testing.B) {
	tmpDir := b.TempDir()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		filename := filepath.Join(tmpDir, "bench_new.log")
		r, err := NewPeriodic(filename, WithPeriod(PeriodDay))
		if err != nil {
			b.Fatal(err)
		}
		r.Close()
	}
}

// BenchmarkNextBoundary 测试边界计算性能
func BenchmarkNextBoundary(b *testing.B) {
	now := time.Date(2022, time.October, 26, 13, 51, 0, 0, time.UTC)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		NextBoundary(now, PeriodMinute)
	}
}

// BenchmarkRotatedPath 测试轮转文件名派生性能
func BenchmarkRotatedPath(b *testing.B) {
	now := time.Date(2022, time.October, 26, 13, 51, 0, 0, time.UTC)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		RotatedPath("/var/log/app/mylog.log", PeriodMinute, now)
	}
}

// BenchmarkMatchCandidate 测试清理候选匹配性能
//
// 清理扫描对目录下每个条目调用一次，常数开销直接决定大目录的扫描成本
func BenchmarkMatchCandidate(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		matchCandidate("mylog-20221026T1351.log", "mylog", PeriodMinute)
	}
}
