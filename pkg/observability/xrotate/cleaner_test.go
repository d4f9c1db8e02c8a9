package xrotate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeStaleFile 在 dir 下创建 name 并把修改时间拨到 age 之前
func writeStaleFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))
	old := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, old, old))
	return path
}

// TestCleanExpiredRemovesStale 测试过期文件被删除并出现在返回列表中
func TestCleanExpiredRemovesStale(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "current.log")

	stale := writeStaleFile(t, tmpDir, "current-20221026.log", 48*time.Hour)

	removed := CleanExpired(base, PeriodDay, 24*time.Hour)
	assert.Equal(t, []string{"current-20221026.log"}, removed)
	assert.NoFileExists(t, stale)
}

// TestCleanExpiredKeepsFresh 测试未过期文件保留：
// 删除条件是严格大于 keep，比 keep 年轻的文件不动。
func TestCleanExpiredKeepsFresh(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "current.log")

	fresh := writeStaleFile(t, tmpDir, "current-20221026.log", 20*time.Hour)

	removed := CleanExpired(base, PeriodDay, 24*time.Hour)
	assert.Empty(t, removed)
	assert.FileExists(t, fresh)
}

// TestCleanExpiredAgeThreshold 测试阈值两侧的行为
func TestCleanExpiredAgeThreshold(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "current.log")

	keep := 24 * time.Hour
	// 阈值内侧（年轻 5 分钟）保留，外侧（超龄 5 分钟）删除
	kept := writeStaleFile(t, tmpDir, "current-20221025.log", keep-5*time.Minute)
	gone := writeStaleFile(t, tmpDir, "current-20221024.log", keep+5*time.Minute)

	removed := CleanExpired(base, PeriodDay, keep)
	assert.Equal(t, []string{"current-20221024.log"}, removed)
	assert.FileExists(t, kept)
	assert.NoFileExists(t, gone)
}

// TestCleanExpiredStemIsolation 测试主干不匹配的文件永不被删
func TestCleanExpiredStemIsolation(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "current.log")

	other := writeStaleFile(t, tmpDir, "another-20221026T1351.log", 30*24*time.Hour)

	removed := CleanExpired(base, PeriodMinute, time.Hour)
	assert.Empty(t, removed)
	assert.FileExists(t, other)
}

// TestCleanExpiredPeriodScoped 测试清理只限本周期：
// 其他周期产出的文件（时间戳长度不同）即使过期也不匹配。
func TestCleanExpiredPeriodScoped(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "current.log")

	byDay := writeStaleFile(t, tmpDir, "current-20221026.log", 30*24*time.Hour)
	byMinute := writeStaleFile(t, tmpDir, "current-20221026T1351.log", 30*24*time.Hour)

	removed := CleanExpired(base, PeriodMinute, time.Hour)
	assert.Equal(t, []string{"current-20221026T1351.log"}, removed)
	assert.FileExists(t, byDay)
	assert.NoFileExists(t, byMinute)
}

// TestCleanExpiredIdempotent 测试对已清理目录重复调用返回空结果
func TestCleanExpiredIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "current.log")

	writeStaleFile(t, tmpDir, "current-2022.log", 400*24*time.Hour)

	first := CleanExpired(base, PeriodYear, 24*time.Hour)
	require.Len(t, first, 1)

	second := CleanExpired(base, PeriodYear, 24*time.Hour)
	assert.Empty(t, second)
}

// TestCleanExpiredSkipsDirectories 测试名字碰巧匹配的目录被跳过
func TestCleanExpiredSkipsDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "current.log")

	dir := filepath.Join(tmpDir, "current-20221026.log")
	require.NoError(t, os.Mkdir(dir, 0o750))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(dir, old, old))

	removed := CleanExpired(base, PeriodDay, time.Hour)
	assert.Empty(t, removed)
	assert.DirExists(t, dir)
}

// TestCleanExpiredMissingDirFallsBack 测试父目录不存在时回退到当前目录扫描
func TestCleanExpiredMissingDirFallsBack(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	stale := writeStaleFile(t, tmpDir, "current-202210.log", 60*24*time.Hour)

	base := filepath.Join(tmpDir, "no", "such", "dir", "current.log")
	removed := CleanExpired(base, PeriodMonth, 24*time.Hour)
	assert.Equal(t, []string{"current-202210.log"}, removed)
	assert.NoFileExists(t, stale)
}

// TestMatchCandidate 测试候选匹配谓词
func TestMatchCandidate(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		stem   string
		period Period
		want   bool
	}{
		{"按分钟精确匹配", "current-20221026T1351.log", "current", PeriodMinute, true},
		{"按天精确匹配", "current-20221026.log", "current", PeriodDay, true},
		{"无扩展名匹配", "log-20221026T1353", "log", PeriodMinute, true},
		{"主干不同", "another-20221026T1351.log", "current", PeriodMinute, false},
		{"周期不同", "current-20221026.log", "current", PeriodMinute, false},
		{"缺少分隔符", "current20221026.log", "current", PeriodDay, false},
		{"token 含字母", "current-2022102a.log", "current", PeriodDay, false},
		{"T 位置错误", "current-20221026X1351.log", "current", PeriodMinute, false},
		{"主干含连字符", "my-log-20221026.log", "my-log", PeriodDay, true},
		{"主干含连字符但按短主干匹配", "my-log-20221026.log", "log", PeriodDay, false},
		{"token 过长", "current-202210261.log", "current", PeriodDay, false},
		{"裸 token 无主干", "-20221026.log", "", PeriodDay, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchCandidate(tt.file, tt.stem, tt.period))
		})
	}
}
