package xrotate

import (
	"path/filepath"
	"strings"
	"time"
)

// fallbackStem 基准路径没有文件名部分时使用的主干
const fallbackStem = "log"

// RotatedPath 根据基准路径和 now 派生轮转文件的实际路径。
//
// now 的时间戳按周期格式化为片段并嵌入文件名：
//   - 基准路径带扩展名: {stem}-{token}.{ext}（如 mylog.log -> mylog-20221026.log）
//   - 基准路径无扩展名: {name}-{token}（不补扩展名）
//   - 基准路径无文件名部分: 主干回退为 "log"
//
// 结果落在基准路径所在目录。本函数不读时钟也不做缓存，
// 每次轮转（以及首次打开）都用当下的时间重新计算。
func RotatedPath(base string, p Period, now time.Time) string {
	token := now.Format(p.tokenLayout())

	dir := filepath.Dir(base)
	name := filepath.Base(base)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		name = ""
	}

	if name == "" {
		return filepath.Join(dir, fallbackStem+"-"+token)
	}
	if ext := filepath.Ext(name); ext != "" && ext != name {
		stem := strings.TrimSuffix(name, ext)
		return filepath.Join(dir, stem+"-"+token+ext)
	}
	return filepath.Join(dir, name+"-"+token)
}

// baseStem 返回基准路径去掉目录和扩展名后的文件主干。
// 清理匹配用它和候选文件名的主干做精确比较。
func baseStem(base string) string {
	name := filepath.Base(base)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return fallbackStem
	}
	if ext := filepath.Ext(name); ext != "" && ext != name {
		return strings.TrimSuffix(name, ext)
	}
	return name
}
