package xrotate

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CleanExpired 扫描基准路径所在目录，删除该周期产出的过期轮转文件，
// 返回被删除的文件名列表。
//
// 候选条件：文件名主干按最后一个 '-' 拆为 (stem, token)，stem 与基准
// 路径的文件主干精确相等，且 token 符合该周期的时间戳形态（见
// [Period.TokenLen]）。其他周期产出的文件（token 长度不同）不会被匹配。
//
// 删除条件：最后修改时间距今严格大于 keep。恰好等于 keep 的文件保留。
//
// 本函数从不向调用方报错：目录不存在或不是目录时回退到当前目录扫描；
// 单个文件的元数据读取或删除失败被吞掉，该文件保留。对已清理过的
// 目录重复调用返回空结果。
//
// 注意：匹配只看文件名，不看文件来源。任何名字符合模式的文件都可能
// 被删除，这是有意的设计取舍。
func CleanExpired(base string, p Period, keep time.Duration) []string {
	dir := filepath.Dir(base)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	stem := baseStem(base)
	var removed []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if !matchCandidate(name, stem, p) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) <= keep {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			// 可能已被并发的另一次清理删除，跳过即可
			continue
		}
		removed = append(removed, name)
	}
	return removed
}

// matchCandidate 判断 name 是否是 stem 在周期 p 下的轮转文件。
// 与 [RotatedPath] 的输出格式一一对应：命名与匹配永不分离。
func matchCandidate(name, stem string, p Period) bool {
	body := name
	if ext := filepath.Ext(name); ext != "" && ext != name {
		body = strings.TrimSuffix(name, ext)
	}
	i := strings.LastIndexByte(body, '-')
	if i < 0 {
		return false
	}
	return body[:i] == stem && p.matchToken(body[i+1:])
}
