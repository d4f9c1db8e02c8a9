// Package xfile 提供通用文件系统操作工具。
//
// 本包提供安全、便捷的文件和目录操作函数。
// 所有函数都考虑了安全性（如路径穿越防护）和跨平台兼容性。
//
// # 路径穿越检测
//
// 路径穿越检测使用精确的路径段匹配，只有 ".." 作为独立路径段时才被视为穿越攻击。
// 以 ".." 开头的合法文件名（如 "..config"、"...hidden"）不会被误判。
//
// # 空字节防护
//
// SanitizePath 拒绝包含空字节（\x00）的路径。Linux 内核在 VFS 层
// 会在空字节处截断路径，导致 Go 代码与操作系统实际操作的路径不一致。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	_, err := xfile.SanitizePath("../etc/passwd")
//	if errors.Is(err, xfile.ErrPathTraversal) {
//	    // 处理路径穿越
//	}
package xfile
