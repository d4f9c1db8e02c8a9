package xrotate

import (
	"fmt"
	"strings"
)

// Period 日志轮转周期
type Period int

// 支持的轮转周期。
const (
	// PeriodMinute 每分钟轮转
	PeriodMinute Period = iota
	// PeriodHour 每小时轮转
	PeriodHour
	// PeriodDay 每天轮转
	PeriodDay
	// PeriodMonth 每月轮转
	PeriodMonth
	// PeriodYear 每年轮转
	PeriodYear
)

// tokenT 小时/分钟形态中 'T' 分隔符所在的下标
const tokenT = 8

// String 返回周期的字符串表示。
func (p Period) String() string {
	switch p {
	case PeriodMinute:
		return "minute"
	case PeriodHour:
		return "hour"
	case PeriodDay:
		return "day"
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	default:
		return fmt.Sprintf("period(%d)", int(p))
	}
}

// ParsePeriod 从字符串解析轮转周期（大小写不敏感）。
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minute":
		return PeriodMinute, nil
	case "hour":
		return PeriodHour, nil
	case "day":
		return PeriodDay, nil
	case "month":
		return PeriodMonth, nil
	case "year":
		return PeriodYear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}

// IsValid 检查周期值是否有效。
func (p Period) IsValid() bool {
	return p >= PeriodMinute && p <= PeriodYear
}

// TokenLen 返回该周期时间戳片段的长度。
// 片段长度同时编码了周期：4=年、6=月、8=天、11=小时、13=分钟。
func (p Period) TokenLen() int {
	switch p {
	case PeriodMinute:
		return 13 // 20060102T1504
	case PeriodHour:
		return 11 // 20060102T15
	case PeriodDay:
		return 8 // 20060102
	case PeriodMonth:
		return 6 // 200601
	case PeriodYear:
		return 4 // 2006
	default:
		return 0
	}
}

// tokenLayout 返回该周期时间戳片段的 time.Format 布局。
func (p Period) tokenLayout() string {
	switch p {
	case PeriodMinute:
		return "20060102T1504"
	case PeriodHour:
		return "20060102T15"
	case PeriodDay:
		return "20060102"
	case PeriodMonth:
		return "200601"
	case PeriodYear:
		return "2006"
	default:
		return ""
	}
}

// matchToken 判断 token 是否符合该周期的时间戳形态：
// 长度精确匹配，全部为 ASCII 数字，小时/分钟形态的下标 8 必须是 'T'。
//
// 这是文件命名格式的逆谓词，与 tokenLayout 的输出一一对应，
// 过期清理用它识别候选文件。长度不同的周期互不匹配，清理只限本周期。
func (p Period) matchToken(token string) bool {
	if len(token) != p.TokenLen() || !p.IsValid() {
		return false
	}
	for i := 0; i < len(token); i++ {
		if i == tokenT && len(token) > tokenT {
			if token[i] != 'T' {
				return false
			}
			continue
		}
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}
