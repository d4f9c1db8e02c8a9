package xrotate

import "time"

// NextBoundary 返回 now 之后下一个周期边界，即严格晚于 now 的
// 最早周期起点，结果保持 now 的 Location。
//
// 日历运算遵循公历（含闰年）：
//   - 年：下一年的 1 月 1 日 00:00:00
//   - 月：下个日历月的 1 日 00:00:00，12 月时滚动到下一年
//   - 天：当天 00:00:00 加 24 小时
//   - 小时：当前整点加 1 小时
//   - 分钟：当前整分加 1 分钟
//
// 不建模时区切换：now 的偏移在返回值上原样保留（固定偏移语义）。
func NextBoundary(now time.Time, p Period) time.Time {
	loc := now.Location()
	switch p {
	case PeriodYear:
		return time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, loc)
	case PeriodMonth:
		year, month := now.Year(), now.Month()
		if month == time.December {
			year++
			month = time.January
		} else {
			month++
		}
		return time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case PeriodDay:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		return midnight.Add(24 * time.Hour)
	case PeriodHour:
		hour := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, loc)
		return hour.Add(time.Hour)
	default: // PeriodMinute
		minute := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, loc)
		return minute.Add(time.Minute)
	}
}
