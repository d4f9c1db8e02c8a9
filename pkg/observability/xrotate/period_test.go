package xrotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParsePeriod 测试周期字符串解析
func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"minute", PeriodMinute, false},
		{"hour", PeriodHour, false},
		{"day", PeriodDay, false},
		{"month", PeriodMonth, false},
		{"year", PeriodYear, false},
		{"DAY", PeriodDay, false},
		{" day ", PeriodDay, false},
		{"", 0, true},
		{"week", 0, true},
		{"daily", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPeriod, "in=%q", tt.in)
			continue
		}
		assert.NoError(t, err, "in=%q", tt.in)
		assert.Equal(t, tt.want, got, "in=%q", tt.in)
	}
}

// TestPeriodString 测试 String 与 ParsePeriod 互逆
func TestPeriodString(t *testing.T) {
	for _, p := range []Period{PeriodMinute, PeriodHour, PeriodDay, PeriodMonth, PeriodYear} {
		got, err := ParsePeriod(p.String())
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	}
	assert.Equal(t, "period(99)", Period(99).String())
}

// TestPeriodTokenLen 测试时间戳片段长度编码
func TestPeriodTokenLen(t *testing.T) {
	tests := []struct {
		period Period
		want   int
	}{
		{PeriodYear, 4},
		{PeriodMonth, 6},
		{PeriodDay, 8},
		{PeriodHour, 11},
		{PeriodMinute, 13},
		{Period(99), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.period.TokenLen(), "period=%v", tt.period)
	}
}

// TestMatchTokenShapes 测试时间戳形态匹配
func TestMatchTokenShapes(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		token  string
		want   bool
	}{
		{"年形态", PeriodYear, "2022", true},
		{"月形态", PeriodMonth, "202210", true},
		{"天形态", PeriodDay, "20221026", true},
		{"小时形态", PeriodHour, "20221026T13", true},
		{"分钟形态", PeriodMinute, "20221026T1351", true},
		{"长度不符", PeriodYear, "202210", false},
		{"字母混入", PeriodYear, "2o22", false},
		{"小时缺 T", PeriodHour, "20221026013", false},
		{"分钟缺 T", PeriodMinute, "2022102613510", false},
		{"空 token", PeriodDay, "", false},
		{"无效周期", Period(99), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.matchToken(tt.token))
		})
	}
}
