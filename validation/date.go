package validation

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T[\d:.+-]+Z?)?$`)

// 带时区的格式：Z 或 ±hh:mm / ±hhmm。秒后的小数部分解析时自动接受。
var zonedLayouts = []string{
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05Z0700",
}

// 无时区的格式按本地时区解释
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// ParseDate 解析 YYYY-MM-DD 或 YYYY-MM-DDThh:mm[:ss[.fff]][Z|±hh:mm]。
// 纯日期解释为本地时区零点。格式不符或日期本身不存在（如 13 月）时返回 false。
func ParseDate(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if !isoDatePattern.MatchString(s) {
		return time.Time{}, false
	}

	if len(s) == len(dateLayout) {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDateValue 解析 JSON 中的原始值，非字符串一律视为无效
func ParseDateValue(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	return ParseDate(s)
}

// EndOfDay 返回 t 所在自然日（本地时区）的 23:59:59.999
func EndOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.Local)
}
