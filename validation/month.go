package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ParseMonth 校验可选的 YYYY-MM 参数。未传时返回空字符串，由调用方取当前月份。
// 只校验格式，不校验月份范围。
func ParseMonth(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	m := monthPattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return "", newValidationError(MsgMonthInvalid)
	}
	return m[1] + "-" + m[2], nil
}

// CurrentMonth 返回 now 在本地时区的 YYYY-MM
func CurrentMonth(now time.Time) string {
	return now.In(time.Local).Format("2006-01")
}

// MonthWindow 返回月份的首个时刻与最后一天 23:59:59.999（均为本地时区，闭区间）。
// 超出范围的月份按 time.Date 规则顺延，例如 2024-13 即 2025-01。
func MonthWindow(month string) (start, end time.Time, err error) {
	m := monthPattern.FindStringSubmatch(month)
	if m == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q", month)
	}
	year, _ := strconv.Atoi(m[1])
	mon, _ := strconv.Atoi(m[2])

	start = time.Date(year, time.Month(mon), 1, 0, 0, 0, 0, time.Local)
	end = time.Date(year, time.Month(mon)+1, 0, 23, 59, 59, int(999*time.Millisecond), time.Local)
	return start, end, nil
}
