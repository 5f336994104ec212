package model

import "time"

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
}

// ParseDate 解析上游日期，兼容纯日期与 ISO 时间戳
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
