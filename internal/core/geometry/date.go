package geometry

import (
	"fmt"
	"time"

	"github.com/penwyp/go-linechart/internal/core/constants"
	"github.com/penwyp/go-linechart/internal/util"
)

var shortMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ToDate formats a millisecond timestamp as "Mon D" in the configured timezone
func ToDate(timestamp float64) string {
	t := util.GetTimeProvider().In(TimestampToTime(timestamp))
	return fmt.Sprintf("%s %d", shortMonths[t.Month()-1], t.Day())
}

// TimestampToTime converts a dataset timestamp to a time.Time
func TimestampToTime(timestamp float64) time.Time {
	return time.Unix(0, int64(timestamp)*int64(constants.TimestampUnit))
}
