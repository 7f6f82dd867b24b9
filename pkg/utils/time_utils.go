package utils

import "time"

// China Standard Time (+08:00), the site's operating timezone.
var cnLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Shanghai"); err == nil {
		return loc
	}
	return time.FixedZone("CST", 8*3600)
}()

// Unix seconds are what the orders table stores.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsCN converts an epoch value in seconds to CN time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsCN(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(cnLoc)
}
