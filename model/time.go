package model

import "time"

// JST is the fixed timezone that all created_at timestamps are written in.
var JST = time.FixedZone("Asia/Tokyo", 9*60*60)

// NowJST returns the current time in JST.
func NowJST() time.Time {
	return time.Now().In(JST)
}
