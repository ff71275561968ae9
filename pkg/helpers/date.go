package helpers

import "time"

// DisplayDate formats a timestamp the way post and comment dates are
// shown: "April 05, 2024".
func DisplayDate(t time.Time) string {
	return t.Format("January 02, 2006")
}
