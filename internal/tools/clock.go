package tools

import "time"

// Clock abstracts time so reminder defaults are testable.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

const dateLayout = "2006-01-02"
const timeLayout = "15:04"
