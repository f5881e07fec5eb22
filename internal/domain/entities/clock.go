package entities

import "time"

// now is the wall clock used to stamp mutations. All timestamps are UTC.
var now = func() time.Time { return time.Now().UTC() }
