package services

import (
	"bytes"
	"time"
)

// testTime is the creation time stamped on test profiles.
var testTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}
