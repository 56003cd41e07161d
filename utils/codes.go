// utils/codes.go
package utils

import "fmt"

// ScheduleCodePrefix prefixes the zero-padded sequence in user-facing codes
const ScheduleCodePrefix = "SCHE"

// FormatScheduleCode renders a sequential code as its display string, e.g. 1 -> "SCHE0001".
// Numbers past 9999 simply grow wider.
func FormatScheduleCode(code int) string {
	return fmt.Sprintf("%s%04d", ScheduleCodePrefix, code)
}
