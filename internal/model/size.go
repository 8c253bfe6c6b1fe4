package model

import "fmt"

// UnknownSizeLabel is the sentinel for renditions without a usable byte
// size. It is distinguishable from every numeric result, so callers can
// branch on it.
const UnknownSizeLabel = "Unknown Size"

// sizeUnits escalate by 1024; anything past GB renders as TB.
var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count as "value unit" with one decimal place.
// Zero or negative counts return UnknownSizeLabel, never "0.0 B".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return UnknownSizeLabel
	}

	value := float64(bytes)
	for _, unit := range sizeUnits {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}
