package usecase

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// formatFileSize renders a byte count the way the display surface shows
// it: base-1024 units, at most two decimals, trailing zeros dropped.
func formatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	exp := int(math.Log(float64(bytes)) / math.Log(1024))
	if exp >= len(sizeUnits) {
		exp = len(sizeUnits) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(exp))
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[exp]
}
