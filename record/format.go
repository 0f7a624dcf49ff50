package record

import "strconv"

// FormatNumber renders x in its shortest decimal form, e.g. 150 or 12.5.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
