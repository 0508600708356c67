package chrono

import "math"

// addInt64 attempts to add v1 to v2 but reports if the operation would underflow or overflow int64.
func addInt64(v1, v2 int64) (sum int64, underflows, overflows bool) {
	if v2 > 0 && v1 > math.MaxInt64-v2 {
		return 0, false, true
	}
	if v2 < 0 && v1 < math.MinInt64-v2 {
		return 0, true, false
	}
	return v1 + v2, false, false
}
