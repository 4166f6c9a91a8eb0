package domain

// ClampLimit normalizes a caller-supplied result limit.
// Non-positive values fall back to def; values above max are capped to max.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
