package bplus

// upperBound returns the index of the first key greater than target,
// or len(keys) if there is none.
func upperBound[K any](keys []K, target K, cmp func(a, b K) int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(keys[mid], target) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// binarySearch returns the index of target in keys, or -1.
func binarySearch[K any](keys []K, target K, cmp func(a, b K) int) int {
	low := 0
	high := len(keys) - 1
	for low <= high {
		mid := low + (high-low)/2
		c := cmp(keys[mid], target)
		if c == 0 {
			return mid
		} else if c < 0 {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return -1
}
