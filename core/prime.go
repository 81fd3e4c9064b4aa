package core

// IsPrime checks n by trial division up to its integer square root.
// i <= n/i keeps the bound from overflowing near math.MaxInt.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// FirstPrimeAbove returns the smallest prime strictly greater than n.
func FirstPrimeAbove(n int) int {
	i := n + 1
	for !IsPrime(i) {
		i++
	}
	return i
}
