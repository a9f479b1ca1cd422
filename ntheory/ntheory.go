package ntheory

// GCD returns the greatest common divisor of x and y by Euclid's algorithm.
// GCD(0, 0) == 0 and the result is never negative.
func GCD(x, y int) int {
	for y != 0 {
		x, y = y, x%y
	}
	if x < 0 {
		return -x
	}

	return x
}

// LCM returns the least common multiple of x and y. LCM(0, 0) == 0.
func LCM(x, y int) int {
	g := GCD(x, y)
	if g == 0 {
		return 0
	}
	l := x / g * y
	if l < 0 {
		return -l
	}

	return l
}
