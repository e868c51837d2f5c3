package vic

// AddMod10 adds a and b digit by digit without carry. The result has the
// length of the shorter operand.
func AddMod10(a, b []int) []int {
	n := min(len(a), len(b))
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = (a[i] + b[i]) % 10
	}
	return out
}

// SubMod10 subtracts b from a digit by digit without borrow.
func SubMod10(a, b []int) []int {
	n := min(len(a), len(b))
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = (a[i] + 10 - b[i]) % 10
	}
	return out
}

// ChainAdd performs one lagged Fibonacci pass over a copy of a: every digit
// becomes the sum of itself and its right neighbour, the last one wrapping
// around to the already updated first digit.
func ChainAdd(a []int) []int {
	out := append([]int(nil), a...)
	chainAddInPlace(out)
	return out
}

func chainAddInPlace(a []int) {
	n := len(a)
	for i := 0; i < n; i++ {
		a[i] = (a[i] + a[(i+1)%n]) % 10
	}
}

// Expand5To10 appends the chain addition of a to a.
func Expand5To10(a []int) []int {
	return append(append([]int(nil), a...), ChainAdd(a)...)
}

// FirstEncode maps every digit v of a through b, where b is indexed from
// one and 0 stands for the tenth position.
func FirstEncode(a, b []int) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[i] = b[(v+9)%10]
	}
	return out
}

func digits(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i] - '0')
	}
	return out
}

func digitString(a []int) string {
	b := make([]byte, len(a))
	for i, v := range a {
		b[i] = byte('0' + v)
	}
	return string(b)
}
