package curry

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurry2_RoundTrip(t *testing.T) {
	t.Parallel()

	sub := func(a, b int) int { return a - b }
	if got := Curry2(sub)(10)(3); got != sub(10, 3) {
		t.Fatalf("expected %d, got %d", sub(10, 3), got)
	}
}

func TestCurry2_NotInvokedUntilLastArgument(t *testing.T) {
	t.Parallel()

	calls := 0
	join := func(a string, b int) string {
		calls++
		return fmt.Sprintf("%s%d", a, b)
	}

	partial := Curry2(join)("x")
	if calls != 0 {
		t.Fatalf("function must not run after a partial application, ran %d times", calls)
	}

	if got := partial(1); got != "x1" {
		t.Fatalf("expected 'x1', got %q", got)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one call, got %d", calls)
	}
}

func TestCurry2_PartialIsReusable(t *testing.T) {
	t.Parallel()

	add := Curry2(func(a, b int) int { return a + b })
	addFive := add(5)

	assert.Equal(t, 6, addFive(1))
	assert.Equal(t, 7, addFive(2))
}

func TestCurry3_ArgumentOrder(t *testing.T) {
	t.Parallel()

	concat := func(a, b, c string) string { return a + b + c }
	assert.Equal(t, "abc", Curry3(concat)("a")("b")("c"))
}

func TestCurry_AllArities(t *testing.T) {
	t.Parallel()

	calls := 0
	join := func(parts ...string) string {
		calls++
		return strings.Join(parts, "")
	}

	cases := []struct {
		name string
		got  func() string
		want string
	}{
		{"Curry4", func() string {
			return Curry4(func(a, b, c, d string) string { return join(a, b, c, d) })("1")("2")("3")("4")
		}, "1234"},
		{"Curry5", func() string {
			return Curry5(func(a, b, c, d, e string) string { return join(a, b, c, d, e) })("1")("2")("3")("4")("5")
		}, "12345"},
		{"Curry6", func() string {
			return Curry6(func(a, b, c, d, e, f string) string {
				return join(a, b, c, d, e, f)
			})("1")("2")("3")("4")("5")("6")
		}, "123456"},
		{"Curry7", func() string {
			return Curry7(func(a, b, c, d, e, f, g string) string {
				return join(a, b, c, d, e, f, g)
			})("1")("2")("3")("4")("5")("6")("7")
		}, "1234567"},
		{"Curry8", func() string {
			return Curry8(func(a, b, c, d, e, f, g, h string) string {
				return join(a, b, c, d, e, f, g, h)
			})("1")("2")("3")("4")("5")("6")("7")("8")
		}, "12345678"},
		{"Curry9", func() string {
			return Curry9(func(a, b, c, d, e, f, g, h, i string) string {
				return join(a, b, c, d, e, f, g, h, i)
			})("1")("2")("3")("4")("5")("6")("7")("8")("9")
		}, "123456789"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.got(), tc.name)
	}
	assert.Equal(t, len(cases), calls)
}

func TestCurry9_MixedTypes(t *testing.T) {
	t.Parallel()

	fn := func(a int, b string, c bool, d float64, e rune, f uint, g int8, h []int, i error) string {
		return fmt.Sprint(a, b, c, d, string(e), f, g, len(h), i == nil)
	}

	got := Curry9(fn)(1)("b")(true)(1.5)('r')(2)(3)([]int{1, 2})(nil)
	assert.Equal(t, fn(1, "b", true, 1.5, 'r', 2, 3, []int{1, 2}, nil), got)
}

func TestUncurry_InverseOfCurry(t *testing.T) {
	t.Parallel()

	mul := func(a, b int) int { return a * b }
	assert.Equal(t, mul(6, 7), Uncurry2(Curry2(mul))(6, 7))

	sum4 := func(a, b, c, d int) int { return a + b + c + d }
	assert.Equal(t, sum4(1, 2, 3, 4), Uncurry4(Curry4(sum4))(1, 2, 3, 4))

	sum9 := func(a, b, c, d, e, f, g, h, i int) int { return a + b + c + d + e + f + g + h + i }
	assert.Equal(t, 45, Uncurry9(Curry9(sum9))(1, 2, 3, 4, 5, 6, 7, 8, 9))
}

func TestCurry_NilStaysNil(t *testing.T) {
	t.Parallel()

	var fn2 func(int, int) int
	var fn9 func(int, int, int, int, int, int, int, int, int) int

	require.Nil(t, Curry2(fn2))
	require.Nil(t, Curry9(fn9))
	require.Nil(t, Uncurry2[int, int, int](nil))
	require.Nil(t, Uncurry9[int, int, int, int, int, int, int, int, int, int](nil))
}
