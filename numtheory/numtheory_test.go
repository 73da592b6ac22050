package numtheory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/puzzlekit/numtheory"
)

func TestGCDAndLCM(t *testing.T) {
	assert.Equal(t, 6, numtheory.GCD(48, 18))
	assert.Equal(t, 6, numtheory.GCD(-48, 18))
	assert.Equal(t, 7, numtheory.GCD(0, 7))
	assert.Equal(t, 0, numtheory.GCD(0, 0))
	assert.Equal(t, uint64(5), numtheory.GCD[uint64](15, 25))

	assert.Equal(t, 36, numtheory.LCM(12, 18))
	assert.Equal(t, 0, numtheory.LCM(0, 18))
	assert.Equal(t, int64(2520), numtheory.LCMAll[int64](1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
	assert.Equal(t, 1, numtheory.LCMAll[int]())
}

func TestBezout(t *testing.T) {
	cases := []struct{ a, b int }{
		{3, 4}, {25, 10}, {240, 46}, {17, 5}, {0, 9}, {9, 0},
	}
	for _, c := range cases {
		g, s, tt := numtheory.Bezout(c.a, c.b)
		assert.Equal(t, numtheory.GCD(c.a, c.b), g, "gcd of %d, %d", c.a, c.b)
		assert.Equal(t, g, s*c.a+tt*c.b, "identity for %d, %d", c.a, c.b)
	}

	g, s, tt := numtheory.Bezout(3, 4)
	assert.Equal(t, [3]int{1, -1, 1}, [3]int{g, s, tt})
}

func TestChineseRemainder_Coprime(t *testing.T) {
	n, ok := numtheory.ChineseRemainder(0, 3, 3, 4)
	assert.True(t, ok)
	assert.Equal(t, -9, n)

	n, ok = numtheory.ChineseRemainder(1, 3, 3, 4)
	assert.True(t, ok)
	assert.Equal(t, -5, n)

	n, m, ok := numtheory.ChineseRemainderWithModulus(0, 3, 3, 4)
	assert.True(t, ok)
	assert.Equal(t, [2]int{-9, 12}, [2]int{n, m})
}

func TestChineseRemainder_NonCoprime(t *testing.T) {
	n, m, ok := numtheory.ChineseRemainderWithModulus(13, 25, 8, 10)
	assert.True(t, ok)
	assert.Equal(t, [2]int{-12, 50}, [2]int{n, m})

	_, ok = numtheory.ChineseRemainder(13, 25, 9, 10)
	assert.False(t, ok)
}

func TestChineseRemainder_ZeroModulus(t *testing.T) {
	_, ok := numtheory.ChineseRemainder(1, 0, 2, 5)
	assert.False(t, ok)
}

func TestChineseRemainderMany(t *testing.T) {
	type c = numtheory.Congruence[int64]

	n, ok := numtheory.ChineseRemainderMany([]c{{2, 3}, {3, 5}, {2, 7}})
	assert.True(t, ok)
	assert.Equal(t, int64(-82), n)

	n, m, ok := numtheory.ChineseRemainderManyWithModulus([]c{{0, 3}, {3, 4}, {4, 5}})
	assert.True(t, ok)
	assert.Equal(t, [2]int64{-21, 60}, [2]int64{n, m})

	n, m, ok = numtheory.ChineseRemainderManyWithModulus([]c{{3, 6}, {3, 4}, {4, 5}})
	assert.True(t, ok)
	assert.Equal(t, [2]int64{-21, 60}, [2]int64{n, m})

	_, ok = numtheory.ChineseRemainderMany([]c{{0, 6}, {3, 4}, {4, 5}})
	assert.False(t, ok)

	n, m, ok = numtheory.ChineseRemainderManyWithModulus[int64](nil)
	assert.True(t, ok)
	assert.Equal(t, [2]int64{0, 1}, [2]int64{n, m})
}

// Every returned representative must satisfy each input congruence.
func TestChineseRemainderMany_Satisfies(t *testing.T) {
	cs := []numtheory.Congruence[int]{{1, 4}, {2, 9}, {3, 5}, {0, 7}}
	n, m, ok := numtheory.ChineseRemainderManyWithModulus(cs)
	assert.True(t, ok)
	assert.Equal(t, 4*9*5*7, m)
	for _, c := range cs {
		assert.Equal(t, 0, ((n-c.Remainder)%c.Modulus+c.Modulus)%c.Modulus, "n=%d vs %v", n, c)
	}
}
