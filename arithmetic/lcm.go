package arithmetic

import (
	"math"
	"math/bits"
)

// Lcm 最小公倍数を求める。非負整数のみを対象とする
// どちらかが0の場合は0を返す
func Lcm(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, ErrPositifIntegerRequired
	}

	if a == 0 || b == 0 {
		return 0, nil
	}

	g, err := GcdAbs(a, b)
	if err != nil {
		return 0, err
	}

	// 先に割ってから掛けることで途中結果の増大を抑える
	// (最大公約数は a を割り切るので割り算は正確)
	aReduced := a / g

	// 最後の掛け算だけはオーバーフローし得るため、検出付きで乗算する
	hi, lo := bits.Mul64(uint64(aReduced), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(lo), nil
}
