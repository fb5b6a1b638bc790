package arithmetic

import "math/bits"

// IsPrimeNumber ウィルソンの定理による素数判定
// 素数の場合は入力値そのものと true を返し、呼び出し側がそのまま値を使い回せるようにする。
// 合成数の場合は 0 と false を返す。計算量は O(a) なので大きな入力には向かない
func IsPrimeNumber(a int64) (int64, bool, error) {
	if a < 2 {
		return 0, false, ErrOutOfRange
	}

	// (a-1)! mod a を逐次計算する。毎ステップ剰余を取り、中間値を a 未満に保つ。
	// 剰余同士の積はint64を超え得るため128bit乗算で正確に還元する
	n := uint64(a)
	factorial := uint64(1)
	for i := uint64(1); i < n; i++ {
		hi, lo := bits.Mul64(factorial, i)
		factorial = bits.Rem64(hi, lo, n)
	}

	// ウィルソンの定理: a が素数 ⟺ ((a-1)! + 1) mod a == 0
	if (factorial+1)%n == 0 {
		return a, true, nil
	}
	return 0, false, nil
}
