package arithmetic

// Gcd ユークリッドの互除法で最大公約数を求める
// 結果の符号は第1引数に従う。Gcd(-48, 88) = -8
func Gcd(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	g, _ := gcdWithQuotient(a, b)
	if g < 0 {
		g = -g
	}
	if a < 0 {
		return -g, nil
	}
	return g, nil
}

// GcdAbs 最大公約数の絶対値を求める。結果は常に非負
func GcdAbs(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	g, _ := gcdWithQuotient(a, b)
	if g < 0 {
		g = -g
	}
	return g, nil
}

// GcdSecure 商を一切計算せずに最大公約数の絶対値を求める
// 暗号用途で商がサイドチャネルの手掛かりになり得るため、剰余のみでループする。
// 結果は GcdAbs と常に一致する
func GcdSecure(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a, nil
	}
	return a, nil
}

// gcdWithQuotient 互除法の各ステップで最後の商も保持する
// 商はパッケージ外へは公開しない
func gcdWithQuotient(a, b int64) (int64, int64) {
	for {
		q, r := a/b, a%b // q = (a - r) / b と同じ
		if r == 0 {
			return b, q
		}
		a, b = b, r
	}
}
