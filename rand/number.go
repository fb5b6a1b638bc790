package rand

import "math/rand"

// Int64BetweenInclusive 両端を含む範囲からランダムなint64値を取得
// max-min+1 がint64に収まらない範囲は対象外
func Int64BetweenInclusive(min int64, max int64) int64 {
	if min > max {
		panic("min must be <= max")
	}

	return rand.Int63n(max-min+1) + min
}
