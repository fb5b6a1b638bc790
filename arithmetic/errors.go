package arithmetic

import "github.com/cockroachdb/errors"

// ErrDivisionByZero 除数が0の場合のエラー
var ErrDivisionByZero = errors.New("division by zero")

// ErrPositifIntegerRequired 負の整数が渡された場合のエラー
var ErrPositifIntegerRequired = errors.New("positif integer required")

// ErrOverflow 計算結果がint64の範囲を超えた場合のエラー
var ErrOverflow = errors.New("overflow")

// ErrOutOfRange 入力が定義域外の場合のエラー
var ErrOutOfRange = errors.New("out of range")
