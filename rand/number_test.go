package rand

import (
	"testing"
)

func TestInt64BetweenInclusive(t *testing.T) {
	type args struct {
		min, max int64
	}
	tests := []struct {
		name      string
		args      args
		wantPanic bool
	}{
		{
			name:      "異常: 最小値が最大値より大きい",
			args:      args{min: 5, max: 3},
			wantPanic: true,
		},
		{
			name: "正常: 通常の範囲",
			args: args{min: 2, max: 5},
		},
		{
			name: "正常: 負数を含む範囲",
			args: args{min: -5, max: 5},
		},
		{
			name: "正常: 同値",
			args: args{min: 3, max: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tt.wantPanic && r == nil {
					t.Errorf("expected panic but did not")
				}
				if !tt.wantPanic && r != nil {
					t.Errorf("unexpected panic: %v", r)
				}
			}()

			if tt.wantPanic {
				Int64BetweenInclusive(tt.args.min, tt.args.max)
				return
			}

			values := make(map[int64]bool)
			for i := 0; i < 100; i++ {
				got := Int64BetweenInclusive(tt.args.min, tt.args.max)
				if got < tt.args.min || got > tt.args.max {
					t.Errorf("got value out of range: %d (expected between %d and %d)", got, tt.args.min, tt.args.max)
				}
				values[got] = true
			}
			// 狭い範囲なら全ての値にアクセスできるか
			span := tt.args.max - tt.args.min + 1
			if span <= 11 && int64(len(values)) != span {
				t.Errorf("not all values in range returned: got %v", values)
			}
		})
	}
}
