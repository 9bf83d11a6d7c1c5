package term

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		term *Term
		want string
	}{
		{
			name: "int literal",
			term: Int(42),
			want: "42",
		},
		{
			name: "negative int literal",
			term: Int(-100),
			want: "-100",
		},
		{
			name: "bool literals",
			term: Op(KindAnd, Bool(true), Bool(false)),
			want: "(and true false)",
		},
		{
			name: "arithmetic",
			term: Op(KindAdd, Int(1), Op(KindMul, Int(2), Int(-3))),
			want: "(+ 1 (* 2 -3))",
		},
		{
			name: "comparison",
			term: Op(KindGt, Op(KindSub, Int(5), Int(7)), Int(0)),
			want: "(> (- 5 7) 0)",
		},
		{
			name: "connective over comparisons",
			term: Op(KindXor, Op(KindEq, Int(1), Int(1)), Op(KindLt, Int(2), Int(3))),
			want: "(xor (= 1 1) (< 2 3))",
		},
		{
			name: "variable",
			term: Op(KindEq, Var("x"), Int(9)),
			want: "(= x 9)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.term.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortOf(t *testing.T) {
	tests := []struct {
		name string
		term *Term
		want Sort
	}{
		{"int literal", Int(0), SortInt},
		{"bool literal", Bool(true), SortBool},
		{"variable", Var("x"), SortInt},
		{"arithmetic op", Op(KindMul, Int(1), Int(2)), SortInt},
		{"comparison op", Op(KindLt, Int(1), Int(2)), SortBool},
		{"connective op", Op(KindOr, Bool(true), Bool(false)), SortBool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SortOf(tt.term); got != tt.want {
				t.Errorf("SortOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	valid := []*Term{
		Int(7),
		Bool(false),
		Op(KindAdd, Int(1), Int(2)),
		Op(KindAnd, Op(KindGt, Int(1), Int(0)), Bool(true)),
		Op(KindEq, Op(KindMul, Int(3), Int(4)), Var("x")),
	}
	for _, tm := range valid {
		if err := Check(tm); err != nil {
			t.Errorf("Check(%s) = %v, want nil", tm, err)
		}
	}

	invalid := []struct {
		name string
		term *Term
	}{
		{"bool under arithmetic", Op(KindAdd, Bool(true), Int(1))},
		{"bool under comparison", Op(KindGt, Bool(true), Bool(false))},
		{"int under connective", Op(KindAnd, Int(1), Int(0))},
		{"wrong arity", &Term{Kind: KindAdd, Args: []*Term{Int(1)}}},
		{"nil child", &Term{Kind: KindOr, Args: []*Term{Bool(true), nil}}},
		{"nested violation", Op(KindOr, Bool(true), Op(KindAnd, Int(1), Bool(false)))},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if err := Check(tt.term); err == nil {
				t.Errorf("Check(%s) = nil, want error", tt.term)
			}
		})
	}
}

func TestDepthAndSize(t *testing.T) {
	leaf := Int(1)
	if d := Depth(leaf); d != 1 {
		t.Errorf("Depth(leaf) = %d, want 1", d)
	}
	deep := Op(KindAdd, Op(KindSub, Int(1), Int(2)), Int(3))
	if d := Depth(deep); d != 3 {
		t.Errorf("Depth = %d, want 3", d)
	}
	if n := Size(deep); n != 5 {
		t.Errorf("Size = %d, want 5", n)
	}
}

func TestVars(t *testing.T) {
	tm := Op(KindAnd,
		Op(KindGt, Var("x"), Int(0)),
		Op(KindEq, Var("y"), Var("x")))
	got := Vars(tm, nil)
	want := []string{"x", "y", "x"}
	if len(got) != len(want) {
		t.Fatalf("Vars = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vars[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
