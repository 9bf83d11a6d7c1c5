package term

// Kind identifies the shape of a term node.
type Kind uint8

const (
	// KindIntLit is an integer literal leaf.
	KindIntLit Kind = iota
	// KindBoolLit is a boolean literal leaf.
	KindBoolLit
	// KindVar is a named free variable leaf.
	KindVar
	KindAdd
	KindSub
	KindMul
	KindGt
	KindLt
	KindEq
	KindAnd
	KindOr
	KindXor
)

// Sort is the semantic value category a term evaluates to.
type Sort uint8

const (
	// SortInt marks arithmetic-valued terms.
	SortInt Sort = iota
	// SortBool marks boolean-valued terms.
	SortBool
)

func (s Sort) String() string {
	switch s {
	case SortInt:
		return "Int"
	case SortBool:
		return "Bool"
	}
	return "?"
}

// opInfo carries the static signature of an operator kind.
type opInfo struct {
	symbol  string
	arity   int
	operand Sort
	result  Sort
}

var opTable = map[Kind]opInfo{
	KindAdd: {"+", 2, SortInt, SortInt},
	KindSub: {"-", 2, SortInt, SortInt},
	KindMul: {"*", 2, SortInt, SortInt},
	KindGt:  {">", 2, SortInt, SortBool},
	KindLt:  {"<", 2, SortInt, SortBool},
	KindEq:  {"=", 2, SortInt, SortBool},
	KindAnd: {"and", 2, SortBool, SortBool},
	KindOr:  {"or", 2, SortBool, SortBool},
	KindXor: {"xor", 2, SortBool, SortBool},
}

// IsOperator reports whether k is an operator kind (not a leaf).
func (k Kind) IsOperator() bool {
	_, ok := opTable[k]
	return ok
}

// Arity returns the operand count an operator kind requires, 0 for leaves.
func (k Kind) Arity() int {
	return opTable[k].arity
}

// OperandSort returns the sort an operator kind expects from every child.
func (k Kind) OperandSort() Sort {
	return opTable[k].operand
}

// ResultSort returns the sort an operator application evaluates to.
func (k Kind) ResultSort() Sort {
	return opTable[k].result
}

// Symbol returns the SMT-LIB rendering of an operator kind.
func (k Kind) Symbol() string {
	return opTable[k].symbol
}

func (k Kind) String() string {
	switch k {
	case KindIntLit:
		return "IntLit"
	case KindBoolLit:
		return "BoolLit"
	case KindVar:
		return "Var"
	}
	if info, ok := opTable[k]; ok {
		return info.symbol
	}
	return "UNKNOWN"
}

// ArithmeticOps are the operator kinds closed over SortInt.
var ArithmeticOps = []Kind{KindAdd, KindSub, KindMul}

// ComparisonOps consume SortInt operands and yield SortBool.
var ComparisonOps = []Kind{KindGt, KindLt, KindEq}

// ConnectiveOps are the boolean connectives.
var ConnectiveOps = []Kind{KindAnd, KindOr, KindXor}
