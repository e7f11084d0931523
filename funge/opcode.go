package funge

// Op is a decoded instruction class.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP      = Op(0)  // nop
	OP_RIGHT    = Op(1)  // right
	OP_LEFT     = Op(2)  // left
	OP_UP       = Op(3)  // up
	OP_DOWN     = Op(4)  // down
	OP_RANDOM   = Op(5)  // random
	OP_IF_H     = Op(6)  // if_h
	OP_IF_V     = Op(7)  // if_v
	OP_SKIP     = Op(8)  // skip
	OP_DIGIT    = Op(9)  // digit
	OP_ADD      = Op(10) // add
	OP_SUB      = Op(11) // sub
	OP_MUL      = Op(12) // mul
	OP_DIV      = Op(13) // div
	OP_MOD      = Op(14) // mod
	OP_NOT      = Op(15) // not
	OP_GT       = Op(16) // gt
	OP_DUP      = Op(17) // dup
	OP_SWAP     = Op(18) // swap
	OP_POP      = Op(19) // pop
	OP_STRING   = Op(20) // string
	OP_END      = Op(21) // end
	OP_OUT_NUM  = Op(22) // out_num
	OP_OUT_CHAR = Op(23) // out_char
	OP_PUT      = Op(24) // put
	OP_GET      = Op(25) // get
	OP_IN_NUM   = Op(26) // in_num
	OP_IN_CHAR  = Op(27) // in_char
)

var opMap = map[rune]Op{
	'>':  OP_RIGHT,
	'<':  OP_LEFT,
	'^':  OP_UP,
	'v':  OP_DOWN,
	'?':  OP_RANDOM,
	'_':  OP_IF_H,
	'|':  OP_IF_V,
	'#':  OP_SKIP,
	'+':  OP_ADD,
	'-':  OP_SUB,
	'*':  OP_MUL,
	'/':  OP_DIV,
	'%':  OP_MOD,
	'!':  OP_NOT,
	'`':  OP_GT,
	':':  OP_DUP,
	'\\': OP_SWAP,
	'$':  OP_POP,
	'"':  OP_STRING,
	'@':  OP_END,
	'.':  OP_OUT_NUM,
	',':  OP_OUT_CHAR,
	'p':  OP_PUT,
	'g':  OP_GET,
	'&':  OP_IN_NUM,
	'~':  OP_IN_CHAR,
}

// Decode returns the instruction class of a cell character.
// Unrecognized characters decode as OP_NOP.
func Decode(ch rune) Op {
	if ch >= '0' && ch <= '9' {
		return OP_DIGIT
	}

	op, ok := opMap[ch]
	if !ok {
		return OP_NOP
	}

	return op
}
