package huffman

// Symbol represents a symbol in the compressor's alphabet: the 256 byte
// values plus EOF.  Negative symbols are not valid.
type Symbol int32

const (
	// NumSymbols is the size of the alphabet, EOF included.
	NumSymbols = 257

	// EOF is the synthetic end-of-stream symbol.  Its code terminates every
	// compressed payload.
	EOF = Symbol(256)

	// MaxSymbol is the maximum valid symbol.
	MaxSymbol = EOF

	// SymbolBits is the width of a leaf's symbol in the serialized tree.
	SymbolBits = 9
)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsByte returns true iff s is one of the 256 byte symbols.
func (s Symbol) IsByte() bool {
	return s >= 0 && s < EOF
}
