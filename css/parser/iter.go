package parser

// TokensIter is a linear iterator over a list of tokens,
// supporting backtracking via [TokensIter.Save] and [TokensIter.Restore].
type TokensIter struct {
	tokens []Token
	index  int
}

func NewIter(l []Token) *TokensIter { return &TokensIter{tokens: l} }

func (it *TokensIter) HasNext() bool { return it.index < len(it.tokens) }

// Next returns the next token, or nil if the iterator is exhausted.
func (it *TokensIter) Next() Token {
	if !it.HasNext() {
		return nil
	}
	token := it.tokens[it.index]
	it.index++
	return token
}

// NextSignificant returns the next token which is neither
// whitespace nor a comment, or nil.
func (it *TokensIter) NextSignificant() Token {
	for it.HasNext() {
		token := it.Next()
		switch token.Kind() {
		case KWhitespace, KComment:
		default:
			return token
		}
	}
	return nil
}

// PeekSignificant returns the token NextSignificant would return,
// without consuming it.
func (it *TokensIter) PeekSignificant() Token {
	save := it.index
	token := it.NextSignificant()
	it.index = save
	return token
}

// Exhausted reports whether only whitespace or comments remain.
func (it *TokensIter) Exhausted() bool { return it.PeekSignificant() == nil }

// Save returns the current position, to be restored with [TokensIter.Restore].
func (it *TokensIter) Save() int { return it.index }

// Restore rewinds the iterator to a position returned by [TokensIter.Save].
func (it *TokensIter) Restore(index int) { it.index = index }

// Position returns the position of the next significant token, or,
// if the iterator is exhausted, of the last token seen.
func (it *TokensIter) Position() Pos {
	if token := it.PeekSignificant(); token != nil {
		return token.Pos()
	}
	if L := len(it.tokens); L != 0 {
		return it.tokens[L-1].Pos()
	}
	return Pos{Line: 1, Column: 1}
}
