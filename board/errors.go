package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFEN is wrapped by every FEN decoding error.
	ErrInvalidFEN = errors.New("invalid fen")

	// ErrMalformedInput is a wrong field count, rank count or rank width.
	ErrMalformedInput = fmt.Errorf("%w: malformed input", ErrInvalidFEN)

	// ErrInvalidCharacter is an unknown piece, castling or empty-count symbol.
	ErrInvalidCharacter = fmt.Errorf("%w: invalid character", ErrInvalidFEN)

	// ErrInvalidColor is an active color other than "w" or "b".
	ErrInvalidColor = fmt.Errorf("%w: invalid color", ErrInvalidFEN)

	// ErrInvalidCoordinate is an en-passant target outside a1-h8.
	ErrInvalidCoordinate = fmt.Errorf("%w: invalid coordinate", ErrInvalidFEN)

	// ErrInvalidNumber is a clock that is not a 16-bit unsigned integer.
	ErrInvalidNumber = fmt.Errorf("%w: invalid number", ErrInvalidFEN)
)
