package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownMark = errors.New("unknown mark")

// Mark is the content of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

const (
	emptyText = ""
	markXText = "x"
	markOText = "o"
)

// ParseMark - converts the persisted text form of a mark.
func ParseMark(text string) (Mark, error) {
	switch text {
	case emptyText:
		return Empty, nil
	case markXText:
		return MarkX, nil
	case markOText:
		return MarkO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, text)
	}
}

func (that Mark) String() string {
	switch that {
	case MarkX:
		return markXText
	case MarkO:
		return markOText
	default:
		return emptyText
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}
