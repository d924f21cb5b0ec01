package seat

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxHolderNameLength = 100
	MaxContactLength    = 32
)

type Holder struct {
	name    string
	contact *string
}

func NewHolder(name string, contact *string) (Holder, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return Holder{}, ErrEmptyHolderName
	}
	if utf8.RuneCountInString(n) > MaxHolderNameLength {
		return Holder{}, ErrHolderTooLong
	}

	var c *string
	if contact != nil {
		t := strings.TrimSpace(*contact)
		if utf8.RuneCountInString(t) > MaxContactLength {
			return Holder{}, ErrContactTooLong
		}
		if t != "" {
			c = &t
		}
	}

	return Holder{name: n, contact: c}, nil
}

func (h Holder) Name() string     { return h.name }
func (h Holder) Contact() *string { return h.contact }

func ValidateID(id int64) error {
	if id < 1 {
		return ErrInvalidID
	}
	return nil
}
