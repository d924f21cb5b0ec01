package reservation

import "regexp"

const MaxIdentityLength = 128

var identityPattern = regexp.MustCompile(`^[A-Za-z0-9._:@-]+$`)

type Identity struct {
	value string
}

func NewIdentity(s string) (Identity, error) {
	if s == "" || len(s) > MaxIdentityLength || !identityPattern.MatchString(s) {
		return Identity{}, ErrInvalidIdentity
	}
	return Identity{value: s}, nil
}

func (i Identity) String() string { return i.value }

type Sequence int64

func NewSequence(v int64) (Sequence, error) {
	if v < 1 {
		return 0, ErrInvalidSequence
	}
	return Sequence(v), nil
}

func (s Sequence) Int64() int64 { return int64(s) }
