package seat

import "time"

// Seat is one unit of the allocatable resource. Once reserved it never returns
// to available; only a full administrative reset recreates it.
type Seat struct {
	id         int64
	status     Status
	holder     *string
	contact    *string
	reservedAt *time.Time
}

func NewAvailableSeat(id int64) (*Seat, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return &Seat{id: id, status: StatusAvailable}, nil
}

// Hydrate rebuilds a seat from persisted state without re-validating it.
func Hydrate(id int64, status Status, holder, contact *string, reservedAt *time.Time) *Seat {
	return &Seat{
		id:         id,
		status:     status,
		holder:     holder,
		contact:    contact,
		reservedAt: reservedAt,
	}
}

func (s *Seat) Reserve(h Holder, now time.Time) error {
	if s.status == StatusReserved {
		return ErrAlreadyReserved
	}

	name := h.Name()
	s.status = StatusReserved
	s.holder = &name
	s.contact = h.Contact()
	s.reservedAt = &now
	return nil
}

func (s *Seat) IsAvailable() bool { return s.status == StatusAvailable }

func (s *Seat) ID() int64              { return s.id }
func (s *Seat) Status() Status         { return s.status }
func (s *Seat) Holder() *string        { return s.holder }
func (s *Seat) Contact() *string       { return s.contact }
func (s *Seat) ReservedAt() *time.Time { return s.reservedAt }
