package class

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errors.New("class name is empty")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidIntensity    = errors.New("invalid intensity")
	ErrInvalidCapacity     = errors.New("max capacity cannot be negative")
	ErrInvalidDuration     = errors.New("duration must be positive")
	ErrClassInactive       = errors.New("class is no longer active")
	ErrAlreadyBooked       = errors.New("user already booked")
	ErrAlreadyWaitlisted   = errors.New("user already on waitlist")
	ErrSeatBookingDisabled = errors.New("seat booking is disabled for this class")
	ErrSeatOutOfRange      = errors.New("seat number out of range")
	ErrSeatTaken           = errors.New("seat already taken")
	ErrCapacityExceeded    = errors.New("booking list exceeds max capacity")
	ErrUserNotFound        = errors.New("user has neither a booking nor a waitlist entry")
)

// Instance is one scheduled occurrence of a class. It owns the full
// capacity state (booking list, waitlist, seat map) and is the only place
// those three are mutated, always together within a single call so the
// caller can persist the result as one write.
type Instance struct {
	id           uuid.UUID
	instructorID uuid.UUID
	centerID     uuid.UUID
	name         string
	description  string
	category     Category
	intensity    Intensity
	startsAt     time.Time
	durationMin  int
	maxCapacity  int
	active       bool
	seatBooking  bool
	bookings     []Booking
	waitlist     []uuid.UUID
	seatMap      []bool
	version      int64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewInstance creates an active class. The seat map is allocated only when
// seat booking is enabled and its length is fixed to maxCapacity.
func NewInstance(
	instructorID, centerID uuid.UUID,
	name, description string,
	category Category,
	intensity Intensity,
	startsAt time.Time,
	durationMin, maxCapacity int,
	seatBooking bool,
	now time.Time,
) (*Instance, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if !intensity.IsValid() {
		return nil, ErrInvalidIntensity
	}
	if maxCapacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	var seatMap []bool
	if seatBooking {
		seatMap = make([]bool, maxCapacity)
	}

	return &Instance{
		id:           uuid.New(),
		instructorID: instructorID,
		centerID:     centerID,
		name:         strings.TrimSpace(name),
		description:  description,
		category:     category,
		intensity:    intensity,
		startsAt:     startsAt,
		durationMin:  durationMin,
		maxCapacity:  maxCapacity,
		active:       true,
		seatBooking:  seatBooking,
		seatMap:      seatMap,
		version:      0,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructInstance rebuilds an Instance from its persisted state.
func ReconstructInstance(
	id, instructorID, centerID uuid.UUID,
	name, description string,
	category Category,
	intensity Intensity,
	startsAt time.Time,
	durationMin, maxCapacity int,
	active, seatBooking bool,
	bookings []Booking,
	waitlist []uuid.UUID,
	seatMap []bool,
	version int64,
	createdAt, updatedAt time.Time,
) *Instance {
	return &Instance{
		id:           id,
		instructorID: instructorID,
		centerID:     centerID,
		name:         name,
		description:  description,
		category:     category,
		intensity:    intensity,
		startsAt:     startsAt,
		durationMin:  durationMin,
		maxCapacity:  maxCapacity,
		active:       active,
		seatBooking:  seatBooking,
		bookings:     bookings,
		waitlist:     waitlist,
		seatMap:      seatMap,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Book reserves a slot without an explicit seat choice. A full class
// falls through to the waitlist. On seat-tracked classes the lowest free
// seat is assigned so the seat map stays in lockstep with the booking list.
func (c *Instance) Book(userID uuid.UUID, now time.Time) (BookOutcome, error) {
	if !c.active {
		return "", ErrClassInactive
	}
	if c.isBooked(userID) {
		return "", ErrAlreadyBooked
	}
	if c.isFull() {
		if err := c.JoinWaitlist(userID); err != nil {
			return "", err
		}
		return OutcomeWaitlisted, nil
	}
	if c.isWaitlisted(userID) {
		return "", ErrAlreadyWaitlisted
	}

	seat := NoSeat
	if c.seatBooking {
		free, ok := c.lowestFreeSeat()
		if !ok {
			return "", ErrCapacityExceeded
		}
		seat = free
	}
	if err := c.appendBooking(userID, seat, now); err != nil {
		return "", err
	}
	return OutcomeBooked, nil
}

// BookSeat reserves a specific seat. A full class falls through to the
// waitlist; the requested seat is not held for the waitlisted user.
func (c *Instance) BookSeat(userID uuid.UUID, seat int, now time.Time) (BookOutcome, error) {
	if !c.active {
		return "", ErrClassInactive
	}
	if !c.seatBooking {
		return "", ErrSeatBookingDisabled
	}
	if seat < 0 || seat >= len(c.seatMap) {
		return "", ErrSeatOutOfRange
	}
	if c.isBooked(userID) {
		return "", ErrAlreadyBooked
	}
	if c.seatMap[seat] {
		return "", ErrSeatTaken
	}
	if c.isFull() {
		if err := c.JoinWaitlist(userID); err != nil {
			return "", err
		}
		return OutcomeWaitlisted, nil
	}
	if c.isWaitlisted(userID) {
		return "", ErrAlreadyWaitlisted
	}

	if err := c.appendBooking(userID, seat, now); err != nil {
		return "", err
	}
	return OutcomeBooked, nil
}

// JoinWaitlist appends the user to the end of the FIFO waitlist.
func (c *Instance) JoinWaitlist(userID uuid.UUID) error {
	if !c.active {
		return ErrClassInactive
	}
	if c.isWaitlisted(userID) {
		return ErrAlreadyWaitlisted
	}
	if c.isBooked(userID) {
		return ErrAlreadyBooked
	}
	c.waitlist = append(c.waitlist, userID)
	return nil
}

// Cancel removes the user's booking or waitlist entry. When a booked slot
// is vacated and the waitlist is non-empty, the head of the waitlist is
// promoted into exactly that slot, inheriting the vacated seat on
// seat-tracked classes.
func (c *Instance) Cancel(userID uuid.UUID, now time.Time) (CancelOutcome, error) {
	for i, b := range c.bookings {
		if b.UserID != userID {
			continue
		}
		c.bookings = append(c.bookings[:i], c.bookings[i+1:]...)
		if c.seatBooking {
			c.seatMap[b.SeatNumber] = false
		}

		if len(c.waitlist) == 0 {
			return CancelOutcome{}, nil
		}

		promoted := c.waitlist[0]
		c.waitlist = c.waitlist[1:]
		seat := NoSeat
		if c.seatBooking {
			seat = b.SeatNumber
		}
		if err := c.appendBooking(promoted, seat, now); err != nil {
			return CancelOutcome{}, err
		}
		return CancelOutcome{PromotedUser: &promoted}, nil
	}

	for i, id := range c.waitlist {
		if id == userID {
			c.waitlist = append(c.waitlist[:i], c.waitlist[i+1:]...)
			return CancelOutcome{FromWaitlist: true}, nil
		}
	}

	return CancelOutcome{}, ErrUserNotFound
}

// Finish deactivates the class. Repeated calls keep it inactive; a class
// is never reactivated.
func (c *Instance) Finish() {
	c.active = false
}

func (c *Instance) appendBooking(userID uuid.UUID, seat int, now time.Time) error {
	if len(c.bookings) >= c.maxCapacity {
		return ErrCapacityExceeded
	}
	c.bookings = append(c.bookings, Booking{UserID: userID, SeatNumber: seat, BookedAt: now})
	if c.seatBooking {
		c.seatMap[seat] = true
	}
	c.updatedAt = now
	return nil
}

func (c *Instance) isBooked(userID uuid.UUID) bool {
	for _, b := range c.bookings {
		if b.UserID == userID {
			return true
		}
	}
	return false
}

func (c *Instance) isWaitlisted(userID uuid.UUID) bool {
	for _, id := range c.waitlist {
		if id == userID {
			return true
		}
	}
	return false
}

func (c *Instance) isFull() bool {
	return len(c.bookings) >= c.maxCapacity
}

func (c *Instance) lowestFreeSeat() (int, bool) {
	for i, taken := range c.seatMap {
		if !taken {
			return i, true
		}
	}
	return 0, false
}

func (c *Instance) ID() uuid.UUID           { return c.id }
func (c *Instance) InstructorID() uuid.UUID { return c.instructorID }
func (c *Instance) CenterID() uuid.UUID     { return c.centerID }
func (c *Instance) Name() string            { return c.name }
func (c *Instance) Description() string     { return c.description }
func (c *Instance) Category() Category      { return c.category }
func (c *Instance) Intensity() Intensity    { return c.intensity }
func (c *Instance) StartsAt() time.Time     { return c.startsAt }
func (c *Instance) DurationMin() int        { return c.durationMin }
func (c *Instance) MaxCapacity() int        { return c.maxCapacity }
func (c *Instance) IsActive() bool          { return c.active }
func (c *Instance) SeatBookingEnabled() bool {
	return c.seatBooking
}
func (c *Instance) Version() int64       { return c.version }
func (c *Instance) CreatedAt() time.Time { return c.createdAt }
func (c *Instance) UpdatedAt() time.Time { return c.updatedAt }

// Bookings returns a copy of the booking list in booking order.
func (c *Instance) Bookings() []Booking {
	out := make([]Booking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

// Waitlist returns a copy of the waitlist in FIFO order.
func (c *Instance) Waitlist() []uuid.UUID {
	out := make([]uuid.UUID, len(c.waitlist))
	copy(out, c.waitlist)
	return out
}

// SeatMap returns a copy of the seat occupancy map, or nil when seat
// booking is disabled.
func (c *Instance) SeatMap() []bool {
	if c.seatMap == nil {
		return nil
	}
	out := make([]bool, len(c.seatMap))
	copy(out, c.seatMap)
	return out
}
