//go:build unit || e2e

package builder

import (
	"time"

	domclass "fitclass-server/internal/domain/class"
	reqdto "fitclass-server/internal/handler/dto/request"
	"fitclass-server/internal/usecase/commands"
	"fitclass-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClassBuilder struct {
	InstructorID uuid.UUID
	CenterID     uuid.UUID
	Name         string
	Description  string
	Category     domclass.Category
	Intensity    domclass.Intensity
	StartsAt     time.Time
	DurationMin  int
	MaxCapacity  int
	SeatBooking  bool
	CreatedAt    time.Time
}

func NewClassBuilder() *ClassBuilder {
	now := time.Now()
	return &ClassBuilder{
		InstructorID: uuid.New(),
		CenterID:     uuid.New(),
		Name:         "Morning Flow",
		Description:  "Vinyasa yoga to start the day",
		Category:     domclass.CategoryYoga,
		Intensity:    domclass.IntensityMedium,
		StartsAt:     now.Add(24 * time.Hour),
		DurationMin:  60,
		MaxCapacity:  10,
		SeatBooking:  false,
		CreatedAt:    now,
	}
}

// Build methods
func (b *ClassBuilder) BuildDomain() (*domclass.Instance, error) {
	return domclass.NewInstance(
		b.InstructorID, b.CenterID,
		b.Name, b.Description,
		b.Category, b.Intensity,
		b.StartsAt, b.DurationMin, b.MaxCapacity,
		b.SeatBooking, b.CreatedAt,
	)
}

func (b *ClassBuilder) BuildCreateRequestDTO() reqdto.CreateClassRequest {
	return reqdto.CreateClassRequest{
		InstructorID: b.InstructorID,
		CenterID:     b.CenterID,
		Name:         b.Name,
		Description:  b.Description,
		Category:     b.Category.String(),
		Intensity:    b.Intensity.String(),
		StartsAt:     b.StartsAt,
		DurationMin:  b.DurationMin,
		MaxCapacity:  b.MaxCapacity,
		SeatBooking:  b.SeatBooking,
	}
}

func (b *ClassBuilder) BuildCreateParams() commands.CreateClassParams {
	return commands.CreateClassParams{
		InstructorID: b.InstructorID,
		CenterID:     b.CenterID,
		Name:         b.Name,
		Description:  b.Description,
		Category:     b.Category,
		Intensity:    b.Intensity,
		StartsAt:     b.StartsAt,
		DurationMin:  b.DurationMin,
		MaxCapacity:  b.MaxCapacity,
		SeatBooking:  b.SeatBooking,
	}
}

func (b *ClassBuilder) BuildView() *queries.ClassView {
	return &queries.ClassView{
		ID:           uuid.New(),
		InstructorID: b.InstructorID,
		CenterID:     b.CenterID,
		Name:         b.Name,
		Description:  b.Description,
		Category:     b.Category.String(),
		Intensity:    b.Intensity.String(),
		StartsAt:     b.StartsAt,
		DurationMin:  b.DurationMin,
		MaxCapacity:  b.MaxCapacity,
		Active:       true,
		SeatBooking:  b.SeatBooking,
		Bookings:     []queries.BookingView{},
		Waitlist:     []uuid.UUID{},
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *ClassBuilder) BuildListItem() *queries.ClassListItem {
	return &queries.ClassListItem{
		ID:          uuid.New(),
		Name:        b.Name,
		Category:    b.Category.String(),
		Intensity:   b.Intensity.String(),
		StartsAt:    b.StartsAt,
		DurationMin: b.DurationMin,
		MaxCapacity: b.MaxCapacity,
		Active:      true,
	}
}

func (b *ClassBuilder) BuildResultView() *queries.ResultView {
	return &queries.ResultView{
		EventID:     uuid.New(),
		ClassID:     uuid.New(),
		UserID:      uuid.New(),
		Calories:    360,
		Watts:       3000,
		DurationMin: b.DurationMin,
		CompletedAt: b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ClassBuilder) WithName(name string) *ClassBuilder {
	b.Name = name
	return b
}

func (b *ClassBuilder) WithCategory(category domclass.Category) *ClassBuilder {
	b.Category = category
	return b
}

func (b *ClassBuilder) WithIntensity(intensity domclass.Intensity) *ClassBuilder {
	b.Intensity = intensity
	return b
}

func (b *ClassBuilder) WithDuration(minutes int) *ClassBuilder {
	b.DurationMin = minutes
	return b
}

func (b *ClassBuilder) WithCapacity(capacity int) *ClassBuilder {
	b.MaxCapacity = capacity
	return b
}

func (b *ClassBuilder) WithSeatBooking() *ClassBuilder {
	b.SeatBooking = true
	return b
}

func (b *ClassBuilder) AsSpinningRide() *ClassBuilder {
	b.Name = "Evening Ride"
	b.Category = domclass.CategorySpinning
	b.Intensity = domclass.IntensityHard
	b.DurationMin = 45
	b.SeatBooking = true
	return b
}
