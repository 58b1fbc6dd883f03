package property

import (
	"strings"
	"unicode/utf8"

	"stayhub/internal/pkg/errs"
)

const (
	MaxNameLength     = 150
	MaxLocationLength = 255
	MaxAmenities      = 50
	MaxAmenityLength  = 64
)

var (
	ErrEmptyName         = errs.Mark(errs.New("property name cannot be empty"), errs.ErrValidation)
	ErrNameTooLong       = errs.Mark(errs.New("property name is too long (max 150 characters)"), errs.ErrValidation)
	ErrEmptyDescription  = errs.Mark(errs.New("property description cannot be empty"), errs.ErrValidation)
	ErrEmptyLocation     = errs.Mark(errs.New("property location cannot be empty"), errs.ErrValidation)
	ErrLocationTooLong   = errs.Mark(errs.New("property location is too long (max 255 characters)"), errs.ErrValidation)
	ErrNegativeRoomCount = errs.Mark(errs.New("bedrooms and bathrooms cannot be negative"), errs.ErrValidation)
	ErrInvalidMaxGuests  = errs.Mark(errs.New("max guests must be at least 1"), errs.ErrValidation)
	ErrInvalidAmenity    = errs.Mark(errs.New("amenities must be short and cannot contain commas"), errs.ErrValidation)
	ErrTooManyAmenities  = errs.Mark(errs.New("too many amenities"), errs.ErrValidation)
)

type Name struct{ value string }

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Location struct{ value string }

func NewLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}, ErrEmptyLocation
	}
	if utf8.RuneCountInString(s) > MaxLocationLength {
		return Location{}, ErrLocationTooLong
	}
	return Location{value: s}, nil
}

func (l Location) String() string { return l.value }

func NewDescription(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyDescription
	}
	return s, nil
}

// Capacity groups the room and guest counts.
type Capacity struct {
	bedrooms  int
	bathrooms int
	maxGuests int
}

func NewCapacity(bedrooms, bathrooms, maxGuests int) (Capacity, error) {
	if bedrooms < 0 || bathrooms < 0 {
		return Capacity{}, ErrNegativeRoomCount
	}
	if maxGuests < 1 {
		return Capacity{}, ErrInvalidMaxGuests
	}
	return Capacity{bedrooms: bedrooms, bathrooms: bathrooms, maxGuests: maxGuests}, nil
}

// DefaultCapacity is one bedroom, one bathroom, one guest.
func DefaultCapacity() Capacity {
	return Capacity{bedrooms: 1, bathrooms: 1, maxGuests: 1}
}

func (c Capacity) Bedrooms() int  { return c.bedrooms }
func (c Capacity) Bathrooms() int { return c.bathrooms }
func (c Capacity) MaxGuests() int { return c.maxGuests }

func (c Capacity) Fits(guests int) bool { return guests >= 1 && guests <= c.maxGuests }

// Amenities are stored as a single comma separated column.
type Amenities struct{ items []string }

func NewAmenities(items []string) (Amenities, error) {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		if strings.Contains(it, ",") || utf8.RuneCountInString(it) > MaxAmenityLength {
			return Amenities{}, ErrInvalidAmenity
		}
		key := strings.ToLower(it)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	if len(out) > MaxAmenities {
		return Amenities{}, ErrTooManyAmenities
	}
	return Amenities{items: out}, nil
}

// ParseAmenities splits the stored column form. Malformed input is tolerated.
func ParseAmenities(stored string) Amenities {
	var out []string
	for _, it := range strings.Split(stored, ",") {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return Amenities{items: out}
}

func (a Amenities) Items() []string {
	out := make([]string, len(a.items))
	copy(out, a.items)
	return out
}

func (a Amenities) Stored() string { return strings.Join(a.items, ",") }
