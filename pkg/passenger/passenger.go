package passenger

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument  = errors.New("invalid passenger argument")
	ErrInvalidOperation = errors.New("invalid passenger operation")
)

// Kind is the closed set of passenger categories the booking API accepts
type Kind int

const (
	Adult Kind = iota + 1
	Child
	Senior
	Disability1To3
	Disability4To6
)

var Kinds = []Kind{Adult, Child, Senior, Disability1To3, Disability4To6}

func (k Kind) Valid() bool {
	return k >= Adult && k <= Disability4To6
}

// Name is the display name used by the booking site
func (k Kind) Name() string {
	switch k {
	case Adult:
		return "어른/청소년"
	case Child:
		return "어린이"
	case Senior:
		return "경로"
	case Disability1To3:
		return "장애 1~3급"
	case Disability4To6:
		return "장애 4~6급"
	default:
		return ""
	}
}

// TypeCode is the psgTpCd value sent to the booking API
func (k Kind) TypeCode() string {
	switch k {
	case Adult:
		return "1"
	case Child:
		return "5"
	case Senior:
		return "4"
	case Disability1To3:
		return "2"
	case Disability4To6:
		return "3"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case Adult:
		return "adult"
	case Child:
		return "child"
	case Senior:
		return "senior"
	case Disability1To3:
		return "disability1to3"
	case Disability4To6:
		return "disability4to6"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func ParseKind(s string) (Kind, error) {
	normalised := strings.ToLower(strings.TrimSpace(s))
	for _, kind := range Kinds {
		if kind.String() == normalised {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown passenger type %q", ErrInvalidArgument, s)
}

type Passenger struct {
	Kind  Kind
	Count int
}

// One returns a single passenger of the given kind
func One(kind Kind) Passenger {
	return Passenger{Kind: kind, Count: 1}
}

func Of(kind Kind, count int) Passenger {
	return Passenger{Kind: kind, Count: count}
}

func (p Passenger) Name() string {
	return p.Kind.Name()
}

func (p Passenger) TypeCode() string {
	return p.Kind.TypeCode()
}

func (p Passenger) String() string {
	return fmt.Sprintf("%s %d명", p.Name(), p.Count)
}

// Merge adds two passengers of the same kind together
func Merge(a Passenger, b Passenger) (Passenger, error) {
	if !a.Kind.Valid() || !b.Kind.Valid() {
		return Passenger{}, fmt.Errorf("%w: cannot merge %s and %s", ErrInvalidArgument, a.Kind, b.Kind)
	}
	if a.Kind != b.Kind {
		return Passenger{}, fmt.Errorf("%w: cannot merge %s with %s", ErrInvalidOperation, a.Kind, b.Kind)
	}

	return Passenger{Kind: a.Kind, Count: a.Count + b.Count}, nil
}
