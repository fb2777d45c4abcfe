package toast

import "toastkit/internal/anim"

// Kind is the closed set of built-in toast types plus one open variant.
type Kind uint8

const (
	KindNormal Kind = iota
	KindSuccess
	KindDanger
	KindWarning
	KindCustom
)

// Type is a toast type tag. Built-in tags map to their Kind; any other tag is KindCustom.
// The zero Type is normal.
type Type struct {
	kind Kind
	tag  string
}

// Built-in types.
var (
	TypeNormal  = Type{kind: KindNormal, tag: "normal"}
	TypeSuccess = Type{kind: KindSuccess, tag: "success"}
	TypeDanger  = Type{kind: KindDanger, tag: "danger"}
	TypeWarning = Type{kind: KindWarning, tag: "warning"}
)

// ParseType maps a tag to its Type. Unknown tags become custom types.
func ParseType(tag string) Type {
	switch tag {
	case "", TypeNormal.tag:
		return TypeNormal
	case TypeSuccess.tag:
		return TypeSuccess
	case TypeDanger.tag:
		return TypeDanger
	case TypeWarning.tag:
		return TypeWarning
	default:
		return Type{kind: KindCustom, tag: tag}
	}
}

// Custom returns the type for tag. Built-in tags still resolve to their built-in type.
func Custom(tag string) Type {
	return ParseType(tag)
}

// Kind returns the type's kind.
func (t Type) Kind() Kind { return t.kind }

// String returns the tag used to key custom renderers.
func (t Type) String() string {
	if t.tag == "" {
		return TypeNormal.tag
	}
	return t.tag
}

// Placement is where the toast enters from.
type Placement int

const (
	PlacementBottom Placement = iota
	PlacementTop
)

func (p Placement) String() string {
	if p == PlacementTop {
		return "top"
	}
	return "bottom"
}

// ParsePlacement maps "top" and "bottom"; anything else is bottom.
func ParsePlacement(s string) Placement {
	if s == "top" {
		return PlacementTop
	}
	return PlacementBottom
}

// AnimationType selects the entrance/exit animation.
type AnimationType int

const (
	AnimationSlideIn AnimationType = iota
	AnimationZoomIn
)

func (a AnimationType) String() string {
	if a == AnimationZoomIn {
		return "zoom-in"
	}
	return "slide-in"
}

// ParseAnimationType maps "slide-in" and "zoom-in"; anything else is slide-in.
func ParseAnimationType(s string) AnimationType {
	if s == "zoom-in" {
		return AnimationZoomIn
	}
	return AnimationSlideIn
}

// Phase is the lifecycle state of a toast.
//
// Entering -> Visible -> (ClosingByTimer | ClosingByDrag) -> Closed.
// Dragging is a sub-state of Visible (and of Entering) reported by Toast.Dragging.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEntering
	PhaseVisible
	PhaseClosingByTimer
	PhaseClosingByDrag
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseClosingByTimer:
		return "closing-by-timer"
	case PhaseClosingByDrag:
		return "closing-by-drag"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Reason tells which path closed a toast.
type Reason int

const (
	ReasonTimeout Reason = iota
	ReasonExplicit
	ReasonSwipeRight
	ReasonSwipeLeft
)

func (r Reason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonExplicit:
		return "explicit"
	case ReasonSwipeRight:
		return "swipe-right"
	case ReasonSwipeLeft:
		return "swipe-left"
	default:
		return "unknown"
	}
}

// ClosedMsg is emitted once when a toast closes. The owner should unmount and drop it.
type ClosedMsg struct {
	ID     string
	Reason Reason
}

// PointerKind is the kind of a pointer event.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
)

// PointerMsg is a pointer event addressed to one toast, in logical points.
type PointerMsg struct {
	ID   string
	Kind PointerKind
	Pos  anim.Vec
}

// Transform is the composed visual state read by renderers.
type Transform struct {
	// Offset is the entrance offset plus the drag offset, in points.
	Offset  anim.Vec
	Opacity float64
	Scale   float64
}
