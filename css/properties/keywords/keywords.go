// Package keywords defines the closed keyword sets accepted by the
// supported properties. Each set is a compact enum whose zero value
// means "not a member", so that the New* functions double as
// membership tests.
package keywords

// Display controls the layout model of an element.
type Display uint8

const (
	DisplayFlex Display = iota + 1
	DisplayNone
)

func NewDisplay(s string) Display {
	switch s {
	case "flex":
		return DisplayFlex
	case "none":
		return DisplayNone
	}
	return 0
}

func (k Display) String() string {
	switch k {
	case DisplayFlex:
		return "flex"
	case DisplayNone:
		return "none"
	}
	return "<invalid display>"
}

// Direction sets the text and layout direction.
type Direction uint8

const (
	DirectionInherit Direction = iota + 1
	DirectionLeftToRight
	DirectionRightToLeft
)

func NewDirection(s string) Direction {
	switch s {
	case "inherit":
		return DirectionInherit
	case "ltr":
		return DirectionLeftToRight
	case "rtl":
		return DirectionRightToLeft
	}
	return 0
}

func (k Direction) String() string {
	switch k {
	case DirectionInherit:
		return "inherit"
	case DirectionLeftToRight:
		return "ltr"
	case DirectionRightToLeft:
		return "rtl"
	}
	return "<invalid direction>"
}

// PositionType selects relative or absolute positioning.
type PositionType uint8

const (
	PositionRelative PositionType = iota + 1
	PositionAbsolute
)

func NewPositionType(s string) PositionType {
	switch s {
	case "relative":
		return PositionRelative
	case "absolute":
		return PositionAbsolute
	}
	return 0
}

func (k PositionType) String() string {
	switch k {
	case PositionRelative:
		return "relative"
	case PositionAbsolute:
		return "absolute"
	}
	return "<invalid position>"
}

// Overflow controls whether content outside the box is shown.
type Overflow uint8

const (
	OverflowVisible Overflow = iota + 1
	OverflowHidden
)

func NewOverflow(s string) Overflow {
	switch s {
	case "visible":
		return OverflowVisible
	case "hidden":
		return OverflowHidden
	}
	return 0
}

func (k Overflow) String() string {
	switch k {
	case OverflowVisible:
		return "visible"
	case OverflowHidden:
		return "hidden"
	}
	return "<invalid overflow>"
}

// FlexDirection sets the main axis of a flex container.
type FlexDirection uint8

const (
	FlexDirectionRow FlexDirection = iota + 1
	FlexDirectionColumn
	FlexDirectionRowReverse
	FlexDirectionColumnReverse
)

func NewFlexDirection(s string) FlexDirection {
	switch s {
	case "row":
		return FlexDirectionRow
	case "column":
		return FlexDirectionColumn
	case "row-reverse":
		return FlexDirectionRowReverse
	case "column-reverse":
		return FlexDirectionColumnReverse
	}
	return 0
}

func (k FlexDirection) String() string {
	switch k {
	case FlexDirectionRow:
		return "row"
	case FlexDirectionColumn:
		return "column"
	case FlexDirectionRowReverse:
		return "row-reverse"
	case FlexDirectionColumnReverse:
		return "column-reverse"
	}
	return "<invalid flex-direction>"
}

// FlexWrap controls wrapping of flex lines.
type FlexWrap uint8

const (
	FlexNoWrap FlexWrap = iota + 1
	FlexWrapWrap
	FlexWrapReverse
)

func NewFlexWrap(s string) FlexWrap {
	switch s {
	case "nowrap":
		return FlexNoWrap
	case "wrap":
		return FlexWrapWrap
	case "wrap-reverse":
		return FlexWrapReverse
	}
	return 0
}

func (k FlexWrap) String() string {
	switch k {
	case FlexNoWrap:
		return "nowrap"
	case FlexWrapWrap:
		return "wrap"
	case FlexWrapReverse:
		return "wrap-reverse"
	}
	return "<invalid flex-wrap>"
}

// AlignItems sets the default cross axis alignment of flex items.
type AlignItems uint8

const (
	ItemsFlexStart AlignItems = iota + 1
	ItemsFlexEnd
	ItemsCenter
	ItemsBaseline
	ItemsStretch
)

func NewAlignItems(s string) AlignItems {
	switch s {
	case "flex-start":
		return ItemsFlexStart
	case "flex-end":
		return ItemsFlexEnd
	case "center":
		return ItemsCenter
	case "baseline":
		return ItemsBaseline
	case "stretch":
		return ItemsStretch
	}
	return 0
}

func (k AlignItems) String() string {
	switch k {
	case ItemsFlexStart:
		return "flex-start"
	case ItemsFlexEnd:
		return "flex-end"
	case ItemsCenter:
		return "center"
	case ItemsBaseline:
		return "baseline"
	case ItemsStretch:
		return "stretch"
	}
	return "<invalid align-items>"
}

// AlignSelf overrides AlignItems for one item, "auto" deferring to
// the container.
type AlignSelf uint8

const (
	SelfAuto AlignSelf = iota + 1
	SelfFlexStart
	SelfFlexEnd
	SelfCenter
	SelfBaseline
	SelfStretch
)

func NewAlignSelf(s string) AlignSelf {
	switch s {
	case "auto":
		return SelfAuto
	case "flex-start":
		return SelfFlexStart
	case "flex-end":
		return SelfFlexEnd
	case "center":
		return SelfCenter
	case "baseline":
		return SelfBaseline
	case "stretch":
		return SelfStretch
	}
	return 0
}

func (k AlignSelf) String() string {
	switch k {
	case SelfAuto:
		return "auto"
	case SelfFlexStart:
		return "flex-start"
	case SelfFlexEnd:
		return "flex-end"
	case SelfCenter:
		return "center"
	case SelfBaseline:
		return "baseline"
	case SelfStretch:
		return "stretch"
	}
	return "<invalid align-self>"
}

// AlignContent aligns the flex lines themselves.
type AlignContent uint8

const (
	ContentFlexStart AlignContent = iota + 1
	ContentFlexEnd
	ContentCenter
	ContentStretch
	ContentSpaceBetween
	ContentSpaceAround
)

func NewAlignContent(s string) AlignContent {
	switch s {
	case "flex-start":
		return ContentFlexStart
	case "flex-end":
		return ContentFlexEnd
	case "center":
		return ContentCenter
	case "stretch":
		return ContentStretch
	case "space-between":
		return ContentSpaceBetween
	case "space-around":
		return ContentSpaceAround
	}
	return 0
}

func (k AlignContent) String() string {
	switch k {
	case ContentFlexStart:
		return "flex-start"
	case ContentFlexEnd:
		return "flex-end"
	case ContentCenter:
		return "center"
	case ContentStretch:
		return "stretch"
	case ContentSpaceBetween:
		return "space-between"
	case ContentSpaceAround:
		return "space-around"
	}
	return "<invalid align-content>"
}

// JustifyContent distributes the items along the main axis.
type JustifyContent uint8

const (
	JustifyFlexStart JustifyContent = iota + 1
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

func NewJustifyContent(s string) JustifyContent {
	switch s {
	case "flex-start":
		return JustifyFlexStart
	case "flex-end":
		return JustifyFlexEnd
	case "center":
		return JustifyCenter
	case "space-between":
		return JustifySpaceBetween
	case "space-around":
		return JustifySpaceAround
	case "space-evenly":
		return JustifySpaceEvenly
	}
	return 0
}

func (k JustifyContent) String() string {
	switch k {
	case JustifyFlexStart:
		return "flex-start"
	case JustifyFlexEnd:
		return "flex-end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	}
	return "<invalid justify-content>"
}
