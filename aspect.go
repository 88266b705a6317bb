package svgdom

import (
	"math"
	"regexp"
	"strings"
)

// Align is the alignment of a preserveAspectRatio value.
type Align int

// see Align
const (
	AlignUnknown Align = iota
	AlignNone
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignNames = map[Align]string{
	AlignNone:     "none",
	AlignXMinYMin: "xMinYMin",
	AlignXMidYMin: "xMidYMin",
	AlignXMaxYMin: "xMaxYMin",
	AlignXMinYMid: "xMinYMid",
	AlignXMidYMid: "xMidYMid",
	AlignXMaxYMid: "xMaxYMid",
	AlignXMinYMax: "xMinYMax",
	AlignXMidYMax: "xMidYMax",
	AlignXMaxYMax: "xMaxYMax",
}

func (a Align) String() string {
	if name, ok := alignNames[a]; ok {
		return name
	}
	return "unknown"
}

// fractions returns where on each axis the viewBox is aligned: 0 for min, 0.5 for mid and 1 for max.
func (a Align) fractions() (float64, float64) {
	if a < AlignXMinYMin || AlignXMaxYMax < a {
		return 0.5, 0.5
	}
	i := int(a - AlignXMinYMin)
	return float64(i%3) / 2.0, float64(i/3) / 2.0
}

// MeetOrSlice is the scaling policy of a preserveAspectRatio value.
type MeetOrSlice int

// see MeetOrSlice
const (
	MeetOrSliceUnknown MeetOrSlice = iota
	Meet
	Slice
)

func (m MeetOrSlice) String() string {
	switch m {
	case Meet:
		return "meet"
	case Slice:
		return "slice"
	}
	return "unknown"
}

// PreserveAspectRatio describes how a viewBox is fitted into a viewport.
type PreserveAspectRatio struct {
	Align       Align
	MeetOrSlice MeetOrSlice

	// IsDefaultAlign is set when the alignment was absent or not recognized.
	IsDefaultAlign bool
}

// DefaultAspectRatio is xMidYMid meet.
var DefaultAspectRatio = PreserveAspectRatio{AlignXMidYMid, Meet, true}

var aspectRatioGrammar = regexp.MustCompile(`^(?P<align>[A-Za-z]+)\s*(?P<meet>[A-Za-z]*)$`)

// ParsePreserveAspectRatio parses "[defer] <align> [meet|slice]". Missing or unrecognized parts take their
// defaults xMidYMid and meet.
func ParsePreserveAspectRatio(s string) PreserveAspectRatio {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "defer"); ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\r') {
		s = strings.TrimSpace(rest)
	}

	par := DefaultAspectRatio
	m := aspectRatioGrammar.FindStringSubmatch(s)
	if m == nil {
		return par
	}
	for a, name := range alignNames {
		if name == m[1] {
			par.Align = a
			par.IsDefaultAlign = false
			break
		}
	}
	switch m[2] {
	case "slice":
		par.MeetOrSlice = Slice
	}
	return par
}

func (par PreserveAspectRatio) String() string {
	align := par.Align
	if align == AlignUnknown {
		align = AlignXMidYMid
	}
	if par.MeetOrSlice == Slice {
		return align.String() + " slice"
	}
	return align.String()
}

// FitToViewBox returns the translation and scale that map viewBox onto rect. Empty rectangles give the
// identity, and non-finite components are replaced by those of the identity.
func (par PreserveAspectRatio) FitToViewBox(viewBox, rect Rect) (tx, ty, sx, sy float64) {
	if viewBox.IsEmpty() || rect.IsEmpty() {
		return 0.0, 0.0, 1.0, 1.0
	}
	sx = rect.Width / viewBox.Width
	sy = rect.Height / viewBox.Height
	if par.Align == AlignNone {
		tx = -viewBox.X * sx
		ty = -viewBox.Y * sy
	} else {
		if par.MeetOrSlice == Slice {
			sx = math.Max(sx, sy)
		} else {
			sx = math.Min(sx, sy)
		}
		sy = sx

		fx, fy := par.Align.fractions()
		tx = (rect.X + fx*rect.Width) - sx*(viewBox.X+fx*viewBox.Width)
		ty = (rect.Y + fy*rect.Height) - sy*(viewBox.Y+fy*viewBox.Height)
	}

	if !IsValid(tx) {
		tx = 0.0
	}
	if !IsValid(ty) {
		ty = 0.0
	}
	if !IsValid(sx) {
		sx = 1.0
	}
	if !IsValid(sy) {
		sy = 1.0
	}
	return tx, ty, sx, sy
}

// ViewBoxTransform returns the matrix that maps viewBox onto rect.
func (par PreserveAspectRatio) ViewBoxTransform(viewBox, rect Rect) Matrix2D {
	tx, ty, sx, sy := par.FitToViewBox(viewBox, rect)
	return Matrix2D{sx, 0.0, 0.0, sy, tx, ty}
}
