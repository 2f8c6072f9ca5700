package layout

import (
	"fmt"
	"strings"
)

// Direction is the axis along which the two regions are placed.
type Direction string

const (
	// Stacked places navigation above content.
	Stacked Direction = "column"
	// SideBySide places navigation left of content.
	SideBySide Direction = "row"
)

// Arrangement describes how the frame lays out at one viewport width.
type Arrangement struct {
	Direction Direction
	// NavWidthPx is the fixed navigation width; 0 means full width.
	NavWidthPx int
	// ContentScrolls is true when the content region scrolls on its own
	// while the navigation region stays put.
	ContentScrolls bool
	// ContentPaddingRem is the inner spacing of the content region.
	ContentPaddingRem float64
}

// Policy holds the responsive constants of the frame.
type Policy struct {
	// BreakpointPx is the narrowest viewport that gets the side-by-side
	// arrangement.
	BreakpointPx int
	// NavWidthPx is the navigation width at or above the breakpoint.
	NavWidthPx int
	// RootFontPx converts pixel constants to rem in the stylesheet.
	RootFontPx int
}

// DefaultPolicy uses the design system's md breakpoint and a 16rem
// navigation column.
var DefaultPolicy = Policy{
	BreakpointPx: 768,
	NavWidthPx:   256,
	RootFontPx:   16,
}

const (
	narrowContentPaddingRem = 1.5
	wideContentPaddingRem   = 3
)

// Arrange returns the arrangement for a viewport viewportWidthPx wide.
func (p Policy) Arrange(viewportWidthPx int) Arrangement {
	if viewportWidthPx < p.BreakpointPx {
		return Arrangement{
			Direction:         Stacked,
			ContentPaddingRem: narrowContentPaddingRem,
		}
	}
	return Arrangement{
		Direction:         SideBySide,
		NavWidthPx:        p.NavWidthPx,
		ContentScrolls:    true,
		ContentPaddingRem: wideContentPaddingRem,
	}
}

// Stylesheet renders the CSS that applies the policy in the browser.
func (p Policy) Stylesheet() string {
	root := p.RootFontPx
	if root <= 0 {
		root = DefaultPolicy.RootFontPx
	}
	narrow := p.Arrange(0)
	wide := p.Arrange(p.BreakpointPx)

	var b strings.Builder
	fmt.Fprintf(&b, ".%s{display:flex;flex-direction:%s;height:100vh}\n", rootClass, narrow.Direction)
	fmt.Fprintf(&b, ".%s{flex:none;width:100%%}\n", navClass)
	fmt.Fprintf(&b, ".%s{flex-grow:1;padding:%srem}\n", contentClass, formatRem(narrow.ContentPaddingRem))
	fmt.Fprintf(&b, "@media (min-width:%dpx){\n", p.BreakpointPx)
	fmt.Fprintf(&b, ".%s{flex-direction:%s;overflow:hidden}\n", rootClass, wide.Direction)
	fmt.Fprintf(&b, ".%s{width:%srem;overflow:visible}\n", navClass, formatRem(float64(wide.NavWidthPx)/float64(root)))
	fmt.Fprintf(&b, ".%s{overflow-y:auto;padding:%srem}\n", contentClass, formatRem(wide.ContentPaddingRem))
	b.WriteString("}\n")
	return b.String()
}

func formatRem(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", value), "0"), ".")
}
