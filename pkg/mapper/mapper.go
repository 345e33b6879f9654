// Package mapper translates Figma node attributes into the normalized value
// shapes of the block schema. Every mapper is a pure, total function: a
// missing source field resolves to the documented default, never to an error.
package mapper

import (
	"sort"

	"github.com/hellenic-development/figma-nocode/pkg/blocks"
	"github.com/hellenic-development/figma-nocode/pkg/figma"
)

// Defaults applied when the corresponding source field is absent.
const (
	DefaultPaddingX        = 8 // left and right
	DefaultPaddingY        = 4 // top and bottom
	DefaultSpacing         = 8
	DefaultLayoutDirection = "HORIZONTAL"
	DefaultBlendMode       = "NORMAL"
	DefaultOpacity         = 1
	DefaultFontFamily      = "Arial"
	DefaultFontWeight      = 400
	DefaultFontSize        = 14
	DefaultLabel           = "Button"
)

// Figma node and paint type literals the mappers match against.
const (
	typeText   = "TEXT"
	typeVector = "VECTOR"
	typeFrame  = "FRAME"
	paintSolid = "SOLID"
	dropShadow = "DROP_SHADOW"
)

// Padding maps the node's four padding fields, defaulting each side
// independently.
func Padding(n *figma.Node) blocks.Padding {
	return blocks.Padding{
		Left:   floatOr(n.PaddingLeft, DefaultPaddingX),
		Right:  floatOr(n.PaddingRight, DefaultPaddingX),
		Top:    floatOr(n.PaddingTop, DefaultPaddingY),
		Bottom: floatOr(n.PaddingBottom, DefaultPaddingY),
	}
}

// BackgroundColor maps the node's first SOLID fill to a color string, or nil
// when the node has no solid fill.
func BackgroundColor(n *figma.Node) *string {
	for _, fill := range n.Fills {
		if fill.Type == paintSolid {
			return paintColor(fill.Color)
		}
	}
	return nil
}

// Border maps the node's first stroke and stroke weight. A node without
// strokes yields a zero-width, colorless border.
func Border(n *figma.Node) blocks.Border {
	if len(n.Strokes) == 0 {
		return blocks.Border{}
	}
	return blocks.Border{
		Width: n.StrokeWeight,
		Color: paintColor(n.Strokes[0].Color),
	}
}

// Shadows maps the node's DROP_SHADOW effects, preserving source order.
// The result is never nil.
func Shadows(n *figma.Node) []blocks.Shadow {
	shadows := []blocks.Shadow{}
	for _, effect := range n.Effects {
		if effect.Type != dropShadow {
			continue
		}
		s := blocks.Shadow{
			Color: paintColor(effect.Color),
			Blur:  effect.Radius,
		}
		if effect.Offset != nil {
			s.OffsetX = effect.Offset.X
			s.OffsetY = effect.Offset.Y
		}
		shadows = append(shadows, s)
	}
	return shadows
}

// Font maps the typography of the node's first TEXT child. A node without a
// text child yields the zero FontStyle, which serializes as an empty record.
func Font(n *figma.Node) blocks.FontStyle {
	text := FirstChildOfType(n, typeText)
	if text == nil {
		return blocks.FontStyle{}
	}

	font := blocks.FontStyle{
		FontFamily: DefaultFontFamily,
		FontWeight: DefaultFontWeight,
		FontSize:   DefaultFontSize,
		TextColor:  BackgroundColor(text),
	}
	if style := text.Style; style != nil {
		if style.FontFamily != "" {
			font.FontFamily = style.FontFamily
		}
		if style.FontWeight > 0 {
			font.FontWeight = style.FontWeight
		}
		if style.FontSize > 0 {
			font.FontSize = style.FontSize
		}
	}
	return font
}

// States maps the node's component-variant properties to state entries, one
// per property, in sorted property-name order. The result is never nil.
func States(n *figma.Node) []blocks.ButtonState {
	states := []blocks.ButtonState{}
	if len(n.ComponentProperties) == 0 {
		return states
	}

	names := make([]string, 0, len(n.ComponentProperties))
	for name := range n.ComponentProperties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		states = append(states, blocks.ButtonState{
			State: name,
			Value: n.ComponentProperties[name].Value,
		})
	}
	return states
}

// Label maps the characters of the node's first TEXT child, falling back to
// the default label when there is no text child or it has no characters.
func Label(n *figma.Node) string {
	if text := FirstChildOfType(n, typeText); text != nil && text.Characters != "" {
		return text.Characters
	}
	return DefaultLabel
}

// Icon maps the name of the node's first VECTOR or FRAME child (whichever
// appears first in child order), or nil when the node has no icon child.
func Icon(n *figma.Node) *string {
	if icon := FirstChildOfType(n, typeVector, typeFrame); icon != nil {
		name := icon.Name
		return &name
	}
	return nil
}

// IconSize maps the bounding box of the same icon child Icon resolves, or nil
// when there is no icon child or the child has no bounding box.
func IconSize(n *figma.Node) *blocks.IconSize {
	icon := FirstChildOfType(n, typeVector, typeFrame)
	if icon == nil || icon.AbsoluteBoundingBox == nil {
		return nil
	}
	return &blocks.IconSize{
		Width:  icon.AbsoluteBoundingBox.Width,
		Height: icon.AbsoluteBoundingBox.Height,
	}
}

// Appearance maps a button group node's layout and styling fields into the
// appearance record, applying the defaults table for absent fields.
func Appearance(n *figma.Node) blocks.ButtonGroupAppearance {
	direction := n.LayoutMode
	if direction == "" {
		direction = DefaultLayoutDirection
	}
	blendMode := n.BlendMode
	if blendMode == "" {
		blendMode = DefaultBlendMode
	}

	return blocks.ButtonGroupAppearance{
		LayoutDirection: direction,
		Spacing:         floatOr(n.ItemSpacing, DefaultSpacing),
		Padding:         Padding(n),
		BackgroundColor: BackgroundColor(n),
		Border:          Border(n),
		BorderRadius:    n.CornerRadius,
		Shadow:          Shadows(n),
		Opacity:         floatOr(n.Opacity, DefaultOpacity),
		BlendMode:       blendMode,
	}
}

// FirstChildOfType returns the first direct child whose type matches any of
// the given type literals, or nil.
func FirstChildOfType(n *figma.Node, types ...string) *figma.Node {
	for i := range n.Children {
		for _, t := range types {
			if n.Children[i].Type == t {
				return &n.Children[i]
			}
		}
	}
	return nil
}

// paintColor converts an optional Figma color to its string form.
func paintColor(c *figma.Color) *string {
	if c == nil {
		return nil
	}
	s := RGBAToHex(c.R, c.G, c.B, c.A)
	return &s
}

// floatOr dereferences an optional float, substituting a default when absent.
func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}
