package figma

import (
	"encoding/json"
	"fmt"
)

// NodesResponse represents a Figma nodes export: the JSON body returned by the
// Figma file-nodes API endpoint, saved to disk. It contains file metadata and a
// map of node reference keys to their corresponding NodeData.
type NodesResponse struct {
	Name         string              `json:"name,omitempty"`
	LastModified string              `json:"lastModified,omitempty"`
	Version      string              `json:"version,omitempty"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a node with its document structure.
// This is the structure present for each entry in a NodesResponse.
type NodeData struct {
	Document Node `json:"document"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, shapes, component instances, or other
// Figma elements, each with their own properties such as fills, strokes,
// effects, layout settings, and children nodes.
//
// Fields whose absence differs in meaning from their zero value (paddings,
// spacing, opacity, visibility) are pointers; the converter treats a nil
// pointer and a missing JSON field identically.
type Node struct {
	ID                  string                       `json:"id"`
	Name                string                       `json:"name"`
	Type                string                       `json:"type"`
	Visible             *bool                        `json:"visible,omitempty"`
	Children            []Node                       `json:"children,omitempty"`
	Fills               []Paint                      `json:"fills,omitempty"`
	Strokes             []Paint                      `json:"strokes,omitempty"`
	StrokeWeight        float64                      `json:"strokeWeight,omitempty"`
	CornerRadius        float64                      `json:"cornerRadius,omitempty"`
	Effects             []Effect                     `json:"effects,omitempty"`
	Characters          string                       `json:"characters,omitempty"`
	Style               *TypeStyle                   `json:"style,omitempty"`
	AbsoluteBoundingBox *Rectangle                   `json:"absoluteBoundingBox,omitempty"`
	LayoutMode          string                       `json:"layoutMode,omitempty"`
	ItemSpacing         *float64                     `json:"itemSpacing,omitempty"`
	PaddingLeft         *float64                     `json:"paddingLeft,omitempty"`
	PaddingRight        *float64                     `json:"paddingRight,omitempty"`
	PaddingTop          *float64                     `json:"paddingTop,omitempty"`
	PaddingBottom       *float64                     `json:"paddingBottom,omitempty"`
	Opacity             *float64                     `json:"opacity,omitempty"`
	BlendMode           string                       `json:"blendMode,omitempty"`
	ComponentProperties map[string]ComponentProperty `json:"componentProperties,omitempty"`
}

// ComponentProperty represents one component-variant property on an INSTANCE
// node, e.g. {"State": {"type": "VARIANT", "value": "Hover"}}. Value keeps the
// raw JSON value since Figma emits strings for variants and booleans for
// boolean properties.
type ComponentProperty struct {
	Type  string `json:"type,omitempty"`
	Value any    `json:"value"`
}

// Color represents an RGBA color with float channel values ranging from 0 to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// UnmarshalJSON decodes a color, defaulting a missing alpha channel to 1
// (fully opaque) rather than the zero value.
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw struct {
		R float64  `json:"r"`
		G float64  `json:"g"`
		B float64  `json:"b"`
		A *float64 `json:"a"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.R, c.G, c.B = raw.R, raw.G, raw.B
	if raw.A != nil {
		c.A = *raw.A
	} else {
		c.A = 1
	}
	return nil
}

// Paint represents a fill or stroke applied to a Figma node.
// It includes the paint type (SOLID, GRADIENT_LINEAR, etc.), visibility,
// opacity, and color information.
type Paint struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	Color   *Color  `json:"color,omitempty"`
}

// Effect represents a visual effect applied to a Figma node such as drop
// shadows, inner shadows, or blur effects.
type Effect struct {
	Type      string  `json:"type"`
	Visible   *bool   `json:"visible,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	Color     *Color  `json:"color,omitempty"`
	Offset    *Vector `json:"offset,omitempty"`
	Spread    float64 `json:"spread,omitempty"`
	BlendMode string  `json:"blendMode,omitempty"`
}

// Vector represents a 2D coordinate or offset with X and Y values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents text styling properties from Figma: font family,
// weight, size, and alignment settings.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontPostScriptName  string  `json:"fontPostScriptName,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	LetterSpacing       float64 `json:"letterSpacing,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string  `json:"textAlignVertical,omitempty"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions
// (Width, Height) in the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ParseNodes decodes a nodes export from its raw JSON bytes.
func ParseNodes(data []byte) (*NodesResponse, error) {
	var resp NodesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse nodes export: %w", err)
	}
	return &resp, nil
}
