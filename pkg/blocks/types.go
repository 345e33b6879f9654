// Package blocks defines the declarative no-code block schema the converter
// emits: a document of typed blocks keyed by id, with styling and content
// normalized into appearance/content records per block kind.
package blocks

// Fixed layout slot ids. They are referenced by the output document's layout
// record but never validated against the blocks map.
const (
	FooterID = "footer_id"
	HeaderID = "header_id"
	RootID   = "root_id"
)

// Document metadata constants. These are fixed outputs of the conversion,
// not derived from the input file.
const (
	InterfaceType = "page"
	ComponentType = "block"
	DocumentName  = "Figma Import"
	DocumentSlug  = "figma-import"
)

// Document is the output root: the block mapping plus fixed layout slots and
// static metadata.
type Document struct {
	Blocks        map[string]*Block `json:"blocks"`
	Layout        Layout            `json:"layout"`
	InterfaceType string            `json:"interfaceType"`
	ComponentType string            `json:"componentType"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
}

// Layout names the three fixed block slots of a page.
type Layout struct {
	FooterID string `json:"footer_id"`
	HeaderID string `json:"header_id"`
	RootID   string `json:"root_id"`
}

// Block is one entry in the document's block mapping. The mapping key and the
// ID field always match. ParentID is a non-owning back-reference.
type Block struct {
	Component   Component   `json:"component"`
	Visibility  Visibility  `json:"visibility"`
	DisplayName string      `json:"displayName"`
	ID          string      `json:"id"`
	ParentID    string      `json:"parentId,omitempty"`
	Additional  *Additional `json:"additional,omitempty"`
}

// Visibility wraps the block visibility flag.
type Visibility struct {
	Visible bool `json:"visible"`
}

// Additional carries optional block metadata flags.
type Additional struct {
	IsRootBlock bool `json:"isRootBlock"`
}

// Component is the closed union of block component kinds. Each variant carries
// its own strongly typed appearance and content records, selected by the Type
// discriminant in its JSON form.
type Component interface {
	componentKind() string
}

// Component kind discriminants.
const (
	KindButtonGroup = "ButtonGroup"
	KindStack       = "Stack"
)

// ButtonGroupComponent is the component payload of a detected button group.
type ButtonGroupComponent struct {
	Type       string                `json:"type"`
	Appearance ButtonGroupAppearance `json:"appearance"`
	Content    ButtonGroupContent    `json:"content"`
}

func (ButtonGroupComponent) componentKind() string { return KindButtonGroup }

// StackComponent is the component payload of a container block, used for the
// synthesized root.
type StackComponent struct {
	Type       string          `json:"type"`
	Appearance StackAppearance `json:"appearance"`
	Content    StackContent    `json:"content"`
}

func (StackComponent) componentKind() string { return KindStack }

// ButtonGroupAppearance holds the normalized styling of a button group block.
type ButtonGroupAppearance struct {
	LayoutDirection string   `json:"layoutDirection"`
	Spacing         float64  `json:"spacing"`
	Padding         Padding  `json:"padding"`
	BackgroundColor *string  `json:"backgroundColor"`
	Border          Border   `json:"border"`
	BorderRadius    float64  `json:"borderRadius"`
	Shadow          []Shadow `json:"shadow"`
	Opacity         float64  `json:"opacity"`
	BlendMode       string   `json:"blendMode"`
}

// ButtonGroupContent lists the group's buttons under a manual content mode.
type ButtonGroupContent struct {
	Mode    string         `json:"mode"`
	Type    string         `json:"type"`
	Options ContentOptions `json:"options"`
}

// ContentOptions wraps the ordered button data records.
type ContentOptions struct {
	Data []Button `json:"data"`
}

// Button is one entry in a button group's content, mapped from a visible
// INSTANCE child. IDs are sequential ("button1", "button2", ...) over the
// filtered child sequence.
type Button struct {
	ID              string        `json:"id"`
	Label           string        `json:"label"`
	Icon            *string       `json:"icon"`
	IconSize        *IconSize     `json:"iconSize"`
	States          []ButtonState `json:"states"`
	Font            FontStyle     `json:"font"`
	BackgroundColor *string       `json:"backgroundColor"`
	Border          Border        `json:"border"`
	Padding         Padding       `json:"padding"`
	Shadow          []Shadow      `json:"shadow"`
}

// ButtonState is one component-variant property of a button instance.
type ButtonState struct {
	State string `json:"state"`
	Value any    `json:"value"`
}

// IconSize is the pixel bounding box of a button's icon child.
type IconSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FontStyle holds the typography of a button's text child. All fields are
// omitted when empty so a button with no text child serializes as {}.
type FontStyle struct {
	FontFamily string  `json:"fontFamily,omitempty"`
	FontWeight float64 `json:"fontWeight,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	TextColor  *string `json:"textColor,omitempty"`
}

// Padding holds per-side padding values in pixels.
type Padding struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Border holds the normalized stroke of a block.
type Border struct {
	Width float64 `json:"width"`
	Color *string `json:"color"`
}

// Shadow is one normalized drop shadow, order-preserving from the source
// effect list.
type Shadow struct {
	Color   *string `json:"color"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Blur    float64 `json:"blur"`
}

// StackAppearance holds the fixed styling of the synthesized root container:
// a vertical column that stretches its children.
type StackAppearance struct {
	LayoutDirection string  `json:"layoutDirection"`
	AlignItems      string  `json:"alignItems"`
	Spacing         float64 `json:"spacing"`
	Padding         Padding `json:"padding"`
	BackgroundColor *string `json:"backgroundColor"`
	Opacity         float64 `json:"opacity"`
	BlendMode       string  `json:"blendMode"`
}

// StackContent lists the ids of the blocks the container parents, in
// detection order.
type StackContent struct {
	BlockIDs []string `json:"blockIds"`
}
