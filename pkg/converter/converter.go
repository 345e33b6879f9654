// Package converter turns a Figma nodes export into a no-code block document.
// It walks the root node mapping once, detects button groups, maps their
// attributes through pkg/mapper, and synthesizes a root Stack block that
// parents every emitted block.
package converter

import (
	"fmt"
	"sort"

	"github.com/hellenic-development/figma-nocode/pkg/blocks"
	"github.com/hellenic-development/figma-nocode/pkg/figma"
	"github.com/hellenic-development/figma-nocode/pkg/mapper"
)

// Convert builds the output document from a nodes export. The input is never
// mutated and the conversion never fails: missing attributes resolve to
// defaults. Root entries are visited exactly once, in sorted key order, so
// output is deterministic for a deterministic id generator. A nil generator
// falls back to RandomIDs.
func Convert(resp *figma.NodesResponse, newID IDGenerator) *blocks.Document {
	if newID == nil {
		newID = RandomIDs()
	}

	doc := &blocks.Document{
		Blocks: make(map[string]*blocks.Block),
		Layout: blocks.Layout{
			FooterID: blocks.FooterID,
			HeaderID: blocks.HeaderID,
			RootID:   blocks.RootID,
		},
		InterfaceType: blocks.InterfaceType,
		ComponentType: blocks.ComponentType,
		Name:          blocks.DocumentName,
		Slug:          blocks.DocumentSlug,
	}

	keys := make([]string, 0, len(resp.Nodes))
	for key := range resp.Nodes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Insertion order of emitted blocks; the map cannot carry it and the
	// root block's blockIds must preserve it.
	order := []string{}

	for _, key := range keys {
		node := resp.Nodes[key].Document
		if !DetectButtonGroup(&node) {
			continue
		}
		id := newID()
		doc.Blocks[id] = buttonGroupBlock(&node, id)
		order = append(order, id)
	}

	// Generated ids never equal the root literal, so this always fires;
	// the guard documents that the root is synthesized exactly once.
	if _, exists := doc.Blocks[blocks.RootID]; !exists {
		doc.Blocks[blocks.RootID] = rootBlock(order)
	}

	return doc
}

// buttonGroupBlock assembles one output block for a detected button group.
func buttonGroupBlock(n *figma.Node, id string) *blocks.Block {
	return &blocks.Block{
		Component: blocks.ButtonGroupComponent{
			Type:       blocks.KindButtonGroup,
			Appearance: mapper.Appearance(n),
			Content: blocks.ButtonGroupContent{
				Mode:    "manual",
				Type:    "default",
				Options: blocks.ContentOptions{Data: buttonData(n)},
			},
		},
		Visibility:  blocks.Visibility{Visible: true},
		DisplayName: n.Name,
		ID:          id,
		ParentID:    blocks.RootID,
	}
}

// buttonData maps the group's INSTANCE children to button records, skipping
// children explicitly marked invisible. Button ids are sequential over the
// filtered sequence, so a skipped child does not consume an id slot.
func buttonData(n *figma.Node) []blocks.Button {
	data := []blocks.Button{}
	for i := range n.Children {
		child := &n.Children[i]
		if child.Type != nodeInstance {
			continue
		}
		if child.Visible != nil && !*child.Visible {
			continue
		}
		data = append(data, blocks.Button{
			ID:              fmt.Sprintf("button%d", len(data)+1),
			Label:           mapper.Label(child),
			Icon:            mapper.Icon(child),
			IconSize:        mapper.IconSize(child),
			States:          mapper.States(child),
			Font:            mapper.Font(child),
			BackgroundColor: mapper.BackgroundColor(child),
			Border:          mapper.Border(child),
			Padding:         mapper.Padding(child),
			Shadow:          mapper.Shadows(child),
		})
	}
	return data
}

// rootBlock synthesizes the body container that parents every emitted block.
// Its appearance is fixed: a vertical column stretching its children.
func rootBlock(blockIDs []string) *blocks.Block {
	return &blocks.Block{
		Component: blocks.StackComponent{
			Type: blocks.KindStack,
			Appearance: blocks.StackAppearance{
				LayoutDirection: "VERTICAL",
				AlignItems:      "STRETCH",
				Spacing:         0,
				Padding:         blocks.Padding{},
				BackgroundColor: nil,
				Opacity:         1,
				BlendMode:       "NORMAL",
			},
			Content: blocks.StackContent{BlockIDs: blockIDs},
		},
		Visibility:  blocks.Visibility{Visible: true},
		DisplayName: "Body",
		ID:          blocks.RootID,
		Additional:  &blocks.Additional{IsRootBlock: true},
	}
}
