package figma

import (
	"encoding/json"
	"testing"
)

func TestParseNodes(t *testing.T) {
	data := []byte(`{
		"name": "My Design",
		"lastModified": "2025-11-02T10:00:00Z",
		"nodes": {
			"1:1": {
				"document": {
					"id": "1:1",
					"name": "Button Group",
					"type": "FRAME",
					"layoutMode": "HORIZONTAL",
					"itemSpacing": 12,
					"paddingLeft": 0,
					"children": [
						{
							"id": "1:2",
							"name": "Primary Button",
							"type": "INSTANCE",
							"visible": false,
							"componentProperties": {
								"State": {"type": "VARIANT", "value": "Hover"}
							}
						}
					]
				}
			}
		}
	}`)

	resp, err := ParseNodes(data)
	if err != nil {
		t.Fatalf("ParseNodes() error = %v", err)
	}
	if resp.Name != "My Design" {
		t.Errorf("Name = %q, want My Design", resp.Name)
	}

	nd, ok := resp.Nodes["1:1"]
	if !ok {
		t.Fatal("node 1:1 missing")
	}
	doc := nd.Document
	if doc.LayoutMode != "HORIZONTAL" {
		t.Errorf("LayoutMode = %q", doc.LayoutMode)
	}
	if doc.ItemSpacing == nil || *doc.ItemSpacing != 12 {
		t.Errorf("ItemSpacing = %v, want 12", doc.ItemSpacing)
	}
	// Explicit zero must be distinguishable from absent.
	if doc.PaddingLeft == nil || *doc.PaddingLeft != 0 {
		t.Errorf("PaddingLeft = %v, want explicit 0", doc.PaddingLeft)
	}
	if doc.PaddingRight != nil {
		t.Errorf("PaddingRight = %v, want nil", doc.PaddingRight)
	}

	child := doc.Children[0]
	if child.Visible == nil || *child.Visible != false {
		t.Errorf("child Visible = %v, want explicit false", child.Visible)
	}
	prop, ok := child.ComponentProperties["State"]
	if !ok {
		t.Fatal("componentProperties State missing")
	}
	if prop.Type != "VARIANT" || prop.Value != "Hover" {
		t.Errorf("State property = %+v", prop)
	}
}

func TestParseNodesInvalidJSON(t *testing.T) {
	if _, err := ParseNodes([]byte(`{"nodes": `)); err == nil {
		t.Error("ParseNodes() accepted truncated JSON")
	}
}

func TestColorUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Color
	}{
		{
			name: "explicit alpha",
			data: `{"r": 0.5, "g": 0.25, "b": 1, "a": 0.5}`,
			want: Color{R: 0.5, G: 0.25, B: 1, A: 0.5},
		},
		{
			name: "missing alpha defaults to opaque",
			data: `{"r": 1, "g": 0, "b": 0}`,
			want: Color{R: 1, G: 0, B: 0, A: 1},
		},
		{
			name: "explicit zero alpha is preserved",
			data: `{"r": 0, "g": 0, "b": 0, "a": 0}`,
			want: Color{A: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Color
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Color = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComponentPropertyBooleanValue(t *testing.T) {
	var node Node
	data := `{
		"id": "2:1", "name": "Button", "type": "INSTANCE",
		"componentProperties": {"Disabled": {"type": "BOOLEAN", "value": true}}
	}`
	if err := json.Unmarshal([]byte(data), &node); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if v, ok := node.ComponentProperties["Disabled"].Value.(bool); !ok || !v {
		t.Errorf("Disabled value = %#v, want true", node.ComponentProperties["Disabled"].Value)
	}
}
