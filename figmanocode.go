package figmanocode

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hellenic-development/figma-nocode/pkg/blocks"
	"github.com/hellenic-development/figma-nocode/pkg/converter"
	"github.com/hellenic-development/figma-nocode/pkg/figma"
)

// Options configures the conversion.
type Options struct {
	InputPath string                // path to a Figma nodes export (JSON)
	IDs       converter.IDGenerator // nil = random lowercase alphanumeric ids
	Logger    Logger                // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the conversion output.
type Result struct {
	Document *blocks.Document // the assembled block document
	JSON     []byte           // pretty-printed (2-space indent) encoding of Document
	FileName string           // Figma file name from the export metadata, if present
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the conversion pipeline: read the nodes export, detect button
// groups, assemble the block document, and encode it. The transformation
// itself is total; only reading, parsing, and encoding can fail.
func Run(opts Options) (*Result, error) {
	opts.logInfo("Reading %s...", opts.InputPath)
	data, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	nodes, err := figma.ParseNodes(data)
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	opts.logInfo("Parsed %d root node(s)", len(nodes.Nodes))

	doc := converter.Convert(nodes, opts.IDs)

	// Every block except the synthesized root is a detected button group.
	detected := len(doc.Blocks) - 1
	if detected == 0 {
		opts.logWarn("No button groups detected; output contains only the root block")
	} else {
		opts.logInfo("Detected %d button group(s)", detected)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}

	return &Result{
		Document: doc,
		JSON:     out,
		FileName: nodes.Name,
	}, nil
}
