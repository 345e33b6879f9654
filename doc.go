// Package figmanocode converts a Figma nodes export into a declarative
// no-code block document: it detects button-group patterns in the design
// tree and emits typed blocks with styling and content normalized into the
// target schema, parented under a synthesized root container.
//
// The CLI lives in cmd/figma-nocode; this root package exposes the same
// pipeline as a Go API so that callers can embed the conversion in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmanocode:
//
//	import "github.com/hellenic-development/figma-nocode" // package figmanocode
//
// # Quick start
//
//	result, err := figmanocode.Run(figmanocode.Options{
//	    InputPath: "design-export.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("no-code-output.json", result.JSON, 0644)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Id generation
//
// Block ids come from an injectable [converter.IDGenerator]. The default is
// the legacy short random lowercase alphanumeric form; pass
// [converter.UUIDs] for collision-resistant ids or
// [converter.SequentialIDs] for deterministic, reproducible output.
//
// # Failure model
//
// The conversion itself never fails: every missing or partial attribute in
// the export resolves to a documented default. Only reading the input file,
// parsing its JSON, and encoding the output can return errors.
package figmanocode
