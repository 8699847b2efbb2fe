// Package pkg provides the core libraries for hireflow workflow diagrams.
//
// # Overview
//
// Hireflow draws hiring workflows (the employer, candidate and admin
// journeys of a recruiting platform) as card diagrams: one card per step,
// colored by the actor who performs it, with branches fanned out side by
// side and merged back. The pkg directory is organized into these areas:
//
//  1. [workflow] - Step trees, actors and the built-in variants
//  2. [render] - Layout and output formats (SVG, PNG, PDF, JSON, DOT, text)
//  3. [viewer] - Interactive view state: variant, zoom, scroll, export
//  4. [export] - Capture a diagram and write it as a one-page PDF
//  5. [pipeline] - Orchestration (resolve → layout → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	Variant name (or a JSON/YAML workflow file via [io])
//	         ↓
//	    [workflow/catalog] (resolve the step tree)
//	         ↓
//	    [render/flow/layout] (card and connector geometry)
//	         ↓
//	    [render/flow/sink] or [render/nodelink] (output formats)
//
// The interactive viewer keeps a live diagram and hands it to [export],
// which captures it at natural size and writes <variant>-workflow.pdf.
//
// # Quick Start
//
//	entry, _ := catalog.Resolve("candidate")
//	l := layout.Build(entry.Steps)
//	svg := sink.RenderSVG(l)
//
// # Supporting Packages
//
// [cache] - In-process layout and artifact cache with TTLs.
//
// [config] - The optional TOML configuration file.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hooks for pipeline, cache and export events.
//
// [buildinfo] - Version information injected at build time.
//
// [workflow]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/workflow
// [workflow/catalog]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/workflow/catalog
// [render]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/render
// [render/flow/layout]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/render/flow/layout
// [render/flow/sink]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/render/flow/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/render/nodelink
// [viewer]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/viewer
// [export]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/export
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/hireflow/pkg/buildinfo
package pkg
