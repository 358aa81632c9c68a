// Package produce contains the reference algorithm implementations that
// generate animation frames.
//
// Each producer implements the [Producer] interface, replaying a textbook
// algorithm over an explicit input and emitting one [frame.Frame] per
// semantically meaningful step:
//
//   - one frame per comparison between two elements or vertices
//   - one frame per mutation (swap, shift, placement, visit)
//   - one frame per settled/visited conclusion about an element
//
// Producers are deterministic and never inspect source text; classification
// happens upstream and only supplies optional source-line annotations.
// Input validation is the caller's job (see [ValidateInput]): producers are
// never invoked with empty arrays or out-of-range start vertices.
package produce
