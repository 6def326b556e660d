// Package solve defines the domain model shared by every day's solution.
//
// It is intentionally split into:
//   - Immutable solution definitions (Solution, Registry): which days exist
//     and how to invoke their parts
//   - Input (puzzle text loaded from disk) and its derived views
//
// Day packages depend on solve; nothing in solve depends on any day.
package solve
