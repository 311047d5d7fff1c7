// Package ordered provides an insertion-ordered string-keyed map used as
// the document model for schema definitions.
//
// Definition files care about key order twice: enumeration values keep
// their source order, and the converted output imposes a canonical
// sibling order. Go maps randomize iteration, so documents decode into
// *ordered.Map instead, via custom YAML node handling that round-trips
// key order.
//
// Values held by a Map are one of:
//   - scalars as decoded by yaml.v3 (string, int, int64, uint64,
//     float64, bool) or nil
//   - []any sequences
//   - *Map nested mappings
//
// The package also provides Merge, a pure recursive deep-merge with a
// fixed conflict policy: nested mappings merge recursively, everything
// else is won by the override. Merge never aliases its inputs into the
// result.
package ordered
