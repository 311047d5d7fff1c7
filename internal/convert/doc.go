// Package convert turns parsed definition levels into the simplified,
// name-keyed representation consumed by data-file writers, resolving
// cross-file references along the way.
//
// # Pipeline
//
// File loads a document and dispatches on its shape: a raw encoded
// definition (recognized by the category metadata key) is stripped of
// root metadata, parsed with nxdl, and converted group by group; an
// already-simplified document goes straight to reference resolution.
// Both paths then run the post-processing passes: Reduce drops vacuous
// subtrees bottom-up, Sort imposes the canonical sibling order, and
// CleanDocs normalizes or strips documentation text.
//
// Conversion is idempotent up to documentation formatting: feeding
// converted output back through File (without reduction) yields a
// structurally identical tree.
//
// # References
//
// A node may carry a $nxdlref property naming a relative path to
// another definition. The referenced file must convert to exactly one
// top-level entity of the same class; it is merged beneath the local
// node with override-wins semantics. Resolution threads the chain of
// files being resolved and fails with *CycleError on a repeat instead
// of recursing forever.
//
// All failures are fatal to the conversion of the current document and
// transitively to any document referencing it; the engine never
// retries or partially recovers.
package convert
