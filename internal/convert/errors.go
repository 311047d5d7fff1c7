package convert

import (
	"fmt"
	"strings"
)

// StructuralError reports a definition whose root does not hold exactly
// one key after the metadata keys are stripped.
type StructuralError struct {
	Keys []string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("expected a single root key after metadata, got %d: %s",
		len(e.Keys), strings.Join(e.Keys, ", "))
}

// CardinalityError reports a referenced definition that did not convert
// to exactly one top-level entity.
type CardinalityError struct {
	Path  string
	Count int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("referenced definition %s must hold a single top-level entity, got %d",
		e.Path, e.Count)
}

// ClassMismatchError reports a referenced entity whose class disagrees
// with the class declared by the referencing node.
type ClassMismatchError struct {
	Path string
	Want string
	Got  string
}

func (e *ClassMismatchError) Error() string {
	return fmt.Sprintf("referenced definition %s has incompatible class %q, want %q",
		e.Path, e.Got, e.Want)
}

// CycleError reports a reference chain that revisits a definition file.
type CycleError struct {
	Path  string
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("reference cycle: %s already being resolved via %s",
		e.Path, strings.Join(e.Chain, " -> "))
}
