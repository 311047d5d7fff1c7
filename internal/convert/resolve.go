package convert

import (
	"fmt"
	"path/filepath"

	"nxconvert/internal/ordered"
)

// resolveRefs resolves the reference pointer of a node, if any, and
// recurses into its mapping-valued children so references nest at any
// depth. The referenced file is converted without reduction and merged
// as the base beneath the local node, override wins. The input map is
// not modified.
func (c *converter) resolveRefs(m *ordered.Map) (*ordered.Map, error) {
	out := m.Clone()

	if ref, ok := out.Pop(refProp); ok && truthy(ref) {
		fname, ok := ref.(string)
		if !ok {
			return nil, fmt.Errorf("reference pointer must be a string, got %T", ref)
		}

		entity, err := c.loadReference(fname, out)
		if err != nil {
			return nil, err
		}

		out = ordered.Merge(entity, out)
	}

	for _, key := range out.Keys() {
		val, _ := out.Get(key)

		if sub, isMap := val.(*ordered.Map); isMap {
			resolved, err := c.resolveRefs(sub)
			if err != nil {
				return nil, err
			}

			out.Set(key, resolved)
		}
	}

	return out, nil
}

// loadReference converts the referenced definition file and validates
// it against the referencing node: exactly one top-level entity whose
// class tag matches the node's declared class.
func (c *converter) loadReference(fname string, node *ordered.Map) (*ordered.Map, error) {
	refDoc, err := convertFile(filepath.Join(c.root, fname), Options{Sort: true}, c.chain)
	if err != nil {
		return nil, err
	}

	if refDoc.Len() != 1 {
		return nil, &CardinalityError{Path: fname, Count: refDoc.Len()}
	}

	_, top := refDoc.At(0)

	entity, ok := top.(*ordered.Map)
	if !ok {
		return nil, &CardinalityError{Path: fname, Count: 0}
	}

	refClass := classOf(entity)
	nodeClass := classOf(node)

	if refClass != nodeClass {
		return nil, &ClassMismatchError{Path: fname, Want: nodeClass, Got: refClass}
	}

	return entity, nil
}

// classOf returns a node's class tag, or the empty string.
func classOf(m *ordered.Map) string {
	v, _ := m.Get(classKey)
	s, _ := v.(string)

	return s
}
