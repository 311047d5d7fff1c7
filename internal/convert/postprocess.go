package convert

import (
	"slices"
	"strings"

	"nxconvert/internal/ordered"
)

// Reduce removes definitionally empty nodes: working bottom-up, a node
// whose reduced form holds only the class tag is dropped by its parent,
// so emptiness propagates through arbitrarily deep nesting. Returns a
// new tree.
func Reduce(m *ordered.Map) *ordered.Map {
	result := ordered.New()

	for i := 0; i < m.Len(); i++ {
		key, val := m.At(i)

		if sub, isMap := val.(*ordered.Map); isMap {
			if reduced := Reduce(sub); reduced.Len() > 0 {
				result.Set(key, reduced)
			}

			continue
		}

		result.Set(key, ordered.CloneValue(val))
	}

	if result.Len() == 1 && result.Has(classKey) {
		return ordered.New()
	}

	return result
}

// Sort imposes the canonical sibling order on every level: the class
// tag first, scalar keys alphabetically, group-like container keys
// alphabetically, remaining container keys alphabetically, and the
// attribute container last. Returns a new tree.
func Sort(m *ordered.Map) *ordered.Map {
	var scalars, groups, others []string

	hasClass := false
	hasAttrs := false

	for i := 0; i < m.Len(); i++ {
		key, val := m.At(i)

		switch {
		case key == classKey:
			hasClass = true
		case key == attrsKey:
			hasAttrs = true
		default:
			sub, isMap := val.(*ordered.Map)

			switch {
			case !isMap:
				scalars = append(scalars, key)
			case classOf(sub) != fieldClass:
				groups = append(groups, key)
			default:
				others = append(others, key)
			}
		}
	}

	slices.Sort(scalars)
	slices.Sort(groups)
	slices.Sort(others)

	order := make([]string, 0, m.Len())
	if hasClass {
		order = append(order, classKey)
	}

	order = append(order, scalars...)
	order = append(order, groups...)
	order = append(order, others...)

	if hasAttrs {
		order = append(order, attrsKey)
	}

	result := ordered.New()

	for _, key := range order {
		val, _ := m.Get(key)

		if sub, isMap := val.(*ordered.Map); isMap {
			result.Set(key, Sort(sub))
			continue
		}

		result.Set(key, ordered.CloneValue(val))
	}

	return result
}

// CleanDocs normalizes documentation text: with keep set, every doc
// value collapses internal line breaks to single spaces and trims;
// otherwise the doc keys are dropped entirely. Returns a new tree.
func CleanDocs(m *ordered.Map, keep bool) *ordered.Map {
	result := ordered.New()

	for i := 0; i < m.Len(); i++ {
		key, val := m.At(i)

		if sub, isMap := val.(*ordered.Map); isMap {
			result.Set(key, CleanDocs(sub, keep))
			continue
		}

		if key == docKey {
			if !keep {
				continue
			}

			if s, isString := val.(string); isString {
				val = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
			}
		}

		result.Set(key, ordered.CloneValue(val))
	}

	return result
}
