package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"nxconvert/internal/nxdl"
	"nxconvert/internal/ordered"
)

// Reserved key literals of the two document forms.
const (
	classKey = "nxclass"
	attrsKey = "attrs"
	docKey   = "doc"

	refProp   = "$nxdlref"
	valueProp = "$value"
	unitsProp = "$units"

	fieldClass = "NXfield"
	linkClass  = "NXlink"
)

// rootMetaKeys are stripped from a raw definition before parsing, in
// addition to the category marker itself.
var rootMetaKeys = []string{
	"type",
	"symbols",
	"deprecated",
	"ignoreExtraFields",
	"ignoreExtraAttributes",
	"ignoreExtraGroups",
	"doc",
}

// Options parameterize one conversion.
type Options struct {
	// Reduce drops vacuous nodes from the result: fields without a
	// literal value, and any subtree reducing to a lone class tag.
	Reduce bool

	// Sort imposes the canonical sibling key order on the result.
	Sort bool

	// KeepDocs retains documentation text (normalized to single-line);
	// otherwise doc keys are stripped.
	KeepDocs bool
}

// DefaultOptions reduce and sort, and strip documentation.
func DefaultOptions() Options {
	return Options{Reduce: true, Sort: true}
}

// converter carries the per-file conversion state: the directory
// references resolve against and the chain of definition files
// currently being converted, used for cycle detection.
type converter struct {
	root  string
	chain []string
}

// File loads, parses, and converts a definition file. Both document
// forms are accepted: a raw encoded definition is fully converted,
// while an already-simplified one passes through reference resolution
// and post-processing only, which makes the operation idempotent.
func File(path string, opts Options) (*ordered.Map, error) {
	return convertFile(path, opts, nil)
}

// Document converts an in-memory definition document. Relative
// reference pointers resolve against root. The input is not modified.
func Document(doc *ordered.Map, root string, opts Options) (*ordered.Map, error) {
	return document(doc, root, opts, nil)
}

func convertFile(path string, opts Options, chain []string) (*ordered.Map, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve definition path %s: %w", path, err)
	}

	if slices.Contains(chain, abs) {
		return nil, &CycleError{Path: abs, Chain: chain}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	doc := ordered.New()

	err = yaml.Unmarshal(data, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition file %s: %w", path, err)
	}

	return document(doc, filepath.Dir(abs), opts, append(chain, abs))
}

func document(doc *ordered.Map, root string, opts Options, chain []string) (*ordered.Map, error) {
	c := &converter{root: root, chain: chain}
	work := doc.Clone()

	var result *ordered.Map

	if category, _ := work.Pop("category"); truthy(category) {
		// Raw encoded definition: strip the root metadata, parse, and
		// convert the single remaining top-level group.
		for _, key := range rootMetaKeys {
			work.Pop(key)
		}

		if work.Len() != 1 {
			return nil, &StructuralError{Keys: work.Keys()}
		}

		level, err := nxdl.ParseLevel(work)
		if err != nil {
			return nil, err
		}

		result, err = c.groups(level.Groups, opts.Reduce)
		if err != nil {
			return nil, err
		}
	} else {
		// Already-simplified document: only references remain to do.
		resolved, err := c.resolveRefs(work)
		if err != nil {
			return nil, err
		}

		result = resolved
	}

	if opts.Reduce {
		result = Reduce(result)
	}

	if opts.Sort {
		result = Sort(result)
	}

	return CleanDocs(result, opts.KeepDocs), nil
}

// groups converts parsed group records into the simplified form: a
// class-tagged skeleton, reference resolution, then the converted
// sub-groups, fields, attributes, and links merged on top.
func (c *converter) groups(nodes []*nxdl.Node, reduce bool) (*ordered.Map, error) {
	result := ordered.New()

	for _, grp := range nodes {
		gd := ordered.New()
		gd.Set(classKey, grp.Class)

		if ref, ok := grp.Level.Props.Get(refProp); ok {
			gd.Set(refProp, ref)
		}

		gd, err := c.resolveRefs(gd)
		if err != nil {
			return nil, err
		}

		if len(grp.Level.Groups) > 0 {
			sub, err := c.groups(grp.Level.Groups, reduce)
			if err != nil {
				return nil, err
			}

			gd = ordered.Merge(gd, sub)
		}

		if len(grp.Level.Fields) > 0 {
			gd = ordered.Merge(gd, convertFields(grp.Level.Fields, reduce))
		}

		if attrs := convertAttributes(grp.Level.Attributes); attrs.Len() > 0 {
			base := ordered.New()
			if existing, ok := gd.Get(attrsKey); ok {
				if m, isMap := existing.(*ordered.Map); isMap {
					base = m
				}
			}

			gd.Set(attrsKey, ordered.Merge(base, attrs))
		}

		if len(grp.Level.Links) > 0 {
			gd = ordered.Merge(gd, convertLinks(grp.Level.Links))
		}

		if doc, ok := truthyProp(grp.Level.Props, docKey); ok {
			gd.Set(docKey, doc)
		}

		result.Set(grp.Name, gd)
	}

	return result, nil
}

// convertFields converts parsed field records. With reduce set, a field
// lacking a literal value carries no information and is dropped.
func convertFields(nodes []*nxdl.Node, reduce bool) *ordered.Map {
	result := ordered.New()

	for _, fld := range nodes {
		fd := ordered.New()
		fd.Set(classKey, fieldClass)

		if v, ok := truthyProp(fld.Level.Props, valueProp); ok {
			fd.Set("value", v)
		} else if reduce {
			continue
		}

		if dt, ok := nxDTypes[typeToken(fld)]; ok {
			fd.Set("dtype", dt)
		}

		applyEnumeration(fd, fld)

		attrs := convertAttributes(fld.Level.Attributes)
		if units, ok := truthyProp(fld.Level.Props, unitsProp); ok {
			attrs.Set("units", units)
		}

		if attrs.Len() > 0 {
			fd.Set(attrsKey, attrs)
		}

		if doc, ok := truthyProp(fld.Level.Props, docKey); ok {
			fd.Set(docKey, doc)
		}

		result.Set(fld.Name, fd)
	}

	return result
}

// convertAttributes converts parsed attribute records. An attribute
// with no value, enumeration, or documentation converts to an explicit
// nil entry: present but empty, never omitted.
func convertAttributes(nodes []*nxdl.Node) *ordered.Map {
	result := ordered.New()

	for _, attr := range nodes {
		ad := ordered.New()

		if v, ok := truthyProp(attr.Level.Props, valueProp); ok {
			ad.Set("value", v)
		}

		if dt, ok := nxDTypes[typeToken(attr)]; ok {
			ad.Set("dtype", dt)
		}

		applyEnumeration(ad, attr)

		if doc, ok := truthyProp(attr.Level.Props, docKey); ok {
			ad.Set(docKey, doc)
		}

		if !ad.Has("value") && !ad.Has("enumeration") && !ad.Has(docKey) {
			// A bare type declaration adds no information.
			result.Set(attr.Name, nil)
			continue
		}

		result.Set(attr.Name, ad)
	}

	return result
}

// convertLinks converts parsed link records. The target comes from the
// literal value property or an explicit target property.
func convertLinks(nodes []*nxdl.Node) *ordered.Map {
	result := ordered.New()

	for _, lnk := range nodes {
		ld := ordered.New()
		ld.Set(classKey, linkClass)

		var target any
		if v, ok := lnk.Level.Props.Get(valueProp); ok {
			target = v
		} else if v, ok := lnk.Level.Props.Get("target"); ok {
			target = v
		}

		ld.Set("target", target)

		if doc, ok := truthyProp(lnk.Level.Props, docKey); ok {
			ld.Set(docKey, doc)
		}

		result.Set(lnk.Name, ld)
	}

	return result
}

// applyEnumeration copies a node's enumeration into the output entry
// and settles the dtype: an explicit dtype wins over inference from the
// value set, and string-like dtypes normalize to "char".
func applyEnumeration(out *ordered.Map, n *nxdl.Node) {
	enum, ok := truthyProp(n.Level.Props, "enumeration")
	if !ok {
		return
	}

	out.Set("enumeration", ordered.CloneValue(enum))

	dt := ""
	if existing, ok := out.Get("dtype"); ok {
		dt, _ = existing.(string)
	}

	if dt == "" {
		dt = inferDType(enumValues(enum))
	}

	out.Set("dtype", normalizeDType(dt))
}

// enumValues views an enumeration property as a value list.
func enumValues(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}

	return []any{v}
}

// typeToken returns the value-type token of a field or attribute: an
// explicit type property wins over the token embedded in the key.
func typeToken(n *nxdl.Node) string {
	if v, ok := n.Level.Props.Get("type"); ok {
		s, _ := v.(string)
		return s
	}

	return n.Type
}

// truthy reports whether a property value counts as set: nil, empty
// strings and sequences, false, and numeric zero do not.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case *ordered.Map:
		return t.Len() > 0
	default:
		return true
	}
}

// truthyProp returns a property value when present and truthy.
func truthyProp(props *ordered.Map, key string) (any, bool) {
	v, ok := props.Get(key)
	if !ok || !truthy(v) {
		return nil, false
	}

	return v, true
}
