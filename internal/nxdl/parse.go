package nxdl

import (
	"strings"

	"nxconvert/internal/ordered"
)

// Node is a typed child record produced by ParseLevel.
type Node struct {
	// Term is the structural kind of the record.
	Term Term

	// Name is the derived node name.
	Name string

	// Class is the declared class for groups. For a synthesized choice
	// record it is the "|"-joined class list of the alternatives.
	Class string

	// Type is the NX_ value-type token, empty when absent in the key.
	Type string

	// Level holds the recursively parsed children of this node. It is
	// never nil; a leaf node carries an empty level.
	Level *Level
}

// Level is the result of classifying every key of one mapping level.
type Level struct {
	Groups     []*Node
	Fields     []*Node
	Attributes []*Node
	Links      []*Node

	// Props holds the residual scalar properties that did not declare a
	// structural child: documentation, deprecation flags, units, literal
	// values, enumerations, reference pointers.
	Props *ordered.Map
}

// emptyLevel returns a Level with no children.
func emptyLevel() *Level {
	return &Level{Props: ordered.New()}
}

// ParseLevel classifies every key of one raw mapping level and buckets
// the children by kind, recursing through nested mappings.
//
// Two field matches are demoted to residual properties: an untyped
// field key whose value is not a mapping (a short descriptive caption
// such as doc or deprecated), and the literal "enumeration" field given
// as a mapping, which demotes to the ordered list of its keys.
func ParseLevel(m *ordered.Map) (*Level, error) {
	lvl := emptyLevel()

	for i := 0; i < m.Len(); i++ {
		rawKey, val := m.At(i)

		key, err := Classify(rawKey)
		if err != nil {
			return nil, err
		}

		switch key.Term {
		case TermGroup:
			sub, err := ParseLevel(childMap(val))
			if err != nil {
				return nil, err
			}

			lvl.Groups = append(lvl.Groups, &Node{
				Term:  TermGroup,
				Name:  key.Name,
				Class: key.Class,
				Level: sub,
			})

		case TermField:
			_, isMap := val.(*ordered.Map)

			if key.Type == "" && !isMap {
				// Descriptive caption, not a field declaration.
				lvl.Props.Set(rawKey, val)
				continue
			}

			if key.Name == "enumeration" && isMap {
				// Allowed value set written as a mapping: keep the keys.
				lvl.Props.Set(rawKey, mapKeyList(val.(*ordered.Map)))
				continue
			}

			sub, err := ParseLevel(childMap(val))
			if err != nil {
				return nil, err
			}

			lvl.Fields = append(lvl.Fields, &Node{
				Term:  TermField,
				Name:  key.Name,
				Type:  key.Type,
				Level: sub,
			})

		case TermAttribute:
			sub, err := ParseLevel(childMap(val))
			if err != nil {
				return nil, err
			}

			lvl.Attributes = append(lvl.Attributes, &Node{
				Term:  TermAttribute,
				Name:  key.Name,
				Type:  key.Type,
				Level: sub,
			})

		case TermLink:
			sub, err := ParseLevel(childMap(val))
			if err != nil {
				return nil, err
			}

			lvl.Links = append(lvl.Links, &Node{
				Term:  TermLink,
				Name:  key.Name,
				Level: sub,
			})

		case TermChoice:
			node, err := parseChoice(key.Name, val)
			if err != nil {
				return nil, err
			}

			lvl.Groups = append(lvl.Groups, node)

		case TermScalar:
			lvl.Props.Set(rawKey, val)
		}
	}

	return lvl, nil
}

// parseChoice parses the alternatives of a choice key and synthesizes a
// single record whose class is the "|"-joined class list and whose doc
// describes each alternative on its own line.
func parseChoice(name string, val any) (*Node, error) {
	sub, err := ParseLevel(childMap(val))
	if err != nil {
		return nil, err
	}

	classes := make([]string, 0, len(sub.Groups))
	docs := make([]string, 0, len(sub.Groups))

	for _, alt := range sub.Groups {
		classes = append(classes, alt.Class)
		docs = append(docs, alt.Class+": "+altDoc(alt))
	}

	level := emptyLevel()
	level.Props.Set("doc", strings.Join(docs, "\n"))

	return &Node{
		Term:  TermChoice,
		Name:  name,
		Class: strings.Join(classes, " | "),
		Level: level,
	}, nil
}

// altDoc returns the doc property of a choice alternative, if any.
func altDoc(n *Node) string {
	v, ok := n.Level.Props.Get("doc")
	if !ok {
		return ""
	}

	s, ok := v.(string)
	if !ok {
		return ""
	}

	return s
}

// childMap returns the nested mapping of a node value, or an empty map
// when the value is absent or not a mapping.
func childMap(val any) *ordered.Map {
	if m, ok := val.(*ordered.Map); ok {
		return m
	}

	return ordered.New()
}

// mapKeyList returns the keys of a mapping as a value sequence,
// preserving source order.
func mapKeyList(m *ordered.Map) []any {
	out := make([]any, 0, m.Len())

	for _, k := range m.Keys() {
		out = append(out, k)
	}

	return out
}
