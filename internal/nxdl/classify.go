package nxdl

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// NamespaceMarker prefixes every class token in the dialect.
	NamespaceMarker = "NX"

	// BaseClass is the abstract root class. A group declared as
	// BaseClass whose derived name itself starts with the namespace
	// marker is the self-naming top-level definition of that name.
	BaseClass = "NXobject"
)

// Key grammar, checked in priority order. The group class token takes
// one non-underscore character after the marker, which keeps the
// NX_-prefixed value types out of the group form.
var (
	reGroup     = regexp.MustCompile(`^(\w*)\((NX[^_][a-z_]+)\)(\w*)$`)
	reField     = regexp.MustCompile(`^(\w+)(?:\((NX_[A-Z_]+)\))?$`)
	reAttribute = regexp.MustCompile(`^\\{0,2}@(\w+)(?:\((NX_[A-Z_]+)\))?$`)
	reLink      = regexp.MustCompile(`^(\w+)\(link\)$`)
	reChoice    = regexp.MustCompile(`^(\w+)\(choice\)$`)
)

// ValueMarker prefixes residual user-value keys such as $value and $units.
const ValueMarker = "$"

// ClassificationError reports a key matching none of the lexical forms.
type ClassificationError struct {
	Key string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("unknown definition term: %q", e.Key)
}

// Key is a classified definition key.
type Key struct {
	// Term is the syntactic form the key matched.
	Term Term

	// Name is the derived node name. For TermScalar it is the raw key,
	// marker included.
	Name string

	// Class is the declared class token (groups only; the choice
	// synthesis fills it separately).
	Class string

	// Type is the optional NX_ value-type token (fields, attributes).
	Type string
}

// Classify resolves one key string to its lexical form. Forms are
// mutually exclusive under the priority order group, field, attribute,
// link, choice, scalar marker; any other key is a *ClassificationError.
func Classify(key string) (Key, error) {
	if m := reGroup.FindStringSubmatch(key); m != nil {
		return classifyGroup(m), nil
	}

	if m := reField.FindStringSubmatch(key); m != nil {
		return Key{Term: TermField, Name: m[1], Type: m[2]}, nil
	}

	if m := reAttribute.FindStringSubmatch(key); m != nil {
		return Key{Term: TermAttribute, Name: m[1], Type: m[2]}, nil
	}

	if m := reLink.FindStringSubmatch(key); m != nil {
		return Key{Term: TermLink, Name: m[1]}, nil
	}

	if m := reChoice.FindStringSubmatch(key); m != nil {
		return Key{Term: TermChoice, Name: m[1]}, nil
	}

	if strings.HasPrefix(key, ValueMarker) {
		return Key{Term: TermScalar, Name: key}, nil
	}

	return Key{}, &ClassificationError{Key: key}
}

// classifyGroup derives the group name from the leading segment, the
// trailing segment, or the class with the namespace marker stripped, in
// that preference order, and handles the self-naming root form.
func classifyGroup(m []string) Key {
	leading, class, trailing := m[1], m[2], m[3]

	name := leading
	if name == "" {
		name = trailing
	}

	if name == "" {
		name = strings.TrimPrefix(class, NamespaceMarker)
	}

	if class == BaseClass && strings.HasPrefix(name, NamespaceMarker) {
		// Top-level definition: the name is the real class.
		class = name
		name = strings.TrimPrefix(name, NamespaceMarker)
	}

	return Key{Term: TermGroup, Name: name, Class: class}
}
