package nxdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyGroups(t *testing.T) {
	tests := []struct {
		key   string
		name  string
		class string
	}{
		{"efficiency(NXdata)", "efficiency", "NXdata"},
		{"(NXdata)", "data", "NXdata"},
		{"(NXdata)efficiency", "efficiency", "NXdata"},
		{"monochromator(NXmonochromator)", "monochromator", "NXmonochromator"},
	}

	for _, tt := range tests {
		k, err := Classify(tt.key)
		require.NoError(t, err, tt.key)

		assert.Equal(t, TermGroup, k.Term, tt.key)
		assert.Equal(t, tt.name, k.Name, tt.key)
		assert.Equal(t, tt.class, k.Class, tt.key)
	}
}

func TestClassifySelfNamingRoot(t *testing.T) {
	// A group declared as the abstract base class whose name carries the
	// namespace marker is the top-level definition of that name.
	k, err := Classify("NXsource(NXobject)")
	require.NoError(t, err)

	assert.Equal(t, TermGroup, k.Term)
	assert.Equal(t, "NXsource", k.Class)
	assert.Equal(t, "source", k.Name)
}

func TestClassifyFields(t *testing.T) {
	k, err := Classify("start_time(NX_DATE_TIME)")
	require.NoError(t, err)
	assert.Equal(t, TermField, k.Term)
	assert.Equal(t, "start_time", k.Name)
	assert.Equal(t, "NX_DATE_TIME", k.Type)

	// Untyped field: the type token stays empty.
	k, err = Classify("depends_on")
	require.NoError(t, err)
	assert.Equal(t, TermField, k.Term)
	assert.Equal(t, "depends_on", k.Name)
	assert.Empty(t, k.Type)
}

func TestClassifyAttributes(t *testing.T) {
	for _, key := range []string{`@default(NX_CHAR)`, `\@default(NX_CHAR)`, `\\@default(NX_CHAR)`} {
		k, err := Classify(key)
		require.NoError(t, err, key)

		assert.Equal(t, TermAttribute, k.Term, key)
		assert.Equal(t, "default", k.Name, key)
		assert.Equal(t, "NX_CHAR", k.Type, key)
	}

	k, err := Classify(`@signal`)
	require.NoError(t, err)
	assert.Equal(t, TermAttribute, k.Term)
	assert.Empty(t, k.Type)
}

func TestClassifyLinkAndChoice(t *testing.T) {
	k, err := Classify("data(link)")
	require.NoError(t, err)
	assert.Equal(t, TermLink, k.Term)
	assert.Equal(t, "data", k.Name)

	k, err = Classify("pixel_shape(choice)")
	require.NoError(t, err)
	assert.Equal(t, TermChoice, k.Term)
	assert.Equal(t, "pixel_shape", k.Name)
}

func TestClassifyScalarMarker(t *testing.T) {
	for _, key := range []string{"$value", "$units", "$nxdlref"} {
		k, err := Classify(key)
		require.NoError(t, err, key)

		assert.Equal(t, TermScalar, k.Term, key)
		assert.Equal(t, key, k.Name, key)
	}
}

// TestClassifyTotality walks one representative key per form plus
// garbage and checks every key resolves to exactly one term or fails.
func TestClassifyTotality(t *testing.T) {
	tagged := []struct {
		key  string
		term Term
	}{
		{"efficiency(NXdata)", TermGroup},
		{"start_time(NX_DATE_TIME)", TermField},
		{"depends_on", TermField},
		{`\@default(NX_CHAR)`, TermAttribute},
		{"data(link)", TermLink},
		{"pixel_shape(choice)", TermChoice},
		{"$value", TermScalar},
	}

	for _, tt := range tagged {
		k, err := Classify(tt.key)
		require.NoError(t, err, tt.key)
		assert.Equal(t, tt.term, k.Term, tt.key)
	}

	for _, key := range []string{"bad key", "name(NXDATA)", "(link)", "a(NX_lower)", "@", ""} {
		_, err := Classify(key)
		require.Error(t, err, key)

		var cerr *ClassificationError
		require.ErrorAs(t, err, &cerr, key)
		assert.Equal(t, key, cerr.Key)
	}
}
