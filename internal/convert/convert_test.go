package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"nxconvert/internal/ordered"
)

func fromYAML(t *testing.T, src string) *ordered.Map {
	t.Helper()

	m := ordered.New()
	require.NoError(t, yaml.Unmarshal([]byte(src), m))

	return m
}

func writeFile(t *testing.T, dir, name, src string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	return path
}

func TestConvertFieldWithValue(t *testing.T) {
	doc := fromYAML(t, `
category: base
type: group
source(NXsource):
  name:
    $value: synchrotron
`)

	got, err := Document(doc, ".", Options{})
	require.NoError(t, err)

	want := fromYAML(t, `
source:
  nxclass: NXsource
  name:
    nxclass: NXfield
    value: synchrotron
`)
	assert.Equal(t, want, got)
}

func TestConvertEmptyAttribute(t *testing.T) {
	doc := fromYAML(t, `
category: base
type: group
source(NXsource):
  \@default(NX_CHAR):
`)

	got, err := Document(doc, ".", Options{})
	require.NoError(t, err)

	// Present but explicitly empty, never omitted.
	want := fromYAML(t, `
source:
  nxclass: NXsource
  attrs:
    default:
`)
	assert.Equal(t, want, got)
}

func TestConvertEnumerationMapping(t *testing.T) {
	doc := fromYAML(t, `
category: base
type: group
source(NXsource):
  mode:
    enumeration:
      a:
      b:
`)

	got, err := Document(doc, ".", Options{})
	require.NoError(t, err)

	source, ok := got.Get("source")
	require.True(t, ok)

	mode, ok := source.(*ordered.Map).Get("mode")
	require.True(t, ok)

	enum, _ := mode.(*ordered.Map).Get("enumeration")
	assert.Equal(t, []any{"a", "b"}, enum)

	dtype, _ := mode.(*ordered.Map).Get("dtype")
	assert.Equal(t, "char", dtype)
}

func TestConvertExplicitCharEnumeration(t *testing.T) {
	// An explicit NX_CHAR token also normalizes to char once an
	// enumeration is present.
	doc := fromYAML(t, `
category: base
type: group
source(NXsource):
  mode(NX_CHAR):
    enumeration: [Single Bunch, Multi Bunch]
`)

	got, err := Document(doc, ".", Options{})
	require.NoError(t, err)

	source, _ := got.Get("source")
	mode, _ := source.(*ordered.Map).Get("mode")

	dtype, _ := mode.(*ordered.Map).Get("dtype")
	assert.Equal(t, "char", dtype)
}

func TestConvertNumericEnumeration(t *testing.T) {
	doc := fromYAML(t, `
category: base
type: group
source(NXsource):
  frequency:
    enumeration: [50, 60]
`)

	got, err := Document(doc, ".", Options{})
	require.NoError(t, err)

	source, _ := got.Get("source")
	freq, _ := source.(*ordered.Map).Get("frequency")

	dtype, _ := freq.(*ordered.Map).Get("dtype")
	assert.Equal(t, "int64", dtype)
}

func TestConvertUnitsFoldIntoAttrs(t *testing.T) {
	doc := fromYAML(t, `
category: base
type: group
source(NXsource):
  distance(NX_FLOAT):
    $value: 1.5
    $units: m
`)

	got, err := Document(doc, ".", Options{})
	require.NoError(t, err)

	want := fromYAML(t, `
source:
  nxclass: NXsource
  distance:
    nxclass: NXfield
    value: 1.5
    dtype: float32
    attrs:
      units: m
`)
	assert.Equal(t, want, got)
}

func TestConvertLink(t *testing.T) {
	doc := fromYAML(t, `
category: base
type: group
entry(NXentry):
  data(link):
    $value: /entry/instrument/detector/data
`)

	got, err := Document(doc, ".", Options{})
	require.NoError(t, err)

	want := fromYAML(t, `
entry:
  nxclass: NXentry
  data:
    nxclass: NXlink
    target: /entry/instrument/detector/data
`)
	assert.Equal(t, want, got)
}

func TestConvertChoice(t *testing.T) {
	doc := fromYAML(t, `
category: base
type: group
detector(NXdetector):
  pixel_shape(choice):
    (NXoff_geometry):
      doc: Shape as a mesh.
    (NXcylindrical_geometry):
      doc: Shape as cylinders.
`)

	got, err := Document(doc, ".", Options{KeepDocs: true})
	require.NoError(t, err)

	detector, _ := got.Get("detector")
	shape, ok := detector.(*ordered.Map).Get("pixel_shape")
	require.True(t, ok)

	class, _ := shape.(*ordered.Map).Get("nxclass")
	assert.Equal(t, "NXoff_geometry | NXcylindrical_geometry", class)

	doc2, _ := shape.(*ordered.Map).Get("doc")
	assert.Equal(t,
		"NXoff_geometry: Shape as a mesh. NXcylindrical_geometry: Shape as cylinders.", doc2)
}

func TestConvertSelfNamingRoot(t *testing.T) {
	doc := fromYAML(t, `
category: base
type: group
doc: Top level documentation, stripped with the metadata.
NXsource(NXobject):
  probe:
    $value: neutron
`)

	got, err := Document(doc, ".", DefaultOptions())
	require.NoError(t, err)

	source, ok := got.Get("source")
	require.True(t, ok)

	class, _ := source.(*ordered.Map).Get("nxclass")
	assert.Equal(t, "NXsource", class)
}

func TestConvertStructuralError(t *testing.T) {
	doc := fromYAML(t, `
category: base
type: group
source(NXsource):
monitor(NXmonitor):
`)

	_, err := Document(doc, ".", Options{})
	require.Error(t, err)

	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Len(t, serr.Keys, 2)
}

func TestReductionPropagation(t *testing.T) {
	// A group holding only a value-less field vanishes at every level.
	doc := fromYAML(t, `
category: base
type: group
source(NXsource):
  (NXaperture):
    shape(NX_CHAR):
      doc: No value anywhere below.
`)

	got, err := Document(doc, ".", Options{Reduce: true})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestConvertIdempotence(t *testing.T) {
	dir := t.TempDir()

	raw := `
category: base
type: group
source(NXsource):
  doc: The source.
  name:
    $value: synchrotron
  distance(NX_FLOAT):
    $value: 32.5
    $units: m
  \@default(NX_CHAR):
    $value: name
  (NXaperture):
    material:
      $value: steel
`
	path := writeFile(t, dir, "source.yml", raw)

	opts := Options{Sort: true, KeepDocs: true}

	first, err := File(path, opts)
	require.NoError(t, err)

	data, err := yaml.Marshal(first)
	require.NoError(t, err)

	again := writeFile(t, dir, "converted.yml", string(data))

	second, err := File(again, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDocumentDoesNotModifyInput(t *testing.T) {
	doc := fromYAML(t, `
category: base
type: group
source(NXsource):
  name:
    $value: synchrotron
`)

	_, err := Document(doc, ".", DefaultOptions())
	require.NoError(t, err)

	assert.True(t, doc.Has("category"))
	assert.True(t, doc.Has("type"))
}
