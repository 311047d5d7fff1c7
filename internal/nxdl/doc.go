// Package nxdl classifies and parses the encoded NeXus definition
// dialect (nxdl.yml), where the structural role of a node is embedded
// in its mapping key rather than in an explicit type tag.
//
// # Key grammar
//
// Every key matches exactly one of six lexical forms:
//
//	efficiency(NXdata), (NXdata), (NXdata)efficiency   group
//	start_time(NX_DATE_TIME), depends_on               field
//	\@default(NX_CHAR), @default, \\@default           attribute
//	data(link)                                          link
//	pixel_shape(choice)                                 choice
//	$value, $units, $nxdlref                            scalar property
//
// Classify resolves a key to a Term plus its extracted name and tokens,
// or fails with a *ClassificationError. There is no silent fallthrough:
// a key matching none of the forms is a hard error.
//
// ParseLevel applies Classify across one mapping level and buckets the
// children into typed lists (groups, fields, attributes, links) plus a
// residual property map, recursing through nested mappings.
package nxdl
