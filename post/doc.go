// Package post implements the read-only document tree the cursor model
// navigates.
//
// A Post is an ordered list of sections. Markup sections and list items are
// markerable: they hold markers (text runs and atoms) and are addressed by an
// integer offset counted in UTF-16 code units, with every atom counting as a
// single unit. Cards are opaque leaf sections with exactly two offsets, head
// (0) and tail (1). Lists are containers of list items and are never
// addressed directly.
//
// Sections and markers are linked to their parents when the post is
// assembled with New. After that the tree is treated as immutable by this
// module.
package post
