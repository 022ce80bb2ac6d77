// Package resolve maps locations reported by a rendering surface back to
// logical cursor positions.
//
// A surface reports a cursor as (node, offset) where offset is in the node's
// own addressing: UTF-16 units inside a text node, a child index inside an
// element. The renderer owns the mapping from nodes to post sections and
// markers and hands it in as a read-only Lookup; the resolver never caches
// it.
package resolve
