// Package view is a Bubble Tea component that displays a post and drives a
// logical cursor over it.
//
// Keys move the cursor with cursor.Position.Move and MoveWord. Mouse clicks
// are hit-tested against the rendered surface tree and resolved back into a
// position, the same path an editor takes for selection events.
package view
