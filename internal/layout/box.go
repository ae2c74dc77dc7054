// Package layout defines the renderer-agnostic box tree handed to the
// external paginating renderer, and the pagination engine that decides
// every box's break-before and no-split hints.
package layout

import "github.com/jmallet/cv-builder/internal/types"

// BoxKind classifies a box for styling and inspection.
type BoxKind string

// Box kinds emitted by the template renderers.
const (
	KindPage    BoxKind = "page"    // top-level flow container
	KindColumn  BoxKind = "column"  // vertical band inside a page
	KindHeader  BoxKind = "header"  // personal-info chrome
	KindSection BoxKind = "section" // one CV category
	KindTitle   BoxKind = "title"   // section title
	KindItem    BoxKind = "item"    // one layout-atomic entry
	KindText    BoxKind = "text"    // leaf text
	KindTag     BoxKind = "tag"     // small inline label
	KindHidden  BoxKind = "hidden"  // invisible text chrome
)

// Box is one node of the rendered tree. The external renderer lays
// boxes onto fixed-size pages, forcing a page break before any box with
// BreakBefore set and refusing to split a box with NoSplit set; an
// over-tall no-split box overflows rather than being divided.
type Box struct {
	Kind        BoxKind           `json:"kind"`
	Class       string            `json:"class,omitempty"`
	Text        string            `json:"text,omitempty"`
	Section     types.SectionType `json:"section,omitempty"`
	ItemID      string            `json:"itemId,omitempty"`
	BreakBefore bool              `json:"breakBefore"`
	NoSplit     bool              `json:"noSplit"`
	Children    []Box             `json:"children,omitempty"`
}

// Paper sizes accepted by the export layer.
const (
	PaperA4     = "a4"
	PaperLetter = "letter"
)

// Document is a fully rendered box tree for one template pass.
type Document struct {
	Template string            `json:"template"`
	Language string            `json:"language"`
	Paper    string            `json:"paper"`
	Theme    types.ThemeConfig `json:"theme"`
	Boxes    []Box             `json:"boxes"`
}

// Walk visits every box of the tree in render order.
func (d *Document) Walk(visit func(*Box)) {
	var walk func(boxes []Box)
	walk = func(boxes []Box) {
		for i := range boxes {
			visit(&boxes[i])
			walk(boxes[i].Children)
		}
	}
	walk(d.Boxes)
}
