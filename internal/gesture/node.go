package gesture

// Kind is the role of an element under the pointer.
type Kind string

const (
	KindNone     Kind = ""
	KindRegion   Kind = "region"
	KindButton   Kind = "button"
	KindInput    Kind = "input"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
	KindLink     Kind = "link"
)

// ResizeHandleMarker marks nodes that belong to a resize handle.
const ResizeHandleMarker = "resize-handle"

// Node is one element of the chain from the element under the pointer up to
// the wrapped region. The host builds the chain at press time.
type Node struct {
	ID     string
	Kind   Kind
	Marker string
	Corner Corner
	Parent *Node
}

// HandleNode returns a resize handle node for corner c.
func HandleNode(c Corner, parent *Node) *Node {
	return &Node{
		ID:     ResizeHandleMarker + "-" + c.String(),
		Marker: ResizeHandleMarker,
		Corner: c,
		Parent: parent,
	}
}

// IsHandle reports whether n is a resize handle.
func (n *Node) IsHandle() bool {
	return n != nil && n.Marker == ResizeHandleMarker
}

// Closest walks from n towards the region root and returns the first node
// matching fn. The region node itself is the last one inspected.
func (n *Node) Closest(fn func(*Node) bool) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if fn(cur) {
			return cur
		}
		if cur.Kind == KindRegion {
			break
		}
	}
	return nil
}

// ExcludeFunc reports whether a press on n must not start a drag.
type ExcludeFunc func(n *Node) bool

// ExcludeKinds builds an ExcludeFunc matching the given kinds, and resize
// handles, on the node or any ancestor inside the region.
func ExcludeKinds(kinds ...Kind) ExcludeFunc {
	set := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return func(n *Node) bool {
		return n.Closest(func(cur *Node) bool {
			return set[cur.Kind] || cur.IsHandle()
		}) != nil
	}
}

// DefaultExclude keeps presses on nested interactive controls and resize
// handles from starting a drag.
var DefaultExclude = ExcludeKinds(KindButton, KindInput, KindTextarea, KindSelect, KindLink)
