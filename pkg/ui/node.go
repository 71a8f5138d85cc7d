// Package ui declares the widget tree an application shows. Nodes are
// built once per view build and serialized to connected sessions; a
// node property either holds a static value or binds to a state key.
package ui

// Noder is anything that can produce a UI node. Widgets are value
// structs implementing Noder, so trees read as literals.
type Noder interface {
	Node() *Node
}

// Binding links a widget property to a state key. If the key is unset
// when the view is serialized, Default is written into the store first,
// so every bound property reflects a real value at first paint.
type Binding struct {
	// Key is the state key the property tracks.
	Key string
	// Default seeds the store when the key has no value yet.
	Default any
}

// Bind declares a property binding with a first-paint default.
func Bind(key string, def any) Binding {
	return Binding{Key: key, Default: def}
}

// BindKey declares a binding to an already-initialized key.
func BindKey(key string) Binding {
	return Binding{Key: key}
}

// Node is one element of the declared widget tree.
type Node struct {
	// Tag is the client-side component name (e.g. "v-slider").
	Tag string
	// Props holds static properties.
	Props map[string]any
	// Bindings maps reactive property names to state keys.
	Bindings map[string]Binding
	// Events maps client event names to server trigger names.
	Events map[string]string
	// Text is literal text content; may contain client-side template
	// expressions such as "{{ chartTitle }}".
	Text string
	// Children are nested nodes.
	Children []*Node
}

// El constructs a node with the given tag.
func El(tag string) *Node {
	return &Node{Tag: tag}
}

// Node implements Noder so raw nodes and widgets mix freely in trees.
func (n *Node) Node() *Node { return n }

// Set assigns a static property and returns the node.
func (n *Node) Set(prop string, value any) *Node {
	if n.Props == nil {
		n.Props = make(map[string]any)
	}
	n.Props[prop] = value
	return n
}

// Bind links prop to a state key and returns the node.
func (n *Node) Bind(prop string, b Binding) *Node {
	if b.Key == "" {
		return n
	}
	if n.Bindings == nil {
		n.Bindings = make(map[string]Binding)
	}
	n.Bindings[prop] = b
	return n
}

// On wires a client event to a server trigger name and returns the node.
func (n *Node) On(event, trigger string) *Node {
	if n.Events == nil {
		n.Events = make(map[string]string)
	}
	n.Events[event] = trigger
	return n
}

// Add appends children and returns the node. Nil children are skipped.
func (n *Node) Add(children ...Noder) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if child := c.Node(); child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Walk visits n and every descendant in depth-first order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// FindByTag returns the first node in the tree with the given tag, or
// nil.
func (n *Node) FindByTag(tag string) *Node {
	var found *Node
	n.Walk(func(node *Node) {
		if found == nil && node.Tag == tag {
			found = node
		}
	})
	return found
}

// FindBound returns the first node binding any property to key, or nil.
func (n *Node) FindBound(key string) *Node {
	var found *Node
	n.Walk(func(node *Node) {
		if found != nil {
			return
		}
		for _, b := range node.Bindings {
			if b.Key == key {
				found = node
				return
			}
		}
	})
	return found
}

// Group is a Noder that flattens a list of children without introducing
// an element of its own parent node.
type Group []Noder

// Node wraps the group in a plain container element.
func (g Group) Node() *Node {
	n := El("div")
	return n.Add(g...)
}
