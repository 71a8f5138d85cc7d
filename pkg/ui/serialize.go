package ui

import (
	"github.com/go-weft/weft/pkg/state"
)

// TreeNode is the wire form of a Node, sent to sessions as JSON. Bound
// property values are not inlined; the client resolves them against the
// state it receives separately, so state pushes never require a tree
// resend.
type TreeNode struct {
	Tag      string            `json:"tag"`
	Props    map[string]any    `json:"props,omitempty"`
	Bind     map[string]string `json:"bind,omitempty"`
	On       map[string]string `json:"on,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*TreeNode       `json:"children,omitempty"`
}

// Serialize converts a node tree to its wire form against store.
// Every binding's default is registered: keys are declared, and unset
// keys receive their declared default so the first paint never reads a
// missing value.
func Serialize(n *Node, store *state.Store) *TreeNode {
	if n == nil {
		return nil
	}
	out := &TreeNode{Tag: n.Tag, Text: n.Text}
	if len(n.Props) > 0 {
		out.Props = make(map[string]any, len(n.Props))
		for k, v := range n.Props {
			out.Props[k] = v
		}
	}
	if len(n.Bindings) > 0 {
		out.Bind = make(map[string]string, len(n.Bindings))
		for prop, b := range n.Bindings {
			store.Declare(b.Key)
			if !store.Has(b.Key) && b.Default != nil {
				store.SetDefault(b.Key, b.Default)
			}
			out.Bind[prop] = b.Key
		}
	}
	if len(n.Events) > 0 {
		out.On = make(map[string]string, len(n.Events))
		for event, trigger := range n.Events {
			out.On[event] = trigger
		}
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, Serialize(c, store))
	}
	return out
}
