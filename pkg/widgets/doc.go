// Package widgets provides the component constructors applications
// declare their views with. Widgets are value structs implementing
// ui.Noder, so a view reads as a literal tree:
//
//	ui.SinglePage{
//	    Title: "Cone Application",
//	    Toolbar: []ui.Noder{
//	        widgets.Spacer{},
//	        widgets.Slider{Model: ui.Bind("resolution", 6), Min: 3, Max: 60, Step: 1},
//	    },
//	}
//
// Reactive properties take a ui.Binding; static properties are plain
// fields. Zero-valued optional fields are omitted from the serialized
// node.
package widgets
