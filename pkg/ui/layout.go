package ui

// Layouts mirror the page scaffolds the examples share: an app bar with
// a title and toolbar region, a main content region, and optionally a
// navigation drawer. A layout is just a Noder that assembles the
// scaffold tree.

// SinglePage is the standard one-page scaffold.
type SinglePage struct {
	// Title is the app bar title.
	Title string
	// Theme optionally binds the page theme ("light"/"dark") to a
	// state key.
	Theme Binding
	// IconTrigger, when set, fires the named server trigger when the
	// app bar icon is clicked.
	IconTrigger string
	// HideIcon removes the app bar icon.
	HideIcon bool
	// Toolbar nodes render on the right side of the app bar.
	Toolbar []Noder
	// Content nodes fill the page body.
	Content []Noder
	// FullHeight stretches the content region to the viewport.
	FullHeight bool
}

func (l SinglePage) Node() *Node {
	root := El("w-layout").Set("variant", "single-page")
	if l.FullHeight {
		root.Set("fullHeight", true)
	}
	if l.Theme.Key != "" {
		root.Bind("theme", l.Theme)
	}

	bar := El("w-app-bar")
	if !l.HideIcon {
		icon := El("w-app-icon")
		if l.IconTrigger != "" {
			icon.On("click", l.IconTrigger)
		}
		bar.Add(icon)
	}
	title := El("w-title")
	title.Text = l.Title
	bar.Add(title)
	toolbar := El("w-toolbar").Add(l.Toolbar...)
	bar.Add(toolbar)

	content := El("w-content").Add(l.Content...)
	return root.Add(bar, content)
}

// SinglePageWithDrawer extends SinglePage with a navigation drawer.
type SinglePageWithDrawer struct {
	Title      string
	Theme      Binding
	Toolbar    []Noder
	Drawer     []Noder
	Content    []Noder
	FullHeight bool
	// DrawerWidth is in pixels; zero means the client default.
	DrawerWidth int
}

func (l SinglePageWithDrawer) Node() *Node {
	root := SinglePage{
		Title:      l.Title,
		Theme:      l.Theme,
		Toolbar:    l.Toolbar,
		Content:    l.Content,
		FullHeight: l.FullHeight,
	}.Node()
	root.Set("variant", "single-page-with-drawer")

	drawer := El("w-drawer").Add(l.Drawer...)
	if l.DrawerWidth > 0 {
		drawer.Set("width", l.DrawerWidth)
	}
	// Drawer sits between the app bar and the content region.
	root.Children = append(root.Children[:1], append([]*Node{drawer}, root.Children[1:]...)...)
	return root
}
