package browsers

type NodeKind string

const (
	NodeKindFolder NodeKind = "folder"
	NodeKindLink   NodeKind = "link"
)

// Node is one entry in a browser's native bookmark hierarchy. Trees are
// built fresh on every scan and thrown away after flattening; they are
// never persisted.
type Node struct {
	Kind     NodeKind
	Title    string
	URL      string  // set only for links
	Children []*Node // set only for folders, in the browser's own order
}

func NewFolder(title string, children ...*Node) *Node {
	return &Node{Kind: NodeKindFolder, Title: title, Children: children}
}

func NewLink(title, url string) *Node {
	return &Node{Kind: NodeKindLink, Title: title, URL: url}
}

// CountLinks reports how many link nodes the subtree contains.
func (n *Node) CountLinks() int {
	if n == nil {
		return 0
	}
	if n.Kind == NodeKindLink {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += child.CountLinks()
	}
	return total
}
