package lr

import (
	"fmt"
	"strings"
)

const (
	treeLevelEmpty               = "        "
	treeLevelOngoing             = "  |     "
	treeLevelPrefix              = "  |%s: "
	treeLevelPrefixLast          = `  \%s: `
	treeLevelPrefixNamePadChar   = '-'
	treeLevelPrefixNamePadAmount = 3
)

func makeTreeLevelPrefix(msg string) string {
	for len([]rune(msg)) < treeLevelPrefixNamePadAmount {
		msg = string(treeLevelPrefixNamePadChar) + msg
	}
	return fmt.Sprintf(treeLevelPrefix, msg)
}

func makeTreeLevelPrefixLast(msg string) string {
	for len([]rune(msg)) < treeLevelPrefixNamePadAmount {
		msg = string(treeLevelPrefixNamePadChar) + msg
	}
	return fmt.Sprintf(treeLevelPrefixLast, msg)
}

// Node is a node of a parse tree. The same type is used for terminals and
// nonterminals; a node built from a token has no children, and a node built by
// a reduction owns the nodes of the right-hand side of the production it was
// reduced by, in production order.
type Node struct {
	// Symbol is the grammar symbol at this node.
	Symbol string

	// Data is the synthesized value of the node. For leaves it is the data
	// of the token the leaf was created from.
	Data string

	// Children is all children of the node, in left-to-right order.
	Children []*Node
}

// Leaf returns whether the node has no children.
func (n Node) Leaf() bool {
	return len(n.Children) == 0
}

// String returns a prettified representation of the entire parse tree suitable
// for use in line-by-line comparisons of tree structure. Two parse trees are
// considered semantically identical if they produce identical String() output.
func (n Node) String() string {
	return n.leveledStr("", "")
}

// Copy returns a duplicate, deeply-copied parse tree.
func (n Node) Copy() Node {
	newNode := Node{
		Symbol: n.Symbol,
		Data:   n.Data,
	}

	if n.Children != nil {
		newNode.Children = make([]*Node, len(n.Children))
	}

	for i := range n.Children {
		if n.Children[i] != nil {
			newChild := n.Children[i].Copy()
			newNode.Children[i] = &newChild
		}
	}

	return newNode
}

func (n Node) leveledStr(firstPrefix, contPrefix string) string {
	var sb strings.Builder

	sb.WriteString(firstPrefix)
	if n.Leaf() {
		sb.WriteString(fmt.Sprintf("(TERM %q = %q)", n.Symbol, n.Data))
	} else {
		sb.WriteString(fmt.Sprintf("( %s = %q )", n.Symbol, n.Data))
	}

	for i := range n.Children {
		sb.WriteRune('\n')
		var leveledFirstPrefix string
		var leveledContPrefix string
		if i+1 < len(n.Children) {
			leveledFirstPrefix = contPrefix + makeTreeLevelPrefix("")
			leveledContPrefix = contPrefix + treeLevelOngoing
		} else {
			leveledFirstPrefix = contPrefix + makeTreeLevelPrefixLast("")
			leveledContPrefix = contPrefix + treeLevelEmpty
		}
		itemOut := n.Children[i].leveledStr(leveledFirstPrefix, leveledContPrefix)
		sb.WriteString(itemOut)
	}

	return sb.String()
}

// Equal returns whether the Node is equal to the given object. If the given
// object is not a Node or *Node, returns false, else returns whether the two
// trees have the exact same structure and data.
func (n Node) Equal(o any) bool {
	other, ok := o.(Node)
	if !ok {
		// also okay if its the pointer value, as long as its non-nil
		otherPtr, ok := o.(*Node)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if n.Symbol != other.Symbol {
		return false
	} else if n.Data != other.Data {
		return false
	} else if len(n.Children) != len(other.Children) {
		return false
	}

	for i := range n.Children {
		if n.Children[i] == nil || other.Children[i] == nil {
			if n.Children[i] != other.Children[i] {
				return false
			}
			continue
		}
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}
