package collect

import (
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children map[string]*treeNode
	isDir    bool
}

// Tree renders entries as an indented tree. Directories come before files and
// names are sorted case-insensitively within each level.
func Tree(entries []FileEntry) string {
	root := &treeNode{children: map[string]*treeNode{}, isDir: true}
	for _, e := range entries {
		parts := strings.Split(e.Rel, "/")
		node := root
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part, children: map[string]*treeNode{}, isDir: i < len(parts)-1}
				node.children[part] = child
			}
			node = child
		}
	}

	var lines []string
	renderTree(root, "", &lines)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func renderTree(node *treeNode, prefix string, lines *[]string) {
	children := make([]*treeNode, 0, len(node.children))
	for _, c := range node.children {
		children = append(children, c)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].isDir != children[j].isDir {
			return children[i].isDir
		}
		li, lj := strings.ToLower(children[i].name), strings.ToLower(children[j].name)
		if li != lj {
			return li < lj
		}
		return children[i].name < children[j].name
	})

	for i, child := range children {
		connector := "├── "
		extension := "│   "
		if i == len(children)-1 {
			connector = "└── "
			extension = "    "
		}

		if child.isDir {
			*lines = append(*lines, prefix+connector+child.name+"/")
			renderTree(child, prefix+extension, lines)
			continue
		}
		*lines = append(*lines, prefix+connector+child.name)
	}
}
