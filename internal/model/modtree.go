package model

import "sort"

// Origins reported for tree nodes.
const (
	OriginProject  = "project"  // descriptor found in a source root
	OriginExternal = "external" // expected on the classpath (GWT SDK, library jars)
)

// ModuleInfo is what the tree builder needs to know about one module.
type ModuleInfo struct {
	Name           string
	DescriptorPath string
	Inherits       []string // names from <inherits name="..."/>
}

// TreeNode is a single node in the recursive <inherits> tree. Each node
// carries its full subtree inline so the tree can be rendered at any depth.
//
// Example:
//
//	com.example.App -> children: [com.example.Shared -> children: [com.google.gwt.user.User]]
type TreeNode struct {
	Name       string      `json:"name"`
	Origin     string      `json:"origin"`
	Descriptor string      `json:"descriptor,omitempty"`
	Children   []*TreeNode `json:"children,omitempty"`
}

// ModuleTree holds the inheritance hierarchy of the requested modules.
type ModuleTree struct {
	// ByName provides lookup of project modules by dotted name.
	ByName map[string]*ModuleInfo

	// Roots has one node per requested module, each carrying its full
	// subtree of inherited modules.
	Roots []*TreeNode
}

// BuildModuleTree builds the inheritance tree rooted at the requested
// module names. Inherited names that are not among modules become external
// leaves.
func BuildModuleTree(requested []string, modules []*ModuleInfo) *ModuleTree {
	tree := &ModuleTree{
		ByName: make(map[string]*ModuleInfo, len(modules)),
	}
	for _, m := range modules {
		tree.ByName[m.Name] = m
	}

	tree.Roots = tree.buildTree(requested)
	return tree
}

// workItem holds a pending node to be expanded along with the set of ancestor
// names on the path from the root to this node (used for cycle detection).
type workItem struct {
	info      *ModuleInfo
	node      *TreeNode
	ancestors map[string]bool
}

// buildTree expands the tree level by level using a queue instead of
// recursion. A child that would close a cycle is emitted as a leaf.
func (t *ModuleTree) buildTree(requested []string) []*TreeNode {
	names := make([]string, len(requested))
	copy(names, requested)
	sort.Strings(names)

	roots := make([]*TreeNode, 0, len(names))
	queue := make([]workItem, 0, len(names))

	seenRoot := map[string]bool{}
	for _, name := range names {
		if seenRoot[name] {
			continue
		}
		seenRoot[name] = true

		info := t.ByName[name]
		node := t.newNode(name, info)
		roots = append(roots, node)
		if info == nil {
			continue
		}
		queue = append(queue, workItem{info: info, node: node, ancestors: map[string]bool{name: true}})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		childNames := make([]string, len(item.info.Inherits))
		copy(childNames, item.info.Inherits)
		sort.Strings(childNames)

		for i, childName := range childNames {
			if i > 0 && childNames[i-1] == childName {
				continue
			}
			childInfo := t.ByName[childName]
			childNode := t.newNode(childName, childInfo)
			item.node.Children = append(item.node.Children, childNode)

			if childInfo == nil || item.ancestors[childName] {
				continue
			}

			childAncestors := make(map[string]bool, len(item.ancestors)+1)
			for k := range item.ancestors {
				childAncestors[k] = true
			}
			childAncestors[childName] = true

			queue = append(queue, workItem{info: childInfo, node: childNode, ancestors: childAncestors})
		}
	}

	return roots
}

func (t *ModuleTree) newNode(name string, info *ModuleInfo) *TreeNode {
	if info == nil {
		return &TreeNode{Name: name, Origin: OriginExternal}
	}
	return &TreeNode{Name: name, Origin: OriginProject, Descriptor: info.DescriptorPath}
}
