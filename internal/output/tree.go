package output

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	descriptionColumn = 40
)

// RenderFileTree renders files grouped under their directories, two levels
// deep, with descriptions aligned in a dimmed column.
// Files maps slash-separated relative paths to their descriptions.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	groups := make(map[string][]string)
	for p := range files {
		p = filepath.ToSlash(p)
		dir := path.Dir(p)
		groups[dir] = append(groups[dir], p)
	}
	dirs := make([]string, 0, len(groups))
	for dir, paths := range groups {
		sort.Strings(paths)
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(rootName+"/") + "\n")
	for i, dir := range dirs {
		connector, indent := treeEdge, treeVert
		if i == len(dirs)-1 {
			connector, indent = treeLast, treeSpace
		}
		sb.WriteString(connector + strings.TrimPrefix(dir, "./") + "/\n")

		paths := groups[dir]
		for j, p := range paths {
			leaf := treeEdge
			if j == len(paths)-1 {
				leaf = treeLast
			}
			line := indent + leaf + path.Base(p)
			if desc := files[p]; desc != "" {
				line += strings.Repeat(" ", max(descriptionColumn-len([]rune(line)), 2)) + StyleDim.Render(desc)
			}
			sb.WriteString(line + "\n")
		}
	}
	return sb.String()
}
