package wordsplit

import (
	"bytes"
	"text/template"
)

const tmpl = `strict digraph {
    node [shape=box]
	{{ range .Nodes -}}
        "{{ .Range }}"
		[
			style="{{ nodeProp "style" . }}",
			fillcolor="{{ nodeProp "color" . }}"
		];
    {{ end -}}
    {{ range .Nodes -}}
    {{ if not .Leaf -}}
        "{{ .Range }}" -> "{{ .Left.Range }}" [label="  left", color="lightblue"];
        "{{ .Range }}" -> "{{ .Right.Range }}" [label="  right", color="lightblue"];
    {{ end -}}
    {{ end }}
}`

// DOT describes the task tree rooted at root.
// Leaves are filled, inner nodes are left plain.
func DOT(root *Node) ([]byte, error) {
	var nodes []*Node
	root.walk(func(n *Node) {
		nodes = append(nodes, n)
	})

	t := template.New("tmpl")
	t.Funcs(template.FuncMap{
		"nodeProp": func(prop string, n *Node) any {
			switch prop {
			case "color":
				if n.Leaf() {
					return "lightyellow"
				}
				return ""
			case "style":
				if n.Leaf() {
					return "filled"
				}
				return ""
			default:
				return ""
			}
		},
	})

	_, err := t.Parse(tmpl)
	if err != nil {
		return nil, err
	}

	var tpl bytes.Buffer
	if err = t.Execute(&tpl, struct{ Nodes []*Node }{nodes}); err != nil {
		return nil, err
	}
	return tpl.Bytes(), nil
}
