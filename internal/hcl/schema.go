package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a scene file.
type fileRoot struct {
	Shapes []*shapeBlock `hcl:"shape,block"`
}

// shapeBlock represents a `shape "<kind>" "<name>" { ... }` block. Every
// attribute other than `behavior` is a numeric argument for the kind.
type shapeBlock struct {
	Kind     string   `hcl:"kind,label"`
	Name     string   `hcl:"name,label"`
	Behavior string   `hcl:"behavior,optional"`
	Args     hcl.Body `hcl:",remain"`
}
