package config

import "fmt"

// Model is the unified representation of a scene: an ordered list of items,
// each pairing a payload with a behavior.
type Model struct {
	Items []*Item
}

// Item is one payload/behavior pairing.
type Item struct {
	Kind     string
	Name     string
	Behavior string // empty means the item does nothing when performed
	Args     map[string]float64
	Source   string // file the item was read from, if any
}

// ID returns the "kind.name" address of the item.
func (i *Item) ID() string {
	return fmt.Sprintf("%s.%s", i.Kind, i.Name)
}

// Default returns the built-in demonstration scene: a circle of radius 2 and
// a square of side 3, both printed.
func Default() *Model {
	return &Model{
		Items: []*Item{
			{Kind: "circle", Name: "demo", Behavior: "print", Args: map[string]float64{"radius": 2.0}},
			{Kind: "square", Name: "demo", Behavior: "print", Args: map[string]float64{"side": 3.0}},
		},
	}
}
