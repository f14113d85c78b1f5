package config

// ItemDef describes a kind of item that can be placed in a level.
type ItemDef struct {
	Name string
	Icon string
}

// ItemDefs is keyed by the "item" property of objects in a level's Items layer.
var ItemDefs = map[string]ItemDef{
	"ice_cream": {Name: "Ice Cream", Icon: "images/items/ice_cream.png"},
	"soda":      {Name: "Soda", Icon: "images/items/soda.png"},
}
