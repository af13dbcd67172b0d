package label

// Label is a free-text category tag with a display color. Events reference
// labels by name; the timeline core consumes the list as an opaque
// name-to-color lookup.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
