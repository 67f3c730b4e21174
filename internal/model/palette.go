package model

// Color is one named entry of the fixed event palette.
type Color struct {
	Name  string
	Value string
}

// Palette is the fixed ordered color list. Events reference entries by
// name only; the first entry is the default.
var Palette = []Color{
	{Name: "blue", Value: "#4a90d9"},
	{Name: "green", Value: "#50b86c"},
	{Name: "red", Value: "#d9534f"},
	{Name: "purple", Value: "#9b59b6"},
	{Name: "orange", Value: "#f0883e"},
}

func DefaultColor() Color {
	return Palette[0]
}

func ColorByName(name string) Color {
	for _, c := range Palette {
		if c.Name == name {
			return c
		}
	}
	return DefaultColor()
}
