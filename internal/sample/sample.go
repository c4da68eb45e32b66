// Package sample holds the static data the gallery widgets display.
package sample

// Point is one category/value pair of the chart series.
type Point struct {
	Name  string
	Value float64
}

// InventoryItem is one row of the inventory grid.
type InventoryItem struct {
	ID       int
	Name     string
	Quantity int
	Price    float64
}

// Option is a select entry.
type Option struct {
	Value string
	Label string
}

// FAQ is an accordion entry.
type FAQ struct {
	Question string
	Answer   string
}

// Series returns the monthly values plotted by the line chart.
func Series() []Point {
	return []Point{
		{Name: "Jan", Value: 400},
		{Name: "Feb", Value: 300},
		{Name: "Mar", Value: 600},
		{Name: "Apr", Value: 800},
		{Name: "May", Value: 500},
		{Name: "Jun", Value: 700},
	}
}

// Inventory returns the rows shown in the inventory grid.
func Inventory() []InventoryItem {
	return []InventoryItem{
		{ID: 1, Name: "Widget A", Quantity: 100, Price: 9.99},
		{ID: 2, Name: "Gadget B", Quantity: 50, Price: 19.99},
		{ID: 3, Name: "Doohickey C", Quantity: 200, Price: 5.99},
		{ID: 4, Name: "Thingamajig D", Quantity: 75, Price: 14.99},
		{ID: 5, Name: "Whatchamacallit E", Quantity: 30, Price: 24.99},
	}
}

// Fruits returns the options of the select dropdown.
func Fruits() []Option {
	return []Option{
		{Value: "apple", Label: "Apple"},
		{Value: "banana", Label: "Banana"},
		{Value: "orange", Label: "Orange"},
	}
}

// FAQs returns the accordion items.
func FAQs() []FAQ {
	return []FAQ{
		{Question: "Is it accessible?", Answer: "Yes. Every widget is reachable from the keyboard."},
		{Question: "Is it styled?", Answer: "Yes. It comes with default styles that match the other components' aesthetic."},
	}
}
