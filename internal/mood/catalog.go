// Package mood defines the fixed enumeration of mood categories and their
// display palette. The catalog is built once at process start and never
// changes; the same category id maps to the same color across restarts so
// historical charts stay visually comparable.
package mood

import "strings"

// Count is the size of the fixed category enumeration.
const Count = 20

type Category struct {
	ID    int
	Label string // full label shown in keyboards and legends
	Short string // label without the emoji, drawn inside pie slices
	Color string // hex RGB without the leading '#'
}

var labels = [Count]string{
	"Positive 😊", "Tired 😩", "Sad 😢", "Angry 😠",
	"Amazed 🤩", "Irritated 😖", "Calm 🙂", "Energetic ⚡️",
	"Anxious 😰", "Inspired 🤯", "Bored 🫠", "In love 🥰",
	"Indifferent 🥱", "Scared 😱", "Proud 😎", "Envious 😒",
	"Confused 😓", "Playful 😏", "Focused 🤔", "Sick 🤧",
}

var catalog = buildCatalog()

func buildCatalog() [Count]Category {
	palette := viridis(Count)
	var cats [Count]Category
	for i, label := range labels {
		words := strings.Fields(label)
		short := strings.Join(words[:len(words)-1], " ")
		cats[i] = Category{ID: i, Label: label, Short: short, Color: palette[i]}
	}
	return cats
}

func Valid(id int) bool {
	return id >= 0 && id < Count
}

func Get(id int) (Category, bool) {
	if !Valid(id) {
		return Category{}, false
	}
	return catalog[id], true
}

// All returns the categories in id order.
func All() []Category {
	return catalog[:]
}
