package util

import "math/rand"

var handleColors = []string{
	"Teal",
	"Indigo",
	"Amber",
	"Rose",
	"Emerald",
	"Violet",
	"Slate",
	"Cyan",
}

var handleAnimals = []string{
	"Otter",
	"Hawk",
	"Panda",
	"Fox",
	"Lynx",
	"Bison",
	"Heron",
	"Coyote",
	"Seal",
	"Sparrow",
}

// GenerateHandle returns an ephemeral display handle like "TealOtter".
// Handles are per-post decoration, not identity: collisions across posts
// are expected and fine.
func GenerateHandle() string {
	return handleColors[rand.Intn(len(handleColors))] + handleAnimals[rand.Intn(len(handleAnimals))]
}
