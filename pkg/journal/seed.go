package journal

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"tableflip.dev/moodymap/pkg/entry"
)

//go:embed seed.json
var seedData []byte

var seed = mustParseSeed(seedData)

func mustParseSeed(b []byte) Document {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		panic(fmt.Sprintf("journal: invalid seed bundle: %v", err))
	}
	if d.Entries == nil {
		d.Entries = map[string]entry.Entry{}
	}
	return d
}

// Seed returns a fresh copy of the bundled example journal.
func Seed() Document {
	return seed.Clone()
}
