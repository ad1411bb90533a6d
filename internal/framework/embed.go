package framework

import (
	"embed"
	"io/fs"
)

//go:embed data
var embedded embed.FS

// LoadEmbedded builds the index from the CSV resources compiled into the
// binary. This is the production path — the reference data ships with the
// server, so a deployed binary has no external file dependencies.
func LoadEmbedded() (*Index, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}
