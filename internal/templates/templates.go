// Package templates serves named boot-script template bodies to the plan
// resolver. Defaults ship embedded in the binary; a directory-backed source
// overrides them for local iteration on boot scripts.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed scripts
var embeddedScripts embed.FS

// Source serves raw template text by name.
type Source struct {
	fsys fs.FS
}

// Embedded returns a source backed by the templates compiled into the
// binary.
func Embedded() *Source {
	sub, err := fs.Sub(embeddedScripts, "scripts")
	if err != nil {
		// The scripts directory is embedded at build time; a failure
		// here is a build defect.
		panic(err)
	}
	return &Source{fsys: sub}
}

// Dir returns a source backed by a directory of template files.
func Dir(path string) *Source {
	return &Source{fsys: os.DirFS(path)}
}

// Lookup returns the raw text of the named template.
func (s *Source) Lookup(name string) (string, error) {
	body, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return "", fmt.Errorf("unknown template %q: %w", name, err)
	}
	return string(body), nil
}
