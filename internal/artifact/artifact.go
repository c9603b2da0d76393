package artifact

import (
	"fmt"
	"path"
)

// Root names one of the directories artifacts are written under.
type Root string

const (
	RootRoutes Root = "routes"
	RootPages  Root = "pages"
	RootOutput Root = "output"
)

// Kind classifies an artifact.
type Kind string

const (
	KindAPIRoute      Kind = "api-route"
	KindUIPage        Kind = "ui-page"
	KindImports       Kind = "imports"
	KindRegistrations Kind = "registrations"
	KindManifest      Kind = "manifest"
)

// Artifact is one generated file. Path is slash-separated and relative to
// its root.
type Artifact struct {
	Kind    Kind
	Root    Root
	Path    string
	Content []byte
}

func (a Artifact) String() string {
	return fmt.Sprintf("%s:%s", a.Root, a.Path)
}

// contentType is used for object storage uploads.
func (a Artifact) contentType() string {
	switch path.Ext(a.Path) {
	case ".yaml":
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// ImportsFile is the name of the import fragment of a series.
func ImportsFile(series string) string {
	return series + "-imports.txt"
}

// RegistrationsFile is the name of the registration fragment of a series.
func RegistrationsFile(series string) string {
	return series + "-registrations.txt"
}

// ManifestFile is the name of the manifest of a series.
func ManifestFile(series string) string {
	return series + "-manifest.yaml"
}
