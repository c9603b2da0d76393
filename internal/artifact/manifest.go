package artifact

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"sigs.k8s.io/yaml"
)

// Manifest records what one run produced. It carries no timestamps so that
// repeated runs write identical manifests.
type Manifest struct {
	Series     string          `json:"series"`
	StartPhase int             `json:"startPhase"`
	EndPhase   int             `json:"endPhase"`
	Artifacts  []ManifestEntry `json:"artifacts"`
}

// ManifestEntry describes one artifact.
type ManifestEntry struct {
	Root   Root   `json:"root"`
	Path   string `json:"path"`
	Kind   Kind   `json:"kind"`
	Size   int    `json:"size"`
	Digest string `json:"digest"`
}

// Digest returns the hex BLAKE2b-256 digest of content.
func Digest(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Add records an artifact.
func (m *Manifest) Add(a Artifact) {
	m.Artifacts = append(m.Artifacts, ManifestEntry{
		Root:   a.Root,
		Path:   a.Path,
		Kind:   a.Kind,
		Size:   len(a.Content),
		Digest: Digest(a.Content),
	})
}

// Marshal encodes the manifest as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return data, nil
}

// ParseManifest decodes a manifest written by Marshal.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
