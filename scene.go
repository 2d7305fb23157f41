// scene.go re-exports the YAML scene loader from internal/scene.
package parts

import (
	"io"

	"github.com/grindlemire/go-parts/internal/scene"
)

// Scene is a decoded scene file.
type Scene = scene.Scene

// ErrUnknownReference is returned for names a scene cannot resolve.
var ErrUnknownReference = scene.ErrUnknownReference

// LoadScene reads the scene file at path.
func LoadScene(path string) (*Scene, error) {
	return scene.Load(path)
}

// DecodeScene reads one scene document from r.
func DecodeScene(r io.Reader) (*Scene, error) {
	return scene.Decode(r)
}
