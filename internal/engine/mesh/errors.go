package mesh

import "fmt"

// GeometryError reports buffers that cannot form a valid mesh.
// It is fatal to scene startup.
type GeometryError struct {
	Mesh   string
	Reason string
}

func (e *GeometryError) Error() string {
	if e.Mesh == "" {
		return fmt.Sprintf("geometry: %s", e.Reason)
	}
	return fmt.Sprintf("geometry %q: %s", e.Mesh, e.Reason)
}
