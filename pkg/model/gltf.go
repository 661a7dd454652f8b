package model

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/geomkit/geomkit/pkg/geometry"
)

// LoadGLTF reads a glTF or GLB file and returns its triangle meshes as a
// single model. Only embedded buffers are supported; facet normals are
// recomputed from the vertex winding.
func LoadGLTF(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return modelFromDocument(doc, name)
}

// modelFromDocument flattens a glTF document's triangle primitives into
// a single triangle soup
func modelFromDocument(doc *gltf.Document, name string) (*Model, error) {
	model := NewModel(name)

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", mesh.Name, err)
			}

			var indices []int
			if prim.Indices != nil {
				indices, err = readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: %w", mesh.Name, err)
				}
			} else {
				indices = make([]int, len(positions))
				for i := range indices {
					indices[i] = i
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				i1, i2, i3 := indices[i], indices[i+1], indices[i+2]
				if i1 >= len(positions) || i2 >= len(positions) || i3 >= len(positions) {
					return nil, fmt.Errorf("mesh %q: index out of range", mesh.Name)
				}

				triangle := geometry.NewTriangle(
					geometry.Vector3{},
					positions[i1],
					positions[i2],
					positions[i3],
				)
				// Degenerate triangles keep a zero normal
				if normal, err := triangle.CalculateNormal(); err == nil {
					triangle.Normal = normal
				}
				model.AddTriangle(triangle)
			}
		}
	}

	return model, nil
}

// readVec3Accessor reads Vec3 float data from a glTF accessor
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]geometry.Vector3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("accessor %d: expected Vec3 data, got %v", accessorIdx, accessor.Type)
	}

	const elemSize = 12 // 3 * float32
	data, stride, err := accessorBytes(doc, accessor, elemSize)
	if err != nil {
		return nil, err
	}

	result := make([]geometry.Vector3, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		off := i * stride
		result[i] = geometry.NewVector3(
			float64(readFloat32(data[off:])),
			float64(readFloat32(data[off+4:])),
			float64(readFloat32(data[off+8:])),
		)
	}
	return result, nil
}

// readIndices reads scalar index data from a glTF accessor
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("accessor %d: expected scalar indices, got %v", accessorIdx, accessor.Type)
	}

	var elemSize int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		elemSize = 1
	case gltf.ComponentUshort:
		elemSize = 2
	case gltf.ComponentUint:
		elemSize = 4
	default:
		return nil, fmt.Errorf("accessor %d: unsupported index component type %v", accessorIdx, accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, elemSize)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		off := i * stride
		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			result[i] = int(data[off])
		case gltf.ComponentUshort:
			result[i] = int(binary.LittleEndian.Uint16(data[off:]))
		case gltf.ComponentUint:
			result[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return result, nil
}

// accessorBytes resolves an accessor to its raw buffer window and the
// stride between elements
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor without buffer view is not supported")
	}

	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]
	if buffer.URI != "" {
		return nil, 0, fmt.Errorf("external buffers are not supported")
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elemSize
	}

	start := view.ByteOffset + accessor.ByteOffset
	if accessor.Count == 0 {
		return nil, stride, nil
	}
	end := start + (accessor.Count-1)*stride + elemSize
	if end > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor data exceeds buffer size")
	}

	return buffer.Data[start:end], stride, nil
}

// readFloat32 reads a little-endian float32
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
