package model

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/geomkit/geomkit/pkg/geometry"
)

// ParseSTL reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func ParseSTL(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// ASCII files start with "solid "; anything shorter than the
	// keyword falls through to the binary parser, which reports
	// the real error
	header := make([]byte, 5)
	n, _ := io.ReadFull(file, header)

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	if n == 5 && string(header) == "solid" {
		return parseASCII(file)
	}
	return parseBinary(file)
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) < 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("line %d: malformed facet", lineNo)
			}
			coords, err := parseCoords(fields[2:5])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			currentNormal = geometry.NewFreeVector3(coords[0], coords[1], coords[2])

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: malformed vertex", lineNo)
			}
			coords, err := parseCoords(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			vertices = append(vertices, geometry.NewVector3(coords[0], coords[1], coords[2]))

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d vertices, expected 3", lineNo, len(vertices))
			}
			model.AddTriangle(stlTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseCoords(fields []string) ([3]float64, error) {
	var coords [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return coords, fmt.Errorf("invalid coordinate %q", field)
		}
		coords[i] = value
	}
	return coords, nil
}

// stlRecord is the 50-byte wire layout of one binary STL facet
type stlRecord struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model.Name = strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var record stlRecord
		if err := binary.Read(reader, binary.LittleEndian, &record); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(stlTriangle(
			freeVec(record.Normal),
			posVec(record.V1),
			posVec(record.V2),
			posVec(record.V3),
		))
	}

	return model, nil
}

// stlTriangle builds a triangle, recomputing a missing facet normal from
// the vertex winding. Exporters routinely write zero normals.
func stlTriangle(normal, v1, v2, v3 geometry.Vector3) geometry.Triangle {
	triangle := geometry.NewTriangle(normal, v1, v2, v3)
	if normal.LengthSquared() == 0 {
		if computed, err := triangle.CalculateNormal(); err == nil {
			triangle.Normal = computed
		}
	}
	return triangle
}

func posVec(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}

func freeVec(v [3]float32) geometry.Vector3 {
	return geometry.NewFreeVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
