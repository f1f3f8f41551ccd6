// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package design loads the authoritative robot description (joints.yaml,
// geometry.yaml) and the rendered documents checked against it.
// Every failure is returned as a *ConfigLoadError.
package design

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/megadroid/pkg/types"
)

// LoadJoints reads and validates a joints file and returns its joints
// sorted by name.
func LoadJoints(path string) ([]types.Joint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigLoadError(path, err)
	}
	joints, err := ParseJoints(data)
	if err != nil {
		return nil, NewConfigLoadError(path, err)
	}
	return joints, nil
}

// ParseJoints decodes joints.yaml content. The document is checked against
// the joints schema before it is converted to typed records, so a wrongly
// typed flag fails here rather than in the middle of a check.
func ParseJoints(data []byte) ([]types.Joint, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		return nil, errors.New("file is empty")
	}
	if m, ok := doc.(map[string]any); ok {
		if _, ok := m["joints"]; !ok {
			return nil, errors.New("no top-level 'joints' key")
		}
	}
	if err := validateAgainst(jointsSchema, doc); err != nil {
		return nil, err
	}

	var file types.JointsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding joints: %w", err)
	}
	if len(file.Joints) == 0 {
		return nil, errors.New("no joints defined")
	}

	joints := make([]types.Joint, 0, len(file.Joints))
	for name, spec := range file.Joints {
		joints = append(joints, types.Joint{Name: name, JointSpec: spec})
	}
	sort.Slice(joints, func(i, j int) bool { return joints[i].Name < joints[j].Name })
	return joints, nil
}

// LoadGeometry reads a geometry file into a GeometryTree.
func LoadGeometry(path string) (types.GeometryTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigLoadError(path, err)
	}
	tree, err := ParseGeometry(data)
	if err != nil {
		return nil, NewConfigLoadError(path, err)
	}
	return tree, nil
}

// ParseGeometry decodes geometry.yaml content. The root must be a mapping.
func ParseGeometry(data []byte) (types.GeometryTree, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		return nil, errors.New("file is empty")
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("root must be a mapping, got %T", doc)
	}
	return types.GeometryTree(m), nil
}

// LoadDocuments reads each rendered document in order.
func LoadDocuments(paths []string) ([]types.Document, error) {
	docs := make([]types.Document, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, NewConfigLoadError(p, err)
		}
		docs = append(docs, types.Document{Name: p, Text: string(data)})
	}
	return docs, nil
}
