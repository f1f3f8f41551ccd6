// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render rehydrates the derived documents (SPEC.md, MECH.md) from
// templates and the authoritative design data. Rendering is strict: a
// template that references a missing value fails instead of printing a
// placeholder.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/pdiddy/megadroid/internal/dof"
	"github.com/pdiddy/megadroid/pkg/types"
)

const templateExt = ".tmpl"

// ChangeControlHeading starts the SPEC.md section that is carried over
// verbatim between renders.
const ChangeControlHeading = "## 15. Change Control"

// Entry is one joint line in a rendered joint list.
type Entry struct {
	Name string
	Axis string
}

// Data is what templates see.
type Data struct {
	// LastUpdated is the render date (YYYY-MM-DD).
	LastUpdated string

	Variant string
	Legs    []Entry
	Torso   []Entry

	// DOFTotal is the aggregated DOF of Variant.
	DOFTotal int

	// DOFSection is the generated "Actuated Degrees of Freedom" Markdown.
	DOFSection string

	// Geometry is the whole geometry tree, addressed as
	// {{ .Geometry.legs.segments.thigh.length_mm }}.
	Geometry types.GeometryTree

	// ChangeControl is the preserved tail of the previous SPEC.md.
	ChangeControl string
}

// NewData assembles template data from a DOF report and a geometry tree.
func NewData(r dof.Report, geometry types.GeometryTree, now time.Time) Data {
	return Data{
		LastUpdated: now.Format("2006-01-02"),
		Variant:     r.Variant,
		Legs:        entries(r.Bilateral),
		Torso:       entries(r.Singular),
		DOFTotal:    r.Total,
		DOFSection:  dof.Markdown(r),
		Geometry:    geometry,
	}
}

func entries(joints []types.Joint) []Entry {
	out := make([]Entry, len(joints))
	for i, j := range joints {
		out[i] = Entry{Name: dof.DisplayName(j.Name), Axis: j.Axis}
	}
	return out
}

// PreserveTail returns text from the first line starting with heading to
// the end, trimmed. It reports false when the heading is absent.
func PreserveTail(text, heading string) (string, bool) {
	idx := 0
	if !strings.HasPrefix(text, heading) {
		idx = strings.Index(text, "\n"+heading)
		if idx < 0 {
			return "", false
		}
		idx++
	}
	return strings.TrimSpace(text[idx:]), true
}

// Renderer renders <name>.tmpl from its templates directory into <name>
// under its output directory.
type Renderer struct {
	templatesDir string
	outputDir    string
}

// NewRenderer creates a renderer.
func NewRenderer(templatesDir, outputDir string) *Renderer {
	return &Renderer{templatesDir: templatesDir, outputDir: outputDir}
}

// Render executes the template for document name (e.g. "SPEC.md").
func (r *Renderer) Render(name string, data Data) (string, error) {
	path := filepath.Join(r.templatesDir, name+templateExt)
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return RenderString(name, string(src), data)
}

// RenderString executes template source src.
func RenderString(name, src string, data Data) (string, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(template.FuncMap{"title": dof.DisplayName}).
		Parse(src)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// Rehydrate renders document name and writes it to the output directory.
// The file is written only when rendering succeeds.
func (r *Renderer) Rehydrate(name string, data Data, w io.Writer) error {
	out, err := r.Render(name, data)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	dest := filepath.Join(r.outputDir, name)
	tmp := dest + ".tmp"
	if err := os.WriteFile(tmp, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", name, err)
	}

	fmt.Fprintf(w, "%s successfully rehydrated.\n", name)
	return nil
}

// OutputPath returns where document name is written.
func (r *Renderer) OutputPath(name string) string {
	return filepath.Join(r.outputDir, name)
}
