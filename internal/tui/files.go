package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"vizkit/pkg/colorscale"
	"vizkit/pkg/format"
	"vizkit/pkg/projection"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".geojson" || ext == ".json" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no geojson files in current directory"
	}
}

// loadPath reads a GeoJSON file into the model.
func (m *Model) loadPath(p string) {
	data, err := os.ReadFile(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.loadData(p, data)
}

// loadData parses a feature collection, recenters the projection on it and
// rebuilds the feature color ramp.
func (m *Model) loadData(p string, data []byte) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		m.status = "geojson error: " + err.Error()
		return
	}
	if len(fc.Features) == 0 {
		m.status = "geojson: no features"
		return
	}

	bound, vertices := collectionStats(fc)
	m.fc = fc
	m.selPath = p
	m.merc = projection.NewMercator(bound.Center())
	m.ramp = colorscale.MustLinear([2]float64{0, float64(max(1, len(fc.Features)-1))}, rampLow, rampHigh)
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.status = fmt.Sprintf("loaded: %s  features: %s  vertices: %s",
		filepath.Base(p), format.Comma(float64(len(fc.Features))), format.Comma(float64(vertices)))

	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// collectionStats returns the union bound of all feature geometries and the
// total vertex count.
func collectionStats(fc *geojson.FeatureCollection) (orb.Bound, int) {
	var bound orb.Bound
	first := true
	vertices := 0
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		b := f.Geometry.Bound()
		if first {
			bound = b
			first = false
		} else {
			bound = bound.Union(b)
		}
		vertices += countVertices(f.Geometry)
	}
	return bound, vertices
}

func countVertices(g orb.Geometry) int {
	switch t := g.(type) {
	case orb.Point:
		return 1
	case orb.MultiPoint:
		return len(t)
	case orb.LineString:
		return len(t)
	case orb.MultiLineString:
		n := 0
		for _, ls := range t {
			n += len(ls)
		}
		return n
	case orb.Ring:
		return len(t)
	case orb.Polygon:
		n := 0
		for _, r := range t {
			n += len(r)
		}
		return n
	case orb.MultiPolygon:
		n := 0
		for _, p := range t {
			n += countVertices(p)
		}
		return n
	case orb.Collection:
		n := 0
		for _, c := range t {
			n += countVertices(c)
		}
		return n
	default:
		return 0
	}
}

// colorFor returns the ramp color hex for feature i.
func (m Model) colorFor(i int) string {
	if m.ramp == nil {
		return ""
	}
	return m.ramp.At(float64(i)).Hex()
}
