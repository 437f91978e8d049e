package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/0x0FACED/go-trimesh/pkg/kernel"
	"github.com/0x0FACED/go-trimesh/pkg/logger"
	"github.com/0x0FACED/go-trimesh/pkg/trimesh"
	"github.com/0x0FACED/go-trimesh/static"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
)

// builder wraps a mesh with an endpoint-pair index so that grid cells can
// share edges while being assembled one triangle at a time.
type builder struct {
	mesh      *trimesh.Mesh
	halfedges map[[2]trimesh.NodeHandle]trimesh.HalfedgeHandle
}

func newBuilder(mesh *trimesh.Mesh) *builder {
	return &builder{
		mesh:      mesh,
		halfedges: make(map[[2]trimesh.NodeHandle]trimesh.HalfedgeHandle),
	}
}

// edge returns the halfedge n1->n2, creating the edge if it is not there yet.
func (b *builder) edge(n1, n2 trimesh.NodeHandle) (trimesh.HalfedgeHandle, error) {
	if h, ok := b.halfedges[[2]trimesh.NodeHandle{n1, n2}]; ok {
		return h, nil
	}
	h, err := b.mesh.AddEdge(n1, n2)
	if err != nil {
		return trimesh.HalfedgeHandle{}, err
	}
	b.halfedges[[2]trimesh.NodeHandle{n1, n2}] = h
	b.halfedges[[2]trimesh.NodeHandle{n2, n1}] = h.Pair()
	return h, nil
}

// triangle closes a face over the counterclockwise node cycle n1, n2, n3.
func (b *builder) triangle(n1, n2, n3 trimesh.NodeHandle) error {
	h1, err := b.edge(n1, n2)
	if err != nil {
		return err
	}
	h2, err := b.edge(n2, n3)
	if err != nil {
		return err
	}
	h3, err := b.edge(n3, n1)
	if err != nil {
		return err
	}
	_, err = b.mesh.AddFace(h1, h2, h3)
	return err
}

// buildGridMesh triangulates a regular (cells+1)x(cells+1) grid of nodes
// covering width x height, two triangles per cell.
func buildGridMesh(mesh *trimesh.Mesh, width, height float64, cells int) error {
	b := newBuilder(mesh)

	nodes := make([][]trimesh.NodeHandle, cells+1)
	for i := range nodes {
		nodes[i] = make([]trimesh.NodeHandle, cells+1)
		for j := range nodes[i] {
			p := kernel.Point2{
				X: width * float64(j) / float64(cells),
				Y: height * float64(i) / float64(cells),
			}
			nodes[i][j] = mesh.AddNode(p)
		}
	}

	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			bl := nodes[i][j]
			br := nodes[i][j+1]
			tr := nodes[i+1][j+1]
			tl := nodes[i+1][j]
			if err := b.triangle(bl, br, tr); err != nil {
				return err
			}
			if err := b.triangle(bl, tr, tl); err != nil {
				return err
			}
		}
	}

	return nil
}

// refineRandom inserts up to n random points into the mesh, splitting the
// face or edge each point lands on. Points that land on a node or outside
// the mesh are skipped.
func refineRandom(mesh *trimesh.Mesh, n int, width, height float64) error {
	for i := 0; i < n; i++ {
		p := kernel.Point2{X: rand.Float64() * width, Y: rand.Float64() * height}

		loc := mesh.Locate(p)
		switch loc.Kind {
		case trimesh.InFace:
			if _, err := mesh.SplitFace(loc.Face, p); err != nil {
				return err
			}
		case trimesh.OnEdge:
			if _, err := mesh.SplitEdge(loc.Edge, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Half-edge triangulation",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Width",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Height",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// meshToEcharts renders the mesh nodes as a scatter with the edges overlaid
// as line series.
func meshToEcharts(mesh *trimesh.Mesh) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0, mesh.NumNodes())
	for n := range mesh.Nodes() {
		p := mesh.Position(n)
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}

	prepareScatter(scatter)

	scatter.AddSeries("Nodes", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for e := range mesh.Edges() {
		he := e.Halfedge(0)
		a := mesh.Position(mesh.Origin(he))
		b := mesh.Position(mesh.Target(he))

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		line.AddSeries("Edges", []opts.LineData{
			{Value: []float64{a.X, a.Y}},
			{Value: []float64{b.X, b.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}

// meshHandler serves the page with the rendered mesh and the build log.
func meshHandler(w http.ResponseWriter, r *http.Request) {
	width := 1000
	height := 1000
	cells := 4
	inserts := 20

	if r.Method == http.MethodPost {
		r.ParseForm()
		width, _ = strconv.Atoi(r.FormValue("width"))
		height, _ = strconv.Atoi(r.FormValue("height"))
		cells, _ = strconv.Atoi(r.FormValue("grid"))
		inserts, _ = strconv.Atoi(r.FormValue("inserts"))
	}
	if cells < 1 {
		cells = 1
	}

	log := logger.New()
	defer log.ClearLogs()

	mesh := trimesh.New(nil, log)

	if err := buildGridMesh(mesh, float64(width), float64(height), cells); err != nil {
		log.Error("[app] grid build failed", zap.Error(err))
	} else if err := refineRandom(mesh, inserts, float64(width), float64(height)); err != nil {
		log.Error("[app] refinement failed", zap.Error(err))
	}

	if err := mesh.Check(); err != nil {
		log.Error("[app] mesh inconsistent", zap.Error(err))
	}

	bbox := mesh.BoundingBox()
	log.Info("[app] mesh built",
		zap.Int("nodes", mesh.NumNodes()),
		zap.Int("edges", mesh.NumEdges()),
		zap.Int("faces", mesh.NumFaces()),
		zap.Float64("bbox_w", bbox.Width()),
		zap.Float64("bbox_h", bbox.Height()),
	)

	scatter := meshToEcharts(mesh)

	fmt.Fprintln(w, static.Part1)

	err := scatter.Render(w)
	if err != nil {
		fmt.Println("Error rendering mesh:", err)
	}

	fmt.Fprintln(w, static.Part2)

	for _, l := range log.Logs {
		fmt.Fprintln(w, l)
	}

	fmt.Fprintln(w, static.Part3)
}

func main() {
	http.HandleFunc("/", meshHandler)
	fmt.Println("Server is running on http://localhost:8080")
	err := http.ListenAndServe(":8080", nil)
	if err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
