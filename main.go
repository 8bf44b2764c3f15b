// schemroute routes orthogonal schematic wires around obstacles. It can batch
// route a project file, serve the engine over HTTP, or run an interactive
// terminal demo.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"schemroute/export"
	"schemroute/geometry"
	"schemroute/obstacles"
	"schemroute/routing"
	"schemroute/server"
)

// wireSpec is one wire in a project file.
type wireSpec struct {
	Name    string          `json:"name"`
	Start   geometry.Point  `json:"start"`
	End     geometry.Point  `json:"end"`
	Options routing.Options `json:"options"`
}

// project is the batch-routing input format.
type project struct {
	Constraints *routing.ConstraintsPatch `json:"constraints,omitempty"`
	Obstacles   []obstacles.Obstacle      `json:"obstacles"`
	Wires       []wireSpec                `json:"wires"`
}

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive TUI demo")
		serveAddr   = flag.String("serve", "", "Serve the routing API on this address (e.g. :8080)")
		xlsxOut     = flag.String("o", "", "Write the wire schedule to this xlsx file")
		htmlOut     = flag.String("html", "", "Write the routing report to this HTML file")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [project.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Routes schematic wires around obstacles.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -i                         # interactive demo\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -serve :8080               # HTTP API\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s panel.json -o wires.xlsx   # batch route a project\n", os.Args[0])
	}
	flag.Parse()

	if *interactive {
		if err := runInteractive(); err != nil {
			log.Fatalf("interactive demo: %v", err)
		}
		return
	}

	if *serveAddr != "" {
		engine := routing.NewEngine()
		log.Printf("routing API listening on %s", *serveAddr)
		if err := server.New(engine).Run(*serveAddr); err != nil {
			log.Fatalf("server: %v", err)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := routeProject(flag.Arg(0), *xlsxOut, *htmlOut); err != nil {
		log.Fatal(err)
	}
}

func routeProject(path, xlsxOut, htmlOut string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read project: %w", err)
	}

	var p project
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parse project: %w", err)
	}

	engine := routing.NewEngine()
	if p.Constraints != nil {
		engine.SetConstraints(*p.Constraints)
	}
	for _, o := range p.Obstacles {
		engine.Registry().Add(o)
	}

	wires := make([]export.WireReport, 0, len(p.Wires))
	for i, w := range p.Wires {
		name := w.Name
		if name == "" {
			name = fmt.Sprintf("wire-%d", i+1)
		}
		res := engine.RouteWire(w.Start, w.End, w.Options)
		wires = append(wires, export.WireReport{Name: name, Result: res})
		fmt.Printf("%-12s length=%.1f bends=%d quality=%.2f obstacles=%d\n",
			name, res.TotalLength, res.BendCount, res.Quality, len(res.Obstacles))
	}

	if xlsxOut != "" {
		if err := export.WriteSchedule(xlsxOut, wires); err != nil {
			return err
		}
		log.Printf("wrote %s", xlsxOut)
	}
	if htmlOut != "" {
		if err := export.WriteHTMLReport(htmlOut, wires); err != nil {
			return err
		}
		log.Printf("wrote %s", htmlOut)
	}
	return nil
}
