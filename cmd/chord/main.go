// Command chord renders and inspects chord diagram documents.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
	"github.com/thomaslorincz/ChordDiagram/pkg/chordfile"
	"github.com/thomaslorincz/ChordDiagram/pkg/chordview"
	"github.com/thomaslorincz/ChordDiagram/pkg/render"
)

const usage = `chord - chord diagram toolkit

Usage:
  chord <command> [options]

Commands:
  render     Render a diagram to SVG, PNG or Graphviz DOT
  info       Show items, links and their angles
  validate   Validate a diagram file
  demo       Write the sample diagram

Options:
  -v         Log debug output to stderr

Examples:
  chord render input.json -o diagram.png --size 800
  chord render input.json --style node --rotation 45 --no-labels
  chord render input.json -o graph.dot
  chord info input.json
  chord demo -o demo.json

Use "chord <command> -h" for more information about a command.
`

func main() {
	args, verbose := stripVerbose(os.Args[1:])
	if verbose {
		chord.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if len(args) < 1 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "render":
		cmdRender(args)
	case "info":
		cmdInfo(args)
	case "validate":
		cmdValidate(args)
	case "demo":
		cmdDemo(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func stripVerbose(args []string) ([]string, bool) {
	out := make([]string, 0, len(args))
	verbose := false
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			verbose = true
			continue
		}
		out = append(out, a)
	}
	return out, verbose
}

// renderFlags are the options shared by render and demo.
type renderFlags struct {
	output   string
	size     int
	style    string
	rotation *int
	noLabels bool
}

func parseRenderFlags(args []string) (renderFlags, []string, error) {
	rf := renderFlags{size: 600}
	var rest []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output", "--size", "--style", "--rotation":
			if i+1 >= len(args) {
				return rf, nil, fmt.Errorf("%s needs a value", args[i])
			}
			val := args[i+1]
			switch args[i] {
			case "-o", "--output":
				rf.output = val
			case "--size":
				n, err := strconv.Atoi(val)
				if err != nil || n <= 0 {
					return rf, nil, fmt.Errorf("invalid size %q", val)
				}
				rf.size = n
			case "--style":
				if _, err := chord.ParseItemStyle(val); err != nil {
					return rf, nil, err
				}
				rf.style = val
			case "--rotation":
				n, err := strconv.Atoi(val)
				if err != nil {
					return rf, nil, fmt.Errorf("invalid rotation %q", val)
				}
				rf.rotation = &n
			}
			i++
		case "--no-labels":
			rf.noLabels = true
		default:
			rest = append(rest, args[i])
		}
	}
	return rf, rest, nil
}

// apply overrides the document settings with the command line.
func (rf renderFlags) apply(v *chordview.View) {
	if rf.style != "" {
		style, _ := chord.ParseItemStyle(rf.style)
		v.SetItemStyle(style)
	}
	if rf.rotation != nil {
		v.SetRotation(*rf.rotation)
	}
	if rf.noLabels {
		v.SetShowLabels(false)
	}
}

func newView(opts render.Options) (*chordview.View, error) {
	measurer, err := render.NewFontMeasurer(opts.FontSize)
	if err != nil {
		return nil, err
	}
	vo := chordview.DefaultOptions()
	vo.Render = opts
	vo.Measurer = measurer
	return chordview.New(nil, vo), nil
}

func cmdRender(args []string) {
	rf, rest, err := parseRenderFlags(args)
	if err != nil || len(rest) < 1 {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		fmt.Fprintln(os.Stderr, "Usage: chord render <input> [-o output.svg|.png|.dot] [--size N] [--style arc|node] [--rotation DEG] [--no-labels]")
		os.Exit(1)
	}

	input := rest[0]
	doc, err := chordfile.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}

	opts := render.DefaultOptions()
	v, err := newView(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := chordfile.Apply(doc, v); err != nil {
		fmt.Fprintf(os.Stderr, "Error in %s: %v\n", input, err)
		os.Exit(1)
	}
	rf.apply(v)

	output := rf.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}
	if err := writeImage(v, output, rf.size, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s\n", output)
}

func writeImage(v *chordview.View, output string, size int, opts render.Options) error {
	v.OnResize(float64(size))
	list := v.RenderFrame()

	var buf bytes.Buffer
	var err error
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".svg":
		err = render.WriteSVG(&buf, list, size, opts)
	case ".png":
		err = render.WritePNG(&buf, list, size, opts)
	case ".dot", ".gv":
		title := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
		buf.WriteString(chordfile.GenerateDOT(v.Diagram(), title))
	default:
		return fmt.Errorf("unknown output format %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(output, buf.Bytes(), 0644)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: chord info <input>")
		os.Exit(1)
	}

	input := args[0]
	doc, err := chordfile.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}
	v := chordview.New(nil, chordview.DefaultOptions())
	if err := chordfile.Apply(doc, v); err != nil {
		fmt.Fprintf(os.Stderr, "Error in %s: %v\n", input, err)
		os.Exit(1)
	}

	d := v.Diagram()
	fmt.Printf("Style:    %s\n", d.Style())
	fmt.Printf("Labels:   %v\n", v.ShowLabels())
	fmt.Printf("Rotation: %d\n", v.Rotation())
	fmt.Printf("Items:    %d\n", d.Len())
	fmt.Printf("Links:    %d\n", len(d.Links()))
	fmt.Println()

	for _, it := range d.Items() {
		fmt.Printf("  %-12s %s  [%6.1f, %6.1f)  links=%d\n",
			it.Label(), it.Color().Hex(), it.StartAngle(), it.EndAngle(), it.Connections())
	}
	if len(d.Links()) > 0 {
		fmt.Println()
	}
	for _, l := range d.Links() {
		fmt.Printf("  %s (%.1f) -- %s (%.1f)\n",
			l.Item1().Label(), l.EndpointAngle1(), l.Item2().Label(), l.EndpointAngle2())
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: chord validate <input>")
		os.Exit(1)
	}

	input := args[0]
	doc, err := chordfile.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}

	issues := chordfile.Issues(doc)
	if len(issues) > 0 {
		fmt.Fprintf(os.Stderr, "Validation failed: %d issue(s)\n", len(issues))
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "  %v\n", issue)
		}
		os.Exit(1)
	}

	fmt.Printf("%s: valid diagram with %d items, %d links\n", input, len(doc.Items), len(doc.Links))
}

func cmdDemo(args []string) {
	rf, _, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: chord demo [-o output.json|.svg|.png|.dot] [--size N] [--style arc|node] [--rotation DEG] [--no-labels]")
		os.Exit(1)
	}

	opts := render.DefaultOptions()
	v, err := newView(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	chordfile.Demo(v)
	rf.apply(v)

	switch strings.ToLower(filepath.Ext(rf.output)) {
	case "":
		data, err := chordfile.ToJSON(chordfile.Capture(v), true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	case ".json":
		err = chordfile.Save(rf.output, chordfile.Capture(v))
	default:
		err = writeImage(v, rf.output, rf.size, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", rf.output, err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s\n", rf.output)
}
