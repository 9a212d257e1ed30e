package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/routekit/elbow/pkg/pipeline"
	"github.com/routekit/elbow/pkg/render"
	"github.com/routekit/elbow/pkg/scenario"
)

// routeCommand creates the route command for executing scenario files.
func (c *CLI) routeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		refresh    bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "route [scenario.(toml|json)]",
		Short: "Route all connectors in a scenario file",
		Long: `Route all connectors in a scenario file.

A scenario file declares one or more routing requests: two shapes with
connector points, a clearance margin, and optional global bounds. Each
request is routed independently and the results are written to the output
directory in the requested formats.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			return c.runRoute(cmd.Context(), args[0], routeParams{
				formats: formats,
				output:  output,
				noCache: noCache,
				refresh: refresh,
				debug:   debug,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", ".", "output directory")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, png (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and overwrite stored results")
	cmd.Flags().BoolVar(&debug, "debug", false, "draw rulers, grid and spots in SVG output")

	return cmd
}

// routeParams holds the resolved route command flags.
type routeParams struct {
	formats []string
	output  string
	noCache bool
	refresh bool
	debug   bool
}

// runRoute loads the scenario, routes every request, and writes output files.
func (c *CLI) runRoute(ctx context.Context, input string, params routeParams) error {
	s, err := scenario.Load(input)
	if err != nil {
		return fmt.Errorf("load scenario %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, params.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Routing %d connectors...", len(s.Routes)))
	spinner.Start()

	res, err := runner.Execute(ctx, s, pipeline.BatchOptions{Refresh: params.refresh})
	if err != nil {
		spinner.StopWithError("Routing failed")
		return fmt.Errorf("route: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Routed %d connectors", len(s.Routes)-res.Failed()))

	for i, o := range res.Outcomes {
		if o.Err != nil {
			printError("%s: %v", o.Name, o.Err)
			continue
		}
		printSuccess("%s", o.Name)
		printRouteStats(o.Byproduct.Bends(), o.Byproduct.Length(), o.CacheHit)
		if err := c.writeOutputs(ctx, s.Routes[i], o, params); err != nil {
			return err
		}
	}

	if failed := res.Failed(); failed > 0 {
		printNewline()
		printWarning("%d of %d routes failed", failed, len(s.Routes))
		return fmt.Errorf("%d of %d routes failed", failed, len(s.Routes))
	}

	if jsonRequested(params.formats) {
		if err := c.writeResultsFile(s, res, params.output); err != nil {
			return err
		}
	}

	printNewline()
	printNextStep("Inspect", "elbow inspect "+input)
	return nil
}

// writeOutputs writes the per-route artifacts (svg, dot, png) for one outcome.
func (c *CLI) writeOutputs(ctx context.Context, req scenario.Request, o pipeline.Outcome, params routeParams) error {
	if err := os.MkdirAll(params.output, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", params.output, err)
	}

	for _, format := range params.formats {
		var (
			data []byte
			path string
		)
		switch format {
		case "svg":
			opts := []render.SVGOption{render.WithShapes(req.A.Shape.Rect(), req.B.Shape.Rect())}
			if params.debug {
				opts = append(opts, render.WithRulers(), render.WithGrid(), render.WithSpots())
			}
			data = render.SVG(o.Byproduct, opts...)
			path = filepath.Join(params.output, o.Name+".svg")
		case "dot":
			data = []byte(render.ToDOT(o.Byproduct))
			path = filepath.Join(params.output, o.Name+".dot")
		case "png":
			png, err := render.DOTToPNG(ctx, render.ToDOT(o.Byproduct))
			if err != nil {
				return fmt.Errorf("render %s to png: %w", o.Name, err)
			}
			data = png
			path = filepath.Join(params.output, o.Name+".png")
		default:
			continue // json is written once for the whole scenario
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// writeResultsFile writes all successful results into one JSON file.
func (c *CLI) writeResultsFile(s *scenario.Scenario, res *pipeline.BatchResult, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	name := s.Name
	if name == "" {
		name = "routes"
	}
	path := filepath.Join(outDir, name+".json")

	results := make([]*scenario.Result, 0, len(res.Outcomes))
	for _, o := range res.Outcomes {
		if o.Err == nil {
			results = append(results, scenario.ResultFrom(o.Name, o.Byproduct))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := scenario.WriteResultsJSON(f, results); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}

func jsonRequested(formats []string) bool {
	for _, f := range formats {
		if f == "json" {
			return true
		}
	}
	return false
}
