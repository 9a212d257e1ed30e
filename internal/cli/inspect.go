package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/routekit/elbow/pkg/errors"
	"github.com/routekit/elbow/pkg/geo"
	"github.com/routekit/elbow/pkg/pipeline"
	"github.com/routekit/elbow/pkg/router"
	"github.com/routekit/elbow/pkg/scenario"
)

// inspectCommand creates the inspect command for examining routed paths.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		routeName   string
		interactive bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [scenario.(toml|json)]",
		Short: "Examine routed paths in detail",
		Long: `Examine routed paths in detail.

The inspect command routes the scenario and prints each path's waypoints,
headings, bend count and length, plus the rulers and grid the router built
along the way. Use --route to inspect a single request, or --interactive
for a browsable view.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], routeName, interactive, noCache)
		},
	}

	cmd.Flags().StringVar(&routeName, "route", "", "inspect only the named route")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse routes interactively")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runInspect routes the scenario and prints or browses the details.
func (c *CLI) runInspect(ctx context.Context, input, routeName string, interactive, noCache bool) error {
	s, err := scenario.Load(input)
	if err != nil {
		return fmt.Errorf("load scenario %s: %w", input, err)
	}

	if routeName != "" {
		req, ok := s.Route(routeName)
		if !ok {
			return errors.New(errors.ErrCodeNotFound, "no route named %q in %s", routeName, input)
		}
		s = &scenario.Scenario{Name: s.Name, Routes: []scenario.Request{*req}}
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, s, pipeline.BatchOptions{})
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}

	if interactive {
		model := newRouteBrowser(res.Outcomes)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("interactive browser: %w", err)
		}
		return nil
	}

	for i, o := range res.Outcomes {
		if i > 0 {
			printNewline()
		}
		printOutcome(o)
	}
	return nil
}

// printOutcome prints the full detail view for one routed request.
func printOutcome(o pipeline.Outcome) {
	if o.Err != nil {
		printError("%s: %v", o.Name, o.Err)
		return
	}

	bp := o.Byproduct
	printSuccess("%s", o.Name)
	for _, row := range outcomeRows(bp) {
		printKeyValue(row[0], row[1])
	}
	printRouteStats(bp.Bends(), bp.Length(), o.CacheHit)
}

// outcomeRows builds the key/value detail rows for a byproduct. Bends and
// length are left to the stats summary line.
func outcomeRows(bp *router.Byproduct) [][2]string {
	return [][2]string{
		{"path", formatPath(bp.Path())},
		{"headings", formatHeadings(bp.Headings())},
		{"rulers", fmt.Sprintf("%d horizontal, %d vertical", len(bp.HRulers), len(bp.VRulers))},
		{"grid", fmt.Sprintf("%d cells", len(bp.Grid))},
		{"spots", fmt.Sprintf("%d waypoints", len(bp.Spots))},
	}
}

// formatPath renders waypoints as "(x,y) → (x,y) → ...".
func formatPath(points []geo.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return strings.Join(parts, " "+iconArrow+" ")
}

// formatHeadings renders segment headings as "east, south, east".
func formatHeadings(headings []geo.Cardinal) string {
	if len(headings) == 0 {
		return "none"
	}
	parts := make([]string, len(headings))
	for i, h := range headings {
		parts[i] = h.String()
	}
	return strings.Join(parts, ", ")
}
