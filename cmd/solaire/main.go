package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Ege-Guler/solaire/internal/body"
	"github.com/Ege-Guler/solaire/internal/config"
	"github.com/Ege-Guler/solaire/internal/export"
	"github.com/Ege-Guler/solaire/internal/gui"
	"github.com/Ege-Guler/solaire/internal/sim"
	"github.com/Ege-Guler/solaire/internal/storage"
	"github.com/Ege-Guler/solaire/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	stepHours  float64
	days       float64
	frameRate  int
	textured   bool
	textureDir string
	column     string
	svgDays    float64
	svgWidth   int
	svgHeight  int
	svgOut     string
)

// main registers commands and flags; without a subcommand it opens the
// 3D window. Exits with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "solaire",
		Short: "animated solar system",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".solaire", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the 3D window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}
	addViewFlags(guiCmd)
	addViewFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal view of the system",
		RunE:  runTUI,
	}
	addViewFlags(tuiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute an ephemeris and store it",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&stepHours, "step", 24.0, "hours per tick")
	runCmd.Flags().Float64Var(&days, "days", 365.0, "days to simulate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id] [body]",
		Short: "plot a body's angles from a stored run",
		Args:  cobra.ExactArgs(2),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "orbit_deg", "column: orbit_deg, spin_deg, x or z")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored run as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a stored run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the orbit paths as SVG",
		RunE:  renderSVG,
	}
	svgCmd.Flags().Float64Var(&svgDays, "days", 365, "simulated days to trace")
	svgCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 800, "image height")
	svgCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "show the body catalog",
		RunE:  listBodies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, svgCmd, bodiesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&stepHours, "step", 24.0, "hours per tick")
	cmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")
	cmd.Flags().BoolVar(&textured, "textured", false, "texture-mapped spheres")
	cmd.Flags().StringVar(&textureDir, "textures", "", "bitmap texture directory")
}

// loadConfig resolves the view configuration: defaults, then preset,
// then config file, then any explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("step") {
		cfg.StepHours = stepHours
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("textured") {
		cfg.Textured = textured
	}
	if cmd.Flags().Changed("textures") {
		cfg.TextureDir = textureDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(body.Catalog(), cfg.StepHours, cfg.FPS)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	cfg := sim.Config{StepHours: stepHours, Days: days}
	s := sim.New(body.Catalog())

	fmt.Printf("computing ephemeris (%.4g days, %.4g h/tick)...\n", days, stepHours)
	start := time.Now()

	result, err := s.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Samples))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDAYS\tSTEP\tTICKS\tBODIES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.4g\t%.4gh\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Days,
			run.StepHours,
			run.Ticks,
			len(run.Bodies),
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID, bodyName := args[0], args[1]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	cols, err := st.LoadColumns(runID)
	if err != nil {
		return err
	}

	key := bodyName + "_" + column
	data, ok := cols[key]
	if !ok {
		return fmt.Errorf("no column %q in run %s (bodies: %v)", key, runID, meta.Bodies)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(data))

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s %s vs day", bodyName, column)),
	)
	fmt.Println(graph)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	cols, err := st.LoadColumns(runID)
	if err != nil {
		return err
	}

	header := storage.Header(meta.Bodies)
	rows := len(cols["day"])

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		row := make([]string, len(header))
		for j, h := range header {
			row[j] = strconv.FormatFloat(cols[h][i], 'f', 6, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	// The ephemeris is deterministic, so replay from metadata rather
	// than parsing the stored CSV back into transforms.
	cfg := sim.Config{StepHours: meta.StepHours, Days: meta.Days}
	result, err := sim.New(body.Catalog()).Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta.ID, cfg, result)
}

func renderSVG(cmd *cobra.Command, args []string) error {
	svg := export.OrbitsToSVG(body.Catalog(), svgDays, svgWidth, svgHeight)

	if svgOut == "" {
		fmt.Print(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}

func listBodies(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARENT\tORBIT\tYEAR (d)\tDAY (d)\tRADIUS")
	for _, b := range body.Catalog() {
		parent := b.Parent
		if parent == "" {
			parent = "-"
		}
		orbitCol := "-"
		yearCol := "-"
		if b.Orbits() {
			orbitCol = fmt.Sprintf("%.3f", b.OrbitRadius)
			yearCol = fmt.Sprintf("%.4g", b.OrbitalPeriodDays)
		}
		dayCol := "-"
		if b.Spins() {
			dayCol = fmt.Sprintf("%.4g", b.RotationPeriodDays)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.3f\n",
			b.Name, parent, orbitCol, yearCol, dayCol, b.Radius)
	}
	return w.Flush()
}
