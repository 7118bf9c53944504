package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/pdebench/internal/bench"
	"github.com/san-kum/pdebench/internal/config"
	"github.com/san-kum/pdebench/internal/store"
	"github.com/san-kum/pdebench/internal/viz"
)

var (
	dataDir string
	scheme  string
	nx      int
	lx      float64
	dt      float64
	tmax    float64
	alpha   float64
	speed   float64
	// Initial condition
	icKind    string
	center    float64
	width     float64
	amplitude float64
	frequency float64
	location  float64
	icLeft    float64
	icRight   float64
	// Boundary condition
	bcKind  string
	bcLeft  float64
	bcRight float64
	// Policy and harness
	allowUnstable bool
	trials        int
	saveRun       bool
	configFile    string
	preset        string
	// Sweep
	nxList  string
	dtList  string
	workers int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pdebench",
		Short: "finite-difference scheme benchmarking for 1D PDEs",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pdebench", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [equation]",
		Short: "run a single simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&trials, "trials", 1, "repeated timing trials")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	benchCmd := &cobra.Command{
		Use:   "bench [equation]",
		Short: "benchmark a scheme over a grid of resolutions and timesteps",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScheme,
	}
	addSimFlags(benchCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [equation]",
		Short: "parallel parameter sweep, CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepScheme,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&nxList, "nx-list", "51,101,201,401", "comma-separated grid sizes")
	sweepCmd.Flags().StringVar(&dtList, "dt-list", "", "comma-separated timesteps (defaults to --dt)")
	sweepCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel workers")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved final field",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live [equation]",
		Short: "watch a run evolve in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets [equation]",
		Short: "list available presets for an equation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for equation: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, benchCmd, sweepCmd, listCmd, plotCmd, exportCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scheme, "scheme", "", "scheme (defaults per equation)")
	cmd.Flags().IntVar(&nx, "nx", config.DefaultNX, "grid points")
	cmd.Flags().Float64Var(&lx, "lx", config.DefaultLX, "domain length")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&tmax, "tmax", config.DefaultTMax, "simulated time")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.01, "diffusion coefficient (heat)")
	cmd.Flags().Float64Var(&speed, "speed", 1.0, "wave speed (advection)")
	cmd.Flags().StringVar(&icKind, "ic", "gaussian", "initial condition (gaussian|sine|step)")
	cmd.Flags().Float64Var(&center, "center", 0.5, "gaussian center")
	cmd.Flags().Float64Var(&width, "width", 0.05, "gaussian width")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1.0, "profile amplitude")
	cmd.Flags().Float64Var(&frequency, "frequency", 1.0, "sine frequency")
	cmd.Flags().Float64Var(&location, "location", 0.5, "step location")
	cmd.Flags().Float64Var(&icLeft, "ic-left", 1.0, "step left value")
	cmd.Flags().Float64Var(&icRight, "ic-right", 0.0, "step right value")
	cmd.Flags().StringVar(&bcKind, "bc", "dirichlet", "boundary condition (dirichlet|periodic)")
	cmd.Flags().Float64Var(&bcLeft, "left", 0.0, "dirichlet left value")
	cmd.Flags().Float64Var(&bcRight, "right", 0.0, "dirichlet right value")
	cmd.Flags().BoolVar(&allowUnstable, "allow-unstable", false, "run despite an unstable CFL verdict")
}

// buildConfig assembles the file/flag configuration for an equation:
// preset first, then config file, then explicit flags on top.
func buildConfig(cmd *cobra.Command, equation string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(equation, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(equation))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
	}

	cfg.Equation = equation
	set := func(name string) bool { return cmd.Flags().Changed(name) }

	if set("scheme") || cfg.Scheme == "" {
		cfg.Scheme = scheme
	}
	if cfg.Scheme == "" {
		if equation == "advection" {
			cfg.Scheme = "upwind"
		} else {
			cfg.Scheme = "ftcs"
		}
	}
	if set("nx") || cfg.NX == 0 {
		cfg.NX = nx
	}
	if set("lx") || cfg.LX == 0 {
		cfg.LX = lx
	}
	if set("dt") || cfg.Dt == 0 {
		cfg.Dt = dt
	}
	if set("tmax") || cfg.TMax == 0 {
		cfg.TMax = tmax
	}
	if set("alpha") || cfg.Alpha == 0 {
		cfg.Alpha = alpha
	}
	if set("speed") || cfg.Speed == 0 {
		cfg.Speed = speed
	}
	if set("ic") {
		cfg.Initial.Kind = icKind
	}
	if set("center") {
		cfg.Initial.Center = center
	}
	if set("width") {
		cfg.Initial.Width = width
	}
	if set("amplitude") {
		cfg.Initial.Amplitude = amplitude
	}
	if set("frequency") {
		cfg.Initial.Frequency = frequency
	}
	if set("location") {
		cfg.Initial.Location = location
	}
	if set("ic-left") {
		cfg.Initial.Left = icLeft
	}
	if set("ic-right") {
		cfg.Initial.Right = icRight
	}
	if set("bc") {
		cfg.Boundary.Kind = bcKind
	}
	if set("left") {
		cfg.Boundary.Left = bcLeft
	}
	if set("right") {
		cfg.Boundary.Right = bcRight
	}
	if set("allow-unstable") {
		cfg.AllowUnstable = allowUnstable
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	fileCfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	cfg, err := fileCfg.Engine()
	if err != nil {
		return err
	}

	stats, result, err := bench.Trials(context.Background(), cfg, trials)
	if err != nil {
		return err
	}

	v := result.Stability
	fmt.Printf("%s / %s  nx=%d dx=%g dt=%g tmax=%g\n\n",
		cfg.Params.Equation, cfg.Scheme, cfg.NX, cfg.LX/float64(cfg.NX-1), cfg.Dt, cfg.TMax)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "stability\t%s (ratio %.3f, dtMax %g)\n", v.Status, v.Ratio, v.DtMax)
	fmt.Fprintf(w, "steps\t%d\n", result.StepsTaken)
	fmt.Fprintf(w, "wall time\t%.6fs", stats.MeanSeconds)
	if stats.Runs > 1 {
		fmt.Fprintf(w, " ± %.6fs over %d trials", stats.StdDevSeconds, stats.Runs)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "steps/sec\t%.0f\n", stats.StepsPerSecond)
	if result.Error != nil {
		fmt.Fprintf(w, "l2 error\t%.6e\n", result.Error.L2)
		fmt.Fprintf(w, "linf error\t%.6e\n", result.Error.LInf)
	} else {
		fmt.Fprintf(w, "error\tno closed-form reference\n")
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved: %s\n", runID)
	}
	return nil
}

func benchScheme(cmd *cobra.Command, args []string) error {
	fileCfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	nxs := []int{51, 101, 201, 401}
	dts := []float64{fileCfg.Dt / 4, fileCfg.Dt / 2, fileCfg.Dt}

	fmt.Printf("benchmarking %s / %s\n\n", fileCfg.Equation, fileCfg.Scheme)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NX\tDT\tCFL\tSTATUS\tSTEPS\tTIME\tSTEPS/SEC\tL2")

	for _, n := range nxs {
		for _, step := range dts {
			c := *fileCfg
			c.NX = n
			c.Dt = step
			cfg, err := c.Engine()
			if err != nil {
				return err
			}

			stats, result, err := bench.Trials(context.Background(), cfg, 3)
			if err != nil {
				fmt.Fprintf(w, "%d\t%.2e\t-\t-\t-\t-\t-\t%v\n", n, step, err)
				continue
			}
			l2 := "-"
			if result.Error != nil {
				l2 = fmt.Sprintf("%.3e", result.Error.L2)
			}
			fmt.Fprintf(w, "%d\t%.2e\t%.3f\t%s\t%d\t%.6fs\t%.0f\t%s\n",
				n, step, result.Stability.Ratio, result.Stability.Status,
				result.StepsTaken, stats.MeanSeconds, stats.StepsPerSecond, l2)
		}
	}
	return w.Flush()
}

func sweepScheme(cmd *cobra.Command, args []string) error {
	fileCfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	nxs, err := parseInts(nxList)
	if err != nil {
		return fmt.Errorf("bad --nx-list: %w", err)
	}
	dts := []float64{fileCfg.Dt}
	if dtList != "" {
		dts, err = parseFloats(dtList)
		if err != nil {
			return fmt.Errorf("bad --dt-list: %w", err)
		}
	}

	points := make([]bench.Point, 0, len(nxs)*len(dts))
	for _, n := range nxs {
		for _, step := range dts {
			c := *fileCfg
			c.NX = n
			c.Dt = step
			cfg, err := c.Engine()
			if err != nil {
				return err
			}
			points = append(points, bench.Point{
				Label:  fmt.Sprintf("nx=%d,dt=%g", n, step),
				Config: cfg,
			})
		}
	}

	outcomes := bench.Sweep(context.Background(), points, workers)

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{"label", "nx", "dt", "cfl_ratio", "status", "steps", "wall_seconds", "l2", "linf", "error"}); err != nil {
		return err
	}
	for _, o := range outcomes {
		row := []string{o.Point.Label,
			strconv.Itoa(o.Point.Config.NX),
			strconv.FormatFloat(o.Point.Config.Dt, 'g', -1, 64)}
		if o.Err != nil {
			row = append(row, "", "", "", "", "", "", o.Err.Error())
		} else {
			l2, linf := "", ""
			if o.Result.Error != nil {
				l2 = strconv.FormatFloat(o.Result.Error.L2, 'e', 6, 64)
				linf = strconv.FormatFloat(o.Result.Error.LInf, 'e', 6, 64)
			}
			row = append(row,
				strconv.FormatFloat(o.Result.Stability.Ratio, 'f', 4, 64),
				o.Result.Stability.Status.String(),
				strconv.Itoa(o.Result.StepsTaken),
				strconv.FormatFloat(o.Result.WallSeconds, 'f', 6, 64),
				l2, linf, "")
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUATION\tSCHEME\tNX\tDT\tSTEPS\tSTATUS\tL2")
	for _, r := range runs {
		l2 := "-"
		if r.Error != nil {
			l2 = fmt.Sprintf("%.3e", r.Error.L2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%g\t%d\t%s\t%s\n",
			r.ID, r.Equation, r.Scheme, r.NX, r.Dt, r.StepsTaken, r.Stability.Status, l2)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, us, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	caption := fmt.Sprintf("%s / %s  t=%g", meta.Equation, meta.Scheme, meta.TMax)
	fmt.Println(viz.Plot(us, caption))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	return st.Export(os.Stdout, args[0])
}

func runLive(cmd *cobra.Command, args []string) error {
	fileCfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	cfg, err := fileCfg.Engine()
	if err != nil {
		return err
	}
	return viz.RunLive(cfg)
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
