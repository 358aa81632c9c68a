package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/algoviz/internal/classify"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/engine"
	"github.com/san-kum/algoviz/internal/frame"
	"github.com/san-kum/algoviz/internal/produce"
	"github.com/san-kum/algoviz/internal/render"
	"github.com/san-kum/algoviz/internal/server"
	"github.com/san-kum/algoviz/internal/stats"
	"github.com/san-kum/algoviz/internal/storage"
	"github.com/san-kum/algoviz/internal/tui"
)

var (
	dataDir    string
	valuesFlag string
	target     int
	start      int
	sourceFile string
	configFile string
	preset     string
	speed      float64
	width      int
	noSave     bool
	addr       string
)

// main registers commands and flags and launches the interactive player
// when no subcommand is given. It exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "algoviz",
		Short: "algorithm visualization lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(loadConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "produce a run and store its frames",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAlgorithm,
	}
	runCmd.Flags().StringVar(&valuesFlag, "values", "", "comma-separated input values")
	runCmd.Flags().IntVar(&target, "target", 0, "search target")
	runCmd.Flags().IntVar(&start, "start", 0, "start vertex (graph traversals)")
	runCmd.Flags().StringVar(&sourceFile, "source", "", "classify this source file instead of naming an algorithm")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset input")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip writing the run to disk")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "interactive player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(loadConfig())
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [algorithm]",
		Short: "play a run inline in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&valuesFlag, "values", "", "comma-separated input values")
	liveCmd.Flags().IntVar(&target, "target", 0, "search target")
	liveCmd.Flags().IntVar(&start, "start", 0, "start vertex (graph traversals)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset input")
	liveCmd.Flags().Float64Var(&speed, "speed", 2.0, "frames per second")
	liveCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "render width")

	classifyCmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "identify the algorithm in a source file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  classifySource,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list supported algorithms",
		RunE:  listAlgorithms,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot cumulative work for a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available input presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream playback over websockets",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8077", "listen address")

	rootCmd.AddCommand(runCmd, playCmd, liveCmd, classifyCmd, listCmd, algorithmsCmd,
		plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err == nil {
			cfg = loaded
		}
	}
	cfg.DataDir = dataDir
	return cfg
}

// buildInput resolves input precedence: flags, then preset, then config
// defaults.
func buildInput(cmd *cobra.Command, name string) (produce.Input, error) {
	cfg := loadConfig()
	if preset != "" {
		p := config.GetPreset(name, preset)
		if p == nil {
			return produce.Input{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg = p
	}

	in := produce.Input{
		Values: cfg.Input.Values,
		Target: cfg.Input.Target,
		Graph:  cfg.Input.Graph,
		Start:  cfg.Input.Start,
	}
	if valuesFlag != "" {
		values, err := parseIntList(valuesFlag)
		if err != nil {
			return in, err
		}
		in.Values = values
	}
	if cmd.Flags().Changed("target") {
		in.Target = target
	}
	if cmd.Flags().Changed("start") {
		in.Start = start
	}
	return in, nil
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	registry := produce.NewRegistry()

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	var in produce.Input
	complexity := ""
	if sourceFile != "" {
		data, err := os.ReadFile(sourceFile)
		if err != nil {
			return err
		}
		res := classify.Classify(string(data))
		if name == "" {
			name = res.Algorithm
		}
		complexity = res.Complexity
		in.Values = res.Values
		if res.HasTarget {
			in.Target = res.Target
		}
		in.Graph = res.Graph
		if res.HasStart {
			in.Start = res.Start
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
	}
	if name == "" {
		return fmt.Errorf("name an algorithm or pass --source")
	}

	p, err := registry.Get(name)
	if err != nil {
		return err
	}

	if sourceFile == "" || len(in.Values) == 0 && len(in.Graph) == 0 {
		flagIn, err := buildInput(cmd, name)
		if err != nil {
			return err
		}
		in = flagIn
	}
	if err := produce.ValidateInput(p, in); err != nil {
		return err
	}

	fmt.Printf("producing %s frames...\n", name)
	begin := time.Now()
	seq := p.Produce(in, nil)
	elapsed := time.Since(begin)

	summary := stats.Collect(seq)

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		record := storage.InputRecord{Values: in.Values, Target: in.Target, Graph: in.Graph, Start: in.Start}
		runID, err := st.Save(name, record, complexity, seq)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("frames: %d\n", summary.Frames)
	if complexity != "" {
		fmt.Printf("complexity: %s\n", complexity)
	}
	fmt.Println("\nwork:")
	fmt.Printf("  comparisons: %d\n", summary.Comparisons)
	fmt.Printf("  mutations: %d\n", summary.Mutations)
	fmt.Printf("  settled: %d\n", summary.Settled)
	if summary.Visited > 0 {
		fmt.Printf("  visited: %d\n", summary.Visited)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	registry := produce.NewRegistry()
	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	in, err := buildInput(cmd, args[0])
	if err != nil {
		return err
	}
	if err := produce.ValidateInput(p, in); err != nil {
		return err
	}

	seq := p.Produce(in, nil)

	eng := engine.New(render.NewTerminal(os.Stdout, width))
	done := make(chan struct{})
	var once sync.Once
	eng.AddListener(func(pos int, f frame.Frame) {
		if pos == seq.Len()-1 {
			once.Do(func() { close(done) })
		}
	})
	if err := eng.Load(seq); err != nil {
		return err
	}
	eng.SetSpeed(speed)
	eng.Seek(0)
	eng.Play()

	<-done
	fmt.Println()
	return nil
}

func classifySource(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	res := classify.Classify(string(data))
	fmt.Printf("algorithm: %s\n", res.Algorithm)
	fmt.Printf("complexity: %s\n", res.Complexity)
	if len(res.Values) > 0 {
		fmt.Printf("values: %v\n", res.Values)
	}
	if res.HasTarget {
		fmt.Printf("target: %d\n", res.Target)
	}
	if len(res.Graph) > 0 {
		fmt.Printf("graph: %v\n", res.Graph)
	}
	if res.HasStart {
		fmt.Printf("start: %d\n", res.Start)
	}
	for _, w := range res.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
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
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tFRAMES\tCOMPARISONS\tMUTATIONS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Stats.Frames,
			run.Stats.Comparisons,
			run.Stats.Mutations,
		)
	}

	return w.Flush()
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	registry := produce.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFAMILY")
	for _, name := range registry.List() {
		p, err := registry.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", name, p.Family())
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Metadata(runID)
	if err != nil {
		return err
	}
	seq, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("frames: %d\n\n", seq.Len())

	for _, m := range []stats.Metric{stats.NewComparisons(), stats.NewMutations()} {
		data := stats.Cumulative(seq, m)
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("cumulative %s", m.Name())),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Metadata(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	seq, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"step", "algorithm", "description", "values", "compared", "highlighted", "settled"}); err != nil {
		return err
	}
	for i, f := range seq {
		row := []string{
			strconv.Itoa(i),
			f.Algorithm,
			f.Description,
			joinInts(f.Values),
			joinInts(f.Compared.Indices()),
			joinInts(f.Highlighted.Indices()),
			joinInts(f.Settled.Indices()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	seq, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(seq)
}

func serve(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	srv := server.New(logger)
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, srv.Handler())
}

func parseIntList(s string) ([]int, error) {
	var values []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad number in --values: %q", p)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("empty --values")
	}
	return values, nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
