package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	sparse "github.com/edp1096/sparse-aat"
)

// App carries the state shared by the subcommands.
type App struct {
	config    *sparse.Configuration
	logger    zerolog.Logger
	startTime time.Time

	configPath string
	logLevel   string
	printLevel int
	annotate   int
}

func InitApp() *App {
	return &App{startTime: time.Now()}
}

// setup loads the configuration and lets explicit flags override it.
func (a *App) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		config, err := sparse.LoadConfiguration(a.configPath)
		if err != nil {
			return err
		}
		a.config = config
	} else {
		config := sparse.DefaultConfiguration()
		a.config = &config
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.config.LogLevel = a.logLevel
	}
	if flags.Changed("print-level") {
		a.config.PrintLevel = a.printLevel
	}
	if flags.Changed("annotate") {
		a.config.Annotate = a.annotate
	}
	if err := a.config.Validate(); err != nil {
		return err
	}

	a.logger = sparse.NewLogger(a.config.LogLevel, cmd.ErrOrStderr())
	return nil
}

func (a *App) readMatrix(filename string) (*sparse.Matrix, string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, "", fmt.Errorf("error opening file: %v", err)
	}
	defer file.Close()

	return sparse.ReadMatrix(file, a.config)
}

func (a *App) printResourceUsage(cmd *cobra.Command) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Aggregate resource usage:\n")
	fmt.Fprintf(w, "    Time required = %.4f seconds.\n", time.Since(a.startTime).Seconds())
	fmt.Fprintf(w, "    Heap memory used = %d kBytes\n", m.HeapAlloc/1024)
	fmt.Fprintf(w, "    Total memory from OS = %d kBytes\n\n", m.Sys/1024)
}

func newRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "aat",
		Short:         "Pattern statistics of A+A' for sparse matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.IntVar(&a.printLevel, "print-level", sparse.DEFAULT_PRINT_LEVEL, "report verbosity 0-5")
	pf.IntVar(&a.annotate, "annotate", 0, "trace volume 0-2, needs --log-level trace")

	root.AddCommand(newAnalyzeCommand(a), newReportCommand(a), newGenCommand(a))
	return root
}

func main() {
	a := InitApp()
	if err := newRootCommand(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
		os.Exit(1)
	}
}
