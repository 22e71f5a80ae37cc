package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/pokeplot/dataset"
	"github.com/andareed/pokeplot/logging"
	"github.com/andareed/pokeplot/render"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const defaultDataPath = "./data/pokemon.csv"

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	os.Exit(run())
}

func run() int {
	versionFlag := flag.Bool("version", false, "print version and exit")
	levelFlag := flag.String("log-level", "info", "minimum log level: debug, info, warn, error")
	configFlag := flag.String("config", "", "YAML file overriding plot settings")
	svgFlag := flag.String("export-svg", "", "write an SVG snapshot to this file and exit")
	pngFlag := flag.String("export-png", "", "write a PNG snapshot to this file and exit")
	genFlag := flag.String("generation", dataset.All, "initial generation filter: all or 1-6")
	legFlag := flag.String("legendary", dataset.All, "initial legendary filter: all, True or False")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		return 0
	}

	level, ok := logging.ParseLevel(*levelFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", *levelFlag)
		return 2
	}
	if *logFile != "" && *levelFlag == "info" {
		level = logging.LevelDebug
	}
	cleanup, err := logging.SetupLogging(*logFile, level)
	if err != nil {
		log.Printf("Failed to setup logging %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer cleanup()

	logging.Infof("pokeplot %s: started", Version)

	args := flag.Args()
	if len(args) > 1 {
		fmt.Println("Usage: pokeplot [flags] [pokemon.csv]")
		return 2
	}
	dataPath := defaultDataPath
	if len(args) == 1 {
		dataPath = args[0]
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	criteria := dataset.Criteria{Generation: *genFlag, Legendary: *legFlag}
	if err := criteria.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}

	if *svgFlag != "" || *pngFlag != "" {
		for _, out := range []struct {
			path   string
			format render.Format
		}{{*svgFlag, render.FormatSVG}, {*pngFlag, render.FormatPNG}} {
			if out.path == "" {
				continue
			}
			if err := exportHeadless(cfg, dataPath, criteria, out.path, out.format); err != nil {
				logging.Errorf("headless %s export: %v", out.format, err)
				fmt.Fprintln(os.Stderr, "Error:", err)
				return 1
			}
			fmt.Println("Wrote", out.path)
		}
		return 0
	}

	m, err := newModel(cfg, dataPath, criteria)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
		return 1
	}
	return 0
}
