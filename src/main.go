package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/integrii/flaggy"
	"golang.org/x/term"

	"lifeconsole/src/clock"
	"lifeconsole/src/universe"
	"lifeconsole/src/view"
)

type EnvOptions struct {
	headless bool
	debug    bool
}

func main() {
	eo, uo := initOptions()

	logFile := setupLogging(eo.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	u := universe.NewGame(uo, universe.NewRNG(uo.Seed))

	if eo.headless {
		out := view.NewConsoleOut(u, os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
		out.Register()
		out.Start()
		out.Run(uo.MaxSteps)
		return
	}

	code := runInteractive(u)
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

// runInteractive owns the terminal for the lifetime of the console UI
func runInteractive(u universe.Universe) (code int) {
	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			log.Printf("crashed: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "\nCRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			code = 1
		}
	}()

	v := view.NewViewTerminal(screen, u, clock.NewDefault())
	if err := v.Start(); err != nil {
		log.Printf("main loop failed: %v", err)
		return 1
	}
	return 0
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {
	o := universe.DefaultOptions
	uo = &o
	eo = &EnvOptions{}

	flaggy.SetName("lifeconsole")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&uo.Height, "y", "height", "Height of a simulation field")
	flaggy.Int(&uo.Speed, "s", "speed", fmt.Sprintf("Initial speed level [%v..%v], %v is uncapped", universe.SpeedMin, universe.MaxSpeed, universe.MaxSpeed))
	flaggy.Int64(&uo.Seed, "r", "seed", "Random seed for the noise, 0 seeds from the clock")
	flaggy.String(&uo.Pattern, "p", "pattern", "Initial population ["+universe.PatternNoise+"|"+universe.PatternGlider+"|"+universe.PatternEmpty+"]")
	flaggy.Int(&uo.MaxSteps, "m", "maxSteps", "Limit the headless simulation to maxSteps")
	flaggy.Bool(&eo.headless, "l", "headless", "Run without the terminal UI and print the report")
	flaggy.Bool(&eo.debug, "d", "debug", "Write the diagnostic log to "+logDir)

	flaggy.Parse()

	if err := uo.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return
}
