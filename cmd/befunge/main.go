// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/ezrec/befunge/emulator"
	"github.com/ezrec/befunge/space"
	"github.com/ezrec/befunge/translate"
	"github.com/ezrec/befunge/watch"
)

// demo reads a line, then echoes it back, last character first.
const demo = `put(1, 0, "~")
put(2, 0, "v")
put(2, 1, ",")
put(2, 2, ">")
put(3, 2, "^")
put(3, 0, "<")
`

const clearScreen = "\x1b[H\x1b[2J"

func main() {
	var width int
	var height int
	var startX int
	var startY int
	var source string
	var delay time.Duration
	var limit int
	var seed uint64
	var listen string
	var prompt string
	var quiet bool
	var verbose bool

	flag.IntVar(&width, "W", emulator.DEFAULT_WIDTH, "Program space width")
	flag.IntVar(&height, "H", emulator.DEFAULT_HEIGHT, "Program space height")
	flag.IntVar(&startX, "x", 0, "Starting column")
	flag.IntVar(&startY, "y", 0, "Starting row")
	flag.StringVar(&source, "e", demo, "Starlark source composing the program space")
	flag.DurationVar(&delay, "d", 500*time.Millisecond, "Delay between steps")
	flag.IntVar(&limit, "n", 0, "Step limit, 0 for unlimited")
	flag.Uint64Var(&seed, "seed", 0, "Random seed for '?', 0 for nondeterministic")
	flag.StringVar(&listen, "listen", "", "Websocket address to publish frames on, e.g. :8080")
	flag.StringVar(&prompt, "p", "", "Input prompt")
	flag.BoolVar(&quiet, "q", false, "Quiet mode; only print the final output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu, err := emulator.NewEmulator(width, height)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	emu.Verbose = verbose
	emu.Limit = limit
	emu.Console.Input = os.Stdin
	emu.Console.Output = os.Stdout
	emu.Console.Prompt = prompt

	if seed != 0 {
		emu.Funge.Rand = rand.New(rand.NewPCG(seed, seed))
	}

	err = emu.Compose("-e", source)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	err = emu.Reset(space.Point{X: startX, Y: startY})
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	var hub *watch.Hub
	if len(listen) != 0 {
		hub = watch.NewHub()
		go hub.Run()
		defer hub.Close()

		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		go func() {
			log.Printf("watch: listening on %v", listen)
			err := http.ListenAndServe(listen, mux)
			if err != nil {
				log.Fatalf("%v: %v", listen, err)
			}
		}()
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))

	show := func(done bool) {
		if hub != nil {
			hub.Publish(emu.Frame(done))
		}

		if quiet {
			return
		}

		var sb strings.Builder
		if tty {
			sb.WriteString(clearScreen)
		}
		sb.WriteString(emu.Grid(tty))
		sb.WriteString("\n")
		sb.WriteString(emu.StackText())
		sb.WriteString("\n")
		sb.WriteString(emu.OutputText())
		sb.WriteString("\n")
		emu.Console.Display(sb.String())
	}

	for done := false; !done; {
		show(false)

		done, err = emu.Tick()
		if err != nil {
			log.Fatal(err)
		}

		if !done {
			time.Sleep(delay)
		}
	}

	show(true)

	if quiet {
		emu.Console.Display(emu.OutputText() + "\n")
	} else {
		translate.To(os.Stdout, "%d steps\n", emu.Ticks())
	}
}
