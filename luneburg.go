// This file is part of Luneburg.
//
// Luneburg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Luneburg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Luneburg.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"golang.org/x/term"

	"github.com/luneburg/chessboard/boardlink"
	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/game"
	"github.com/luneburg/chessboard/journal"
	"github.com/luneburg/chessboard/logger"
	"github.com/luneburg/chessboard/modalflag"
	"github.com/luneburg/chessboard/movesource"
	"github.com/luneburg/chessboard/oracle"
	"github.com/luneburg/chessboard/paths"
	"github.com/luneburg/chessboard/performance"
	"github.com/luneburg/chessboard/prefs"
	"github.com/luneburg/chessboard/statsview"
	"github.com/luneburg/chessboard/version"
	"github.com/luneburg/chessboard/voice"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
	exitInterrupt  = 30
)

func main() {
	// #ctrlc the game has no natural end so an interrupt is the normal way of
	// stopping the program
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan int)
	go launch(done)

	exitVal := exitOK
	select {
	case <-intChan:
		fmt.Println("\r")
		exitVal = exitInterrupt
	case exitVal = <-done:
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. the exit value is sent over
// the done channel.
func launch(done chan int) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "MATRIX", "RAW", "REPLACEMENTS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		done <- exitOK
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		done <- exitParseError
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)

	case "MATRIX":
		err = matrix(md)

	case "RAW":
		err = raw(md)

	case "REPLACEMENTS":
		err = replacements(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		done <- exitModeError
		return
	}

	done <- exitOK
}

// setEcho sets the logging echo. the echo is coloured if stdout is a
// terminal.
func setEcho(echo bool) {
	if !echo {
		logger.SetEcho(nil)
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(os.Stdout)
	}
}

// loadPreferences loads the link and game preferences from disk and applies
// any overrides from the environment.
func loadPreferences() (*boardlink.Preferences, *game.Preferences, error) {
	pth := paths.ResourcePath("", prefs.DefaultPrefsFile)

	lp, err := boardlink.NewPreferences(pth)
	if err != nil {
		return nil, nil, err
	}

	gp, err := game.NewPreferences(pth)
	if err != nil {
		return nil, nil, err
	}

	err = applyOverrides(lp, gp)
	if err != nil {
		return nil, nil, err
	}

	return lp, gp, nil
}

// openLink opens the serial port and waits for the board to be ready. Serial
// traffic is logged only if traffic is true.
func openLink(lp *boardlink.Preferences, port string, wait, traffic bool) (*boardlink.Link, error) {
	ser, err := boardlink.OpenSerial(port, lp.Baud.Get().(int), lp.ReadTimeout.Value())
	if err != nil {
		return nil, err
	}

	link := boardlink.NewLink(ser)
	link.LogTraffic(traffic)

	if wait && !link.WaitUntilReady(lp.ReadyTimeout.Value()) {
		_ = link.Close()
		return nil, curated.Errorf(game.NotReady)
	}

	return link, nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("ASK", "PVP", "PVC", "CVC")

	lp, gp, err := loadPreferences()
	if err != nil {
		return err
	}

	port := md.AddString("port", lp.Port.String(), "serial port of the chessboard")
	engine := md.AddString("engine", gp.EngineCommand.String(), "UCI chess engine")
	budget := md.AddDuration("budget", gp.EngineBudget.Value(), "time given to the engine for each move")
	verify := md.AddBool("verify", gp.Verify.Get().(bool), "compare the board with the position after every move")
	cues := md.AddBool("cues", gp.Cues.Get().(bool), "cue the player to speak")
	record := md.AddBool("journal", gp.Journal.Get().(bool), "record moves in the game journal")
	clips := md.AddString("clips", paths.ResourcePath("clips"), "directory of spoken clips")
	audio := md.AddBool("audio", true, "play spoken clips")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddBool("profile", false, "record cpu and memory profiles of the game")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp(`The game mode can be specified after the flags. In the ASK mode the
players are asked which mode they want. The modes are:

  PVP  human against human
  PVC  human (white) against the engine (black)
  CVC  engine against engine`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	if stats != nil && *stats {
		statsview.Launch()
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	link, err := openLink(lp, *port, false, *log)
	if err != nil {
		return err
	}
	defer link.Close()

	repl, err := movesource.LoadReplacements(paths.ResourcePath("", movesource.DefaultReplacementsFile))
	if err != nil {
		return err
	}

	var cl *voice.Clips
	if *audio {
		out, err := voice.NewSDL()
		if err != nil {
			logger.Logf(logger.Allow, "voice", "no audio: %v", err)
		} else {
			defer out.Close()
			cl = voice.NewClips(*clips, out)
		}
	}

	console := voice.NewConsole(os.Stdin, os.Stdout, cl, *cues)

	var mode game.Mode
	if md.Mode() == "ASK" {
		mode, err = game.AskMode(console)
		if err != nil {
			return err
		}
	} else {
		mode, _ = game.ParseMode(md.Mode())
	}

	var orc movesource.Oracle
	if mode != game.PVP {
		uci, err := oracle.NewUCI(*engine)
		if err != nil {
			return err
		}
		defer uci.Close()
		orc = uci
	}

	white, black := game.Players(mode, console, repl, orc, *budget)

	o := game.NewOrchestrator(link, game.NewTimeouts(lp), white, black)
	o.SetVerify(*verify)

	if *record {
		j, err := journal.Open(paths.ResourcePath("", journal.DefaultJournalFile))
		if err != nil {
			return err
		}
		defer j.Close()
		o.SetRecorder(j)
		fmt.Printf("! recording game %s\n", j.Game())
	}

	if *profile {
		err = performance.ProfileCPU("play.cpu.profile", func() error {
			return o.Run(nil)
		})
		if perr := performance.ProfileMem("play.mem.profile"); perr != nil {
			logger.Log(logger.Allow, "luneburg", perr)
		}
	} else {
		err = o.Run(nil)
	}

	if curated.Has(err, movesource.ChannelClosed) {
		return nil
	}

	return err
}

func matrix(md *modalflag.Modes) error {
	md.NewMode()

	lp, _, err := loadPreferences()
	if err != nil {
		return err
	}

	port := md.AddString("port", lp.Port.String(), "serial port of the chessboard")
	letters := md.AddBool("letters", false, "show engine letters rather than firmware letters")
	wait := md.AddBool("wait", true, "wait for the board to be ready")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	link, err := openLink(lp, *port, *wait, *log)
	if err != nil {
		return err
	}
	defer link.Close()

	m, err := link.QueryMatrix()
	if err != nil {
		return err
	}

	if *letters {
		fmt.Print(m.EngineLetters().String())
	} else {
		m.Fprint(os.Stdout)
	}

	return nil
}

func raw(md *modalflag.Modes) error {
	md.NewMode()

	lp, _, err := loadPreferences()
	if err != nil {
		return err
	}

	port := md.AddString("port", lp.Port.String(), "serial port of the chessboard")
	wait := md.AddBool("wait", true, "wait for the board to be ready")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(`Moves the piece on one square of the board to another. The squares are
specified by physical file and rank, each in the range 0 to 7:

  RAW <src file> <src rank> <dest file> <dest rank>`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	if len(md.RemainingArgs()) != 4 {
		return fmt.Errorf("four coordinates required for %s mode", md)
	}

	var c [4]int
	for i := range c {
		c[i], err = strconv.Atoi(md.GetArg(i))
		if err != nil {
			return fmt.Errorf("coordinate %d: %w", i, err)
		}
	}

	m := coords.RawMove{SrcFile: c[0], SrcRank: c[1], DstFile: c[2], DstRank: c[3]}
	if !m.Valid() {
		return fmt.Errorf("invalid move %v", m)
	}

	link, err := openLink(lp, *port, *wait, *log)
	if err != nil {
		return err
	}
	defer link.Close()

	err = link.SubmitRawMove(m)
	if err != nil {
		return err
	}

	if !link.AwaitQueueDrain(lp.DrainTimeout.Value()) {
		return curated.Errorf(boardlink.Timeout, "queue to empty")
	}

	fmt.Printf("! moved %v\n", m)

	return nil
}

func replacements(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("LIST", "ADD", "DELETE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	repl, err := movesource.LoadReplacements(paths.ResourcePath("", movesource.DefaultReplacementsFile))
	if err != nil {
		return err
	}

	switch md.Mode() {
	case "LIST":
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("too many arguments for %s mode", md)
		}
		return repl.List(os.Stdout)

	case "ADD":
		if len(md.RemainingArgs()) != 2 {
			return fmt.Errorf("phrase and correction required for %s mode", md)
		}
		return repl.Add(md.GetArg(0), md.GetArg(1))

	case "DELETE":
		if len(md.RemainingArgs()) != 1 {
			return fmt.Errorf("replacement number required for %s mode", md)
		}
		key, err := strconv.Atoi(md.GetArg(0))
		if err != nil {
			return fmt.Errorf("replacement number: %w", err)
		}
		return repl.Remove(key)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Println(version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
