// Command dominioneerd runs a single scripted Dominion session end to
// end: it loads configuration, builds the engine, drives a fixed
// sequence of commands through it, and prints the derived nested
// display log (internal/logbuilder) to stdout. It is a demonstration
// driver, not a server — spec.md's transport surface is deliberately
// left to a caller, mirroring how the teacher's cmd/web-demo exercises
// its engine without the full grpc server stack.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/dominioneer/dominioneer/internal/catalog"
	"github.com/dominioneer/dominioneer/internal/command"
	"github.com/dominioneer/dominioneer/internal/config"
	"github.com/dominioneer/dominioneer/internal/events"
	"github.com/dominioneer/dominioneer/internal/logbuilder"
	"github.com/dominioneer/dominioneer/internal/persist"
	"github.com/dominioneer/dominioneer/internal/state"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "path to configuration file (optional)")
	snapshotTo = flag.String("snapshot", "", "path to write the gob-encoded event log to (optional)")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("session_id", cfg.SessionID.String()))
	logger.Info("starting dominioneerd", zap.String("version", version))

	params := cfg.StartGameParams()
	if len(params.Players) == 0 {
		params.Players = []string{"alice", "bob"}
	}

	var seed uint64 = 1
	if params.Seed != nil {
		seed = *params.Seed
	}
	rng := rand.New(rand.NewSource(int64(seed)))
	shuffle := func(cards []string) []string {
		out := append([]string(nil), cards...)
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}

	cat := catalog.New()
	h := command.New(cat, shuffle, logger)

	s := state.New()
	var log []events.Event

	apply := func(r command.Result, label string) {
		if !r.OK {
			logger.Fatal("command rejected", zap.String("command", label), zap.Error(r.Err))
		}
		log = append(log, r.Events...)
		s = state.ApplyAll(s, r.Events)
	}

	apply(h.StartGame(params), "StartGame")
	for _, c := range s.Players[params.Players[0]].Hand {
		if c == "Copper" {
			apply(h.PlayTreasure(s, params.Players[0], c), "PlayTreasure")
		}
	}
	apply(h.EndPhase(s, params.Players[0]), "EndPhase")
	apply(h.BuyCard(s, params.Players[0], "Silver"), "BuyCard")
	apply(h.EndTurn(s, params.Players[0]), "EndTurn")

	for _, e := range logbuilder.Build(log) {
		printEntry(e, 0)
	}

	if *snapshotTo != "" {
		data, err := persist.ToBytes(log)
		if err != nil {
			logger.Fatal("failed to serialize session", zap.Error(err))
		}
		if err := os.WriteFile(*snapshotTo, data, 0o644); err != nil {
			logger.Fatal("failed to write snapshot", zap.Error(err))
		}
		logger.Info("wrote snapshot", zap.String("path", *snapshotTo), zap.Int("bytes", len(data)))
	}
}

func printEntry(e *logbuilder.Entry, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	label := e.Kind
	if e.Player != "" {
		label += " " + e.Player
	}
	if len(e.Cards) > 0 {
		label += fmt.Sprintf(" %v", e.Cards)
	}
	if e.Count > 1 {
		label += fmt.Sprintf(" x%d", e.Count)
	}
	fmt.Println(indent + label)
	for _, c := range e.Children {
		printEntry(c, depth+1)
	}
}
