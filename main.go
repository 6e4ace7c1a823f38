package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/planar/components"
	"github.com/pthm-cable/planar/config"
	"github.com/pthm-cable/planar/vec"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to scenario YAML (empty = use defaults)")
	logJSON := flag.Bool("log-json", false, "Emit structured JSON logs")
	flag.Parse()

	// Set up slog before anything else
	var handler slog.Handler
	if *logJSON {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load scenario", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	slog.Info("scenario loaded", "name", cfg.Scenario.Name, "players", len(cfg.Players))

	players := make(map[string]components.Player[float64, float64], len(cfg.Players))
	for _, pc := range cfg.Players {
		direction, err := vec.NewUnit[float64](pc.Heading[0], pc.Heading[1])
		if err != nil {
			if errors.Is(err, vec.ErrZeroLength) {
				slog.Warn("player has no heading, skipping", "player", pc.Name)
			} else {
				slog.Error("invalid heading", "player", pc.Name, "error", err)
			}
			continue
		}

		p := components.NewPlayer(vec.FromArray(pc.Position), direction)
		players[pc.Name] = p
		slog.Info("player spawned",
			"player", pc.Name,
			"pos_x", p.Position.X(),
			"pos_y", p.Position.Y(),
			"dir_x", p.Direction.X(),
			"dir_y", p.Direction.Y(),
		)
	}

	// Pairwise separations between spawned players
	for _, a := range cfg.Players {
		pa, ok := players[a.Name]
		if !ok {
			continue
		}
		for _, b := range cfg.Players {
			if b.Name <= a.Name {
				continue
			}
			pb, ok := players[b.Name]
			if !ok {
				continue
			}
			d, err := vec.Distance[float64](pa.Position, pb.Position)
			if err != nil {
				slog.Error("distance failed", "from", a.Name, "to", b.Name, "error", err)
				continue
			}
			slog.Info("separation", "from", a.Name, "to", b.Name, "distance", d)
		}
	}
}
