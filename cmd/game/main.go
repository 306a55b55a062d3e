package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"mazehunt/internal/game"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "YAML settings file (watched for changes)")
	flag.Parse()

	settings := game.DefaultSettings()
	var watcher *game.ConfigWatcher
	if configPath != "" {
		var err error
		settings, err = game.LoadSettings(configPath)
		if err != nil {
			log.Fatal(err)
		}
		watcher, err = game.WatchConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
	}

	session := game.NewSession(settings)
	ebiten.SetWindowTitle("Mazehunt")
	ebiten.SetWindowSize(
		session.Maze().Width()*game.TileSize,
		session.Maze().Height()*game.TileSize,
	)
	if err := ebiten.RunGame(game.NewGame(session, watcher, configPath)); err != nil {
		log.Fatal(err)
	}
}
