package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/shelsoloa/OverYonder--2016/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw platform paths and player state")
	hot := flag.Bool("hot", false, "reload prefabs/, scripts and levels/ files when they change on disk")
	levelName := flag.String("level", "demo", "level name in levels/ (basename, .json optional)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*common.Scale, common.BaseHeight*common.Scale)
	ebiten.SetWindowTitle("over yonder")

	game, err := NewGame(*levelName, *debug, *hot)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
