package main

import (
	"github.com/bornholm/notionhtml/internal/command"
	"github.com/bornholm/notionhtml/internal/command/info"
	"github.com/bornholm/notionhtml/internal/command/render"
)

func main() {
	command.Main(
		"notionhtml", "render public Notion pages as HTML",
		render.Command(),
		info.Command(),
	)
}
