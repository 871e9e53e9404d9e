package render

import (
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	// Filesystem backends

	_ "github.com/bornholm/notionhtml/internal/filesystem/backend/sftp"
)

const (
	paramOutput            = "output"
	paramDestination       = "destination"
	paramDowngradeHeadings = "downgrade-headings"
	paramImageWidth        = "image-width"
	paramStandalone        = "standalone"
)

var (
	flagOutput = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramOutput,
		Aliases: []string{"o"},
		Value:   "",
		Usage:   "Write the rendered page to this file instead of the standard output",
	})
	flagDestination = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramDestination,
		Aliases: []string{"d"},
		EnvVars: []string{"NOTIONHTML_CLI_DESTINATION"},
		Value:   "",
		Usage:   "Filesystem DSN the output file is written to (local:///var/www, sftp://user@host/dir?hostKey=...)",
	})
	flagDowngradeHeadings = altsrc.NewBoolFlag(&cli.BoolFlag{
		Name:    paramDowngradeHeadings,
		EnvVars: []string{"NOTIONHTML_RENDER_DOWNGRADE_HEADINGS"},
		Value:   false,
		Usage:   "Render headers one level lower (h1 becomes h2...)",
	})
	flagImageWidth = altsrc.NewIntFlag(&cli.IntFlag{
		Name:    paramImageWidth,
		EnvVars: []string{"NOTIONHTML_RENDER_IMAGE_WIDTH"},
		Value:   0,
		Usage:   "Width requested from the image proxy, 0 to keep the original size",
	})
	flagStandalone = altsrc.NewBoolFlag(&cli.BoolFlag{
		Name:  paramStandalone,
		Value: false,
		Usage: "Wrap the rendered page in a complete HTML document",
	})
)

func withRenderFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagOutput,
		flagDestination,
		flagDowngradeHeadings,
		flagImageWidth,
		flagStandalone,
	}, flags...)
}
