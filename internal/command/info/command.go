package info

import (
	"fmt"
	"time"

	"github.com/bornholm/notionhtml/internal/command/common"
	"github.com/bornholm/notionhtml/internal/core/service"
	"github.com/bornholm/notionhtml/internal/setup"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func Command() *cli.Command {
	flags := common.WithCommonFlags()
	return &cli.Command{
		Name:      "info",
		Usage:     "Print the title and the timestamps of a page",
		ArgsUsage: "<page-id>",
		Flags:     flags,
		Before:    altsrc.InitInputSourceWithContext(flags, common.NewResolverSourceFromFlagFunc("config")),
		Action: func(ctx *cli.Context) error {
			pageID := ctx.Args().First()
			if pageID == "" {
				return errors.New("a page identifier is required")
			}

			conf, err := common.GetConfig(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			store, err := setup.NewBlockStoreFromConfig(ctx.Context, conf)
			if err != nil {
				return errors.Wrap(err, "could not create block store")
			}

			doc := service.NewDocument(pageID, store)

			title, err := doc.Title(ctx.Context)
			if err != nil {
				return errors.Wrapf(err, "could not retrieve title of page '%s'", pageID)
			}

			createdAt, err := doc.CreatedAt(ctx.Context)
			if err != nil {
				return errors.Wrapf(err, "could not retrieve creation time of page '%s'", pageID)
			}

			updatedAt, err := doc.UpdatedAt(ctx.Context)
			if err != nil {
				return errors.Wrapf(err, "could not retrieve edition time of page '%s'", pageID)
			}

			w := ctx.App.Writer

			fmt.Fprintf(w, "ID:      %s\n", doc.ID())
			fmt.Fprintf(w, "Title:   %s\n", title)
			fmt.Fprintf(w, "Created: %s\n", formatTime(createdAt))
			fmt.Fprintf(w, "Updated: %s\n", formatTime(updatedAt))

			return nil
		},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	return fmt.Sprintf("%s (%s)", t.UTC().Format(time.RFC3339), humanize.Time(t))
}
