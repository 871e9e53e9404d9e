package render

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/bornholm/notionhtml/internal/command/common"
	"github.com/bornholm/notionhtml/internal/core/service"
	"github.com/bornholm/notionhtml/internal/filesystem"
	"github.com/bornholm/notionhtml/internal/filesystem/backend"
	"github.com/bornholm/notionhtml/internal/filesystem/backend/local"
	"github.com/bornholm/notionhtml/internal/render"
	"github.com/bornholm/notionhtml/internal/setup"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func Command() *cli.Command {
	flags := common.WithCommonFlags(
		withRenderFlags()...,
	)
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a page as HTML",
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

			conf.Render.DowngradeHeadings = ctx.Bool(paramDowngradeHeadings)
			conf.Render.ImageWidth = ctx.Int(paramImageWidth)

			store, err := setup.NewBlockStoreFromConfig(ctx.Context, conf)
			if err != nil {
				return errors.Wrap(err, "could not create block store")
			}

			options, err := setup.NewDocumentOptionsFromConfig(ctx.Context, conf)
			if err != nil {
				return errors.Wrap(err, "could not create document options")
			}

			doc := service.NewDocument(pageID, store, options...)

			html, err := doc.HTML(ctx.Context)
			if err != nil {
				return errors.Wrapf(err, "could not render page '%s'", pageID)
			}

			var buff bytes.Buffer

			if ctx.Bool(paramStandalone) {
				title, err := doc.Title(ctx.Context)
				if err != nil {
					return errors.Wrapf(err, "could not retrieve title of page '%s'", pageID)
				}

				stylesheet, err := setup.NewStylesheetFromConfig(ctx.Context, conf)
				if err != nil {
					return errors.Wrap(err, "could not create stylesheet")
				}

				page := render.StandalonePage{
					Title:      title,
					Body:       html,
					Stylesheet: stylesheet,
				}

				if err := render.WriteStandalone(&buff, page); err != nil {
					return errors.WithStack(err)
				}
			} else {
				buff.WriteString(html)
			}

			size := uint64(buff.Len())

			output := ctx.String(paramOutput)
			if output == "" {
				if _, err := io.Copy(ctx.App.Writer, &buff); err != nil {
					return errors.WithStack(err)
				}

				return nil
			}

			destination, err := getDestination(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := filesystem.WriteFile(ctx.Context, destination, output, buff.Bytes()); err != nil {
				return errors.Wrapf(err, "could not write file '%s'", output)
			}

			slog.InfoContext(ctx.Context, "page rendered", slog.String("page_id", doc.ID().String()), slog.String("output", output), slog.String("size", humanize.Bytes(size)))

			return nil
		},
	}
}

func getDestination(ctx *cli.Context) (filesystem.Backend, error) {
	dsn := ctx.String(paramDestination)
	if dsn == "" {
		return local.New(""), nil
	}

	destination, err := backend.New(dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create filesystem backend from dsn '%s'", dsn)
	}

	return destination, nil
}
