package common

import (
	"time"

	"github.com/bornholm/notionhtml/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	// Register resolver schemes

	_ "github.com/Bornholm/amatl/pkg/resolver/file"
	_ "github.com/Bornholm/amatl/pkg/resolver/http"
	_ "github.com/Bornholm/amatl/pkg/resolver/stdin"
)

const (
	paramStoreURL       = "store-url"
	paramStoreTimeout   = "store-timeout"
	paramStoreRetries   = "store-retries"
	paramHighlightStyle = "highlight-style"
	paramCacheSize      = "cache-size"
	paramMathEngine     = "math-engine"
)

var (
	flagStoreURL = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramStoreURL,
		Aliases: []string{"s"},
		EnvVars: []string{"NOTIONHTML_STORE_BASE_URL"},
		Value:   "https://www.notion.so",
		Usage:   "Block store base url",
	})
	flagStoreTimeout = altsrc.NewDurationFlag(&cli.DurationFlag{
		Name:    paramStoreTimeout,
		EnvVars: []string{"NOTIONHTML_STORE_TIMEOUT"},
		Value:   time.Minute,
		Usage:   "Timeout of each request sent to the block store",
	})
	flagStoreRetries = altsrc.NewIntFlag(&cli.IntFlag{
		Name:    paramStoreRetries,
		EnvVars: []string{"NOTIONHTML_STORE_MAX_RETRIES"},
		Value:   0,
		Usage:   "Maximum number of retries of rate limited requests",
	})
	flagHighlightStyle = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramHighlightStyle,
		EnvVars: []string{"NOTIONHTML_RENDER_HIGHLIGHT_STYLE"},
		Value:   "github",
		Usage:   "Style of the highlighted code blocks",
	})
	flagCacheSize = altsrc.NewIntFlag(&cli.IntFlag{
		Name:    paramCacheSize,
		EnvVars: []string{"NOTIONHTML_RENDER_CACHE_SIZE"},
		Value:   256,
		Usage:   "Maximum number of memoized highlighted code blocks and equations",
	})
	flagMathEngine = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramMathEngine,
		EnvVars: []string{"NOTIONHTML_RENDER_MATH_ENGINE"},
		Value:   "katex",
		Usage:   "Equation renderer: 'katex' typesets server side, 'tex' leaves it to the browser",
	})
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagStoreURL,
		flagStoreTimeout,
		flagStoreRetries,
		flagHighlightStyle,
		flagCacheSize,
		flagMathEngine,
	}, flags...)
}

// GetConfig returns the configuration parsed from the environment,
// overridden by the common flags.
func GetConfig(ctx *cli.Context) (*config.Config, error) {
	conf, err := config.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}

	conf.Store.BaseURL = ctx.String(paramStoreURL)
	conf.Store.Timeout = ctx.Duration(paramStoreTimeout)
	conf.Store.MaxRetries = ctx.Int(paramStoreRetries)
	conf.Render.Highlight.Style = ctx.String(paramHighlightStyle)
	conf.Render.Cache.Size = ctx.Int(paramCacheSize)
	conf.Render.Math.Engine = ctx.String(paramMathEngine)

	return conf, nil
}
