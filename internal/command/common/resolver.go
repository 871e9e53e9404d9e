package common

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"regexp"

	"github.com/Bornholm/amatl/pkg/resolver"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v2"
)

// NewResolverSourceFromFlagFunc reads the flags values from the
// configuration file designated by the given flag, if any. The file can be
// local or remote, in YAML or JSON.
func NewResolverSourceFromFlagFunc(flag string) func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		if urlStr := cCtx.String(flag); urlStr != "" {
			return NewResolvedInputSource(cCtx.Context, urlStr)
		}

		return altsrc.NewMapInputSource("", map[any]any{}), nil
	}
}

func NewResolvedInputSource(ctx context.Context, urlStr string) (altsrc.InputSourceContext, error) {
	url, err := url.Parse(urlStr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse url '%s'", urlStr)
	}

	data, err := resolve(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve '%s'", urlStr)
	}

	values, err := decodeValues(filepath.Ext(url.Path), data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	values, err = rewriteRelativePaths(url, values)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return altsrc.NewMapInputSource(urlStr, values), nil
}

func resolve(ctx context.Context, url *url.URL) ([]byte, error) {
	reader, err := resolver.Resolve(ctx, url)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer func() {
		if err := reader.Close(); err != nil {
			slog.WarnContext(ctx, "could not close configuration reader", slogx.Error(errors.WithStack(err)))
		}
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

func decodeValues(ext string, data []byte) (map[any]any, error) {
	switch ext {
	case ".json", ".yaml", ".yml":
		var values map[any]any

		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errors.WithStack(err)
		}

		if values == nil {
			values = map[any]any{}
		}

		return values, nil

	default:
		return nil, errors.Errorf("no parser associated with '%s' file extension", ext)
	}
}

// rewriteRelativePaths makes the paths found in values relative to the
// directory of the configuration file.
func rewriteRelativePaths(fromURL *url.URL, values map[any]any) (map[any]any, error) {
	dirURL := *fromURL

	absPath, err := filepath.Abs(filepath.Dir(fromURL.Path))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	dirURL.Path = absPath

	for key, rawValue := range values {
		value, ok := rawValue.(string)
		if !ok || isURL(value) || !isPath(value) || filepath.IsAbs(value) {
			continue
		}

		values[key] = dirURL.JoinPath(value).String()
	}

	return values, nil
}

var filepathRegExp = regexp.MustCompile(`^(?i)(?:\/[^\/]+)+\/?[^\s]+(?:\.[^\s]+)+|[^\s]+(?:\.[^\s]+)+$`)

func isPath(str string) bool {
	return filepathRegExp.MatchString(str)
}

func isURL(str string) bool {
	_, err := url.ParseRequestURI(str)
	return err == nil
}
