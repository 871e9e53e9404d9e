package setup

import (
	"testing"

	"github.com/bornholm/notionhtml/internal/adapter/cache"
	"github.com/bornholm/notionhtml/internal/adapter/katex"
	"github.com/bornholm/notionhtml/internal/adapter/tex"
	"github.com/bornholm/notionhtml/internal/config"
	"github.com/pkg/errors"
)

func TestNewMathRenderer(t *testing.T) {
	conf, err := config.Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	renderer, err := newMathRenderer(conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, ok := renderer.(*cache.MathRenderer); !ok {
		t.Errorf("expected a cached renderer, got %T", renderer)
	}

	conf.Render.Cache.Size = 0

	renderer, err = newMathRenderer(conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, ok := renderer.(*katex.LazyRenderer); !ok {
		t.Errorf("expected katex to be the default engine, got %T", renderer)
	}

	conf.Render.Math.Engine = "tex"

	renderer, err = newMathRenderer(conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, ok := renderer.(*tex.Renderer); !ok {
		t.Errorf("expected a tex renderer, got %T", renderer)
	}

	conf.Render.Math.Engine = "mathjax"

	if _, err := newMathRenderer(conf); err == nil {
		t.Error("expected an error for an unknown engine")
	}
}
