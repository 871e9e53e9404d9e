package config

import "time"

type Render struct {
	DowngradeHeadings bool      `env:"DOWNGRADE_HEADINGS,expand" envDefault:"false"`
	ImageWidth        int       `env:"IMAGE_WIDTH,expand" envDefault:"0"`
	ImageBaseURL      string    `env:"IMAGE_BASE_URL,expand" envDefault:"https://www.notion.so"`
	EmojiBaseURL      string    `env:"EMOJI_BASE_URL,expand" envDefault:"https://emojicdn.elk.sh"`
	Highlight         Highlight `envPrefix:"HIGHLIGHT_"`
	Math              Math      `envPrefix:"MATH_"`
	Cache             Cache     `envPrefix:"CACHE_"`
}

type Highlight struct {
	Style       string `env:"STYLE,expand" envDefault:"github"`
	ClassPrefix string `env:"CLASS_PREFIX,expand" envDefault:""`
}

type Math struct {
	// Either "katex" (server side typesetting) or "tex" (delimited sources
	// typeset in the browser)
	Engine       string        `env:"ENGINE,expand" envDefault:"katex"`
	KaTeXScript  string        `env:"KATEX_SCRIPT,expand" envDefault:"https://unpkg.com/katex@0.13.1/dist/katex.min.js"`
	KaTeXTimeout time.Duration `env:"KATEX_TIMEOUT,expand" envDefault:"30s"`
}

type Cache struct {
	Size int           `env:"SIZE,expand" envDefault:"256"`
	TTL  time.Duration `env:"TTL,expand" envDefault:"1h"`
}
