package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"storefront/internal/bot"
)

// LexiconConfig is an optional YAML overlay on the bot's built-in vocabulary
// and replies. Everything in it is additive except Responses and Replies,
// which replace the built-in text they name.
type LexiconConfig struct {
	// Extra triggers per intent name. Intent priority is unchanged.
	Triggers map[string][]string `yaml:"triggers"`

	// Extra category keywords, checked after the built-in ones.
	Categories []CategoryConfig `yaml:"categories"`

	PlaceOrderWords  []string `yaml:"place_order_words"`
	OrderStatusWords []string `yaml:"order_status_words"`

	// Replacement variant sets for greeting, order, payment and shipping.
	Responses map[string][]string `yaml:"responses"`

	// Replacement fixed replies: product_found, product_prompt, place_order,
	// order_status, help, fallback. product_found takes the keyword and the
	// category as two %s verbs.
	Replies map[string]string `yaml:"replies"`
}

// CategoryConfig maps a product keyword to a catalog category.
type CategoryConfig struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// LoadLexiconConfig loads the lexicon overlay from path.
// Returns nil without error if the file doesn't exist.
func LoadLexiconConfig(path string) (*LexiconConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Overlay is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg LexiconConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply merges the overlay into lex and tpl. A nil overlay is a no-op. The
// result is not validated here; bot.New does that.
func (c *LexiconConfig) Apply(lex *bot.Lexicon, tpl *bot.Templates) error {
	if c == nil {
		return nil
	}

	for name, triggers := range c.Triggers {
		intent, err := bot.ParseIntent(name)
		if err != nil {
			return err
		}
		if err := lex.AddTriggers(intent, triggers...); err != nil {
			return err
		}
	}

	for _, cat := range c.Categories {
		if cat.Keyword == "" || cat.Category == "" {
			return fmt.Errorf("category entry needs both keyword and category, got %+v", cat)
		}
		lex.Categories = append(lex.Categories, bot.CategoryKeyword{Keyword: cat.Keyword, Category: cat.Category})
	}

	lex.PlaceOrderWords = appendMissing(lex.PlaceOrderWords, c.PlaceOrderWords)
	lex.OrderStatusWords = appendMissing(lex.OrderStatusWords, c.OrderStatusWords)

	for name, variants := range c.Responses {
		intent, err := bot.ParseIntent(name)
		if err != nil {
			return err
		}
		if tpl.Sets == nil {
			tpl.Sets = map[bot.Intent][]string{}
		}
		tpl.Sets[intent] = slices.Clone(variants)
	}

	for name, text := range c.Replies {
		switch name {
		case "product_found":
			tpl.ProductFound = text
		case "product_prompt":
			tpl.ProductPrompt = text
		case "place_order":
			tpl.PlaceOrder = text
		case "order_status":
			tpl.OrderStatus = text
		case "help":
			tpl.Help = text
		case "fallback":
			tpl.Fallback = text
		default:
			return fmt.Errorf("unknown reply %q", name)
		}
	}

	return nil
}

func appendMissing(base, extra []string) []string {
	for _, w := range extra {
		if !slices.Contains(base, w) {
			base = append(base, w)
		}
	}
	return base
}
