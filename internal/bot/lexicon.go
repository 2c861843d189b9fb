// Package bot implements the shopping assistant: a deterministic, single-turn
// rule engine that classifies a customer message into an intent and renders a
// canned reply for it.
package bot

import (
	"errors"
	"fmt"
	"slices"
)

// Intent is the coarse category a message is classified into.
type Intent string

// Intent values. Priority lists the order the classifier evaluates them in.
const (
	IntentGreeting      Intent = "greeting"
	IntentProductSearch Intent = "product_search"
	IntentOrder         Intent = "order"
	IntentPayment       Intent = "payment"
	IntentShipping      Intent = "shipping"
	IntentHelp          Intent = "help"
	IntentFallback      Intent = "fallback"
)

// Priority is the fixed evaluation order of the classifier. The fallback intent
// is not part of it; it is what remains when nothing matches.
var Priority = []Intent{
	IntentGreeting,
	IntentProductSearch,
	IntentOrder,
	IntentPayment,
	IntentShipping,
	IntentHelp,
}

// ParseIntent maps a name to an Intent, including the fallback.
func ParseIntent(name string) (Intent, error) {
	in := Intent(name)
	if in == IntentFallback || slices.Contains(Priority, in) {
		return in, nil
	}
	return "", fmt.Errorf("unknown intent %q", name)
}

// Rule is the trigger set for one intent.
type Rule struct {
	Intent   Intent
	Triggers []string
}

// CategoryKeyword maps a product keyword to its catalog category.
type CategoryKeyword struct {
	Keyword  string
	Category string
}

// Lexicon is the static vocabulary of the assistant. Rules must be listed in
// Priority order; Categories are checked in slice order, first match wins.
type Lexicon struct {
	Rules            []Rule
	Categories       []CategoryKeyword
	PlaceOrderWords  []string
	OrderStatusWords []string
}

var (
	ErrEmptyTrigger    = errors.New("trigger must not be empty")
	ErrRuleOrder       = errors.New("rules must follow the intent priority order")
	ErrFallbackTrigger = errors.New("the fallback intent cannot have triggers")
)

// DefaultLexicon returns the built-in vocabulary. English triggers are unioned
// with Spanish and Bengali ones; classification never branches on language.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Rules: []Rule{
			{IntentGreeting, []string{
				"hello", "hi", "hey", "hola", "good morning", "good evening",
				"buenos dias", "হ্যালো", "আসসালামু আলাইকুম", "নমস্কার",
			}},
			{IntentProductSearch, []string{
				"product", "item", "buy", "purchase", "price",
				"producto", "comprar", "precio",
				"পণ্য", "দাম", "কিনতে",
			}},
			{IntentOrder, []string{
				"order", "cart", "checkout",
				"pedido", "carrito",
				"অর্ডার",
			}},
			{IntentPayment, []string{
				"payment", "pay", "money", "price", "bkash", "nagad", "cash",
				"pago", "pagar", "tarjeta",
				"পেমেন্ট", "টাকা", "বিকাশ", "নগদ",
			}},
			{IntentShipping, []string{
				"shipping", "ship", "delivery", "deliver", "courier",
				"envio", "envío", "entrega",
				"ডেলিভারি", "পৌঁছাবে",
			}},
			{IntentHelp, []string{
				"help", "support", "assist",
				"ayuda",
				"সাহায্য",
			}},
		},
		Categories: []CategoryKeyword{
			{"shirt", "clothing"},
			{"pant", "clothing"},
			{"shoe", "footwear"},
			{"watch", "electronics"},
			{"phone", "electronics"},
			{"laptop", "electronics"},
			{"book", "books"},
			{"bag", "accessories"},
		},
		PlaceOrderWords: []string{
			"place", "create",
			"hacer", "realizar", "crear",
			"দিতে চাই", "করতে চাই",
		},
		OrderStatusWords: []string{
			"status", "track",
			"estado",
			"অবস্থা", "স্ট্যাটাস",
		},
	}
}

// Clone returns a deep copy, so a caller mutating its own value cannot change
// an engine built from it.
func (l Lexicon) Clone() Lexicon {
	rules := make([]Rule, len(l.Rules))
	for i, r := range l.Rules {
		rules[i] = Rule{Intent: r.Intent, Triggers: slices.Clone(r.Triggers)}
	}
	return Lexicon{
		Rules:            rules,
		Categories:       slices.Clone(l.Categories),
		PlaceOrderWords:  slices.Clone(l.PlaceOrderWords),
		OrderStatusWords: slices.Clone(l.OrderStatusWords),
	}
}

// Validate checks the invariants the classifier relies on.
func (l Lexicon) Validate() error {
	next := 0
	for _, r := range l.Rules {
		if r.Intent == IntentFallback {
			return ErrFallbackTrigger
		}
		idx := slices.Index(Priority, r.Intent)
		if idx < 0 {
			return fmt.Errorf("unknown intent %q", r.Intent)
		}
		if idx < next {
			return fmt.Errorf("%w: %s", ErrRuleOrder, r.Intent)
		}
		next = idx + 1
		if err := checkWords(string(r.Intent), r.Triggers); err != nil {
			return err
		}
	}
	for _, c := range l.Categories {
		if c.Keyword == "" {
			return fmt.Errorf("category %q: %w", c.Category, ErrEmptyTrigger)
		}
		if c.Category == "" {
			return fmt.Errorf("keyword %q has no category", c.Keyword)
		}
	}
	if err := checkWords("place order", l.PlaceOrderWords); err != nil {
		return err
	}
	return checkWords("order status", l.OrderStatusWords)
}

// Normalized returns a copy with every word passed through the policy's
// normalization, so triggers and messages are compared in the same form.
func (l Lexicon) Normalized(p Policy) Lexicon {
	out := l.Clone()
	for i := range out.Rules {
		normalizeAll(p, out.Rules[i].Triggers)
	}
	for i := range out.Categories {
		out.Categories[i].Keyword = p.Normalize(out.Categories[i].Keyword)
	}
	normalizeAll(p, out.PlaceOrderWords)
	normalizeAll(p, out.OrderStatusWords)
	return out
}

// AddTriggers unions extra triggers into the rule for intent, creating the rule
// at its priority position if the lexicon has none.
func (l *Lexicon) AddTriggers(intent Intent, triggers ...string) error {
	idx := slices.Index(Priority, intent)
	if idx < 0 {
		return fmt.Errorf("intent %q cannot take triggers", intent)
	}
	for i := range l.Rules {
		if l.Rules[i].Intent == intent {
			l.Rules[i].Triggers = union(l.Rules[i].Triggers, triggers)
			return nil
		}
	}
	pos := 0
	for pos < len(l.Rules) && slices.Index(Priority, l.Rules[pos].Intent) < idx {
		pos++
	}
	l.Rules = slices.Insert(l.Rules, pos, Rule{Intent: intent, Triggers: union(nil, triggers)})
	return nil
}

func checkWords(owner string, words []string) error {
	for _, w := range words {
		if w == "" {
			return fmt.Errorf("%s: %w", owner, ErrEmptyTrigger)
		}
	}
	return nil
}

func normalizeAll(p Policy, words []string) {
	for i, w := range words {
		words[i] = p.Normalize(w)
	}
}

func union(base, extra []string) []string {
	out := slices.Clone(base)
	for _, w := range extra {
		if !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}
