package bot

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
)

// Source is the random capability used to pick among reply variants.
// IntN returns a value in [0, n).
type Source interface {
	IntN(n int) int
}

// processSource draws from the process-wide math/rand/v2 generator, which is
// safe for concurrent use.
type processSource struct{}

func (processSource) IntN(n int) int { return rand.IntN(n) }

// ProcessSource returns the default, unseeded random source.
func ProcessSource() Source { return processSource{} }

// Templates holds every reply the assistant can give. Sets are interchangeable
// variants, one of which is picked per reply.
type Templates struct {
	Sets map[Intent][]string

	// ProductFound is formatted with the matched keyword and its category, so
	// it must contain exactly two %s verbs and no other verbs.
	ProductFound  string
	ProductPrompt string
	PlaceOrder    string
	OrderStatus   string
	Help          string
	Fallback      string
}

// randomized lists the intents whose replies come from a variant set.
var randomized = []Intent{IntentGreeting, IntentOrder, IntentPayment, IntentShipping}

// DefaultTemplates returns the built-in reply text.
func DefaultTemplates() Templates {
	return Templates{
		Sets: map[Intent][]string{
			IntentGreeting: {
				"Hello! Welcome to our store! How can I help you today?",
				"Hi there! Ready to shop? What are you looking for?",
				"Welcome! How can I assist you with your shopping?",
			},
			IntentOrder: {
				"I can help you place an order! What would you like to buy?",
				"Let me help you with your order. What products are you interested in?",
				"Ready to order? Tell me what you need!",
			},
			IntentPayment: {
				"We accept cash on delivery, bKash, Nagad, and credit cards.",
				"Payment options: COD, mobile banking, and card payments.",
				"You can pay via cash, bKash, Nagad, or credit card.",
			},
			IntentShipping: {
				"We deliver inside the city within 1-2 days and nationwide within 3-5 days.",
				"Delivery takes 1-2 days in the city and 3-5 days elsewhere. You'll get a call before the courier arrives.",
				"Orders ship the next working day. City delivery is 1-2 days, outside the city 3-5 days.",
			},
		},
		ProductFound:  "Looking for %s? I can show you our %s collection!",
		ProductPrompt: "What type of products are you looking for? (e.g., shirts, electronics, books)",
		PlaceOrder:    "Great! To place an order, please tell me what products you want and your contact information.",
		OrderStatus:   "To check your order status, please provide your order ID.",
		Help: "Here's what I can help you with:\n" +
			"• Products: ask about items or prices, e.g. \"price of shoes\" or \"price of watches\"\n" +
			"• Orders: say \"place an order\" or \"order status\"\n" +
			"• Payment: cash on delivery, bKash, Nagad, or card\n" +
			"• Shipping: delivery times and areas\n" +
			"Just type your question to get started!",
		Fallback: "I'm here to help with your shopping! You can ask me about products, prices, or place orders.",
	}
}

// Clone returns a deep copy of t.
func (t Templates) Clone() Templates {
	out := t
	out.Sets = make(map[Intent][]string, len(t.Sets))
	for k, v := range t.Sets {
		out.Sets[k] = slices.Clone(v)
	}
	return out
}

// Validate ensures every intent can always produce a non-empty reply.
func (t Templates) Validate() error {
	for _, in := range randomized {
		variants := t.Sets[in]
		if len(variants) == 0 {
			return fmt.Errorf("no reply variants for intent %q", in)
		}
		if slices.Contains(variants, "") {
			return fmt.Errorf("empty reply variant for intent %q", in)
		}
	}
	for _, in := range slices.Sorted(maps.Keys(t.Sets)) {
		if !slices.Contains(randomized, in) {
			return fmt.Errorf("intent %q does not use reply variants", in)
		}
	}
	fixed := map[string]string{
		"product found":  t.ProductFound,
		"product prompt": t.ProductPrompt,
		"place order":    t.PlaceOrder,
		"order status":   t.OrderStatus,
		"help":           t.Help,
		"fallback":       t.Fallback,
	}
	for name, text := range fixed {
		if text == "" {
			return fmt.Errorf("%s reply is empty", name)
		}
	}
	if err := checkProductFound(t.ProductFound); err != nil {
		return fmt.Errorf("product found reply: %w", err)
	}
	return nil
}

// ErrProductFoundVerbs is returned for a ProductFound reply that cannot be
// formatted with a keyword and a category.
var ErrProductFoundVerbs = errors.New("must contain exactly two %s verbs")

func checkProductFound(format string) error {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 == len(format) {
			return ErrProductFoundVerbs
		}
		i++
		switch format[i] {
		case '%':
		case 's':
			n++
		default:
			return ErrProductFoundVerbs
		}
	}
	if n != 2 {
		return ErrProductFoundVerbs
	}
	return nil
}

// Render builds the reply for an intent and whatever its extractor found.
func Render(t *Templates, src Source, intent Intent, sub SubIntent) string {
	switch intent {
	case IntentProductSearch:
		if sub.Keyword != "" {
			return fmt.Sprintf(t.ProductFound, sub.Keyword, sub.Category)
		}
		return t.ProductPrompt
	case IntentOrder:
		switch sub.Action {
		case OrderActionPlace:
			return t.PlaceOrder
		case OrderActionStatus:
			return t.OrderStatus
		}
		return pick(src, t.Sets[IntentOrder])
	case IntentGreeting, IntentPayment, IntentShipping:
		return pick(src, t.Sets[intent])
	case IntentHelp:
		return t.Help
	default:
		return t.Fallback
	}
}

func pick(src Source, variants []string) string {
	return variants[src.IntN(len(variants))]
}
