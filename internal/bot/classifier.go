package bot

// OrderAction is the sub-intent of an order message.
type OrderAction string

const (
	OrderActionNone   OrderAction = ""
	OrderActionPlace  OrderAction = "place"
	OrderActionStatus OrderAction = "status"
)

// SubIntent carries what an extractor pulled out of a message. A zero value
// means nothing was extracted.
type SubIntent struct {
	Keyword  string
	Category string
	Action   OrderAction
}

// Extracted returns the extracted value as a single string, or "" if none.
func (s SubIntent) Extracted() string {
	if s.Keyword != "" {
		return s.Keyword
	}
	return string(s.Action)
}

// Classify returns the first intent, in rule order, that has a trigger
// contained in the normalized message. It never fails: an empty or unmatched
// message is IntentFallback.
func Classify(lex *Lexicon, p Policy, message string) Intent {
	return classifyNormalized(lex, p, p.Normalize(message))
}

func classifyNormalized(lex *Lexicon, p Policy, text string) Intent {
	for _, r := range lex.Rules {
		if containsAny(p, text, r.Triggers) {
			return r.Intent
		}
	}
	return IntentFallback
}

// ExtractCategory returns the first category keyword, in lexicon order, found
// in the normalized text. The bool is false when no keyword was extracted.
func ExtractCategory(lex *Lexicon, p Policy, text string) (CategoryKeyword, bool) {
	for _, c := range lex.Categories {
		if p.Contains(text, c.Keyword) {
			return c, true
		}
	}
	return CategoryKeyword{}, false
}

// ExtractOrderAction detects whether an order message asks to place an order or
// to check one. Placing wins when both kinds of words are present.
func ExtractOrderAction(lex *Lexicon, p Policy, text string) OrderAction {
	switch {
	case containsAny(p, text, lex.PlaceOrderWords):
		return OrderActionPlace
	case containsAny(p, text, lex.OrderStatusWords):
		return OrderActionStatus
	default:
		return OrderActionNone
	}
}

// extract runs the sub-intent extractor for intent, if it has one.
func extract(lex *Lexicon, p Policy, intent Intent, text string) SubIntent {
	switch intent {
	case IntentProductSearch:
		if c, ok := ExtractCategory(lex, p, text); ok {
			return SubIntent{Keyword: c.Keyword, Category: c.Category}
		}
	case IntentOrder:
		return SubIntent{Action: ExtractOrderAction(lex, p, text)}
	}
	return SubIntent{}
}

func containsAny(p Policy, text string, words []string) bool {
	for _, w := range words {
		if p.Contains(text, w) {
			return true
		}
	}
	return false
}
