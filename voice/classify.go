// Package voice classifies assistant utterances by keyword matching. The
// Classifier interface keeps the matcher pluggable; nothing here calls a
// speech or language service.
package voice

import (
	"regexp"
	"strings"
)

// Intent tags the default classifier can produce.
const (
	IntentBalance   = "balance"
	IntentHistory   = "history"
	IntentTransfer  = "transfer"
	IntentBlockCard = "block_card"
	IntentLoanInfo  = "loan_info"
	IntentGreeting  = "greeting"
	IntentUnknown   = "unknown"
)

// Intent is a classified utterance: a tag plus optional extracted
// parameters (for transfers: "amount" and "to").
type Intent struct {
	Tag    string            `json:"tag"`
	Params map[string]string `json:"params,omitempty"`
}

// Classifier maps a raw utterance to an intent.
type Classifier interface {
	Classify(utterance, lang string) Intent
}

// KeywordClassifier is the default classifier: case-folded substring
// matching over a small multilingual keyword table (English, Hindi,
// Marathi, Tamil). Lang only matters where keyword sets overlap; matching
// always tries every language.
type KeywordClassifier struct{}

var intentKeywords = []struct {
	tag      string
	keywords []string
}{
	{IntentBalance, []string{"balance", "बैलेंस", "शिल्लक", "இருப்பு"}},
	{IntentHistory, []string{"transaction", "history", "लेनदेन", "பரிவர்த்தனை"}},
	{IntentTransfer, []string{"transfer", "send", "ट्रांसफर", "பரிவு"}},
	{IntentBlockCard, []string{"block"}},
	{IntentLoanInfo, []string{"emi", "loan"}},
	{IntentGreeting, []string{"hello", "hi", "नमस्ते", "வணக்கம்"}},
}

// pinWords mark an utterance as a PIN dictation, in any supported script.
var pinWords = []string{"pin", "पिन", "পিন", "பின்"}

func (KeywordClassifier) Classify(utterance, lang string) Intent {
	t := strings.ToLower(utterance)
	intent := Intent{Tag: IntentUnknown}
matching:
	for _, ik := range intentKeywords {
		for _, kw := range ik.keywords {
			if !strings.Contains(t, kw) {
				continue
			}
			intent.Tag = ik.tag
			if ik.tag == IntentTransfer {
				if amount, to, ok := parseTransferIntent(utterance); ok {
					intent.Params = map[string]string{"amount": amount}
					if to != "" {
						intent.Params["to"] = to
					}
				}
			}
			break matching
		}
	}
	if mentionsPIN(t) {
		if pin := ParseSpokenPIN(utterance, lang); len(pin) == 4 {
			if intent.Params == nil {
				intent.Params = map[string]string{}
			}
			intent.Params["pin"] = pin
		}
	}
	return intent
}

func mentionsPIN(lowered string) bool {
	for _, w := range pinWords {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}

var (
	amountRe = regexp.MustCompile(`(\d[\d,]*)`)
	payeeRe  = regexp.MustCompile(`(?i)to\s+(.+)$`)
	// dative postpositions marking the payee in Hindi, Marathi and Tamil
	payeeDativeRe = regexp.MustCompile(`(?i)(?:को|ला|க்கு)\s+(.+)`)
)

// parseTransferIntent extracts the amount and payee from a transfer
// utterance like "send 5000 to priya". Without an amount there is nothing
// to act on and ok is false.
func parseTransferIntent(text string) (amount, to string, ok bool) {
	t := strings.ToLower(text)
	m := amountRe.FindStringSubmatch(t)
	if m == nil {
		return "", "", false
	}
	amount = strings.ReplaceAll(m[1], ",", "")
	if pm := payeeRe.FindStringSubmatch(t); pm != nil {
		to = strings.TrimSpace(pm[1])
	} else if pm := payeeDativeRe.FindStringSubmatch(text); pm != nil {
		to = strings.TrimSpace(pm[1])
	}
	return amount, to, true
}

var spokenDigits = map[string]map[string]string{
	"en": {"zero": "0", "oh": "0", "o": "0", "one": "1", "two": "2", "three": "3", "four": "4", "for": "4", "five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9"},
	"hi": {"shoonya": "0", "shunya": "0", "zero": "0", "ek": "1", "do": "2", "teen": "3", "char": "4", "chaar": "4", "paanch": "5", "chhe": "6", "che": "6", "saat": "7", "aat": "8", "aath": "8", "nau": "9"},
	"mr": {"shunya": "0", "ek": "1", "don": "2", "do": "2", "teen": "3", "char": "4", "paanch": "5", "sah": "6", "saat": "7", "aath": "8", "nau": "9"},
	"ta": {"sonna": "0", "onru": "1", "ondru": "1", "ondu": "1", "rendu": "2", "moonru": "3", "moondru": "3", "naalu": "4", "anchu": "5", "aaru": "6", "elu": "7", "entu": "8", "ombathu": "9"},
	"bn": {"shunno": "0", "shunya": "0", "ek": "1", "dui": "2", "tin": "3", "char": "4", "panch": "5", "choy": "6", "sat": "7", "aath": "8", "noy": "9"},
}

var (
	nonAlpha = regexp.MustCompile(`[^a-z]`)
	digitsRe = regexp.MustCompile(`\d+`)
)

// ParseSpokenPIN turns a spoken 4-digit PIN into digits. Digits embedded in
// the transcript win; otherwise number words are mapped per language,
// falling back to English.
func ParseSpokenPIN(spoken, lang string) string {
	if spoken == "" {
		return ""
	}
	s := strings.ToLower(spoken)
	s = strings.NewReplacer(",", " ", ".", " ", "-", " ").Replace(s)

	if direct := digitsRe.FindAllString(s, -1); direct != nil {
		joined := strings.Join(direct, "")
		if len(joined) > 4 {
			joined = joined[:4]
		}
		return joined
	}

	words, ok := spokenDigits[lang]
	if !ok {
		words = spokenDigits["en"]
	}
	var out strings.Builder
	for _, part := range strings.Fields(s) {
		if out.Len() >= 4 {
			break
		}
		if d, ok := words[part]; ok {
			out.WriteString(d)
			continue
		}
		if d, ok := words[nonAlpha.ReplaceAllString(part, "")]; ok {
			out.WriteString(d)
		}
	}
	pin := out.String()
	if len(pin) > 4 {
		pin = pin[:4]
	}
	return pin
}

var (
	positiveWords = []string{"good", "great", "awesome", "nice", "thanks", "thank you", "helpful", "love", "excellent"}
	negativeWords = []string{"bad", "terrible", "hate", "angry", "upset", "not", "fraud", "scam", "fraudulent", "complain"}
)

// Sentiment tags an utterance positive, negative or neutral by counting
// keyword hits. Illustrative only.
func Sentiment(text string) string {
	t := strings.ToLower(text)
	score := 0
	for _, w := range positiveWords {
		if strings.Contains(t, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(t, w) {
			score--
		}
	}
	switch {
	case score > 0:
		return "positive"
	case score < 0:
		return "negative"
	default:
		return "neutral"
	}
}
