package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordClassifier(t *testing.T) {
	c := KeywordClassifier{}

	tests := []struct {
		name      string
		utterance string
		lang      string
		wantTag   string
	}{
		{"balance english", "what is my balance", "en", IntentBalance},
		{"balance hindi", "मेरा बैलेंस बताओ", "hi", IntentBalance},
		{"balance marathi", "माझी शिल्लक किती आहे", "mr", IntentBalance},
		{"balance tamil", "என் இருப்பு என்ன", "ta", IntentBalance},
		{"history", "show my transaction history", "en", IntentHistory},
		{"history hindi", "मेरे लेनदेन दिखाओ", "hi", IntentHistory},
		{"transfer", "transfer 5000 to priya", "en", IntentTransfer},
		{"block card", "please block my card", "en", IntentBlockCard},
		{"loan", "what is my emi this month", "en", IntentLoanInfo},
		{"greeting", "hello there", "en", IntentGreeting},
		{"unknown", "the weather is lovely today", "en", IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.utterance, tt.lang)
			assert.Equal(t, tt.wantTag, got.Tag)
		})
	}
}

func TestClassifyTransferParams(t *testing.T) {
	c := KeywordClassifier{}

	got := c.Classify("send 5,000 to priya deshmukh", "en")
	assert.Equal(t, IntentTransfer, got.Tag)
	assert.Equal(t, "5000", got.Params["amount"])
	assert.Equal(t, "priya deshmukh", got.Params["to"])

	// amount without a payee still classifies, payee stays unset
	got = c.Classify("transfer 1200", "en")
	assert.Equal(t, IntentTransfer, got.Tag)
	assert.Equal(t, "1200", got.Params["amount"])
	_, hasTo := got.Params["to"]
	assert.False(t, hasTo)

	// no amount at all: intent only
	got = c.Classify("i want to transfer money", "en")
	assert.Equal(t, IntentTransfer, got.Tag)
	assert.Nil(t, got.Params)
}

func TestClassifyPINDictation(t *testing.T) {
	c := KeywordClassifier{}

	// spoken words, no keyword match for any other intent
	got := c.Classify("my pin is one two three four", "en")
	assert.Equal(t, IntentUnknown, got.Tag)
	assert.Equal(t, "1234", got.Params["pin"])

	// plain digits
	got = c.Classify("pin 9 8 2 1", "en")
	assert.Equal(t, "9821", got.Params["pin"])

	// mentioning pin without four parseable digits attaches nothing
	got = c.Classify("i forgot my pin", "en")
	assert.Nil(t, got.Params)

	// no pin mention: digits are not mistaken for a pin
	got = c.Classify("send 5000 to priya", "en")
	assert.Equal(t, IntentTransfer, got.Tag)
	_, hasPIN := got.Params["pin"]
	assert.False(t, hasPIN)
}

func TestParseSpokenPIN(t *testing.T) {
	tests := []struct {
		name   string
		spoken string
		lang   string
		want   string
	}{
		{"plain digits", "1234", "en", "1234"},
		{"spaced digits", "1 2 3 4", "en", "1234"},
		{"digits win over words", "my pin is 5678 thanks", "en", "5678"},
		{"truncates to four", "123456", "en", "1234"},
		{"english words", "one two three four", "en", "1234"},
		{"homophones", "for five six seven", "en", "4567"},
		{"hindi words", "ek do teen char", "hi", "1234"},
		{"bengali words", "ek dui tin char", "bn", "1234"},
		{"unknown lang falls back to english", "one two three four", "xx", "1234"},
		{"hyphenated", "one-two-three-four", "en", "1234"},
		{"empty", "", "en", ""},
		{"unparseable", "mumble mumble", "en", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSpokenPIN(tt.spoken, tt.lang))
		})
	}
}

func TestSentiment(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"this bank is great, thanks", "positive"},
		{"terrible service, i hate this", "negative"},
		{"check my balance", "neutral"},
		{"", "neutral"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Sentiment(tt.text), "text: %q", tt.text)
	}
}
