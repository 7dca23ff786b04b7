// Package dialect detects whether a text leans British or American English.
//
// The detector scans a token stream for dialect-marked spellings (colour vs
// color) and vocabulary (lorry vs truck). Markers are matched on snowball
// stems, so inflected forms (colours, travelling) hit the lexicon without
// being listed separately. Texts with no markers, or with markers from both
// sides in similar measure, are classified neutral or mixed respectively.
package dialect

import (
	"github.com/kljensen/snowball"
)

// Dialect is the detected variety of English.
type Dialect string

const (
	British  Dialect = "british"
	American Dialect = "american"
	Mixed    Dialect = "mixed"
	Neutral  Dialect = "neutral"
)

const (
	// dominanceThreshold is the marker share one side needs before the
	// text is attributed to that dialect rather than called mixed.
	dominanceThreshold = 0.75

	// minEvidence is the marker count at which confidence stops being
	// discounted for thin evidence.
	minEvidence = 5
)

// britishMarkers lists words whose presence marks British usage. Entries
// are stemmed at detector construction.
var britishMarkers = []string{
	// --- Spelling: -our, -re, -ogue ---
	"colour", "flavour", "honour", "labour", "neighbour", "armour",
	"behaviour", "favourite", "humour", "rumour", "saviour", "splendour",
	"vigour", "harbour", "centre", "theatre", "litre", "fibre", "calibre",
	"sombre", "catalogue",

	// --- Spelling: -ise, -ce, doubled consonants ---
	"analyse", "paralyse", "defence", "offence", "licence", "pretence",
	"travelled", "travelling", "cancelled", "labelled", "modelling",
	"jewellery",

	// --- Spelling: miscellaneous ---
	"grey", "kerb", "plough", "mould", "moustache", "pyjamas", "cheque",
	"aluminium", "aeroplane", "artefact", "gaol", "maths", "whilst",
	"amongst",

	// --- Vocabulary ---
	"lorry", "petrol", "motorway", "pavement", "lift", "queue", "rubbish",
	"fortnight", "holiday", "biscuit", "crisps", "sweets", "trousers",
	"nappy", "pram", "postbox", "autumn", "torch", "flat",
}

// americanMarkers lists words whose presence marks American usage.
var americanMarkers = []string{
	// --- Spelling: -or, -er, -og ---
	"color", "flavor", "honor", "labor", "neighbor", "armor", "behavior",
	"favorite", "humor", "rumor", "savior", "splendor", "vigor", "harbor",
	"center", "theater", "liter", "fiber", "caliber", "somber", "catalog",

	// --- Spelling: -ize, -se, single consonants ---
	"analyze", "paralyze", "defense", "offense", "license", "pretense",
	"traveled", "traveling", "canceled", "labeled", "modeling", "jewelry",

	// --- Spelling: miscellaneous ---
	"gray", "plow", "mold", "mustache", "pajamas", "aluminum", "airplane",
	"artifact", "jail", "math",

	// --- Vocabulary ---
	"truck", "gasoline", "highway", "freeway", "sidewalk", "apartment",
	"elevator", "trash", "garbage", "vacation", "cookie", "fries", "candy",
	"flashlight", "pants", "diaper", "stroller", "mailbox", "faucet",
	"soccer",
}

// Result describes the dialect evidence found in one text.
type Result struct {
	Dialect         Dialect `json:"dialect"`
	Confidence      float64 `json:"confidence"`
	Markedness      float64 `json:"markedness"`
	BritishMarkers  int     `json:"british_markers"`
	AmericanMarkers int     `json:"american_markers"`
	TokenCount      int     `json:"token_count"`
}

// Detector matches stemmed tokens against the marker lexicons.
type Detector struct {
	british  map[string]struct{}
	american map[string]struct{}
}

// NewDetector creates a Detector with both marker lexicons stemmed and
// ready for lookup. Stems that land in both lexicons are dropped from
// each: the stemmer collapses some spelling pairs (travelled and traveled
// both stem to travel), and a marker shared by both sides carries no
// signal.
func NewDetector() *Detector {
	british := stemSet(britishMarkers)
	american := stemSet(americanMarkers)
	for s := range british {
		if _, ok := american[s]; ok {
			delete(british, s)
			delete(american, s)
		}
	}
	return &Detector{british: british, american: american}
}

// Detect classifies the token stream by dialect.
//
// A text with no markers is neutral with full confidence. Otherwise the
// majority side wins when it holds at least dominanceThreshold of the
// markers; closer splits are mixed. Confidence scales with both the
// dominance of the winning side and the amount of evidence, so a single
// "colour" in a long text classifies British only weakly.
//
// Markedness is the fraction of tokens that are dialect markers of either
// side, independent of which dialect wins.
func (d *Detector) Detect(tokens []string) *Result {
	res := &Result{Dialect: Neutral, Confidence: 1, TokenCount: len(tokens)}
	if len(tokens) == 0 {
		return res
	}

	for _, token := range tokens {
		stemmed := stem(token)
		if _, ok := d.british[stemmed]; ok {
			res.BritishMarkers++
		}
		if _, ok := d.american[stemmed]; ok {
			res.AmericanMarkers++
		}
	}

	total := res.BritishMarkers + res.AmericanMarkers
	if total == 0 {
		return res
	}
	res.Markedness = float64(total) / float64(len(tokens))

	evidence := float64(total) / minEvidence
	if evidence > 1 {
		evidence = 1
	}

	dominant := res.BritishMarkers
	side := British
	if res.AmericanMarkers > res.BritishMarkers {
		dominant = res.AmericanMarkers
		side = American
	}
	share := float64(dominant) / float64(total)

	if share >= dominanceThreshold {
		res.Dialect = side
		res.Confidence = share * evidence
		return res
	}

	// balanced evidence from both sides
	res.Dialect = Mixed
	balance := 1 - (2*share - 1)
	res.Confidence = balance * evidence
	return res
}

func stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stemmed
}

func stemSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[stem(w)] = struct{}{}
	}
	return set
}
