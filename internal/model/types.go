package model

import (
	"strings"
	"unicode"
)

// MorphemeType is the grammatical role of a segment as kartaslov names it
// (lower-cased, spaces removed). Unknown names are kept verbatim.
type MorphemeType string

const (
	Prefix       MorphemeType = "приставка"
	Root         MorphemeType = "корень"
	Suffix       MorphemeType = "суффикс"
	Interfix     MorphemeType = "соединительнаягласная"
	Ending       MorphemeType = "окончание"
	VerbalEnding MorphemeType = "глагольноеокончание"
	ZeroEnding   MorphemeType = "нулевоеокончание"
	Postfix      MorphemeType = "постфикс"
)

// EndingTypes carry no word-formation signal and are blanked before diffing.
var EndingTypes = []MorphemeType{VerbalEnding, Ending, Postfix, ZeroEnding}

// IsEnding reports whether t is one of EndingTypes.
func (t MorphemeType) IsEnding() bool {
	for _, e := range EndingTypes {
		if t == e {
			return true
		}
	}
	return false
}

// ParseMorphemeType canonicalises a type label scraped from a page or
// returned by a model: whitespace (NBSP included) is dropped, case folded.
func ParseMorphemeType(s string) MorphemeType {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || r == ' ' || r == '-' || r == '_' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return MorphemeType(b.String())
}

// Segment is one unit of a word's decomposition.
type Segment struct {
	Text string       `json:"text" yaml:"text"`
	Type MorphemeType `json:"type" yaml:"type"`
}

// PosTag is an OpenCorpora part-of-speech label.
type PosTag string

const (
	PosUnknown PosTag = ""
	NOUN       PosTag = "NOUN" // имя существительное
	ADJF       PosTag = "ADJF" // имя прилагательное (полное)
	ADJS       PosTag = "ADJS" // имя прилагательное (краткое)
	COMP       PosTag = "COMP" // компаратив
	VERB       PosTag = "VERB" // глагол (личная форма)
	INFN       PosTag = "INFN" // глагол (инфинитив)
	PRTF       PosTag = "PRTF" // причастие (полное)
	PRTS       PosTag = "PRTS" // причастие (краткое)
	GRND       PosTag = "GRND" // деепричастие
	NUMR       PosTag = "NUMR" // числительное
	ADVB       PosTag = "ADVB" // наречие
	NPRO       PosTag = "NPRO" // местоимение-существительное
	PRED       PosTag = "PRED" // предикатив
	PREP       PosTag = "PREP" // предлог
	CONJ       PosTag = "CONJ" // союз
	PRCL       PosTag = "PRCL" // частица
	INTJ       PosTag = "INTJ" // междометие
)

var knownPos = map[PosTag]bool{
	NOUN: true, ADJF: true, ADJS: true, COMP: true, VERB: true, INFN: true,
	PRTF: true, PRTS: true, GRND: true, NUMR: true, ADVB: true, NPRO: true,
	PRED: true, PREP: true, CONJ: true, PRCL: true, INTJ: true,
}

// ParsePosTag maps analyzer output to a PosTag. Anything outside the
// OpenCorpora set (including "None" and "-") becomes PosUnknown.
func ParsePosTag(s string) PosTag {
	t := PosTag(strings.ToUpper(strings.TrimSpace(s)))
	if knownPos[t] {
		return t
	}
	return PosUnknown
}

// Kind is the outcome of a classification.
type Kind string

const (
	KindPrefixal          Kind = "P"
	KindSuffixal          Kind = "S"
	KindPrefixSuffixal    Kind = "PS"
	KindBackFormation     Kind = "BS"
	KindDifferentRoot     Kind = "DIFF_ROOT"
	KindUnknownParseError Kind = "UNKNOWN_PARSE_ERROR"
	KindUnknown           Kind = "UNKNOWN"
)

// Label is the Russian name of the word-formation method, "" for kinds
// that are not one.
func (k Kind) Label() string {
	switch k {
	case KindSuffixal:
		return "суффиксальный"
	case KindPrefixSuffixal:
		return "приставочно-суффиксальный"
	case KindPrefixal:
		return "приставочный"
	case KindBackFormation:
		return "бессуффиксный"
	}
	return ""
}

// Result is JSON-serialisable as-is.
type Result struct {
	Kind      Kind      `json:"kind"`
	Label     string    `json:"label"`               // Kind.Label()
	Word1     string    `json:"word1"`               // as requested
	Word2     string    `json:"word2"`               // as requested
	POS1      PosTag    `json:"pos1,omitempty"`      // first-ranked sense
	POS2      PosTag    `json:"pos2,omitempty"`      // first-ranked sense
	Segments1 []Segment `json:"segments1,omitempty"` // set for P, S, PS, BS, DIFF_ROOT
	Segments2 []Segment `json:"segments2,omitempty"` // set for P, S, PS, BS, DIFF_ROOT
	Reason    string    `json:"reason,omitempty"`    // lookup failure, UNKNOWN_PARSE_ERROR only
}

// NewResult fills Label from kind.
func NewResult(kind Kind, word1, word2 string) *Result {
	return &Result{Kind: kind, Label: kind.Label(), Word1: word1, Word2: word2}
}
