package wordform

import "github.com/Alfex4936/wordform/internal/model"

// posPair is (POS of word1, POS of word2).
type posPair struct{ from, to model.PosTag }

type pairSet map[posPair]struct{}

func newPairSet(pairs ...posPair) pairSet {
	s := make(pairSet, len(pairs))
	for _, p := range pairs {
		s[p] = struct{}{}
	}
	return s
}

func (s pairSet) has(from, to model.PosTag) bool {
	_, ok := s[posPair{from, to}]
	return ok
}

const (
	noun = model.NOUN
	adjf = model.ADJF
	adjs = model.ADJS
	verb = model.VERB
	infn = model.INFN
	advb = model.ADVB
	npro = model.NPRO
	numr = model.NUMR
)

// Приставочный.
var prefixPairs = newPairSet(
	posPair{verb, verb}, posPair{verb, infn}, posPair{infn, verb}, posPair{infn, infn},
	posPair{noun, noun},
	posPair{adjf, adjf}, posPair{adjf, adjs}, posPair{adjs, adjf}, posPair{adjs, adjs},
	posPair{npro, npro},
	posPair{advb, advb},
)

// Суффиксальный.
var suffixPairs = newPairSet(
	posPair{noun, noun}, posPair{noun, adjs}, posPair{noun, adjf}, posPair{noun, verb}, posPair{noun, infn},
	posPair{verb, verb}, posPair{verb, infn}, posPair{verb, noun}, posPair{verb, adjs}, posPair{verb, adjf},
	posPair{infn, verb}, posPair{infn, infn}, posPair{infn, noun}, posPair{infn, adjs}, posPair{infn, adjf},
	posPair{adjf, advb}, posPair{adjf, noun}, posPair{adjf, verb}, posPair{adjf, infn}, posPair{adjf, adjf},
	posPair{adjs, advb}, posPair{adjs, noun}, posPair{adjs, verb}, posPair{adjs, infn}, posPair{adjs, adjs},
)

// Приставочно-суффиксальный. INFN→INFN and VERB→VERB are unconfirmed additions.
var prefixSuffixPairs = newPairSet(
	posPair{noun, noun},
	posPair{noun, adjf}, posPair{noun, adjs},
	posPair{noun, verb}, posPair{noun, infn}, posPair{adjf, verb}, posPair{adjf, infn}, posPair{adjs, verb}, posPair{adjs, infn},
	posPair{adjf, advb}, posPair{adjs, advb}, posPair{noun, advb}, posPair{numr, advb},
	posPair{infn, infn}, posPair{verb, verb},
)

// Бессуффиксный. NUMR→NUMR is unconfirmed (cardinal vs ordinal).
var backFormationPairs = newPairSet(
	posPair{infn, noun}, posPair{verb, noun},
	posPair{adjf, noun}, posPair{adjs, noun},
	posPair{noun, noun},
	posPair{noun, adjf}, posPair{noun, adjs},
	posPair{infn, adjf}, posPair{infn, adjs}, posPair{verb, adjf}, posPair{verb, adjs},
	posPair{adjf, adjf}, posPair{adjf, adjs}, posPair{adjs, adjf}, posPair{adjs, adjs},
	posPair{advb, adjf}, posPair{advb, adjs},
	posPair{numr, numr},
)
