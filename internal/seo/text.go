package seo

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	nonWord   = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	sentences = regexp.MustCompile(`[.!?]+(\s|$)`)
)

// words splits text into lowercase words with punctuation removed.
func words(text string) []string {
	return strings.Fields(strings.ToLower(nonWord.ReplaceAllString(text, "")))
}

// lexiconCount counts words, ignoring punctuation.
func lexiconCount(text string) int {
	return len(words(text))
}

func sentenceCount(text string) int {
	n := len(sentences.FindAllStringIndex(strings.TrimSpace(text), -1))
	return max(n, 1)
}

// syllables estimates the syllable count of one lowercase word by counting
// vowel groups, dropping a silent trailing e.
func syllables(word string) int {
	var count int
	prevVowel := false
	for _, r := range word {
		v := strings.ContainsRune("aeiouy", r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	return max(count, 1)
}

// fleschReadingEase scores text from roughly 0 (hard) to 100 (easy).
func fleschReadingEase(text string) float64 {
	ws := words(text)
	if len(ws) == 0 {
		return 0
	}
	var syl int
	for _, w := range ws {
		syl += syllables(w)
	}
	wps := float64(len(ws)) / float64(sentenceCount(text))
	spw := float64(syl) / float64(len(ws))
	score := 206.835 - 1.015*wps - 84.6*spw
	return math.Round(score*100) / 100
}

// sentimentLexicon is a small valence lexicon on the same -4..4 scale as
// VADER. Words missing from it are neutral.
var sentimentLexicon = map[string]float64{
	"good": 1.9, "great": 3.1, "excellent": 3.2, "amazing": 2.8, "best": 3.2,
	"better": 1.9, "love": 3.2, "like": 1.5, "happy": 2.7, "success": 2.7,
	"successful": 2.8, "improve": 1.9, "improved": 2.1, "growth": 1.6, "easy": 1.9,
	"useful": 1.9, "helpful": 1.8, "powerful": 1.8, "efficient": 1.7, "win": 2.8,
	"benefit": 2.0, "clear": 1.6, "fun": 2.3, "interesting": 1.7, "innovative": 1.9,
	"secure": 1.4, "reliable": 1.6, "boost": 1.7, "gain": 2.4, "opportunity": 1.8,
	"bad": -2.5, "worse": -2.1, "worst": -3.1, "hate": -2.7, "fail": -2.5,
	"failed": -2.3, "failure": -2.3, "problem": -1.7, "problems": -1.7, "risk": -1.1,
	"risky": -1.4, "loss": -1.3, "lose": -1.7, "hard": -0.4, "difficult": -1.5,
	"slow": -0.8, "scam": -2.7, "hack": -1.3, "hacked": -1.7, "crash": -1.7,
	"broken": -2.1, "error": -1.7, "confusing": -1.3, "expensive": -0.9, "fear": -2.2,
	"volatile": -1.0, "wrong": -2.1, "poor": -2.1, "terrible": -2.1, "ugly": -2.3,
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "dont": true, "doesnt": true,
	"isnt": true, "wasnt": true, "cant": true, "cannot": true, "without": true,
}

// sentimentCompound returns a normalized sentiment score in [-1, 1]. A
// negation within the three preceding words flips and dampens a valence.
func sentimentCompound(text string) float64 {
	ws := words(text)
	var sum float64
	for i, w := range ws {
		v, ok := sentimentLexicon[w]
		if !ok {
			continue
		}
		for j := max(0, i-3); j < i; j++ {
			if negations[ws[j]] {
				v *= -0.74
				break
			}
		}
		sum += v
	}
	const alpha = 15
	c := sum / math.Sqrt(sum*sum+alpha)
	return math.Round(c*10000) / 10000
}

// isShortWord reports words the keyword generator ignores.
func isShortWord(w string) bool {
	return utf8.RuneCountInString(w) <= 1
}

var stopWords = makeSet(`a about above after again against all am an and any are as at be
because been before being below between both but by can could did do does doing down during
each few for from further had has have having he her here hers herself him himself his how i
if in into is it its itself just me more most my myself no nor not now of off on once only or
other our ours ourselves out over own same she should so some such than that the their theirs
them themselves then there these they this those through to too under until up very was we
were what when where which while who whom why will with would you your yours yourself
yourselves s t don should've now d ll m o re ve y ain aren couldn didn doesn hadn hasn haven
isn ma mightn mustn needn shan shouldn wasn weren won wouldn`)

func makeSet(list string) map[string]bool {
	m := map[string]bool{}
	for _, w := range strings.Fields(list) {
		m[w] = true
	}
	return m
}
