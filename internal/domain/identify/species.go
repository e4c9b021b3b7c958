package identify

import (
	"sort"
	"strings"
)

// Species es dog, cat o vacío (se serializa como null).
type Species string

const (
	SpeciesNone Species = ""
	SpeciesDog  Species = "dog"
	SpeciesCat  Species = "cat"
)

// speciesPriority desempata keywords de igual longitud.
var speciesPriority = []Species{SpeciesDog, SpeciesCat}

// Verdict es el resultado de clasificar una etiqueta.
type Verdict struct {
	IsPet   bool
	Species Species
}

type keyword struct {
	phrase  string
	species Species
	rank    int
}

// Classifier decide si una etiqueta es una mascota y, si aplica, perro o gato.
// Regla de desempate: gana la keyword más larga contenida en la etiqueta;
// a igual longitud decide speciesPriority y después las especies generales.
type Classifier struct {
	masks    []string
	keywords []keyword
}

// NewClassifier arma el clasificador con las listas por defecto.
func NewClassifier() *Classifier {
	c := newClassifier(dogBreeds, catBreeds, generalSpecies, speciesMarkers)
	c.masks = normalize(objectPhrases)
	return c
}

func newClassifier(dogs, cats, general []string, markers map[Species][]string) *Classifier {
	rank := map[Species]int{}
	for i, s := range speciesPriority {
		rank[s] = i
	}
	// Las especies generales pierden cualquier empate.
	rank[SpeciesNone] = len(speciesPriority)

	seen := map[string]struct{}{}
	kws := make([]keyword, 0, len(dogs)+len(cats)+len(general))
	add := func(phrase string, sp Species) {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			return
		}
		key := string(sp) + "|" + phrase
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		kws = append(kws, keyword{phrase: phrase, species: sp, rank: rank[sp]})
	}
	for _, sp := range speciesPriority {
		for _, m := range markers[sp] {
			add(m, sp)
		}
	}
	for _, d := range dogs {
		add(d, SpeciesDog)
	}
	for _, c := range cats {
		add(c, SpeciesCat)
	}
	for _, g := range general {
		add(g, SpeciesNone)
	}

	// Orden fijo: longitud desc, luego prioridad de especie.
	sort.SliceStable(kws, func(i, j int) bool {
		li, lj := len(kws[i].phrase), len(kws[j].phrase)
		if li != lj {
			return li > lj
		}
		return kws[i].rank < kws[j].rank
	})

	return &Classifier{keywords: kws}
}

// Classify aplica trim + lowercase, tapa las frases de objetos conocidos y
// busca por contención de substring.
func (c *Classifier) Classify(label string) Verdict {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return Verdict{}
	}
	for _, m := range c.masks {
		l = strings.ReplaceAll(l, m, " ")
	}

	for _, k := range c.keywords {
		if strings.Contains(l, k.phrase) {
			return Verdict{IsPet: true, Species: k.species}
		}
	}
	return Verdict{}
}

func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	// Las más largas primero para que "hot dog" no deje restos de "hotdog".
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}
