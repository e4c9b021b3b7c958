package identify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name    string
		label   string
		isPet   bool
		species Species
	}{
		{"raza de perro", "golden retriever", true, SpeciesDog},
		{"raza con sufijo", "doberman pinscher mix", true, SpeciesDog},
		{"mayúsculas y espacios", "  German Shepherd  ", true, SpeciesDog},
		{"raza de gato", "persian cat", true, SpeciesCat},
		{"gato imagenet", "tabby, tabby cat", true, SpeciesCat},
		{"solo especie general", "goldfish", true, SpeciesNone},
		{"ave", "african grey parrot", true, SpeciesNone},
		{"no mascota", "airplane", false, SpeciesNone},
		{"objeto", "sports car", false, SpeciesNone},
		{"vacío", "", false, SpeciesNone},
		{"solo espacios", "   ", false, SpeciesNone},
		{"español", "perro mestizo", true, SpeciesDog},
		{"gatito", "gatito naranja", true, SpeciesCat},
		{"general que contiene cat", "cattle", true, SpeciesNone},
		{"insecto que contiene cat", "caterpillar", true, SpeciesNone},
		{"búho imagenet", "great grey owl, great gray owl", true, SpeciesNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := c.Classify(tt.label)
			assert.Equal(t, tt.isPet, v.IsPet)
			assert.Equal(t, tt.species, v.Species)
		})
	}
}

func TestClassifier_EveryBreedResolvesToItsSpecies(t *testing.T) {
	c := NewClassifier()

	for _, b := range dogBreeds {
		v := c.Classify(b)
		assert.True(t, v.IsPet, b)
		assert.Equal(t, SpeciesDog, v.Species, b)
	}
	for _, b := range catBreeds {
		v := c.Classify(b)
		assert.True(t, v.IsPet, b)
		assert.Equal(t, SpeciesCat, v.Species, b)
	}
}

func TestClassifier_LongestKeywordWins(t *testing.T) {
	c := NewClassifier()

	// "kitten" (6) gana sobre "puppy" (5)
	assert.Equal(t, SpeciesCat, c.Classify("kitten next to a puppy").Species)
	// "german shepherd" gana sobre "cat"
	assert.Equal(t, SpeciesDog, c.Classify("german shepherd chasing a cat").Species)
}

func TestClassifier_EqualLengthPrefersDog(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, SpeciesDog, c.Classify("cat and dog").Species)
	assert.Equal(t, SpeciesDog, c.Classify("dog and cat").Species)

	custom := newClassifier([]string{"abc"}, []string{"xyz"}, nil, nil)
	v := custom.Classify("xyz abc")
	assert.True(t, v.IsPet)
	assert.Equal(t, SpeciesDog, v.Species)
}

func TestClassifier_GeneralSpeciesCompeteByLength(t *testing.T) {
	custom := newClassifier([]string{"hound"}, nil, []string{"houndfish"}, nil)

	v := custom.Classify("houndfish")
	assert.True(t, v.IsPet)
	assert.Equal(t, SpeciesNone, v.Species)

	// A igual longitud la especie general pierde contra la raza.
	custom = newClassifier(nil, []string{"manx"}, []string{"manx"}, nil)
	assert.Equal(t, SpeciesCat, custom.Classify("manx").Species)
}

func TestClassifier_ObjectLabelsAreNotPets(t *testing.T) {
	c := NewClassifier()

	for _, label := range []string{
		"catamaran",
		"mixing bowl",
		"mouse, computer mouse",
		"hotdog, hot dog, red hot",
		"teddy, teddy bear",
		"dogsled, dog sled, dog sleigh",
		"beer bottle",
		"piggy bank, penny bank",
	} {
		v := c.Classify(label)
		assert.False(t, v.IsPet, label)
		assert.Equal(t, SpeciesNone, v.Species, label)
	}

	// La máscara no tapa al animal que aparece aparte.
	v := c.Classify("hot dog next to a beagle")
	assert.True(t, v.IsPet)
	assert.Equal(t, SpeciesDog, v.Species)
}
