package usecase

import "strings"

// BreedProfile maps a breed to the terms used by the suitability scorer.
// Aliases count as a literal breed mention; Traits are physiology and
// nutrition keywords whose presence in review text suggests breed-family
// relevance (joint-health terms for large breeds, brachycephalic terms for
// flat-faced breeds, and so on).
type BreedProfile struct {
	Aliases []string
	Traits  []string
}

// breedProfiles is the maintained breed lookup table. Keys are lowercase
// breed names. A breed not listed here falls back to an empty profile, which
// leaves only the literal-name and age rules active.
var breedProfiles = map[string]BreedProfile{
	"bulldog": {
		Aliases: []string{"english bulldog", "british bulldog"},
		Traits:  []string{"brachycephalic", "flat-faced", "short snout", "joint", "hip", "skin", "allergy", "allergies", "grain-free"},
	},
	"german shepherd": {
		Aliases: []string{"gsd", "alsatian", "shepherd"},
		Traits:  []string{"joint", "hip", "digestive", "gut", "protein", "calcium", "large breed"},
	},
	"labrador": {
		// "lab" is deliberately absent: substring matching would hit
		// words like "available".
		Aliases: []string{"labrador retriever", "retriever"},
		Traits:  []string{"joint", "hip", "weight management", "large breed", "glucosamine"},
	},
	"golden retriever": {
		Aliases: []string{"golden", "retriever"},
		Traits:  []string{"joint", "hip", "coat", "skin", "large breed"},
	},
	"poodle": {
		Aliases: []string{"toy poodle", "miniature poodle", "standard poodle"},
		Traits:  []string{"coat", "skin", "tear stain", "high-quality protein"},
	},
	"shih tzu": {
		Aliases: []string{"shitzu", "chrysanthemum dog"},
		Traits:  []string{"small breed", "small kibble", "coat", "sensitive stomach"},
	},
	"chihuahua": {
		Aliases: []string{},
		Traits:  []string{"small breed", "small kibble", "calorie-dense", "dental"},
	},
	"beagle": {
		Aliases: []string{},
		Traits:  []string{"weight management", "portion", "obesity"},
	},
	"boxer": {
		Aliases: []string{},
		Traits:  []string{"protein", "muscle", "heart", "active"},
	},
	"dachshund": {
		Aliases: []string{},
		Traits:  []string{"weight management", "back", "spine", "joint"},
	},
}

// ageTerms lists review vocabulary consistent with each age category.
var ageTerms = map[string][]string{
	"puppy": {"puppy", "puppies", "junior", "young", "growing"},
	"adult": {"adult", "mature", "grown"},
}

// ageConflicts lists phrases that explicitly contradict an age category.
var ageConflicts = map[string][]string{
	"puppy": {"not suitable for puppies", "not for puppies", "not recommended for puppies", "adults only", "adult dogs only"},
	"adult": {"not suitable for adults", "not for adults", "not recommended for adults", "puppies only", "puppy only"},
}

// lookupBreed returns the profile for a breed, falling back to an empty
// profile for unknown breeds.
func lookupBreed(breed string) BreedProfile {
	return breedProfiles[strings.ToLower(strings.TrimSpace(breed))]
}

// breedMatchTerms returns every term that counts as a literal mention of the
// breed: the breed name itself plus its aliases, all lowercase.
func breedMatchTerms(breed string) []string {
	folded := strings.ToLower(strings.TrimSpace(breed))
	if folded == "" {
		return nil
	}
	profile := lookupBreed(breed)
	return append([]string{folded}, profile.Aliases...)
}
