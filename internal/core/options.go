package core

// options.go defines the explicit configuration surface of the engine.
//
// All lookup tables (synonyms, category taxonomy, supplier names) and tuning
// values (confidence weights, similarity floor) are passed in as plain data
// rather than held as ambient state, so every engine call stays a pure
// function of its inputs. DefaultOptions provides working defaults; callers
// usually start from it and merge in user-configured vocabularies.

// Weights holds the contribution of each successful extraction pass to the
// confidence score. The sum of contributions is capped at 1.0. The defaults
// are heuristic tuning values; treat them as a starting point, not truth.
type Weights struct {
	Quantity  float64
	ValueSpec float64
	Tolerance float64
	Rating    float64
	Supplier  float64
	Cost      float64
	Category  float64
}

// DefaultWeights returns the standard confidence weighting.
func DefaultWeights() Weights {
	return Weights{
		Quantity:  0.10,
		ValueSpec: 0.25,
		Tolerance: 0.15,
		Rating:    0.15,
		Supplier:  0.15,
		Cost:      0.15,
		Category:  0.20,
	}
}

// Options configures a parse call.
type Options struct {
	// Delimiter separates fields in delimited text input. Default ','.
	Delimiter rune

	// MaxHeaderScan is how many leading rows header inference considers.
	MaxHeaderScan int

	// Synonyms maps normalized header labels to canonical fields. Labels
	// are compared after normalizeLabel (lowercase, separators dropped).
	Synonyms map[string]Field

	// Categories maps lowercase keywords to category labels, merged over
	// the built-in taxonomy.
	Categories map[string]string

	// Suppliers lists known supplier names, merged over the built-in list.
	Suppliers []string

	// Weights tunes confidence scoring for the extractor.
	Weights Weights

	// SimilarityFloor is the minimum score a suggestion must reach to be
	// returned. Default 0.15.
	SimilarityFloor float64

	// MaxSuggestions truncates the suggestion list. Default 5.
	MaxSuggestions int
}

// DefaultOptions returns engine options with the standard vocabulary tables
// and tuning values.
func DefaultOptions() Options {
	return Options{
		Delimiter:       ',',
		MaxHeaderScan:   5,
		Synonyms:        DefaultSynonyms(),
		Categories:      nil,
		Suppliers:       nil,
		Weights:         DefaultWeights(),
		SimilarityFloor: 0.15,
		MaxSuggestions:  5,
	}
}

// delimiter returns the configured delimiter or the ',' default.
func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// maxHeaderScan returns the configured scan depth or the default of 5.
func (o Options) maxHeaderScan() int {
	if o.MaxHeaderScan <= 0 {
		return 5
	}
	return o.MaxHeaderScan
}

// synonyms returns the configured synonym table or the default one.
func (o Options) synonyms() map[string]Field {
	if len(o.Synonyms) == 0 {
		return DefaultSynonyms()
	}
	return o.Synonyms
}

// similarityFloor returns the configured floor or the 0.15 default.
func (o Options) similarityFloor() float64 {
	if o.SimilarityFloor <= 0 {
		return 0.15
	}
	return o.SimilarityFloor
}

// maxSuggestions returns the configured limit or the default of 5.
func (o Options) maxSuggestions() int {
	if o.MaxSuggestions <= 0 {
		return 5
	}
	return o.MaxSuggestions
}

// weights returns the configured weights, falling back to defaults when the
// struct is zero.
func (o Options) weights() Weights {
	if o.Weights == (Weights{}) {
		return DefaultWeights()
	}
	return o.Weights
}
