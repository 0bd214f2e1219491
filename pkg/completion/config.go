package completion

import (
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/eshaffer321/ledger-complete/pkg/ledger"
	"github.com/eshaffer321/ledger-complete/pkg/normalize"
	"github.com/eshaffer321/ledger-complete/pkg/similarity"
)

// Config holds completion engine configuration. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Rules are applied to every narration, in order, before scoring.
	Rules []normalize.Rule `yaml:"rules"`

	// AlternateAccounts maps a primary account to related accounts whose
	// history is also consulted, at reduced confidence.
	AlternateAccounts map[string][]string `yaml:"alternate_accounts"`

	// AlternateMultiplier discounts the raw similarity of matches found in
	// an alternate account. Must be in (0,1].
	AlternateMultiplier float64 `yaml:"alternate_multiplier" validate:"gt=0,lte=1"`

	// MinSimilarity drops candidates whose adjusted score falls below it.
	MinSimilarity float64 `yaml:"min_similarity" validate:"gte=0,lte=1"`

	// Algorithm selects the similarity scorer. See the similarity package
	// for the accepted names.
	Algorithm string `yaml:"algorithm" validate:"required"`
}

// DefaultConfig returns the documented defaults: no rules, no alternates,
// a 0.8 alternate discount, a 0.4 similarity cutoff, and the gestalt
// sequence-alignment scorer.
func DefaultConfig() Config {
	return Config{
		AlternateMultiplier: 0.8,
		MinSimilarity:       0.4,
		Algorithm:           similarity.AlgorithmGestalt,
	}
}

// ParseConfig unmarshals a YAML document over the defaults. The engine
// itself never reads files; callers hand it bytes from wherever their
// configuration lives.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, configErrorf("parse yaml: %v", err)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks ranges and the well-formedness of every account named in
// the alternates map. It does not compile rules or resolve the algorithm;
// NewEngine does both, also eagerly.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return configErrorf("%v", err)
	}
	for primary, related := range c.AlternateAccounts {
		if !ledger.ValidAccount(primary) {
			return configErrorf("alternate_accounts: malformed account %q", primary)
		}
		for _, alt := range related {
			if !ledger.ValidAccount(alt) {
				return configErrorf("alternate_accounts[%s]: malformed account %q", primary, alt)
			}
			if alt == primary {
				return configErrorf("alternate_accounts[%s]: account listed as its own alternate", primary)
			}
		}
	}
	return nil
}
