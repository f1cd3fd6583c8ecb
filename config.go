package anacrack

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Config holds the search-space bounds (§3). Min/max word length are
// inclusive; TargetLen is the total letter count of the recovered phrase
// (spaces excluded); MaxWords bounds the word count per phrase.
type Config struct {
	MinWordLen int `yaml:"min_word_len"`
	MaxWordLen int `yaml:"max_word_len"`
	TargetLen  int `yaml:"target_len"`
	MaxWords   int `yaml:"max_words"`
}

// Validate enforces the invariants from §3.
func (c Config) Validate() error {
	if c.MinWordLen <= 0 || c.MaxWordLen <= 0 {
		return fmt.Errorf("min_word_len and max_word_len must be positive")
	}
	if c.MinWordLen > c.MaxWordLen {
		return fmt.Errorf("min_word_len (%d) must be <= max_word_len (%d)", c.MinWordLen, c.MaxWordLen)
	}
	if c.TargetLen < c.MinWordLen {
		return fmt.Errorf("target_len (%d) must be >= min_word_len (%d)", c.TargetLen, c.MinWordLen)
	}
	if c.MaxWords < 1 {
		return fmt.Errorf("max_words must be >= 1")
	}
	return nil
}

// Campaign is the full, user-facing description of one cracking run: the
// digests to recover, the letters they are anagrams of, the search bounds
// and the worker-pool size. It is the YAML-serializable counterpart to the
// compile-time defaults below.
type Campaign struct {
	Config     `yaml:",inline"`
	MaxWorkers int      `yaml:"max_workers"`
	Comparator string   `yaml:"comparator"` // source phrase(s), concatenated and sorted at load time
	Digests    []string `yaml:"digests"`
}

// DefaultCampaign is the driver's built-in run, used when no --campaign
// YAML file is given and no default campaign file is present.
var DefaultCampaign = Campaign{
	Config: Config{
		MinWordLen: 2,
		MaxWordLen: 10,
		TargetLen:  8,
		MaxWords:   4,
	},
	MaxWorkers: 6,
	Comparator: "test this",
	Digests: []string{
		"177a310aa6cb2c1339b9648988a52af6", // md5("test this")
		"d9f823eec07956c057a7ca369797e857", // md5("this test")
	},
}

// NewCampaign reads a Campaign from a YAML file.
func NewCampaign(path string) (*Campaign, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Campaign
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the embedded Config and purges duplicate digests,
// mirroring the payload-dedup-and-warn pattern used elsewhere in this
// codebase for user-supplied lists.
func (c *Campaign) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if len(c.Digests) == 0 {
		return fmt.Errorf("campaign has no target digests")
	}
	if c.MaxWorkers < 1 {
		c.MaxWorkers = 1
	}
	c.Digests = sliceutil.Dedupe(c.Digests)
	return nil
}

// ComparatorLetters builds the Comparator for this campaign.
func (c *Campaign) ComparatorLetters() Comparator {
	return NewComparator(c.Comparator)
}

// GenerateSampleCampaign writes DefaultCampaign to path as an example
// campaign YAML file (plain YAML, without comments).
// It is only ever invoked explicitly via --gen-config; anacrack never
// writes to disk as a side effect of searching (spec §6: "Persisted state:
// none").
func GenerateSampleCampaign(path string) error {
	bin, err := yaml.Marshal(DefaultCampaign)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, bin, 0o644)
}
