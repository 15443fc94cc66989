package tokenizer

import (
	"os"
	"regexp"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RulesFile represents the structure of a YAML rules file.
type RulesFile struct {
	// Categories selects built-in categories; omitted leaves the current
	// selection in place.
	Categories Selection `yaml:"categories,omitempty"`
	Tags       []TagRule `yaml:"tags,omitempty"`
	// Rules are listed highest priority first.
	Rules []RegexRule `yaml:"rules,omitempty"`
}

// TagRule registers a custom tag.
type TagRule struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// RegexRule adds a custom pattern.
type RegexRule struct {
	Pattern    string `yaml:"pattern"`
	Tag        string `yaml:"tag"`
	Code       string `yaml:"code,omitempty"`
	IgnoreCase bool   `yaml:"ignore_case,omitempty"`
}

// Compile compiles the rule's pattern.
func (r RegexRule) Compile() (*regexp.Regexp, error) {
	expr := r.Pattern
	if r.IgnoreCase {
		expr = "(?i)" + expr
	}
	rx, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern for tag %s", r.Tag)
	}
	return rx, nil
}

// LoadRulesFile loads and parses a YAML rules file.
func LoadRulesFile(filename string) (*RulesFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file '%s'", filename)
	}

	rules, err := ParseRules(data)
	if err != nil {
		return nil, errors.Wrapf(err, "rules file '%s'", filename)
	}
	return rules, nil
}

// ParseRules parses YAML rules and checks that every pattern compiles.
func ParseRules(data []byte) (*RulesFile, error) {
	var rules RulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, errors.Wrap(err, "failed to parse YAML")
	}
	for i, r := range rules.Rules {
		if _, err := r.Compile(); err != nil {
			return nil, errors.Wrapf(err, "rule %d", i)
		}
	}
	return &rules, nil
}

// Apply configures t from the rules file: categories first, then tags, then
// rules, so that the first listed rule ends up with the highest priority.
// Every tag and rule is checked before t is touched; on error t is unchanged.
func (f *RulesFile) Apply(t *Tokenizer) error {
	patterns, err := f.check(t)
	if err != nil {
		return err
	}

	if f.Categories != nil {
		active := t.DefineConfig(f.Categories)
		glog.V(1).Infof("rules file: %d categories active", active)
	}

	for _, tag := range f.Tags {
		if err := t.AddTag(tag.Name, tag.Code); err != nil {
			return errors.Wrapf(err, "tag %s", tag.Name)
		}
	}

	for i := len(f.Rules) - 1; i >= 0; i-- {
		r := f.Rules[i]
		if err := t.AddRegex(patterns[i], r.Tag, r.Code); err != nil {
			return errors.Wrapf(err, "rule %d", i)
		}
	}

	glog.V(1).Infof("rules file: applied %d tags and %d rules", len(f.Tags), len(f.Rules))
	return nil
}

// check compiles every rule and replays tag registration against a scratch
// copy of t's fingerprint codes.
func (f *RulesFile) check(t *Tokenizer) ([]*regexp.Regexp, error) {
	codes := t.codes.clone()
	if f.Categories != nil {
		codes.Reset()
	}

	for _, tag := range f.Tags {
		if err := codes.Add(tag.Name, tag.Code); err != nil {
			return nil, errors.Wrapf(err, "tag %s", tag.Name)
		}
	}

	patterns := make([]*regexp.Regexp, len(f.Rules))
	for i := len(f.Rules) - 1; i >= 0; i-- {
		r := f.Rules[i]
		rx, err := r.Compile()
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d", i)
		}
		patterns[i] = rx

		if _, known := codes.Code(r.Tag); known {
			continue
		}
		if r.Code == "" {
			return nil, errors.Wrapf(&UnknownTagError{Tag: r.Tag}, "rule %d", i)
		}
		if err := codes.Add(r.Tag, r.Code); err != nil {
			return nil, errors.Wrapf(err, "rule %d", i)
		}
	}
	return patterns, nil
}

// DefaultRulesFile describes the default configuration: every built-in
// category with its default setting.
func DefaultRulesFile() *RulesFile {
	defaults := DefaultSelection()
	categories := make(Selection)
	for _, cat := range Categories() {
		categories[cat] = defaults.Enabled(cat)
	}
	return &RulesFile{Categories: categories}
}

// Marshal encodes the rules file as YAML.
func (f *RulesFile) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal rules to YAML")
	}
	return out, nil
}
