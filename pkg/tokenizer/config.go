package tokenizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Selection enables or disables built-in categories by name.
//
// A category is kept unless its value coerces to false:
//   - absent or nil: enabled
//   - bool: the value itself
//   - string: yes/no, on/off and anything strconv.ParseBool accepts
//     (case-insensitive); any other string is enabled unless empty
//   - integers and floats: enabled unless zero
//   - anything else: enabled
//
// An empty Selection disables every category.
type Selection map[string]any

// Enabled reports whether category is enabled by s.
func (s Selection) Enabled(category string) bool {
	v, ok := s[category]
	if !ok {
		return true
	}
	return truthy(v)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return x
	case *bool:
		return x == nil || *x
	case string:
		word := strings.ToLower(strings.TrimSpace(x))
		switch word {
		case "yes", "y", "on":
			return true
		case "no", "n", "off":
			return false
		}
		if b, err := strconv.ParseBool(word); err == nil {
			return b
		}
		return word != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}

// DefaultSelection is the selection a new Tokenizer starts with: everything
// except quoted phrases.
func DefaultSelection() Selection {
	return Selection{QuotedPhrase: false}
}

// Config configures a new Tokenizer.
type Config struct {
	// CacheSize bounds the segmentation cache; zero or less disables it.
	CacheSize int
	// Normalizer is applied to every sentence before segmentation; nil
	// leaves input untouched.
	Normalizer *Normalizer
	// Selection is the initial category selection; nil means DefaultSelection.
	Selection Selection
}

// DefaultConfig returns the configuration used by NewTokenizer.
func DefaultConfig() Config {
	return Config{
		CacheSize: DefaultCacheSize,
		Selection: DefaultSelection(),
	}
}

// DefineConfig rebuilds the active rules from the master rule set, keeping
// the categories enabled by selection. It discards custom rules and tags and
// restores the built-in fingerprint codes. It returns the number of distinct
// categories now active.
func (t *Tokenizer) DefineConfig(selection Selection) int {
	var rules []Rule
	if len(selection) > 0 {
		rules = make([]Rule, 0, len(masterRules))
		for _, r := range masterRules {
			if selection.Enabled(r.Category) {
				rules = append(rules, r)
			}
		}
	}

	t.rules = rules
	t.codes.Reset()
	t.cache.purge()

	active := len(distinctCategories(rules))
	glog.V(1).Infof("tokenizer: %d categories active (%d rules)", active, len(rules))
	return active
}

// AddRegex puts a rule for pattern ahead of every active rule. When tag has
// no fingerprint code, code is registered for it; an empty code is then an
// UnknownTagError. For a known tag, code is ignored.
func (t *Tokenizer) AddRegex(pattern *regexp.Regexp, tag, code string) error {
	if pattern == nil {
		return errors.Errorf("nil pattern for tag %s", tag)
	}
	if _, known := t.codes.Code(tag); !known {
		if code == "" {
			return &UnknownTagError{Tag: tag}
		}
		if err := t.AddTag(tag, code); err != nil {
			return err
		}
	}

	rules := make([]Rule, 0, len(t.rules)+1)
	rules = append(rules, Rule{Pattern: pattern, Category: tag})
	t.rules = append(rules, t.rules...)
	t.cache.purge()

	glog.V(2).Infof("tokenizer: added rule %q for tag %s", pattern.String(), tag)
	return nil
}

// AddTag registers a new tag with a single-character fingerprint code.
func (t *Tokenizer) AddTag(name, code string) error {
	if err := t.codes.Add(name, code); err != nil {
		return err
	}
	glog.V(2).Infof("tokenizer: registered tag %s with code %q", name, code)
	return nil
}
