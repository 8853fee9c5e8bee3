package experience

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-fit/internal/parsing"
	"github.com/jonathan/resume-fit/internal/types"
	"github.com/mitchellh/mapstructure"
)

var yearsPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*\+?\s*(?:years?)?\s*$`)

// rankedSkill is one skill entry before ordering. ranked is false for plain
// string entries, which keep their authored position.
type rankedSkill struct {
	name   string
	value  float64
	ranked bool
}

// NormalizeCandidateProfile converts a decoded profile tree into a
// CandidateProfile. Domain names and credential domain tags are lower-cased;
// skills are normalized, deduplicated and ordered by relevance.
func NormalizeCandidateProfile(tree map[string]interface{}) (*types.CandidateProfile, error) {
	profile := &types.CandidateProfile{
		Domains: make(map[string]types.DomainExperience),
	}

	name, err := optionalString(tree, "name")
	if err != nil {
		return nil, err
	}
	profile.Name = strings.TrimSpace(name)

	defaultDomain, err := optionalString(tree, "default_domain")
	if err != nil {
		return nil, err
	}
	profile.DefaultDomain = strings.ToLower(strings.TrimSpace(defaultDomain))

	if raw, ok := tree["domains"]; ok && raw != nil {
		domains, ok := raw.(map[string]interface{})
		if !ok {
			return nil, &NormalizationError{Message: fmt.Sprintf("domains must be a mapping, got %T", raw)}
		}
		for domainName, rawDomain := range domains {
			key := strings.ToLower(strings.TrimSpace(domainName))
			if key == "" {
				continue
			}
			domain, err := normalizeDomain(key, rawDomain)
			if err != nil {
				return nil, err
			}
			profile.Domains[key] = domain
		}
	}

	if profile.Education, err = decodeCredentials(tree["education"], "education"); err != nil {
		return nil, err
	}
	if profile.Certifications, err = decodeCredentials(tree["certifications"], "certifications"); err != nil {
		return nil, err
	}

	return profile, nil
}

func normalizeDomain(name string, raw interface{}) (types.DomainExperience, error) {
	domain := types.DomainExperience{
		Skills:       []string{},
		Achievements: []string{},
	}
	if raw == nil {
		return domain, nil
	}

	fields, ok := raw.(map[string]interface{})
	if !ok {
		return domain, &NormalizationError{Message: fmt.Sprintf("domain %q must be a mapping, got %T", name, raw)}
	}

	years, err := ParseYears(fields["years"])
	if err != nil {
		return domain, &NormalizationError{Message: fmt.Sprintf("domain %q", name), Cause: err}
	}
	domain.Years = years

	skills, err := normalizeSkillEntries(fields["skills"])
	if err != nil {
		return domain, &NormalizationError{Message: fmt.Sprintf("domain %q", name), Cause: err}
	}
	domain.Skills = skills

	achievements, err := normalizeAchievements(fields["achievements"])
	if err != nil {
		return domain, &NormalizationError{Message: fmt.Sprintf("domain %q", name), Cause: err}
	}
	domain.Achievements = achievements

	return domain, nil
}

// ParseYears accepts a number or a string such as "5", "5+" or "7 years".
// A missing value is zero years.
func ParseYears(raw interface{}) (float64, error) {
	if raw == nil {
		return 0, nil
	}
	if s, ok := raw.(string); ok {
		match := yearsPattern.FindStringSubmatch(strings.ToLower(s))
		if match == nil {
			return 0, fmt.Errorf("years %q is not a number", s)
		}
		return strconv.ParseFloat(match[1], 64)
	}
	years, ok := toFloat(raw)
	if !ok {
		return 0, fmt.Errorf("years must be a number or string, got %T", raw)
	}
	if years < 0 {
		return 0, fmt.Errorf("years must not be negative, got %v", years)
	}
	return years, nil
}

// normalizeSkillEntries accepts the three authored skill shapes: a list of
// names, a list of {name, proficiency|years} records (possibly mixed with
// names), or a name to number mapping. Ranked entries are ordered by value
// descending then name; plain names keep their position after ranked ones.
func normalizeSkillEntries(raw interface{}) ([]string, error) {
	var entries []rankedSkill

	switch v := raw.(type) {
	case nil:
		return []string{}, nil
	case []interface{}:
		for i, item := range v {
			entry, err := skillFromItem(item)
			if err != nil {
				return nil, fmt.Errorf("skills[%d]: %w", i, err)
			}
			entries = append(entries, entry)
		}
	case map[string]interface{}:
		for name, value := range v {
			n, ok := toFloat(value)
			if !ok {
				return nil, fmt.Errorf("skill %q: value must be a number, got %T", name, value)
			}
			entries = append(entries, rankedSkill{name: name, value: n, ranked: true})
		}
	default:
		return nil, fmt.Errorf("skills must be a list or mapping, got %T", raw)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.ranked != b.ranked {
			return a.ranked
		}
		if !a.ranked {
			return false
		}
		if a.value != b.value {
			return a.value > b.value
		}
		return a.name < b.name
	})

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return parsing.NormalizeSkills(names), nil
}

func skillFromItem(item interface{}) (rankedSkill, error) {
	switch v := item.(type) {
	case string:
		return rankedSkill{name: v}, nil
	case map[string]interface{}:
		name, ok := v["name"].(string)
		if !ok {
			return rankedSkill{}, fmt.Errorf("record needs a string name")
		}
		entry := rankedSkill{name: name}
		for _, key := range []string{"proficiency", "years"} {
			if raw, present := v[key]; present {
				n, ok := toFloat(raw)
				if !ok {
					return rankedSkill{}, fmt.Errorf("%s of %q must be a number", key, name)
				}
				entry.value = n
				entry.ranked = true
				break
			}
		}
		return entry, nil
	default:
		return rankedSkill{}, fmt.Errorf("unsupported skill entry %T", item)
	}
}

func normalizeAchievements(raw interface{}) ([]string, error) {
	if raw == nil {
		return []string{}, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("achievements must be a list, got %T", raw)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("achievements[%d] must be a string, got %T", i, item)
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func decodeCredentials(raw interface{}, field string) ([]types.Credential, error) {
	if raw == nil {
		return nil, nil
	}

	var creds []types.Credential
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &creds,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, &NormalizationError{Message: "failed to build credential decoder", Cause: err}
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, &NormalizationError{Message: fmt.Sprintf("invalid %s entries", field), Cause: err}
	}

	out := creds[:0]
	for _, c := range creds {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			continue
		}
		for i, d := range c.Domains {
			c.Domains[i] = strings.ToLower(strings.TrimSpace(d))
		}
		out = append(out, c)
	}
	return out, nil
}

func optionalString(tree map[string]interface{}, key string) (string, error) {
	raw, ok := tree[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &NormalizationError{Message: fmt.Sprintf("%s must be a string, got %T", key, raw)}
	}
	return s, nil
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
