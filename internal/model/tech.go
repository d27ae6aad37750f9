package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Tech is a target platform.
type Tech string

const (
	TechApple   Tech = "apple"
	TechAndroid Tech = "android"
	TechWindows Tech = "windows"
)

// AllTech lists the known platforms in display order.
var AllTech = []Tech{TechApple, TechAndroid, TechWindows}

var ErrUnknownTech = errors.New("unknown tech")

// ParseTech accepts a platform name in any case.
func ParseTech(s string) (Tech, error) {
	t := Tech(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(AllTech, t) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTech, s)
	}
	return t, nil
}

// ParseTechList parses a comma separated list such as "apple,windows".
// Empty input yields an empty set.
func ParseTechList(s string) (TechSet, error) {
	var out TechSet
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, err := ParseTech(part)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out.Normalize(), nil
}

// TechSet is a set of platforms. Normalize dedupes it and restores the
// AllTech order.
type TechSet []Tech

func (s TechSet) Has(t Tech) bool { return slices.Contains(s, t) }

func (s TechSet) Normalize() TechSet {
	out := TechSet{}
	for _, t := range AllTech {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// Toggle returns a new set with t added or removed.
func (s TechSet) Toggle(t Tech) TechSet {
	if s.Has(t) {
		return slices.DeleteFunc(slices.Clone(s), func(x Tech) bool { return x == t })
	}
	return append(slices.Clone(s), t).Normalize()
}

func (s TechSet) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
