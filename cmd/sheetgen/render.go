package main

import (
	"errors"
	"fmt"
	"regexp"
)

// Slot markers in the externally maintained templates. Comment syntax is
// used because it can never collide with the platform's macro syntax
// (@{...}, ?{...}, {{...}}, [[...]]).
var (
	htmlSlot = regexp.MustCompile(`<!--\{\s*([a-z0-9_]+)\s*\}-->`)
	cssSlot  = regexp.MustCompile(`/\*\{\s*([a-z0-9_]+)\s*\}\*/`)
)

// ErrUnknownSlot indicates a template references a part that was not
// generated.
var ErrUnknownSlot = errors.New("template references unknown slot")

// renderSlots replaces every slot marker with its generated part. A marker
// naming an unknown part fails the build; generated parts without a marker
// are simply unused (the template decides what it consumes).
func renderSlots(tmpl string, marker *regexp.Regexp, parts map[string]string) (string, error) {
	var unknown string
	out := marker.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := marker.FindStringSubmatch(m)[1]
		part, ok := parts[name]
		if !ok {
			if unknown == "" {
				unknown = name
			}
			return m
		}
		return part
	})
	if unknown != "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, unknown)
	}
	return out, nil
}
