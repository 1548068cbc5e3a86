package keys

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Key is a musical key expressed in Camelot wheel notation for harmonic
// mixing. Minor keys sit on the inner ring ("A"), major keys on the outer
// ring ("B"); neighbouring wheel positions are a fifth apart.
type Key struct {
	Name   string // e.g. "C Major"
	Number int    // wheel position, 1-12
	Ring   string // "A" for minor, "B" for major
}

// Code returns the Camelot code for the key, e.g. "8B".
func (k Key) Code() string {
	return fmt.Sprintf("%d%s", k.Number, k.Ring)
}

var wheel = map[string]Key{
	"1A":  {Name: "A-Flat Minor", Number: 1, Ring: "A"},
	"1B":  {Name: "B Major", Number: 1, Ring: "B"},
	"2A":  {Name: "E-Flat Minor", Number: 2, Ring: "A"},
	"2B":  {Name: "F-Sharp Major", Number: 2, Ring: "B"},
	"3A":  {Name: "B-Flat Minor", Number: 3, Ring: "A"},
	"3B":  {Name: "D-Flat Major", Number: 3, Ring: "B"},
	"4A":  {Name: "F Minor", Number: 4, Ring: "A"},
	"4B":  {Name: "A-Flat Major", Number: 4, Ring: "B"},
	"5A":  {Name: "C Minor", Number: 5, Ring: "A"},
	"5B":  {Name: "E-Flat Major", Number: 5, Ring: "B"},
	"6A":  {Name: "G Minor", Number: 6, Ring: "A"},
	"6B":  {Name: "B-Flat Major", Number: 6, Ring: "B"},
	"7A":  {Name: "D Minor", Number: 7, Ring: "A"},
	"7B":  {Name: "F Major", Number: 7, Ring: "B"},
	"8A":  {Name: "A Minor", Number: 8, Ring: "A"},
	"8B":  {Name: "C Major", Number: 8, Ring: "B"},
	"9A":  {Name: "E Minor", Number: 9, Ring: "A"},
	"9B":  {Name: "G Major", Number: 9, Ring: "B"},
	"10A": {Name: "B Minor", Number: 10, Ring: "A"},
	"10B": {Name: "D Major", Number: 10, Ring: "B"},
	"11A": {Name: "F-Sharp Minor", Number: 11, Ring: "A"},
	"11B": {Name: "A Major", Number: 11, Ring: "B"},
	"12A": {Name: "C-Sharp Minor", Number: 12, Ring: "A"},
	"12B": {Name: "E Major", Number: 12, Ring: "B"},
}

// Lookup finds a key by its Camelot code, e.g. "8A".
func Lookup(code string) (Key, error) {
	if key, found := wheel[code]; found {
		return key, nil
	}
	return Key{}, fmt.Errorf("the wheel does not contain a key with the code: %s", code)
}

// LookupByName finds a key by its display name, e.g. "A Minor".
func LookupByName(name string) (Key, error) {
	for _, key := range wheel {
		if key.Name == name {
			return key, nil
		}
	}
	return Key{}, fmt.Errorf("no key found with the name: %s", name)
}

// Relative returns the relative major or minor of a key: the same wheel
// position on the other ring.
func (k Key) Relative() Key {
	if k.Ring == "A" {
		return wheel[fmt.Sprintf("%dB", k.Number)]
	}
	return wheel[fmt.Sprintf("%dA", k.Number)]
}

// Neighbors returns the keys a fifth up and down from k on the same ring.
func (k Key) Neighbors() []Key {
	up := k.Number%12 + 1
	down := (k.Number+10)%12 + 1
	return []Key{
		wheel[fmt.Sprintf("%d%s", down, k.Ring)],
		wheel[fmt.Sprintf("%d%s", up, k.Ring)],
	}
}

// CompatibleCodes returns the Camelot codes that mix harmonically with k:
// the key itself, its relative, and its neighbors on the wheel.
func (k Key) CompatibleCodes() []string {
	codes := []string{k.Code(), k.Relative().Code()}
	for _, n := range k.Neighbors() {
		codes = append(codes, n.Code())
	}
	return codes
}

// Compatible reports whether two keys mix harmonically.
func Compatible(a, b Key) bool {
	return slices.Contains(a.CompatibleCodes(), b.Code())
}
