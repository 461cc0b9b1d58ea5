// Package catalog holds the immutable set of exercise definitions that
// workout templates reference by key.
package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// ExerciseDefinition describes one exercise as authored. Definitions are
// templates: callers receive copies from Lookup and must not expect changes
// to flow back into the catalog.
type ExerciseDefinition struct {
	Key               string               `json:"key" yaml:"key"`
	Name              string               `json:"name" yaml:"name"`
	Category          string               `json:"category" yaml:"category"`
	Description       string               `json:"description,omitempty" yaml:"description,omitempty"`
	Difficulty        Difficulty           `json:"difficulty" yaml:"difficulty"`
	Duration          float64              `json:"duration,omitempty" yaml:"duration,omitempty"` // minutes, 0 when unset
	Prescription      *Prescription        `json:"prescription,omitempty" yaml:"prescription,omitempty"`
	Reps              string               `json:"reps,omitempty" yaml:"reps,omitempty"` // free-text instruction, used when Prescription is nil
	TargetMuscles     []string             `json:"target_muscles,omitempty" yaml:"target_muscles,omitempty"`
	RequiresEquipment bool                 `json:"requires_equipment" yaml:"requires_equipment"`
	Equipment         []string             `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	Warmup            bool                 `json:"warmup,omitempty" yaml:"warmup,omitempty"`
	Cooldown          bool                 `json:"cooldown,omitempty" yaml:"cooldown,omitempty"`
	Optional          bool                 `json:"optional,omitempty" yaml:"optional,omitempty"`
	VideoURL          string               `json:"video_url,omitempty" yaml:"video_url,omitempty"`
	GIFURL            string               `json:"gif_url,omitempty" yaml:"gif_url,omitempty"`
	Alternatives      []ExerciseDefinition `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// Instructions returns the display text for the set/rep instruction.
func (d ExerciseDefinition) Instructions() string {
	if d.Prescription != nil {
		return d.Prescription.String()
	}
	return d.Reps
}

// IsAccessory reports whether the exercise is a warmup, cooldown or optional
// item. Accessories never scale and always burn at the low MET tier.
func (d ExerciseDefinition) IsAccessory() bool {
	return d.Warmup || d.Cooldown || d.Optional
}

// Clone returns a deep copy that shares no slices or pointers with d.
func (d ExerciseDefinition) Clone() ExerciseDefinition {
	c := d
	if d.Prescription != nil {
		p := *d.Prescription
		c.Prescription = &p
	}
	c.TargetMuscles = slices.Clone(d.TargetMuscles)
	c.Equipment = slices.Clone(d.Equipment)
	if d.Alternatives != nil {
		c.Alternatives = make([]ExerciseDefinition, len(d.Alternatives))
		for i, alt := range d.Alternatives {
			c.Alternatives[i] = alt.Clone()
		}
	}
	return c
}

// Catalog is a read-only keyed collection of exercise definitions.
type Catalog struct {
	defs map[string]ExerciseDefinition
}

// New builds a catalog. Keys must be unique and non-empty, and alternates may
// not carry alternates of their own.
func New(defs ...ExerciseDefinition) (*Catalog, error) {
	c := &Catalog{defs: make(map[string]ExerciseDefinition, len(defs))}
	for _, d := range defs {
		if d.Key == "" {
			return nil, fmt.Errorf("exercise %q has no key", d.Name)
		}
		if _, dup := c.defs[d.Key]; dup {
			return nil, fmt.Errorf("duplicate exercise key %q", d.Key)
		}
		for _, alt := range d.Alternatives {
			if len(alt.Alternatives) > 0 {
				return nil, fmt.Errorf("exercise %q: alternate %q has nested alternates", d.Key, alt.Name)
			}
		}
		c.defs[d.Key] = d.Clone()
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for static data.
func MustNew(defs ...ExerciseDefinition) *Catalog {
	c, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns a private copy of the definition stored under key.
func (c *Catalog) Lookup(key string) (ExerciseDefinition, bool) {
	d, ok := c.defs[key]
	if !ok {
		return ExerciseDefinition{}, false
	}
	return d.Clone(), true
}

// Has reports whether key exists.
func (c *Catalog) Has(key string) bool {
	_, ok := c.defs[key]
	return ok
}

// Keys returns all keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.defs))
	for k := range c.defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}
