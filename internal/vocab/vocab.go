// Package vocab holds the fixed word lists the parsers validate against.
//
// Tables are read-only once loaded and are passed to each parser through its
// constructor, so two imports can use different vocabularies side by side.
package vocab

import (
	_ "embed"
	"io"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
)

//go:embed default.yaml
var defaultYAML string

type file struct {
	Roles         []string `yaml:"roles"`
	Organizations []string `yaml:"organizations"`
	Movement      []string `yaml:"movement"`
	DamageTypes   []string `yaml:"damageTypes"`
	Ancestries    struct {
		Official []string `yaml:"official"`
		Custom   []string `yaml:"custom"`
	} `yaml:"ancestries"`
	Conditions struct {
		Supported []string `yaml:"supported"`
		Custom    []string `yaml:"custom"`
	} `yaml:"conditions"`
}

// Tables is an immutable set of vocabularies.
type Tables struct {
	roles               []string
	organizations       []string
	movement            []string
	damageTypes         []string
	ancestries          []string
	customAncestries    []string
	supportedConditions []string
	customConditions    []string
}

var loadDefault = sync.OnceValues(func() (*Tables, error) {
	return Load(strings.NewReader(defaultYAML))
})

// Default returns the built-in vocabulary.
func Default() *Tables {
	t, err := loadDefault()
	if err != nil {
		panic("vocab: embedded vocabulary is invalid: " + err.Error())
	}
	return t
}

// Load reads a vocabulary document. Every list is required.
func Load(r io.Reader) (*Tables, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode vocabulary")
	}

	vb := errors.NewValidationBuilder()
	required := map[string][]string{
		"roles":                f.Roles,
		"organizations":        f.Organizations,
		"movement":             f.Movement,
		"damageTypes":          f.DamageTypes,
		"ancestries.official":  f.Ancestries.Official,
		"conditions.supported": f.Conditions.Supported,
	}
	for field, values := range required {
		if len(values) == 0 {
			vb.RequiredField(field)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &Tables{
		roles:               clean(f.Roles),
		organizations:       clean(f.Organizations),
		movement:            clean(f.Movement),
		damageTypes:         clean(f.DamageTypes),
		ancestries:          clean(f.Ancestries.Official),
		customAncestries:    clean(f.Ancestries.Custom),
		supportedConditions: clean(f.Conditions.Supported),
		customConditions:    clean(f.Conditions.Custom),
	}, nil
}

func clean(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Roles returns the monster roles.
func (t *Tables) Roles() []string { return slices.Clone(t.roles) }

// Organizations returns the monster organizations.
func (t *Tables) Organizations() []string { return slices.Clone(t.organizations) }

// DamageTypes returns the damage map slots in display order.
func (t *Tables) DamageTypes() []string { return slices.Clone(t.damageTypes) }

// SupportedConditions returns the enrichable conditions.
func (t *Tables) SupportedConditions() []string { return slices.Clone(t.supportedConditions) }

// CustomConditions returns conditions persisted as status-effect stubs.
func (t *Tables) CustomConditions() []string { return slices.Clone(t.customConditions) }

// Conditions returns supported then custom conditions.
func (t *Tables) Conditions() []string {
	return slices.Concat(t.supportedConditions, t.customConditions)
}

// IsRole reports whether token is a role.
func (t *Tables) IsRole(token string) bool { return slices.Contains(t.roles, token) }

// IsOrganization reports whether token is an organization.
func (t *Tables) IsOrganization(token string) bool { return slices.Contains(t.organizations, token) }

// IsMovement reports whether token is a movement mode.
func (t *Tables) IsMovement(token string) bool { return slices.Contains(t.movement, token) }

// IsDamageType reports whether token is a damage map slot.
func (t *Tables) IsDamageType(token string) bool { return slices.Contains(t.damageTypes, token) }

// IsAncestry reports whether token is an official ancestry keyword.
func (t *Tables) IsAncestry(token string) bool { return slices.Contains(t.ancestries, token) }

// IsCustomAncestry reports whether token is recognized but not implemented
// by the virtual tabletop.
func (t *Tables) IsCustomAncestry(token string) bool {
	return slices.Contains(t.customAncestries, token)
}

// IsSupportedCondition reports whether name is enrichable.
func (t *Tables) IsSupportedCondition(name string) bool {
	return slices.Contains(t.supportedConditions, name)
}
