package mass

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Profile type names accepted by LoadModel.
const (
	TypeIsothermalSph = "isothermal_sph"
	TypeIsothermal    = "isothermal"
	TypePointMass     = "point_mass"
	TypeExternalShear = "external_shear"
	TypeMassSheet     = "mass_sheet"
)

type profileDoc struct {
	Type           string    `yaml:"type"`
	Centre         []float64 `yaml:"centre,omitempty"`
	EinsteinRadius float64   `yaml:"einstein_radius,omitempty"`
	EllComps       []float64 `yaml:"ell_comps,omitempty"`
	Gamma1         float64   `yaml:"gamma_1,omitempty"`
	Gamma2         float64   `yaml:"gamma_2,omitempty"`
	Kappa          float64   `yaml:"kappa,omitempty"`
}

type modelDoc struct {
	Profiles []profileDoc `yaml:"profiles"`
}

// LoadModel decodes a Galaxy from YAML. Unknown keys are rejected.
// Returns ErrUnknownProfile or ErrBadParameter wrapped with the entry index.
func LoadModel(r io.Reader) (*Galaxy, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc modelDoc
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("mass: decode model: %w", err)
	}
	gal := &Galaxy{Profiles: make([]Profile, 0, len(doc.Profiles))}
	for i, pd := range doc.Profiles {
		p, err := pd.profile()
		if err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		gal.Profiles = append(gal.Profiles, p)
	}

	return gal, nil
}

func (pd profileDoc) profile() (Profile, error) {
	centre, err := pair("centre", pd.Centre)
	if err != nil {
		return nil, err
	}
	switch pd.Type {
	case TypeIsothermalSph:
		if err = validateEinsteinRadius(pd.Type, pd.EinsteinRadius); err != nil {
			return nil, err
		}
		return IsothermalSph{Centre: Centre(centre), EinsteinRadius: pd.EinsteinRadius}, nil
	case TypeIsothermal:
		if err = validateEinsteinRadius(pd.Type, pd.EinsteinRadius); err != nil {
			return nil, err
		}
		ell, err := pair("ell_comps", pd.EllComps)
		if err != nil {
			return nil, err
		}
		return Isothermal{Centre: Centre(centre), EllComps: ell, EinsteinRadius: pd.EinsteinRadius}, nil
	case TypePointMass:
		if err = validateEinsteinRadius(pd.Type, pd.EinsteinRadius); err != nil {
			return nil, err
		}
		return PointMass{Centre: Centre(centre), EinsteinRadius: pd.EinsteinRadius}, nil
	case TypeExternalShear:
		return ExternalShear{Gamma1: pd.Gamma1, Gamma2: pd.Gamma2}, nil
	case TypeMassSheet:
		return MassSheet{Centre: Centre(centre), Kappa: pd.Kappa}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, pd.Type)
	}
}

// pair reads an optional two-element list; absent means (0, 0).
func pair(name string, v []float64) ([2]float64, error) {
	switch len(v) {
	case 0:
		return [2]float64{}, nil
	case 2:
		return [2]float64{v[0], v[1]}, nil
	default:
		return [2]float64{}, fmt.Errorf("%w: %s needs 2 values, got %d", ErrBadParameter, name, len(v))
	}
}
