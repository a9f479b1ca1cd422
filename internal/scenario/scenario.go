package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/econlab/deprec"
	"github.com/katalvlaran/econlab/instrument"
	"github.com/katalvlaran/econlab/interest"
)

var (
	// ErrUnknownFormat is returned by Load for an unsupported file extension.
	ErrUnknownFormat = errors.New("scenario: unknown file format")

	// ErrInvalidScenario is returned when a scenario fails validation.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
)

// Format is the encoding of a scenario file.
type Format int

const (
	// FormatUnknown is any extension Load cannot decode.
	FormatUnknown Format = iota
	// FormatYAML is .yaml or .yml, decoded with gopkg.in/yaml.v3.
	FormatYAML
	// FormatTOML is .toml, decoded with BurntSushi/toml.
	FormatTOML
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// Scenario is the file model.
type Scenario struct {
	Name     string    `yaml:"name" toml:"name"`
	Interest Interest  `yaml:"interest" toml:"interest"`
	Budget   float64   `yaml:"budget" toml:"budget"`
	MARR     float64   `yaml:"marr" toml:"marr"`
	Horizon  float64   `yaml:"horizon" toml:"horizon"`
	Projects []Project `yaml:"projects" toml:"projects"`
	Assets   []Asset   `yaml:"assets" toml:"assets"`
	Mortgage *Mortgage `yaml:"mortgage" toml:"mortgage"`
}

// Interest describes a compounding rate. Kind is one of effective, nominal,
// subperiod or continuous; Count is required for nominal and subperiod.
type Interest struct {
	Kind  string  `yaml:"kind" toml:"kind"`
	Rate  float64 `yaml:"rate" toml:"rate"`
	Count float64 `yaml:"count" toml:"count"`
}

// Compound converts the block to an interest value.
func (i Interest) Compound() (interest.Compound, error) {
	switch strings.ToLower(i.Kind) {
	case "", "effective":
		return interest.Effective{Rate: i.Rate}, nil
	case "continuous":
		return interest.Continuous{Rate: i.Rate}, nil
	case "nominal", "subperiod":
		if i.Count <= 0 {
			return nil, fmt.Errorf("%w: %s interest needs a positive count", ErrInvalidScenario, i.Kind)
		}
		if strings.EqualFold(i.Kind, "nominal") {
			return interest.Nominal{Rate: i.Rate, Count: i.Count}, nil
		}

		return interest.Subperiod{Rate: i.Rate, Count: i.Count}, nil
	default:
		return nil, fmt.Errorf("%w: unknown interest kind %q", ErrInvalidScenario, i.Kind)
	}
}

// Project is an investment alternative. Outlays are negative.
type Project struct {
	Name    string  `yaml:"name" toml:"name"`
	Initial float64 `yaml:"initial" toml:"initial"`
	Annuity float64 `yaml:"annuity" toml:"annuity"`
	Final   float64 `yaml:"final" toml:"final"`
	Life    float64 `yaml:"life" toml:"life"`
}

// Instrument returns the project as an instrument.Project.
func (p Project) Instrument() instrument.Project {
	return instrument.Project{Initial: p.Initial, Annuity: p.Annuity, Final: p.Final, Life: p.Life}
}

// Asset is a depreciable asset. Method selects the schedule:
// straight-line (sl), declining-balance (db), double-declining-balance (ddb),
// sum-of-years-digits (syd) or units-of-production (uop).
type Asset struct {
	Name       string    `yaml:"name" toml:"name"`
	Method     string    `yaml:"method" toml:"method"`
	Basis      float64   `yaml:"basis" toml:"basis"`
	Salvage    float64   `yaml:"salvage" toml:"salvage"`
	Life       int       `yaml:"life" toml:"life"`
	Rate       *Interest `yaml:"rate" toml:"rate"`
	Floor      bool      `yaml:"floor" toml:"floor"`
	Production []float64 `yaml:"production" toml:"production"`
}

// Schedule builds the depreciation schedule the asset describes. A declining
// balance asset with a Rate ignores Salvage.
func (a Asset) Schedule() (deprec.Schedule, error) {
	switch strings.ToLower(a.Method) {
	case "straight-line", "sl":
		return deprec.NewStraightLine(a.Basis, a.Salvage, a.Life), nil
	case "declining-balance", "db":
		if a.Rate != nil {
			rate, err := a.Rate.Compound()
			if err != nil {
				return nil, err
			}

			return deprec.DecliningBalanceFromRate(a.Basis, a.Life, rate), nil
		}

		return deprec.NewDecliningBalance(a.Basis, a.Salvage, a.Life), nil
	case "double-declining-balance", "ddb":
		return deprec.NewDoubleDecliningBalance(a.Basis, a.Salvage, a.Life, a.Floor), nil
	case "sum-of-years-digits", "syd":
		return deprec.NewSumOfYearsDigits(a.Basis, a.Salvage, a.Life), nil
	case "units-of-production", "uop":
		if len(a.Production) == 0 {
			return nil, fmt.Errorf("%w: asset %q has no production", ErrInvalidScenario, a.Name)
		}

		return deprec.NewUnitsOfProduction(a.Basis, a.Salvage, a.Production), nil
	default:
		return nil, fmt.Errorf("%w: unknown depreciation method %q", ErrInvalidScenario, a.Method)
	}
}

// Mortgage describes a loan. Zero Frequency, Term or Amortization fall back to
// the instrument defaults; a block-level Interest overrides the scenario's.
type Mortgage struct {
	Principal    float64   `yaml:"principal" toml:"principal"`
	Interest     *Interest `yaml:"interest" toml:"interest"`
	Frequency    float64   `yaml:"frequency" toml:"frequency"`
	Term         float64   `yaml:"term" toml:"term"`
	Amortization float64   `yaml:"amortization" toml:"amortization"`
}

// Instrument builds the mortgage at rate i unless the block carries its own.
func (m Mortgage) Instrument(i interest.Compound) (instrument.Mortgage, error) {
	if m.Interest != nil {
		own, err := m.Interest.Compound()
		if err != nil {
			return instrument.Mortgage{}, err
		}
		i = own
	}

	var opts []instrument.MortgageOption
	if m.Frequency != 0 {
		opts = append(opts, instrument.WithFrequency(m.Frequency))
	}
	if m.Term != 0 {
		opts = append(opts, instrument.WithTerm(m.Term))
	}
	if m.Amortization != 0 {
		opts = append(opts, instrument.WithAmortization(m.Amortization))
	}

	return instrument.NewMortgage(m.Principal, i, opts...)
}

// Instruments returns every project as an instrument.Project.
func (s *Scenario) Instruments() []instrument.Project {
	out := make([]instrument.Project, len(s.Projects))
	for k, p := range s.Projects {
		out[k] = p.Instrument()
	}

	return out
}

// Costs returns the magnitude of every project's initial amount.
func (s *Scenario) Costs() []float64 {
	out := make([]float64, len(s.Projects))
	for k, p := range s.Projects {
		out[k] = max(p.Initial, -p.Initial)
	}

	return out
}

// Validate reports the first structural problem in the scenario.
func (s *Scenario) Validate() error {
	if _, err := s.Interest.Compound(); err != nil {
		return err
	}
	if s.Budget < 0 {
		return fmt.Errorf("%w: budget cannot be negative (%g)", ErrInvalidScenario, s.Budget)
	}
	if s.Horizon < 0 {
		return fmt.Errorf("%w: horizon cannot be negative (%g)", ErrInvalidScenario, s.Horizon)
	}
	for k, p := range s.Projects {
		if p.Life <= 0 {
			return fmt.Errorf("%w: project %d (%s) needs a positive life", ErrInvalidScenario, k, p.Name)
		}
	}
	for k, a := range s.Assets {
		if a.Life <= 0 && len(a.Production) == 0 {
			return fmt.Errorf("%w: asset %d (%s) needs a positive life", ErrInvalidScenario, k, a.Name)
		}
		if _, err := a.Schedule(); err != nil {
			return err
		}
	}
	if s.Mortgage != nil {
		if s.Mortgage.Principal <= 0 {
			return fmt.Errorf("%w: mortgage principal must be positive", ErrInvalidScenario)
		}
		i, _ := s.Interest.Compound()
		if _, err := s.Mortgage.Instrument(i); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}

	return nil
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	s, err := Parse(content, format)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates content in the given format.
func Parse(content []byte, format Format) (*Scenario, error) {
	var s Scenario
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &s); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(content, &s); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}
