// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package people builds cohorts of demographically-correlated synthetic
// residents. Age is sampled first and conditions every other attribute:
// education, employment, marital status, income, household size, and
// temperament all draw from age-selected weight vectors rather than
// independent distributions.
package people

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mackney/gazette-engine/internal/catalog"
	"github.com/mackney/gazette-engine/internal/namebank"
	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/pkg/types"
)

// Generator produces residents for one locale from a shared randomness
// context.
type Generator struct {
	cat    *catalog.Catalog
	bank   *namebank.Bank
	rng    *rng.Context
	locale string

	// ages and ageWeights are the precomputed age distribution.
	ages       []int
	ageWeights []float64

	// streets and townName anchor generated addresses to a town when set.
	streets  []string
	townName string

	// Clock supplies the current year for birth-year derivation. Tests pin
	// it for reproducible output.
	Clock func() time.Time
}

// New creates a people generator.
func New(cat *catalog.Catalog, locale string, r *rng.Context) *Generator {
	ageCfg := cat.Demographics.Age
	ages := make([]int, 0, ageCfg.Max-ageCfg.Min+1)
	weights := make([]float64, 0, cap(ages))
	for age := ageCfg.Min; age <= ageCfg.Max; age++ {
		ages = append(ages, age)
		weights = append(weights, ageCfg.WeightFor(age))
	}

	return &Generator{
		cat:        cat,
		bank:       namebank.New(locale, r),
		rng:        r,
		locale:     locale,
		ages:       ages,
		ageWeights: weights,
		Clock:      time.Now,
	}
}

// AnchorTown makes generated addresses reference the town's street list.
// Without an anchor, addresses fall back to the locale-generic synthesizer.
func (g *Generator) AnchorTown(t *types.Town) {
	g.streets = t.StreetNames()
	g.townName = t.Name
}

// GeneratePerson samples one resident. Draw order is fixed so a seed
// replays the identical cohort.
func (g *Generator) GeneratePerson() (types.Person, error) {
	gender := rng.Pick(g.rng, types.Genders)
	firstName := g.bank.FirstName(gender)
	lastName := g.bank.LastName()

	age, err := rng.WeightedPick(g.rng, g.ages, g.ageWeights)
	if err != nil {
		return types.Person{}, fmt.Errorf("sampling age: %w", err)
	}

	education, err := g.sampleEducation(age)
	if err != nil {
		return types.Person{}, err
	}
	employment, err := g.sampleEmployment(age)
	if err != nil {
		return types.Person{}, err
	}

	// Occupation exists only for employed residents; the empty string is an
	// invariant, not an omission.
	occupation := ""
	if employment.Employed() {
		occupation = g.bank.Occupation()
	}

	income, err := g.sampleIncome(education, employment, age)
	if err != nil {
		return types.Person{}, err
	}
	household, err := g.sampleHousehold(age)
	if err != nil {
		return types.Person{}, err
	}
	marital, err := g.sampleMarital(age)
	if err != nil {
		return types.Person{}, err
	}

	location := g.bank.Region()
	address := g.address()
	phone := g.bank.PhoneNumber()
	email := g.bank.Email(firstName, lastName)

	temperament, err := g.sampleTemperament(age, education, employment)
	if err != nil {
		return types.Person{}, err
	}

	return types.Person{
		ID:               shortID(g.rng),
		FirstName:        firstName,
		LastName:         lastName,
		Age:              age,
		Gender:           gender,
		BirthYear:        g.Clock().Year() - age,
		MaritalStatus:    marital,
		EducationLevel:   education,
		EmploymentStatus: employment,
		IsEmployed:       employment.Employed(),
		Occupation:       occupation,
		AnnualIncome:     income,
		HouseholdSize:    household,
		Location:         location,
		FullAddress:      address,
		PhoneNumber:      phone,
		Email:            email,
		Temperament:      temperament,
		Country:          g.cat.Country(g.locale),
		Locale:           g.locale,
	}, nil
}

// GenerateDataset samples n residents. Non-positive n fails before any
// generation happens.
func (g *Generator) GenerateDataset(n int) ([]types.Person, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: num_people must be positive, got %d", types.ErrInvalidArgument, n)
	}

	people := make([]types.Person, 0, n)
	for i := 0; i < n; i++ {
		p, err := g.GeneratePerson()
		if err != nil {
			return nil, fmt.Errorf("generating person %d: %w", i+1, err)
		}
		people = append(people, p)
	}
	return people, nil
}

func (g *Generator) sampleEducation(age int) (string, error) {
	cfg := g.cat.Demographics.Education
	bracket := catalog.SelectBracket(cfg.Brackets, age)
	// A short weight vector restricts younger residents to the leading
	// levels of the ordered list.
	options := cfg.Levels[:len(bracket.Weights)]
	return rng.WeightedPick(g.rng, options, bracket.Weights)
}

func (g *Generator) sampleEmployment(age int) (types.EmploymentStatus, error) {
	cfg := g.cat.Demographics.Employment
	bracket := catalog.SelectBracket(cfg.Brackets, age)
	status, err := rng.WeightedPick(g.rng, cfg.Statuses[:len(bracket.Weights)], bracket.Weights)
	return types.EmploymentStatus(status), err
}

func (g *Generator) sampleMarital(age int) (string, error) {
	cfg := g.cat.Demographics.Marital
	bracket := catalog.SelectBracket(cfg.Brackets, age)
	return rng.WeightedPick(g.rng, cfg.Statuses[:len(bracket.Weights)], bracket.Weights)
}

// sampleIncome branches on employment first: unemployed and students draw
// from a bounded low range, retirees from a fixed mid range, part-timers
// from their own range; everyone else gets the education-anchored formula
// base × age multiplier × jitter, floored at the configured minimum.
func (g *Generator) sampleIncome(education string, employment types.EmploymentStatus, age int) (int, error) {
	inc := g.cat.Demographics.Income

	switch employment {
	case types.Unemployed, types.Student:
		return g.rng.IntBetween(inc.Minimum, inc.UnemployedMax), nil
	case types.Retired:
		return g.rng.IntBetween(inc.RetiredMin, inc.RetiredMax), nil
	case types.EmployedPartTime:
		return g.rng.IntBetween(inc.PartTimeMin, inc.PartTimeMax), nil
	}

	base, ok := g.cat.Demographics.Education.BaseIncome[education]
	if !ok {
		return 0, fmt.Errorf("%w: no base income for education level %q", catalog.ErrInvalidConfiguration, education)
	}

	multiplier := inc.ReducedMultiplier
	switch {
	case age >= inc.PeakStart && age <= inc.PeakEnd:
		multiplier = inc.PeakMultiplier
	case age >= inc.WorkingStart && age <= inc.WorkingEnd:
		multiplier = inc.NormalMultiplier
	}

	jitter := g.rng.Float64Between(inc.JitterMin, inc.JitterMax)
	income := int(float64(base) * multiplier * jitter)
	if income < inc.Minimum {
		income = inc.Minimum
	}
	return income, nil
}

func (g *Generator) sampleHousehold(age int) (int, error) {
	brackets := g.cat.Demographics.Household
	chosen := brackets[len(brackets)-1]
	for _, b := range brackets {
		if b.MaxAge > 0 && age < b.MaxAge {
			chosen = b
			break
		}
	}
	return rng.WeightedPick(g.rng, chosen.Options, chosen.Weights)
}

// address synthesizes "number street, city, postcode" from the anchored
// town's street list, or falls back to the locale-generic form.
func (g *Generator) address() string {
	if len(g.streets) > 0 {
		number := g.rng.IntBetween(1, 300)
		street := rng.Pick(g.rng, g.streets)
		return fmt.Sprintf("%d %s, %s, %s", number, street, g.townName, g.bank.Postcode())
	}
	return fmt.Sprintf("%s, %s, %s", g.bank.StreetAddress(), g.bank.PlaceName(), g.bank.Postcode())
}

// shortID draws an 8-hex-character identifier from the randomness context.
func shortID(r *rng.Context) string {
	const hex = "0123456789abcdef"
	b := make([]byte, 8)
	for i := range b {
		b[i] = hex[r.Intn(16)]
	}
	return string(b)
}

// Columns is the fixed column set of the people dataset, in write order.
var Columns = []string{
	"id", "first_name", "last_name", "age", "gender", "birth_year",
	"marital_status", "education_level", "employment_status", "is_employed",
	"occupation", "annual_income", "household_size", "location",
	"full_address", "phone_number", "email", "temperament_type",
	"temperament_description", "temperament_traits", "country", "locale",
}

// SaveCSV writes the cohort as a fresh tabular file, one row per person.
func SaveCSV(people []types.Person, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating people file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range people {
		if err := w.Write(personRow(p)); err != nil {
			return fmt.Errorf("writing person %s: %w", p.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing people file: %w", err)
	}
	return nil
}

func personRow(p types.Person) []string {
	return []string{
		p.ID, p.FirstName, p.LastName, strconv.Itoa(p.Age), string(p.Gender),
		strconv.Itoa(p.BirthYear), p.MaritalStatus, p.EducationLevel,
		string(p.EmploymentStatus), strconv.FormatBool(p.IsEmployed),
		p.Occupation, strconv.Itoa(p.AnnualIncome), strconv.Itoa(p.HouseholdSize),
		p.Location, p.FullAddress, p.PhoneNumber, p.Email,
		p.Temperament.Type, p.Temperament.Description,
		strings.Join(p.Temperament.Traits, ", "), p.Country, p.Locale,
	}
}

// LoadCSV reads a persisted people dataset.
func LoadCSV(path string) ([]types.Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading people file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing people file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	people := make([]types.Person, 0, len(records)-1)
	for _, row := range records[1:] {
		age, _ := strconv.Atoi(field(row, "age"))
		birthYear, _ := strconv.Atoi(field(row, "birth_year"))
		income, _ := strconv.Atoi(field(row, "annual_income"))
		household, _ := strconv.Atoi(field(row, "household_size"))
		employed, _ := strconv.ParseBool(field(row, "is_employed"))

		var traits []string
		if raw := field(row, "temperament_traits"); raw != "" {
			for _, t := range strings.Split(raw, ",") {
				traits = append(traits, strings.TrimSpace(t))
			}
		}

		people = append(people, types.Person{
			ID:               field(row, "id"),
			FirstName:        field(row, "first_name"),
			LastName:         field(row, "last_name"),
			Age:              age,
			Gender:           types.Gender(field(row, "gender")),
			BirthYear:        birthYear,
			MaritalStatus:    field(row, "marital_status"),
			EducationLevel:   field(row, "education_level"),
			EmploymentStatus: types.EmploymentStatus(field(row, "employment_status")),
			IsEmployed:       employed,
			Occupation:       field(row, "occupation"),
			AnnualIncome:     income,
			HouseholdSize:    household,
			Location:         field(row, "location"),
			FullAddress:      field(row, "full_address"),
			PhoneNumber:      field(row, "phone_number"),
			Email:            field(row, "email"),
			Temperament: types.Temperament{
				Type:        field(row, "temperament_type"),
				Description: field(row, "temperament_description"),
				Traits:      traits,
			},
			Country: field(row, "country"),
			Locale:  field(row, "locale"),
		})
	}
	return people, nil
}
