// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Gender is the sampled gender of a resident.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists the gender options in draw order.
var Genders = []Gender{GenderMale, GenderFemale}

// EmploymentStatus is one of the enumerated employment situations.
type EmploymentStatus string

const (
	EmployedFullTime EmploymentStatus = "Employed full-time"
	EmployedPartTime EmploymentStatus = "Employed part-time"
	Unemployed       EmploymentStatus = "Unemployed"
	Retired          EmploymentStatus = "Retired"
	Student          EmploymentStatus = "Student"
	Homemaker        EmploymentStatus = "Homemaker"
	Disabled         EmploymentStatus = "Disabled"
	SelfEmployed     EmploymentStatus = "Self-employed"
)

// Employed reports whether the status counts as employment. The decision is
// made once here; generators copy the result into Person.IsEmployed rather
// than re-deriving it from status text downstream.
func (s EmploymentStatus) Employed() bool {
	switch s {
	case EmployedFullTime, EmployedPartTime:
		return true
	}
	return false
}

// Temperament is a psychological profile attached to a resident.
type Temperament struct {
	Type        string   `json:"type" yaml:"type"`
	Description string   `json:"description" yaml:"description"`
	Traits      []string `json:"traits" yaml:"traits"`
}

// Person is one synthetic resident. Age drives every correlated field:
// education, employment, marital status, income, household size, and
// temperament are all sampled from age-conditioned distributions, never
// independently.
type Person struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Age              int              `json:"age"`
	Gender           Gender           `json:"gender"`
	BirthYear        int              `json:"birth_year"`
	MaritalStatus    string           `json:"marital_status"`
	EducationLevel   string           `json:"education_level"`
	EmploymentStatus EmploymentStatus `json:"employment_status"`
	IsEmployed       bool             `json:"is_employed"`
	Occupation       string           `json:"occupation"`
	AnnualIncome     int              `json:"annual_income"`
	HouseholdSize    int              `json:"household_size"`
	Location         string           `json:"location"`
	FullAddress      string           `json:"full_address"`
	PhoneNumber      string           `json:"phone_number"`
	Email            string           `json:"email"`
	Temperament      Temperament      `json:"temperament"`
	Country          string           `json:"country"`
	Locale           string           `json:"locale"`
}

// FullName returns "First Last".
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
