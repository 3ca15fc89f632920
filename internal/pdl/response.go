package pdl

import (
	"encoding/json"
	"strings"
)

type searchRequest struct {
	SQL    string `json:"sql"`
	Size   int    `json:"size"`
	Pretty bool   `json:"pretty"`
}

type searchResponse struct {
	Status int      `json:"status"`
	Data   []person `json:"data"`
	Total  int      `json:"total"`
}

// text is a string field that may also be returned as a boolean or object on restricted plans. Anything that is not a
// string decodes to the empty string.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*t = ""
		return nil
	}
	*t = text(s)
	return nil
}

type person struct {
	FirstName         text              `json:"first_name"`
	LastName          text              `json:"last_name"`
	FullName          text              `json:"full_name"`
	JobTitle          text              `json:"job_title"`
	Title             text              `json:"title"`
	WorkEmail         text              `json:"work_email"`
	Emails            []json.RawMessage `json:"emails"`
	PhoneNumbers      []json.RawMessage `json:"phone_numbers"`
	LocationName      text              `json:"location_name"`
	Location          text              `json:"location"`
	JobCompanyName    text              `json:"job_company_name"`
	Company           text              `json:"company"`
	JobCompanyDomain  text              `json:"job_company_domain"`
	JobCompanyWebsite text              `json:"job_company_website"`
}

func (p person) contact() Contact {
	fullName := string(p.FullName)
	if fullName == "" {
		fullName = strings.TrimSpace(string(p.FirstName) + " " + string(p.LastName))
	}

	email := string(p.WorkEmail)
	if email == "" {
		email = first(p.Emails, "address")
	}

	return Contact{
		FirstName:     string(p.FirstName),
		LastName:      string(p.LastName),
		FullName:      fullName,
		Title:         either(p.JobTitle, p.Title),
		Email:         either(text(email)),
		Phone:         either(text(first(p.PhoneNumbers, "number"))),
		Location:      either(p.LocationName, p.Location),
		Company:       either(p.JobCompanyName, p.Company),
		CompanyDomain: either(p.JobCompanyDomain, p.JobCompanyWebsite),
		Source:        SourcePDL,
	}
}

// first returns the first element of values, which is either a string or an object holding the string in key
func first(values []json.RawMessage, key string) string {
	if len(values) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(values[0], &s); err == nil {
		return s
	}

	var obj map[string]text
	if err := json.Unmarshal(values[0], &obj); err == nil {
		return string(obj[key])
	}
	return ""
}

// either returns the first non-empty value, or nil
func either(values ...text) *string {
	for _, v := range values {
		if v != "" {
			s := string(v)
			return &s
		}
	}
	return nil
}
