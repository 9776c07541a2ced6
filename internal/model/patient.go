package model

type Patient struct {
	Name   string
	Age    int
	Gender string
	Phone  string
	Reason string
}

// CreatePatientRequest carries the intake fields. Gender is expected to be
// normalized before validation; "digits" is a custom rule registered by the
// booking service.
type CreatePatientRequest struct {
	Name   string `validate:"required"`
	Age    int    `validate:"gt=0,lte=120"`
	Gender string `validate:"oneof=M F"`
	Phone  string `validate:"required,digits,min=6"`
	Reason string
}

// NormalizeGender maps the accepted inputs m, M, f, F to their uppercase
// single-letter code. ok is false for everything else.
func NormalizeGender(s string) (code string, ok bool) {
	switch s {
	case "M", "m":
		return "M", true
	case "F", "f":
		return "F", true
	}
	return "", false
}

// IsDigits reports whether s is non-empty and contains ASCII digits 0-9
// only. Other Unicode digit characters are rejected, so byte length
// equals digit count for any accepted string.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
