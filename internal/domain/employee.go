package domain

// EmployeeRecord is a broker referenced by payments through Code.
type EmployeeRecord struct {
	Name   string
	Code   string
	Number string
}

// EmployeeFromDocument reads an employee view out of a stored document.
func EmployeeFromDocument(doc Document) EmployeeRecord {
	return EmployeeRecord{
		Name:   doc.String("name"),
		Code:   doc.String("code"),
		Number: doc.String("number"),
	}
}

// EmployeeDirectory resolves payment employee codes to names.
type EmployeeDirectory struct {
	byCode map[string]EmployeeRecord
}

// NewEmployeeDirectory indexes employees by code. The first employee with a given code wins.
func NewEmployeeDirectory(employees []EmployeeRecord) EmployeeDirectory {
	byCode := make(map[string]EmployeeRecord, len(employees))
	for _, e := range employees {
		if _, exists := byCode[e.Code]; exists {
			continue
		}
		byCode[e.Code] = e
	}
	return EmployeeDirectory{byCode: byCode}
}

// DisplayName returns the employee name for code, or code itself when it dangles.
func (d EmployeeDirectory) DisplayName(code string) string {
	if e, ok := d.byCode[code]; ok && e.Name != "" {
		return e.Name
	}
	return code
}
