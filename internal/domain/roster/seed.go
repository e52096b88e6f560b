package roster

import "github.com/jhoicas/Roster-api/internal/domain/entity"

// DefaultSeedCount cantidad de empleados generados cuando no hay snapshot.
const DefaultSeedCount = 90

// DefaultState genera n empleados de ejemplo con IDs 1..n.
func DefaultState(n int) State {
	if n < 0 {
		n = 0
	}
	employees := make([]entity.Employee, 0, n)
	for i := 1; i <= n; i++ {
		employees = append(employees, entity.Employee{
			ID:               i,
			FirstName:        "Alihan",
			LastName:         "Coskun",
			DateOfEmployment: "25/11/2025",
			DateOfBirth:      "5/2/1995",
			PhoneNumber:      "+(90) 5368508524",
			EmailAddress:     "alihan.coskun@hotmail.com",
			Department:       entity.DepartmentTech,
			Position:         entity.PositionSenior,
		})
	}
	return State{Employees: employees}
}
