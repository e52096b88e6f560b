// Package roster contiene el reducer puro de la plantilla de empleados: estado, acciones y
// la función de transición. No conoce persistencia ni transporte.
package roster

import "github.com/jhoicas/Roster-api/internal/domain/entity"

// State estado completo de la aplicación; es también el formato del snapshot persistido.
// SelectedEmployee, Loading y Error son slots inertes: ningún flujo actual los consume.
type State struct {
	Employees        []entity.Employee `json:"employees"`
	SelectedEmployee *entity.Employee  `json:"selectedEmployee"`
	Loading          bool              `json:"loading"`
	Error            *string           `json:"error"`
}

// Clone devuelve una copia que no comparte memoria con s.
func (s State) Clone() State {
	out := State{Loading: s.Loading}
	out.Employees = make([]entity.Employee, len(s.Employees))
	copy(out.Employees, s.Employees)
	if s.SelectedEmployee != nil {
		sel := *s.SelectedEmployee
		out.SelectedEmployee = &sel
	}
	if s.Error != nil {
		e := *s.Error
		out.Error = &e
	}
	return out
}

// Find busca un empleado por ID.
func (s State) Find(id int) (entity.Employee, bool) {
	for _, e := range s.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return entity.Employee{}, false
}
