package roster

import "github.com/jhoicas/Roster-api/internal/domain/entity"

// Reduce aplica la acción y devuelve un estado nuevo; state no se modifica.
// Payloads con tipo inesperado y acciones desconocidas devuelven el estado sin cambios.
func Reduce(state State, action Action) State {
	next := state.Clone()

	switch action.Kind {
	case KindAdd:
		e, ok := action.Payload.(entity.Employee)
		if !ok {
			return next
		}
		// El ID es len+1, no max+1: tras un borrado puede repetirse. Comportamiento conocido.
		e.ID = len(state.Employees) + 1
		next.Employees = append(next.Employees, e)

	case KindUpdate:
		p, ok := action.Payload.(entity.EmployeePatch)
		if !ok {
			return next
		}
		for i := range next.Employees {
			if next.Employees[i].ID == p.ID {
				next.Employees[i] = p.Apply(next.Employees[i])
			}
		}

	case KindDelete:
		id, ok := action.Payload.(int)
		if !ok {
			return next
		}
		kept := make([]entity.Employee, 0, len(next.Employees))
		for _, e := range next.Employees {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		next.Employees = kept

	case KindSelect:
		if e, ok := action.Payload.(entity.Employee); ok {
			next.SelectedEmployee = &e
		}

	case KindClearSelect:
		next.SelectedEmployee = nil

	case KindSetLoading:
		if v, ok := action.Payload.(bool); ok {
			next.Loading = v
		}

	case KindSetError:
		switch v := action.Payload.(type) {
		case *string:
			next.Error = v
		case string:
			next.Error = &v
		case nil:
			next.Error = nil
		}
	}
	return next
}
