package roster

import "github.com/jhoicas/Roster-api/internal/domain/entity"

// Kind etiqueta de una acción.
type Kind string

const (
	KindAdd         Kind = "ADD_EMPLOYEE"
	KindUpdate      Kind = "UPDATE_EMPLOYEE"
	KindDelete      Kind = "DELETE_EMPLOYEE"
	KindSelect      Kind = "SELECT_EMPLOYEE"
	KindClearSelect Kind = "CLEAR_SELECTED_EMPLOYEE"
	KindSetLoading  Kind = "SET_LOADING"
	KindSetError    Kind = "SET_ERROR"
)

// Action valor etiquetado que recibe el reducer. El tipo de Payload depende de Kind:
//
//	Add         entity.Employee (el ID se ignora)
//	Update      entity.EmployeePatch
//	Delete      int
//	Select      entity.Employee
//	ClearSelect nil
//	SetLoading  bool
//	SetError    *string
type Action struct {
	Kind    Kind
	Payload any
}

// Mutates indica si la acción modifica la colección de empleados.
func (a Action) Mutates() bool {
	return a.Kind == KindAdd || a.Kind == KindUpdate || a.Kind == KindDelete
}

func Add(e entity.Employee) Action { return Action{Kind: KindAdd, Payload: e} }

func Update(p entity.EmployeePatch) Action { return Action{Kind: KindUpdate, Payload: p} }

func Delete(id int) Action { return Action{Kind: KindDelete, Payload: id} }

func Select(e entity.Employee) Action { return Action{Kind: KindSelect, Payload: e} }

func ClearSelect() Action { return Action{Kind: KindClearSelect} }

func SetLoading(loading bool) Action { return Action{Kind: KindSetLoading, Payload: loading} }

func SetError(msg *string) Action { return Action{Kind: KindSetError, Payload: msg} }
