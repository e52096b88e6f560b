package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Roster-api/internal/domain/entity"
	"github.com/jhoicas/Roster-api/internal/domain/roster"
)

func employee(first string) entity.Employee {
	return entity.Employee{
		FirstName:        first,
		LastName:         "Doe",
		DateOfEmployment: "01/01/2024",
		DateOfBirth:      "02/02/1990",
		PhoneNumber:      "+90 555 1234567",
		EmailAddress:     first + "@example.com",
		Department:       entity.DepartmentTech,
		Position:         entity.PositionJunior,
	}
}

func TestReduce_AddAsignaIDYAgregaAlFinal(t *testing.T) {
	state := roster.DefaultState(3)

	next := roster.Reduce(state, roster.Add(employee("John")))

	require.Len(t, next.Employees, 4)
	added := next.Employees[3]
	assert.Equal(t, 4, added.ID)
	assert.Equal(t, "John", added.FirstName)

	found, ok := next.Find(added.ID)
	require.True(t, ok)
	assert.Equal(t, added, found)

	// El estado original no se modifica.
	assert.Len(t, state.Employees, 3)
}

func TestReduce_AddIgnoraIDDelPayload(t *testing.T) {
	e := employee("John")
	e.ID = 999

	next := roster.Reduce(roster.State{}, roster.Add(e))

	require.Len(t, next.Employees, 1)
	assert.Equal(t, 1, next.Employees[0].ID)
}

// Política len+1: tras borrar y agregar, el ID puede repetirse. Se preserva a propósito.
func TestReduce_AddTrasDeleteRepiteID(t *testing.T) {
	state := roster.DefaultState(3)
	state = roster.Reduce(state, roster.Delete(1))
	state = roster.Reduce(state, roster.Add(employee("Jane")))

	ids := make([]int, 0, len(state.Employees))
	for _, e := range state.Employees {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int{2, 3, 3}, ids)
}

func TestReduce_UpdatePreservaCamposNoTocados(t *testing.T) {
	state := roster.Reduce(roster.State{}, roster.Add(employee("John")))
	state = roster.Reduce(state, roster.Add(employee("Jane")))

	name := "Johnny"
	dept := entity.DepartmentAnalytics
	next := roster.Reduce(state, roster.Update(entity.EmployeePatch{ID: 1, FirstName: &name, Department: &dept}))

	got, ok := next.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Johnny", got.FirstName)
	assert.Equal(t, entity.DepartmentAnalytics, got.Department)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "John@example.com", got.EmailAddress)
	// El orden de la colección no cambia.
	assert.Equal(t, 1, next.Employees[0].ID)
	assert.Equal(t, 2, next.Employees[1].ID)
	// El estado anterior conserva el valor original.
	prev, _ := state.Find(1)
	assert.Equal(t, "John", prev.FirstName)
}

func TestReduce_UpdateIDInexistenteEsNoOp(t *testing.T) {
	state := roster.DefaultState(2)
	name := "X"

	next := roster.Reduce(state, roster.Update(entity.EmployeePatch{ID: 42, FirstName: &name}))

	assert.Equal(t, state.Employees, next.Employees)
}

func TestReduce_DeleteQuitaSoloElRegistro(t *testing.T) {
	state := roster.DefaultState(3)

	next := roster.Reduce(state, roster.Delete(2))

	require.Len(t, next.Employees, 2)
	_, ok := next.Find(2)
	assert.False(t, ok)
	assert.Equal(t, 1, next.Employees[0].ID)
	assert.Equal(t, 3, next.Employees[1].ID)
}

func TestReduce_DeleteIDInexistenteEsNoOp(t *testing.T) {
	state := roster.DefaultState(3)

	next := roster.Reduce(state, roster.Delete(7))

	assert.Equal(t, state.Employees, next.Employees)
}

func TestReduce_SlotsInertes(t *testing.T) {
	state := roster.DefaultState(1)
	e := state.Employees[0]

	state = roster.Reduce(state, roster.Select(e))
	require.NotNil(t, state.SelectedEmployee)
	assert.Equal(t, e.ID, state.SelectedEmployee.ID)

	state = roster.Reduce(state, roster.ClearSelect())
	assert.Nil(t, state.SelectedEmployee)

	state = roster.Reduce(state, roster.SetLoading(true))
	assert.True(t, state.Loading)

	msg := "falló"
	state = roster.Reduce(state, roster.SetError(&msg))
	require.NotNil(t, state.Error)
	assert.Equal(t, "falló", *state.Error)

	state = roster.Reduce(state, roster.SetError(nil))
	assert.Nil(t, state.Error)
}

func TestReduce_PayloadInvalidoNoCambiaEstado(t *testing.T) {
	state := roster.DefaultState(2)

	next := roster.Reduce(state, roster.Action{Kind: roster.KindDelete, Payload: "1"})
	assert.Equal(t, state.Employees, next.Employees)

	next = roster.Reduce(state, roster.Action{Kind: "UNKNOWN"})
	assert.Equal(t, state.Employees, next.Employees)
}

func TestDefaultState_GeneraIDsConsecutivos(t *testing.T) {
	state := roster.DefaultState(roster.DefaultSeedCount)

	require.Len(t, state.Employees, 90)
	for i, e := range state.Employees {
		assert.Equal(t, i+1, e.ID)
	}
	assert.Empty(t, roster.DefaultState(-1).Employees)
}
