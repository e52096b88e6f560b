package usecase

import (
	"fmt"

	"github.com/jhoicas/Roster-api/internal/application/dto"
	"github.com/jhoicas/Roster-api/internal/application/listview"
	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
	"github.com/jhoicas/Roster-api/internal/domain/pagination"
	"github.com/jhoicas/Roster-api/internal/domain/validation"
)

// EmployeeUseCase casos de uso CRUD sin sesión sobre el Record Store.
type EmployeeUseCase struct {
	store *approster.Store
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(store *approster.Store) *EmployeeUseCase {
	return &EmployeeUseCase{store: store}
}

// List devuelve una página. view define el tamaño (grid 4, table 9); una página fuera de rango vuelve a la 1.
func (uc *EmployeeUseCase) List(page int, view string) (*dto.EmployeeListResponse, error) {
	if view == "" {
		view = string(listview.Grid)
	}
	mode, err := listview.ParseViewMode(view)
	if err != nil {
		return nil, err
	}
	employees := uc.store.Employees()

	pager := pagination.NewPaginator(mode.PageSize())
	pager.Reconcile(len(employees))
	if page > 1 && !pager.GoTo(page) {
		page = 1
	}

	return &dto.EmployeeListResponse{
		Items: dto.ToEmployeeResponses(pagination.Slice(employees, pager.PageSize(), pager.CurrentPage())),
		Page: dto.PageResponse{
			Page:        pager.CurrentPage(),
			PageSize:    pager.PageSize(),
			TotalPages:  pager.TotalPages(),
			Total:       len(employees),
			PageNumbers: pager.PageNumbers(),
			View:        string(mode),
		},
	}, nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id int) (*dto.EmployeeResponse, error) {
	e, ok := uc.store.FindByID(id)
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	out := dto.ToEmployeeResponse(e)
	return &out, nil
}

// Create valida con las mismas reglas del formulario y agrega el empleado.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e := entity.Employee{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		DateOfEmployment: in.DateOfEmployment,
		DateOfBirth:      in.DateOfBirth,
		PhoneNumber:      in.PhoneNumber,
		EmailAddress:     in.EmailAddress,
		Department:       entity.Department(in.Department),
		Position:         entity.Position(in.Position),
	}
	if errs := validation.ValidateEmployee(e); errs != nil {
		return nil, errs
	}
	added := uc.store.Add(e)
	out := dto.ToEmployeeResponse(added)
	return &out, nil
}

// Update aplica los campos presentes y valida el resultado antes de despachar.
func (uc *EmployeeUseCase) Update(id int, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	current, ok := uc.store.FindByID(id)
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	patch := entity.EmployeePatch{
		ID:               id,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		DateOfEmployment: in.DateOfEmployment,
		DateOfBirth:      in.DateOfBirth,
		PhoneNumber:      in.PhoneNumber,
		EmailAddress:     in.EmailAddress,
	}
	if in.Department != nil {
		d := entity.Department(*in.Department)
		patch.Department = &d
	}
	if in.Position != nil {
		p := entity.Position(*in.Position)
		patch.Position = &p
	}
	if errs := validation.ValidateEmployee(patch.Apply(current)); errs != nil {
		return nil, errs
	}
	updated, ok := uc.store.Update(patch)
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	out := dto.ToEmployeeResponse(updated)
	return &out, nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(id int) error {
	if !uc.store.Delete(id) {
		return fmt.Errorf("%w: id %d", domain.ErrEmployeeNotFound, id)
	}
	return nil
}
