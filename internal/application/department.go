package application

import (
	"context"

	"github.com/linskybing/civictrack/internal/domain/department"
	"github.com/linskybing/civictrack/internal/domain/report"
	"github.com/linskybing/civictrack/internal/repository"
)

type DepartmentService struct {
	Repos *repository.Repos
}

func NewDepartmentService(repos *repository.Repos) *DepartmentService {
	return &DepartmentService{
		Repos: repos,
	}
}

// SeedDefaults creates the fixed department set. Existing names are left
// untouched, so running it again is a no-op. Returns how many rows were
// created.
func (s *DepartmentService) SeedDefaults(ctx context.Context) (int, error) {
	created := 0
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		for _, seed := range department.Defaults {
			d := seed.Model()
			ok, err := tx.Department.SeedDepartment(&d)
			if err != nil {
				return storageError("seed department "+seed.Name, err)
			}
			if ok {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, txError("seed departments", err)
	}
	return created, nil
}

// AssignDepartment returns the department responsible for category, or nil
// when that department has not been seeded.
func (s *DepartmentService) AssignDepartment(category report.Category) (*department.Department, error) {
	return assignDepartment(s.Repos.Department, category)
}

func assignDepartment(repo repository.DepartmentRepo, category report.Category) (*department.Department, error) {
	d, err := repo.GetDepartmentByName(report.DepartmentName(category))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, storageError("assign department", err)
	}
	return &d, nil
}

func (s *DepartmentService) ListDepartments() ([]department.Department, error) {
	depts, err := s.Repos.Department.ListDepartments()
	if err != nil {
		return nil, storageError("list departments", err)
	}
	return depts, nil
}

func (s *DepartmentService) GetDepartment(id uint) (department.Department, error) {
	d, err := s.Repos.Department.GetDepartmentByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return department.Department{}, ErrDepartmentNotFound
		}
		return department.Department{}, storageError("get department", err)
	}
	return d, nil
}
