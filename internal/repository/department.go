package repository

import (
	"github.com/linskybing/civictrack/internal/domain/department"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DepartmentRepo interface {
	GetDepartmentByID(id uint) (department.Department, error)
	GetDepartmentByName(name string) (department.Department, error)
	ListDepartments() ([]department.Department, error)
	SeedDepartment(d *department.Department) (bool, error)
	WithTx(tx *gorm.DB) DepartmentRepo
}

type DBDepartmentRepo struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DBDepartmentRepo {
	return &DBDepartmentRepo{
		db: db,
	}
}

func (r *DBDepartmentRepo) GetDepartmentByID(id uint) (department.Department, error) {
	var d department.Department
	err := r.db.First(&d, id).Error
	return d, err
}

func (r *DBDepartmentRepo) GetDepartmentByName(name string) (department.Department, error) {
	var d department.Department
	err := r.db.Where("name = ?", name).First(&d).Error
	return d, err
}

func (r *DBDepartmentRepo) ListDepartments() ([]department.Department, error) {
	var depts []department.Department
	err := r.db.Order("id ASC").Find(&depts).Error
	return depts, err
}

// SeedDepartment inserts d unless a department with the same name exists.
// The bool reports whether a row was written.
func (r *DBDepartmentRepo) SeedDepartment(d *department.Department) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(d)
	return res.RowsAffected > 0, res.Error
}

func (r *DBDepartmentRepo) WithTx(tx *gorm.DB) DepartmentRepo {
	if tx == nil {
		return r
	}
	return &DBDepartmentRepo{
		db: tx,
	}
}
