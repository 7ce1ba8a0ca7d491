package entity

import (
	"time"

	"github.com/openstock/openstock-api/internal/domain/enum"
)

// Department groups employees in the HR store.
type Department struct {
	ID          string    `gorm:"size:64;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	ManagerID   *string   `gorm:"size:64" json:"manager_id,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}

// Employee lives in the HR store. UserID is an opaque reference to the
// inventory-store user table; the stores are separate database files so no
// foreign key enforces it.
type Employee struct {
	ID                    string               `gorm:"size:64;primaryKey" json:"id"`
	UserID                *string              `gorm:"size:64" json:"user_id,omitempty"`
	EmployeeCode          *string              `gorm:"size:50;uniqueIndex" json:"employee_code,omitempty"`
	FirstName             string               `gorm:"size:100;not null" json:"first_name"`
	LastName              string               `gorm:"size:100;not null" json:"last_name"`
	Email                 string               `gorm:"size:255;not null" json:"email"`
	Phone                 *string              `gorm:"size:50" json:"phone,omitempty"`
	DateOfBirth           *string              `gorm:"size:10" json:"date_of_birth,omitempty"`
	Gender                *string              `gorm:"size:10" json:"gender,omitempty"`
	Address               *string              `gorm:"size:255" json:"address,omitempty"`
	City                  *string              `gorm:"size:100" json:"city,omitempty"`
	PostalCode            *string              `gorm:"size:20" json:"postal_code,omitempty"`
	Country               string               `gorm:"size:100;default:France" json:"country"`
	DepartmentID          *string              `gorm:"size:64;index" json:"department_id,omitempty"`
	Position              *string              `gorm:"size:100" json:"position,omitempty"`
	EmploymentType        enum.EmploymentType  `gorm:"size:20;default:full_time" json:"employment_type"`
	HireDate              string               `gorm:"size:10;not null" json:"hire_date"`
	TerminationDate       *string              `gorm:"size:10" json:"termination_date,omitempty"`
	BaseSalary            float64              `gorm:"default:0" json:"base_salary"`
	SalaryFrequency       enum.SalaryFrequency `gorm:"size:20;default:monthly" json:"salary_frequency"`
	BankName              *string              `gorm:"size:100" json:"bank_name,omitempty"`
	BankAccount           *string              `gorm:"size:100" json:"bank_account,omitempty"`
	TaxID                 *string              `gorm:"column:employee_tax_id;size:50" json:"tax_id,omitempty"`
	SocialSecurityNumber  *string              `gorm:"size:50" json:"social_security_number,omitempty"`
	EmergencyContactName  *string              `gorm:"size:100" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string              `gorm:"size:50" json:"emergency_contact_phone,omitempty"`
	Status                enum.EmployeeStatus  `gorm:"size:20;default:active;index" json:"status"`
	Notes                 *string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}
