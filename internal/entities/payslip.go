package entities

type PayslipStatus string

const (
	PayslipDraft     PayslipStatus = "Brouillon"
	PayslipValidated PayslipStatus = "Validé"
	PayslipPaid      PayslipStatus = "Payé"
)

type Payslip struct {
	Model
	EmployeeID   int           `json:"employee_id"`
	EmployeeName string        `json:"employee_name" binding:"required"`
	Period       string        `json:"period" binding:"required"`
	BaseSalary   int64         `json:"base_salary" binding:"gte=0"`
	Bonuses      int64         `json:"bonuses" binding:"gte=0"`
	Deductions   int64         `json:"deductions" binding:"gte=0"`
	NetSalary    int64         `json:"net_salary"`
	Status       PayslipStatus `json:"status"`
	PaymentDate  string        `json:"payment_date,omitempty"`
	CreatedAt    string        `json:"created_at"`
}

// Recalculate derives the net amount paid to the employee.
func (p *Payslip) Recalculate() {
	p.NetSalary = p.BaseSalary + p.Bonuses - p.Deductions
}
