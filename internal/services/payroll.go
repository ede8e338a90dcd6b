package services

import (
	"fmt"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/store"
)

type PayrollStats struct {
	Count   int   `json:"count"`
	Total   int64 `json:"total"`
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
}

// PayrollService handles payslips: Brouillon → Validé → Payé.
type PayrollService struct {
	*Records[entities.Payslip, *entities.Payslip]
}

func NewPayrollService(deps Deps) *PayrollService {
	deps = deps.withDefaults()
	return &PayrollService{&Records[entities.Payslip, *entities.Payslip]{
		entity:     "payslip",
		collection: func(ws *store.Workspace) *store.Payslips { return ws.Payslips },
		matches: func(p entities.Payslip, q string) bool {
			return contains(q, p.EmployeeName, p.Period)
		},
		prepare: func(_ *store.Workspace, p *entities.Payslip) {
			p.Recalculate()
			if p.CreatedAt == "" {
				p.CreatedAt = deps.today()
			}
		},
		describe: func(p entities.Payslip) string { return "payslip of " + p.EmployeeName + " for " + p.Period },
		deps:     deps,
	}}
}

// Create starts a payslip as a draft. When the employee id is known the
// name is taken from the employee record.
func (s *PayrollService) Create(ws *store.Workspace, p entities.Payslip) entities.Payslip {
	if p.EmployeeID != 0 {
		if e, err := ws.Employees.Get(p.EmployeeID); err == nil {
			p.EmployeeName = e.Name
		}
	}
	p.Status = entities.PayslipDraft
	p.PaymentDate = ""
	return s.Records.Create(ws, p)
}

func (s *PayrollService) Validate(ws *store.Workspace, id int) (entities.Payslip, error) {
	return s.transition(ws, id, entities.PayslipValidated, entities.PayslipDraft)
}

// Pay settles a validated payslip and stamps today's payment date.
func (s *PayrollService) Pay(ws *store.Workspace, id int) (entities.Payslip, error) {
	return s.transition(ws, id, entities.PayslipPaid, entities.PayslipValidated)
}

func (s *PayrollService) transition(ws *store.Workspace, id int, to, from entities.PayslipStatus) (entities.Payslip, error) {
	p, err := ws.Payslips.Update(id, func(p *entities.Payslip) error {
		if p.Status != from {
			return fmt.Errorf("%w: payslip of %s is %s", ErrInvalidTransition, p.EmployeeName, p.Status)
		}
		p.Status = to
		if to == entities.PayslipPaid {
			p.PaymentDate = s.deps.today()
		}
		return nil
	})
	if err != nil {
		return p, err
	}
	s.deps.Journal.LogChange(ws.ID, entities.AuditEventUpdate, s.entity, id,
		fmt.Sprintf("Payslip of %s for %s is now %s", p.EmployeeName, p.Period, to))
	return p, nil
}

func (s *PayrollService) Stats(ws *store.Workspace) PayrollStats {
	payslips := ws.Payslips.List()
	stats := PayrollStats{Count: len(payslips)}
	for _, p := range payslips {
		stats.Total += p.NetSalary
		if p.Status == entities.PayslipPaid {
			stats.Paid += p.NetSalary
		} else {
			stats.Pending += p.NetSalary
		}
	}
	return stats
}
