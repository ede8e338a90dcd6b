package exporters

import (
	"io"
	"time"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/utils"
)

// PayslipFileName is bulletin-<employee>-<period>.pdf with unsafe characters
// dropped and spaces replaced by dashes.
func PayslipFileName(p entities.Payslip) string {
	return utils.SanitizeFilename("bulletin "+p.EmployeeName+" "+p.Period, "-") + ".pdf"
}

func WritePayslip(w io.Writer, p entities.Payslip, now time.Time) error {
	doc := newDocument("P", now)

	doc.title("BULLETIN DE PAIE")
	doc.line("B", 12, p.EmployeeName)
	doc.line("", 10, "Période: "+p.Period)
	doc.line("", 10, "Statut: "+string(p.Status))
	doc.gap(6)

	rows := [][]string{
		{"Salaire de base", FormatAmount(p.BaseSalary)},
		{"Primes", FormatAmount(p.Bonuses)},
		{"Retenues", FormatAmount(-p.Deductions)},
		{"Salaire net", FormatAmount(p.NetSalary)},
	}
	doc.table([]string{"Libellé", "Montant"}, []float64{120, 60}, rows, []string{"L", "R"})

	if p.Status == entities.PayslipPaid && p.PaymentDate != "" {
		doc.gap(6)
		doc.line("", 10, "Payé le "+FormatDate(p.PaymentDate))
	}

	return doc.write(w)
}
