package export

import (
	"strconv"

	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
	"github.com/ogurasousui/sistemadp/internal/platform/textdate"
)

const (
	situationMissing  = "PENDENTE"
	situationArchived = "ARQUIVADO"
)

// AuditTable は突き合わせ結果を未アーカイブ・アーカイブ済みの順に並べた表にします。
func AuditTable(r *reconcile.Report) Table {
	t := Table{
		Title:  "Auditoria",
		Header: []string{"MATRICULA", "NOME", "SITUACAO", "MES_REFERENCIA", "CONTRATO", "PERIODO"},
	}
	window := textdate.Format(r.Window.Start, textdate.LayoutSlash) + " a " + textdate.Format(r.Window.End, textdate.LayoutSlash)
	add := func(refs []reconcile.EmployeeRef, situation string) {
		for _, e := range refs {
			t.Rows = append(t.Rows, []string{e.ID, e.Name, situation, r.Period, r.Contract, window})
		}
	}
	add(r.MissingEmployees, situationMissing)
	add(r.ArchivedEmployees, situationArchived)
	return t
}

// AuditSummary は突き合わせ件数の表を返します。
func AuditSummary(r *reconcile.Report) Table {
	return Table{
		Title:  "Resumo",
		Header: []string{"MES_REFERENCIA", "CONTRATO", "ESPERADOS", "ARQUIVADOS", "FALTANTES"},
		Rows: [][]string{{
			r.Period,
			r.Contract,
			strconv.Itoa(r.Expected),
			strconv.Itoa(r.Archived),
			strconv.Itoa(r.Missing),
		}},
	}
}

// TerminationTable は退職手続きの記録を DESLIGAMENTOS と同じ列順の表にします。
func TerminationTable(records []*termination.Record) Table {
	t := Table{
		Title:  termination.Schema.Name,
		Header: append([]string(nil), termination.Schema.Columns...),
	}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.Fluig,
			r.EmployeeID,
			r.Name,
			r.TaxID,
			termination.FlagDisability.Encode(r.Disability),
			r.CostCenter,
			r.RecessDays,
			r.RecessPeriod,
			r.DismissalType,
			textdate.FormatPtr(r.DismissalDate, textdate.LayoutSlash),
			termination.FlagLoan.Encode(r.HasLoan),
			termination.FormatAmount(r.LoanAmount),
			termination.FlagCalculation.Encode(r.CalculationDone),
			termination.FlagDocument.Encode(r.DocumentsSent),
			textdate.FormatPtr(r.PaymentDate, textdate.LayoutSlash),
			termination.FlagBilling.Encode(r.Billing),
			termination.FlagPayment.Encode(r.PaymentSettled),
			r.Notes,
			r.Requester,
			termination.FlagDeleteMark.Encode(r.MarkedForDeletion),
		})
	}
	return t
}
