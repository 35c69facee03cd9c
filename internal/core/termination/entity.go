// Package termination は退職手続きの進捗をフラットストア上で管理します。
package termination

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ogurasousui/sistemadp/internal/platform/flatstore"
	"github.com/ogurasousui/sistemadp/internal/platform/textdate"
)

const (
	ColumnID            = "ID"
	ColumnFluig         = "FLUIG"
	ColumnEmployeeID    = "MATRICULA"
	ColumnName          = "NOME"
	ColumnTaxID         = "CPF"
	ColumnDisability    = "PCD"
	ColumnCostCenter    = "LOCACAO"
	ColumnRecessDays    = "DIAS_RECESSO"
	ColumnRecessPeriod  = "PERIODO_RECESSO"
	ColumnDismissalType = "TIPO_DEMISSAO"
	ColumnDismissalDate = "DATA_DEMISSAO"
	ColumnHasLoan       = "TEM_CONSIGNADO"
	ColumnLoanAmount    = "VALOR_CONSIGNADO"
	ColumnCalculation   = "CALCULO_REALIZADO"
	ColumnDocumentSent  = "DOC_ENVIADO"
	ColumnPaymentDate   = "DATA_PAGAMENTO"
	ColumnBilling       = "FATURAMENTO"
	ColumnPaymentSettle = "BAIXA_PAGAMENTO"
	ColumnNotes         = "OBSERVACOES"
	ColumnRequester     = "SOLICITANTE"
	ColumnDelete        = "EXCLUIR"
)

// Schema は DESLIGAMENTOS 表の必須列です。列を追加する場合は Version を増やします。
var Schema = flatstore.Schema{
	Name:     "DESLIGAMENTOS",
	Version:  1,
	IDColumn: ColumnID,
	Columns: []string{
		ColumnID, ColumnFluig, ColumnEmployeeID, ColumnName, ColumnTaxID, ColumnDisability,
		ColumnCostCenter, ColumnRecessDays, ColumnRecessPeriod, ColumnDismissalType, ColumnDismissalDate,
		ColumnHasLoan, ColumnLoanAmount, ColumnCalculation, ColumnDocumentSent, ColumnPaymentDate,
		ColumnBilling, ColumnPaymentSettle, ColumnNotes, ColumnRequester, ColumnDelete,
	},
}

// DefaultPaymentDelay は支払日が未入力の場合に退職日へ加算する日数です。
const DefaultPaymentDelay = 10 * 24 * time.Hour

var (
	ErrInvalidID       = errors.New("termination: invalid id")
	ErrRecordNotFound  = errors.New("termination: record not found")
	ErrInvalidEmployee = errors.New("termination: employee id is required")
	ErrInvalidAmount   = errors.New("termination: invalid loan amount")
)

// Record は DESLIGAMENTOS 表の 1 行です。
// 氏名・所属・CPF・PCD は書き込みのたびに従業員マスタから再取得されるスナップショットです。
type Record struct {
	ID                int64
	Fluig             string
	EmployeeID        string
	Name              string
	TaxID             string
	Disability        bool
	CostCenter        string
	RecessDays        string
	RecessPeriod      string
	DismissalType     string
	DismissalDate     *time.Time
	HasLoan           bool
	LoanAmount        *float64
	CalculationDone   bool
	DocumentsSent     bool
	PaymentDate       *time.Time
	Billing           bool
	PaymentSettled    bool
	Notes             string
	Requester         string
	MarkedForDeletion bool
}

// Pending は計算・書類送付・支払のいずれかが未完了の場合に true を返します。
func (r *Record) Pending() bool {
	return !(r.CalculationDone && r.DocumentsSent && r.PaymentSettled)
}

// applyPaymentDefault は支払日が未入力で退職日がある場合に既定の支払日を設定します。
func (r *Record) applyPaymentDefault() {
	if r.PaymentDate != nil || r.DismissalDate == nil {
		return
	}
	due := r.DismissalDate.Add(DefaultPaymentDelay)
	r.PaymentDate = &due
}

// decodeRow は表の行を Record に変換します。解析できない日付・金額は未入力として扱います。
func decodeRow(row flatstore.Row) *Record {
	id, _ := flatstore.ParseID(row.Get(ColumnID))
	return &Record{
		ID:                id,
		Fluig:             row.Get(ColumnFluig),
		EmployeeID:        row.Get(ColumnEmployeeID),
		Name:              row.Get(ColumnName),
		TaxID:             row.Get(ColumnTaxID),
		Disability:        FlagDisability.Decode(row.Get(ColumnDisability)),
		CostCenter:        row.Get(ColumnCostCenter),
		RecessDays:        row.Get(ColumnRecessDays),
		RecessPeriod:      row.Get(ColumnRecessPeriod),
		DismissalType:     row.Get(ColumnDismissalType),
		DismissalDate:     parseDate(row.Get(ColumnDismissalDate)),
		HasLoan:           FlagLoan.Decode(row.Get(ColumnHasLoan)),
		LoanAmount:        parseAmountLenient(row.Get(ColumnLoanAmount)),
		CalculationDone:   FlagCalculation.Decode(row.Get(ColumnCalculation)),
		DocumentsSent:     FlagDocument.Decode(row.Get(ColumnDocumentSent)),
		PaymentDate:       parseDate(row.Get(ColumnPaymentDate)),
		Billing:           FlagBilling.Decode(row.Get(ColumnBilling)),
		PaymentSettled:    FlagPayment.Decode(row.Get(ColumnPaymentSettle)),
		Notes:             row.Get(ColumnNotes),
		Requester:         row.Get(ColumnRequester),
		MarkedForDeletion: FlagDeleteMark.Decode(row.Get(ColumnDelete)),
	}
}

// encodeRow は Record を base (既存行) に上書きした行を返します。スキーマ外の列は base の値を保持します。
func encodeRow(r *Record, base flatstore.Row) flatstore.Row {
	row := make(flatstore.Row, len(base)+len(Schema.Columns))
	for k, v := range base {
		row[k] = v
	}
	row[ColumnID] = flatstore.FormatID(r.ID)
	row[ColumnFluig] = r.Fluig
	row[ColumnEmployeeID] = r.EmployeeID
	row[ColumnName] = r.Name
	row[ColumnTaxID] = r.TaxID
	row[ColumnDisability] = FlagDisability.Encode(r.Disability)
	row[ColumnCostCenter] = r.CostCenter
	row[ColumnRecessDays] = r.RecessDays
	row[ColumnRecessPeriod] = r.RecessPeriod
	row[ColumnDismissalType] = r.DismissalType
	row[ColumnDismissalDate] = textdate.FormatPtr(r.DismissalDate, textdate.LayoutSlash)
	row[ColumnHasLoan] = FlagLoan.Encode(r.HasLoan)
	row[ColumnLoanAmount] = FormatAmount(r.LoanAmount)
	row[ColumnCalculation] = FlagCalculation.Encode(r.CalculationDone)
	row[ColumnDocumentSent] = FlagDocument.Encode(r.DocumentsSent)
	row[ColumnPaymentDate] = textdate.FormatPtr(r.PaymentDate, textdate.LayoutSlash)
	row[ColumnBilling] = FlagBilling.Encode(r.Billing)
	row[ColumnPaymentSettle] = FlagPayment.Encode(r.PaymentSettled)
	row[ColumnNotes] = r.Notes
	row[ColumnRequester] = r.Requester
	row[ColumnDelete] = FlagDeleteMark.Encode(r.MarkedForDeletion)
	return row
}

func parseDate(raw string) *time.Time {
	t, ok := textdate.Parse(raw)
	if !ok {
		return nil
	}
	return &t
}

// ParseAmount は "1.234,56" や "1234.56" の形式の金額を解析します。空欄は nil です。
func ParseAmount(raw string) (*float64, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "R$")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	if strings.Contains(text, ",") {
		text = strings.ReplaceAll(text, ".", "")
		text = strings.ReplaceAll(text, ",", ".")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrInvalidAmount
	}
	return &v, nil
}

func parseAmountLenient(raw string) *float64 {
	v, err := ParseAmount(raw)
	if err != nil {
		return nil
	}
	return v
}

// FormatAmount は金額を小数点にカンマを用いた 2 桁表記に整形します。
func FormatAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return strings.Replace(strconv.FormatFloat(*v, 'f', 2, 64), ".", ",", 1)
}
