package termination

import "strings"

// FlagKind は語彙で永続化される真偽値項目の種別です。
type FlagKind int

const (
	FlagCalculation FlagKind = iota + 1
	FlagDocument
	FlagPayment
	FlagBilling
	FlagDeleteMark
	FlagLoan
	FlagDisability
)

type vocabulary struct {
	True  string
	False string
}

// vocabularies は真偽値と保存文字列の対応表です。読み書きの両方がこの表だけを参照します。
var vocabularies = map[FlagKind]vocabulary{
	FlagCalculation: {True: "CALCULADO", False: "PENDENTE"},
	FlagDocument:    {True: "ENVIADO", False: "PENDENTE"},
	FlagPayment:     {True: "PAGO", False: "ABERTO"},
	FlagBilling:     {True: "POSSUI FATURAMENTO", False: "NÃO"},
	FlagDeleteMark:  {True: "MARCADO", False: ""},
	FlagLoan:        {True: "SIM", False: "NÃO"},
	FlagDisability:  {True: "SIM", False: "NÃO"},
}

// positiveTokens は対応表に完全一致しない値を肯定と見なす部分文字列です。
var positiveTokens = []string{"TRUE", "1", "SIM", "OK", "CALCULADO", "ENVIADO", "PAGO", "POSSUI FATURAMENTO", "MARCADO"}

// Encode は真偽値を保存文字列に変換します。
func (k FlagKind) Encode(v bool) string {
	voc := vocabularies[k]
	if v {
		return voc.True
	}
	return voc.False
}

// Decode は保存文字列を真偽値に変換します。
// 対応表に完全一致すればそれに従い、そうでなければ肯定トークンを含むかどうかで判定します。
func (k FlagKind) Decode(raw string) bool {
	text := strings.ToUpper(strings.TrimSpace(raw))
	if text == "" {
		return false
	}

	if voc, ok := vocabularies[k]; ok {
		switch text {
		case voc.True:
			return true
		case voc.False:
			return false
		}
	}

	for _, token := range positiveTokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

func (k FlagKind) String() string {
	switch k {
	case FlagCalculation:
		return "calculation"
	case FlagDocument:
		return "document"
	case FlagPayment:
		return "payment"
	case FlagBilling:
		return "billing"
	case FlagDeleteMark:
		return "delete_mark"
	case FlagLoan:
		return "loan"
	case FlagDisability:
		return "disability"
	default:
		return "unknown"
	}
}
