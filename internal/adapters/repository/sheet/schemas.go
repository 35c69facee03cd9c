// Package sheet はフラットストア (xlsx ワークブック) 上のリポジトリ実装です。
// すべての書き込みは flatstore.Syncer によるスナップショット → マージ → 全件上書きで行います。
package sheet

import (
	"github.com/ogurasousui/sistemadp/internal/core/termination"
	"github.com/ogurasousui/sistemadp/internal/platform/flatstore"
)

var (
	periodSchema = flatstore.Schema{
		Name:     "MESES",
		Version:  1,
		IDColumn: "ID",
		Columns:  []string{"ID", "MES_REFERENCIA"},
	}

	containerSchema = flatstore.Schema{
		Name:     "CAIXAS",
		Version:  1,
		IDColumn: "ID",
		Columns:  []string{"ID", "NUMERO_CAIXA", "MES_ID", "LOCALIZACAO"},
	}

	recordSchema = flatstore.Schema{
		Name:     "ARQUIVO",
		Version:  1,
		IDColumn: "ID",
		Columns: []string{
			"ID", "MATRICULA", "CAIXA_ID", "MES_ID", "DATA_REGISTRO", "STATUS",
			"DATA_DESARQUIVAMENTO", "USUARIO_DESARQUIVOU", "MOTIVO_DESARQUIVAMENTO",
		},
	}

	logSchema = flatstore.Schema{
		Name:     "LOGS",
		Version:  1,
		IDColumn: "ID",
		Columns:  []string{"ID", "USUARIO", "ACAO", "DETALHE", "DATA"},
	}

	employeeSchema = flatstore.Schema{
		Name:     "FUNCIONARIOS",
		Version:  3,
		IDColumn: "ID",
		Columns: []string{
			"ID", "MATRICULA", "NOME", "CONTRATO", "RESPONSAVEL", "CPF", "PCD",
			"DATA_ADMISSAO", "DATA_DEMISSAO", "SIT_FOLHA", "ULTIMA_ATUALIZACAO",
		},
	}
)

// Sheets はワークブックに必要なシート名です。
var Sheets = []string{
	periodSchema.Name,
	containerSchema.Name,
	recordSchema.Name,
	logSchema.Name,
	employeeSchema.Name,
	termination.Schema.Name,
}

// Open はワークブックを開き、不足しているシートを作成します。
func Open(path string) (*flatstore.Workbook, error) {
	return flatstore.OpenWorkbook(path, Sheets...)
}

// NewTerminationSyncer は DESLIGAMENTOS 表の Syncer を生成します。
func NewTerminationSyncer(wb *flatstore.Workbook, observer flatstore.Observer) *flatstore.Syncer {
	return flatstore.NewSyncer(wb.Table(termination.Schema.Name), termination.Schema, observer)
}
