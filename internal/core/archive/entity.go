package archive

import "time"

// Status はアーカイブ記録の状態を表します。値は永続化される語彙そのものです。
type Status string

const (
	StatusArchived   Status = "ARQUIVADO"
	StatusUnarchived Status = "DESARQUIVADO"
)

// Action はログに記録される操作種別です。
type Action string

const (
	ActionCreatePeriod    Action = "CRIAR_MES"
	ActionCreateContainer Action = "CRIAR_CAIXA"
	ActionArchive         Action = "ARQUIVAR"
	ActionUnarchive       Action = "DESARQUIVAR"
	ActionDeleteContainer Action = "EXCLUIR_CAIXA"
	ActionDeletePeriod    Action = "EXCLUIR_MES"
	ActionDeleteRecord    Action = "EXCLUIR_REGISTRO"
)

// Period は参照月 (給与計算期間) です。
type Period struct {
	ID    int64
	Label string
}

// Container は 1 つの参照月に属する物理的な保管箱です。
type Container struct {
	ID       int64
	Number   string
	PeriodID int64
	Location string
}

// Record は (従業員, 参照月) ごとに高々 1 件存在するアーカイブ記録です。
type Record struct {
	ID              int64
	EmployeeID      string
	ContainerID     int64
	PeriodID        int64
	RegisteredAt    time.Time
	Status          Status
	UnarchivedAt    *time.Time
	UnarchivedBy    string
	UnarchiveReason string
}

// LogEntry は追記専用の操作ログです。
type LogEntry struct {
	Actor  string
	Action Action
	Detail string
	At     time.Time
}

// Unarchival は desarquivamento 時に記録されるメタデータです。
type Unarchival struct {
	At     time.Time
	Actor  string
	Reason string
}

// ArchiveBatch は 1 回の upsert で適用する従業員の集合です。
type ArchiveBatch struct {
	EmployeeIDs []string
	ContainerID int64
	PeriodID    int64
	At          time.Time
}

// RecordFilter はアーカイブ記録の検索条件です。ゼロ値の項目は条件に含めません。
type RecordFilter struct {
	IDs          []int64
	PeriodID     int64
	ContainerIDs []int64
	EmployeeID   string
	Status       *Status
}

func statusPtr(s Status) *Status {
	return &s
}
