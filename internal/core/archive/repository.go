package archive

import "context"

// Repository はアーカイブ台帳の永続化の抽象です。
// リレーショナル実装とフラットストア実装の 2 種類があります。
type Repository interface {
	CreatePeriod(ctx context.Context, period *Period) (*Period, error)
	FindPeriod(ctx context.Context, id int64) (*Period, error)
	ListPeriods(ctx context.Context) ([]*Period, error)
	DeletePeriod(ctx context.Context, id int64) error

	CreateContainer(ctx context.Context, container *Container) (*Container, error)
	FindContainer(ctx context.Context, id int64) (*Container, error)
	ListContainers(ctx context.Context, periodID int64) ([]*Container, error)
	DeleteContainers(ctx context.Context, ids []int64) (int, error)

	// UpsertArchived は (従業員, 参照月) をキーに記録を作成または上書きし、適用件数を返します。
	UpsertArchived(ctx context.Context, batch ArchiveBatch) (int, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
	// MarkUnarchived は ids のうち ARQUIVADO の記録を DESARQUIVADO に遷移させ、遷移件数を返します。
	MarkUnarchived(ctx context.Context, ids []int64, u Unarchival) (int, error)
	DeleteRecord(ctx context.Context, id int64) error
}

// LogWriter は操作ログの追記先です。
type LogWriter interface {
	Append(ctx context.Context, entries []LogEntry) error
}
