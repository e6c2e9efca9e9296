package ports

import "context"

// MessageConsumer — долгоживущий фоновый потребитель внешнего канала событий.
// Run блокируется до отмены контекста или терминальной ошибки.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
