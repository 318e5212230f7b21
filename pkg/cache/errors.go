package cache

import "errors"

// Standard errors returned by cache implementations.
//
// 缓存实现可能返回的标准错误。
var (
	// ErrClosed is returned when an operation is performed on a closed cache.
	// 当对已关闭的缓存执行操作时返回 ErrClosed。
	ErrClosed = errors.New("cache: cache is closed")
)

// IsClosed returns true if the error indicates that the cache is closed.
//
// IsClosed 如果错误表示缓存已关闭，则返回 true。
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
