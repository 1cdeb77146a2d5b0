package config

import "errors"

var (
	// ErrInvalidConfig covers top-level settings such as data_dir or log_format
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidWatcherConfig covers the [watcher] group
	ErrInvalidWatcherConfig = errors.New("invalid watcher configuration")
)
