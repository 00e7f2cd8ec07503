package tabbycat

import "errors"

// Sentinel errors returned by the Store.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrChannelRequired is returned when AttachChannel is given a nil
	// channel.
	ErrChannelRequired = errors.New("broadcast channel is required")

	// ErrChannelNotAttached is returned when a broadcast is attempted
	// before AttachChannel.
	ErrChannelNotAttached = errors.New("broadcast channel not attached")

	// ErrUnknownSortKey is returned for a sort key outside the supported
	// set.
	ErrUnknownSortKey = errors.New("unknown sort key")

	// ErrUnknownHighlight is returned when toggling a highlight category
	// that was not defined by the bootstrap payload.
	ErrUnknownHighlight = errors.New("unknown highlight category")

	// ErrInvalidSharding is returned when a sharding configuration fails
	// validation.
	ErrInvalidSharding = errors.New("invalid sharding configuration")
)
