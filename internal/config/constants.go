package config

import "time"

const (
	// Page sizes for list browsing
	HotelsPerPage   = 3
	RequestsPerPage = 5

	// Candidate cap for distance-sorted searches
	BestDealFetchSize = 200

	// Hotel API request timeout
	RequestTimeout = 30 * time.Second

	// Callback code retention
	CallbackTTL             = 24 * time.Hour
	CallbackCleanupInterval = time.Hour

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Numeric inline keyboard layout
	NumberKeyboardRows = 3
	NumberKeyboardCols = 3
)
