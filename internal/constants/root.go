package constants

// SessionState represents the current state of the TUI application
type SessionState int

// ConflictType represents the type of validation conflict
type ConflictType string

// EntryType represents the kind of a free-form journal entry
type EntryType string

const (
	AppName            = "daylog"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/daylog/daylog.db"
	Version            = "v0.3.0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daylog-"
	BackupFileSuffix = ".db"

	// Journal limits
	MaxIntentions      = 3
	MaxIntentionLength = 200

	// List limits mirror the browse slider of the web console
	MinListLimit     = 5
	MaxListLimit     = 100
	DefaultListLimit = 20

	// Entry types
	EntryTypeJournal    EntryType = "journal"
	EntryTypeLearning   EntryType = "learning"
	EntryTypeDecision   EntryType = "decision"
	EntryTypeReflection EntryType = "reflection"
	EntryTypeProject    EntryType = "project"

	// Conflict Types
	ConflictInvalidDate        ConflictType = "invalid_date"
	ConflictTooManyIntentions  ConflictType = "too_many_intentions"
	ConflictIntentionTooLong   ConflictType = "intention_too_long"
	ConflictUnknownMood        ConflictType = "unknown_mood"
	ConflictMissingEveningMood ConflictType = "missing_evening_mood"
	ConflictDuplicateDate      ConflictType = "duplicate_date"
	ConflictMissingTitle       ConflictType = "missing_title"
	ConflictEmptyText          ConflictType = "empty_text"
	ConflictUnknownEntryType   ConflictType = "unknown_entry_type"
)

// Session States
const (
	StateToday SessionState = iota
	StateHistory
	StateTrend
	StateDecisions
	StateEntries
	StateMorningForm
	StateEveningForm
	StateDecisionForm
	StateEntryForm
	StateRecordDetail
)

// EntryTypes lists the accepted journal entry types in display order.
var EntryTypes = []EntryType{
	EntryTypeJournal,
	EntryTypeLearning,
	EntryTypeDecision,
	EntryTypeReflection,
	EntryTypeProject,
}

// ClampListLimit keeps a requested list size inside the supported range.
// Zero or negative values select the default.
func ClampListLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit < MinListLimit {
		return MinListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
