package constants

// DateFormat keys every daily record, decision and entry.
const DateFormat = "2006-01-02"
