package common

// AppName is the program name used in the CLI and build info.
const AppName = "monju"

// DefaultDataFile is the backing file used when nothing else is configured.
const DefaultDataFile = "data/knowledge.json"

// TimestampLayout is the sortable local timestamp format of Entry.CreatedAt.
const TimestampLayout = "2006-01-02T15:04:05.000000"
