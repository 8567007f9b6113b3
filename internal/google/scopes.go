package google

// OAuth scopes requested by the commands. Each command asks for the narrowest
// set it needs:
//   - drives lists shared drives read-only
//   - report and export read one calendar
//   - export writes files it created itself (drive.file)
const (
	ScopeCalendarReadonly = "https://www.googleapis.com/auth/calendar.readonly"
	ScopeDriveReadonly    = "https://www.googleapis.com/auth/drive.readonly"
	ScopeDriveFile        = "https://www.googleapis.com/auth/drive.file"
)
