package app

import "github.com/jwulff/meetingbank/internal/table"

// ReportLoadedMsg carries a built report table.
type ReportLoadedMsg struct {
	Index int
	Table table.Table
}

// ReportErrorMsg is sent when a report query fails.
type ReportErrorMsg struct {
	Index int
	Err   error
}
