package ports

import "context"

// ReportSink receives rendered home reports verbatim.
type ReportSink interface {
	Publish(ctx context.Context, home string, report string) error
}
