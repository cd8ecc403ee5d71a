// Package logtail reads the tail of the playpen log file and classifies its
// lines for display in the result pane.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// bounded by the number of lines shown rather than the size of the file. A
// log that does not exist yet reads as empty.
//
// Parse understands the prefix written by the standard library logger
// ("2006/01/02 15:04:05 message"). Lines without that prefix, such as the
// continuation of a multi-line message, keep a zero Time. Severity comes
// from the tag Errorf and Successf write after the timestamp:
//
//   - SeverityError: "ERROR "
//   - SeveritySuccess: "OK "
//   - SeverityInfo: untagged lines, including plain log.Printf output
//
// Example usage:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		logtail.Errorf("read log: %v", err)
//	}
//	for _, e := range logtail.ParseAll(lines) {
//		fmt.Println(e.Severity, e.Message)
//	}
package logtail
