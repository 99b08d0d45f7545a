package commands

import "time"

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// shortenConnID returns the first 8 characters of the connection ID.
func shortenConnID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
