package client

import (
	"strconv"
	"strings"
)

// SubLink builds the public subscription link for a source:
// <origin>/sub/<id>. Users paste it into whatever subscription consumer
// they run, so the shape must stay stable.
func SubLink(origin string, id int64) string {
	return strings.TrimRight(strings.TrimSpace(origin), "/") + "/sub/" + strconv.FormatInt(id, 10)
}
